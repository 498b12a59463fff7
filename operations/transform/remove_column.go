package transform

import "github.com/go-sif/tabular"

// RemoveColumn removes existing columns. Names which do not exist are ignored.
func RemoveColumn(oldNames ...string) tabular.TableOperation {
	return func(t tabular.Table) (tabular.Table, error) {
		newSchema := t.Schema().Clone()
		for _, oldName := range oldNames {
			newSchema, _ = newSchema.RemoveColumn(oldName)
		}
		return project(t, newSchema)
	}
}
