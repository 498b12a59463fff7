package transform

import (
	"github.com/go-sif/tabular"
)

// Filter filters rows out of a Table, creating a new one
func Filter(fn tabular.FilterOperation) tabular.TableOperation {
	return func(t tabular.Table) (tabular.Table, error) {
		keep := make([]bool, t.NumRows())
		for r := 0; r < t.NumRows(); r++ {
			values, err := t.Row(r)
			if err != nil {
				return nil, err
			}
			keep[r], err = fn(values)
			if err != nil {
				return nil, err
			}
		}
		return selectRows(t, t.Schema().Clone(), func(r int) bool { return keep[r] })
	}
}
