package transform

import (
	"github.com/go-sif/tabular"
	"github.com/go-sif/tabular/table"
)

// project copies the columns of t named by s, in the order of s, into a new Table
func project(t tabular.Table, s tabular.Schema) (tabular.Table, error) {
	return selectRows(t, s, func(int) bool { return true })
}

// selectRows copies the rows of t for which keep returns true into a new Table with Schema s
func selectRows(t tabular.Table, s tabular.Schema, keep func(row int) bool) (tabular.Table, error) {
	names := s.ColumnNames()
	cols := make([][]interface{}, len(names))
	for i, name := range names {
		col, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		cols[i] = col
	}
	res := table.CreateTable(s)
	row := make([]interface{}, len(names))
	for r := 0; r < t.NumRows(); r++ {
		if !keep(r) {
			continue
		}
		for c := range names {
			row[c] = cols[c][r]
		}
		if err := res.AppendRow(row); err != nil {
			return nil, err
		}
	}
	return res, nil
}
