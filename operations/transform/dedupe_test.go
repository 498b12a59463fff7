package transform

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDropDuplicateColumns(t *testing.T) {
	tbl := createTable(t, []string{"A", "A_copy", "B"},
		[]interface{}{1, 2, nil},
		[]interface{}{1, 2, nil},
		[]interface{}{"x", "y", "z"},
	)
	res, err := DropDuplicateColumns(tbl)
	require.Nil(t, err)
	require.Equal(t, []string{"A", "B"}, res.Schema().ColumnNames())
	require.Equal(t, 3, res.NumRows())
	require.Equal(t, 3, tbl.NumColumns())
}

func TestDropDuplicateColumnsComparesMissingValues(t *testing.T) {
	tbl := createTable(t, []string{"A", "B", "C"},
		[]interface{}{1, nil},
		[]interface{}{1, 2},
		[]interface{}{1, nil},
	)
	res, err := DropDuplicateColumns(tbl)
	require.Nil(t, err)
	require.Equal(t, []string{"A", "B"}, res.Schema().ColumnNames())
}

func TestDropDuplicateColumnsRequiresSameType(t *testing.T) {
	tbl := createTable(t, []string{"A", "B"},
		[]interface{}{1, 2},
		[]interface{}{1.0, 2.0},
	)
	res, err := DropDuplicateColumns(tbl)
	require.Nil(t, err)
	require.Equal(t, []string{"A", "B"}, res.Schema().ColumnNames())
}

func TestDropDuplicateColumnsKeepsFirst(t *testing.T) {
	tbl := createTable(t, []string{"A", "B", "C", "D"},
		[]interface{}{"x"},
		[]interface{}{"y"},
		[]interface{}{"x"},
		[]interface{}{"x"},
	)
	res, err := tbl.To(DuplicateColumnDropper())
	require.Nil(t, err)
	require.Equal(t, []string{"A", "B"}, res.Schema().ColumnNames())
}

func TestDropDuplicateRows(t *testing.T) {
	tbl := createTable(t, []string{"a", "b"},
		[]interface{}{1, 2, 1, nil, nil},
		[]interface{}{"x", "y", "x", "z", "z"},
	)
	res, err := DropDuplicateRows(tbl)
	require.Nil(t, err)
	require.Equal(t, 3, res.NumRows())
	col, _ := res.Column("a")
	require.Equal(t, []interface{}{int64(1), int64(2), nil}, col)
}
