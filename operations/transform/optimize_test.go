package transform

import (
	"testing"

	"github.com/go-sif/tabular"
	"github.com/go-sif/tabular/table"
	"github.com/stretchr/testify/require"
)

func createOptimizeTestTable(t *testing.T) tabular.Table {
	tbl, err := table.FromColumns(
		[]string{"small", "medium", "negative", "whole", "fraction", "name", "empty"},
		[][]interface{}{
			{int64(1), int64(2), int64(3)},
			{int64(1), int64(2), int64(300)},
			{int64(-1), int64(2), int64(3)},
			{1.0, 2.0, nil},
			{1.5, 2.0, 3.0},
			{"a", "b", "c"},
			{nil, nil, nil},
		},
	)
	require.Nil(t, err)
	require.Nil(t, tbl.SetColumn("empty", &tabular.Float64ColumnType{}, []interface{}{nil, nil, nil}))
	return tbl
}

func TestOptimizeDowncastsToUnsigned(t *testing.T) {
	tbl := createOptimizeTestTable(t)
	res, err := Optimize(tbl)
	require.Nil(t, err)
	types := res.Schema().ColumnTypes()
	require.IsType(t, &tabular.Uint8ColumnType{}, types[0])
	require.IsType(t, &tabular.Uint16ColumnType{}, types[1])
	require.IsType(t, &tabular.Int64ColumnType{}, types[2])
	require.IsType(t, &tabular.Uint8ColumnType{}, types[3])
	require.IsType(t, &tabular.Float64ColumnType{}, types[4])
	require.IsType(t, &tabular.VarStringColumnType{}, types[5])
	require.IsType(t, &tabular.Float64ColumnType{}, types[6])

	col, err := res.Column("whole")
	require.Nil(t, err)
	require.Equal(t, []interface{}{uint8(1), uint8(2), nil}, col)
	col, err = res.Column("medium")
	require.Nil(t, err)
	require.Equal(t, []interface{}{uint16(1), uint16(2), uint16(300)}, col)
}

func TestOptimizeDoesNotModifyInput(t *testing.T) {
	tbl := createOptimizeTestTable(t)
	res, err := Optimize(tbl)
	require.Nil(t, err)
	require.NotEqual(t, tbl.ID(), res.ID())
	require.IsType(t, &tabular.Int64ColumnType{}, tbl.Schema().ColumnTypes()[0])
	v, err := tbl.Get("small", 0)
	require.Nil(t, err)
	require.Equal(t, int64(1), v)
}

func TestOptimizeInPlace(t *testing.T) {
	tbl := createOptimizeTestTable(t)
	require.Nil(t, OptimizeInPlace(tbl))
	require.IsType(t, &tabular.Uint8ColumnType{}, tbl.Schema().ColumnTypes()[0])
}

func TestOptimizeLargeValues(t *testing.T) {
	tbl, err := table.FromColumns(
		[]string{"u32", "u64"},
		[][]interface{}{
			{uint64(70000)},
			{uint64(1) << 40},
		},
	)
	require.Nil(t, err)
	res, err := tbl.To(Optimizer())
	require.Nil(t, err)
	types := res.Schema().ColumnTypes()
	require.IsType(t, &tabular.Uint32ColumnType{}, types[0])
	require.IsType(t, &tabular.Uint64ColumnType{}, types[1])
}
