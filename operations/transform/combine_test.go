package transform

import (
	"testing"

	"github.com/go-sif/tabular"
	"github.com/go-sif/tabular/errors"
	"github.com/go-sif/tabular/table"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func createTable(t *testing.T, names []string, cols ...[]interface{}) tabular.Table {
	tbl, err := table.FromColumns(names, cols)
	require.Nil(t, err)
	return tbl
}

func createJoinTestTables(t *testing.T) (tabular.Table, tabular.Table) {
	a := createTable(t, []string{"id", "a"},
		[]interface{}{1, 2, 3},
		[]interface{}{"x", "y", "z"},
	)
	b := createTable(t, []string{"id", "b"},
		[]interface{}{2, 3, 4},
		[]interface{}{20, 30, 40},
	)
	return a, b
}

func combine(t *testing.T, tables []tabular.Table, how JoinType) *tabular.Result {
	res, err := Combine(tables, "id", &CombineConf{JoinType: how, Logger: zap.NewNop()})
	require.Nil(t, err)
	return res
}

func TestCombineInner(t *testing.T) {
	a, b := createJoinTestTables(t)
	res := combine(t, []tabular.Table{a, b}, InnerJoin)
	require.True(t, res.Complete())
	require.Equal(t, 1, res.Steps)
	require.Equal(t, []string{"id", "a", "b"}, res.Table.Schema().ColumnNames())
	require.Equal(t, 2, res.Table.NumRows())
	row, err := res.Table.Row(0)
	require.Nil(t, err)
	require.Equal(t, []interface{}{uint8(2), "y", uint8(20)}, row)
	row, _ = res.Table.Row(1)
	require.Equal(t, []interface{}{uint8(3), "z", uint8(30)}, row)
}

func TestCombineDefaultsToInner(t *testing.T) {
	a, b := createJoinTestTables(t)
	res, err := Combine([]tabular.Table{a, b}, "id", &CombineConf{Logger: zap.NewNop()})
	require.Nil(t, err)
	require.Equal(t, 2, res.Table.NumRows())
}

func TestCombineLeft(t *testing.T) {
	a, b := createJoinTestTables(t)
	res := combine(t, []tabular.Table{a, b}, LeftJoin)
	require.Equal(t, 3, res.Table.NumRows())
	row, _ := res.Table.Row(0)
	require.Equal(t, []interface{}{uint8(1), "x", nil}, row)
}

func TestCombineRight(t *testing.T) {
	a, b := createJoinTestTables(t)
	res := combine(t, []tabular.Table{a, b}, RightJoin)
	require.Equal(t, 3, res.Table.NumRows())
	ids, _ := res.Table.Column("id")
	require.Equal(t, []interface{}{uint8(2), uint8(3), uint8(4)}, ids)
	row, _ := res.Table.Row(2)
	require.Equal(t, []interface{}{uint8(4), nil, uint8(40)}, row)
}

func TestCombineOuter(t *testing.T) {
	a, b := createJoinTestTables(t)
	res := combine(t, []tabular.Table{a, b}, OuterJoin)
	require.Equal(t, 4, res.Table.NumRows())
	ids, _ := res.Table.Column("id")
	require.Equal(t, []interface{}{uint8(1), uint8(2), uint8(3), uint8(4)}, ids)
	row, _ := res.Table.Row(3)
	require.Equal(t, []interface{}{uint8(4), nil, uint8(40)}, row)

	inner := combine(t, []tabular.Table{a, b}, InnerJoin)
	left := combine(t, []tabular.Table{a, b}, LeftJoin)
	require.GreaterOrEqual(t, res.Table.NumRows(), inner.Table.NumRows())
	require.GreaterOrEqual(t, res.Table.NumRows(), left.Table.NumRows())
}

func TestCombineOuterSortsByKey(t *testing.T) {
	a := createTable(t, []string{"id", "a"}, []interface{}{3, 1}, []interface{}{"c", "a"})
	b := createTable(t, []string{"id", "b"}, []interface{}{2, 1}, []interface{}{20, 10})
	res := combine(t, []tabular.Table{a, b}, OuterJoin)
	ids, _ := res.Table.Column("id")
	require.Equal(t, []interface{}{uint8(1), uint8(2), uint8(3)}, ids)
	row, _ := res.Table.Row(0)
	require.Equal(t, []interface{}{uint8(1), "a", uint8(10)}, row)
	row, _ = res.Table.Row(1)
	require.Equal(t, []interface{}{uint8(2), nil, uint8(20)}, row)
	row, _ = res.Table.Row(2)
	require.Equal(t, []interface{}{uint8(3), "c", nil}, row)

	// left order is kept for inner and left joins
	left := combine(t, []tabular.Table{a, b}, LeftJoin)
	ids, _ = left.Table.Column("id")
	require.Equal(t, []interface{}{uint8(3), uint8(1)}, ids)
}

func TestCombineOuterSortsMissingKeysLast(t *testing.T) {
	a := createTable(t, []string{"id", "a"}, []interface{}{nil, "y"}, []interface{}{1, 2})
	b := createTable(t, []string{"id", "b"}, []interface{}{"x"}, []interface{}{3})
	res := combine(t, []tabular.Table{a, b}, OuterJoin)
	ids, _ := res.Table.Column("id")
	require.Equal(t, []interface{}{"x", "y", nil}, ids)
}

func TestCompareKeys(t *testing.T) {
	require.Equal(t, -1, compareKeys(uint8(2), int64(10)))
	require.Equal(t, -1, compareKeys(int64(-1), nil))
	require.Equal(t, 0, compareKeys(3.0, uint8(3)))
	require.Equal(t, -1, compareKeys(-0.5, uint8(0)))
	require.Equal(t, -1, compareKeys("B", "a"))
	require.Equal(t, -1, compareKeys(false, true))
	require.Equal(t, 1, compareKeys(nil, "a"))
	require.Equal(t, 0, compareKeys(nil, nil))
	require.Equal(t, 1, compareKeys(uint64(1)<<63, int64(5)))
}

func TestCombineKeyMultiplicity(t *testing.T) {
	a := createTable(t, []string{"id", "a"}, []interface{}{1, 1}, []interface{}{"p", "q"})
	b := createTable(t, []string{"id", "b"}, []interface{}{1, 1, 2}, []interface{}{"r", "s", "t"})
	res := combine(t, []tabular.Table{a, b}, InnerJoin)
	require.Equal(t, 4, res.Table.NumRows())
	col, _ := res.Table.Column("b")
	require.Equal(t, []interface{}{"r", "s", "r", "s"}, col)
}

func TestCombineMissingKeysNeverMatch(t *testing.T) {
	a := createTable(t, []string{"id", "a"}, []interface{}{1, nil}, []interface{}{"p", "q"})
	b := createTable(t, []string{"id", "b"}, []interface{}{nil, 1}, []interface{}{"r", "s"})
	inner := combine(t, []tabular.Table{a, b}, InnerJoin)
	require.Equal(t, 1, inner.Table.NumRows())
	outer := combine(t, []tabular.Table{a, b}, OuterJoin)
	require.Equal(t, 3, outer.Table.NumRows())
	require.True(t, outer.Table.IsNil("id", 1))
	require.True(t, outer.Table.IsNil("id", 2))
}

func TestCombineSuffixes(t *testing.T) {
	a := createTable(t, []string{"id", "v"}, []interface{}{1}, []interface{}{"a"})
	b := createTable(t, []string{"id", "v"}, []interface{}{1}, []interface{}{"b"})
	c := createTable(t, []string{"id", "v"}, []interface{}{1}, []interface{}{"c"})
	res := combine(t, []tabular.Table{a, b, c}, InnerJoin)
	require.True(t, res.Complete())
	require.Equal(t, 2, res.Steps)
	require.Equal(t, []string{"id", "v_left_1", "v_right_1", "v"}, res.Table.Schema().ColumnNames())
	row, _ := res.Table.Row(0)
	require.Equal(t, []interface{}{uint8(1), "a", "b", "c"}, row)
}

func TestCombineWidensKeyTypes(t *testing.T) {
	a := createTable(t, []string{"id", "a"}, []interface{}{-1, 2}, []interface{}{"p", "q"})
	b := createTable(t, []string{"id", "b"}, []interface{}{2.0, 3.0}, []interface{}{"r", "s"})
	res := combine(t, []tabular.Table{a, b}, OuterJoin)
	require.IsType(t, &tabular.Int64ColumnType{}, res.Table.Schema().ColumnTypes()[0])
	ids, _ := res.Table.Column("id")
	require.Equal(t, []interface{}{int64(-1), int64(2), int64(3)}, ids)
}

func TestCombineDoesNotModifyInputs(t *testing.T) {
	a, b := createJoinTestTables(t)
	combine(t, []tabular.Table{a, b}, InnerJoin)
	require.IsType(t, &tabular.Int64ColumnType{}, a.Schema().ColumnTypes()[0])
	require.IsType(t, &tabular.Int64ColumnType{}, b.Schema().ColumnTypes()[1])
}

func TestCombineRequiresTwoTables(t *testing.T) {
	a, _ := createJoinTestTables(t)
	res, err := Combine([]tabular.Table{a}, "id", nil)
	require.Nil(t, res)
	require.Equal(t, errors.InsufficientTablesError{Required: 2, Supplied: 1}, err)
	_, err = Combine(nil, "id", nil)
	require.IsType(t, errors.InsufficientTablesError{}, err)
}

func TestCombineUnknownJoinType(t *testing.T) {
	a, b := createJoinTestTables(t)
	_, err := Combine([]tabular.Table{a, b}, "id", &CombineConf{JoinType: "cross"})
	require.IsType(t, errors.UnknownJoinTypeError{}, err)
}

func TestParseJoinType(t *testing.T) {
	jt, err := ParseJoinType("outer")
	require.Nil(t, err)
	require.Equal(t, OuterJoin, jt)
	_, err = ParseJoinType("full")
	require.NotNil(t, err)
}

func TestCombineStopsAtMissingKey(t *testing.T) {
	a, b := createJoinTestTables(t)
	c := createTable(t, []string{"other", "c"}, []interface{}{1}, []interface{}{"c"})
	d, _ := createJoinTestTables(t)
	core, logs := observer.New(zapcore.InfoLevel)
	res, err := Combine([]tabular.Table{a, b, c, d}, "id", &CombineConf{Logger: zap.New(core)})
	require.Nil(t, err)
	require.Equal(t, tabular.ResultPartial, res.Kind)
	require.True(t, res.Usable())
	require.Equal(t, 1, res.Steps)
	require.Equal(t, errors.MergeError{Step: 2, Reason: "join key id is missing from the incoming table"}, res.Err)
	require.Equal(t, []string{"id", "a", "b"}, res.Table.Schema().ColumnNames())
	require.Equal(t, 2, res.Table.NumRows())
	require.Equal(t, 1, logs.FilterMessage("MergeError").Len())
}

func TestCombineIncompatibleKeys(t *testing.T) {
	a := createTable(t, []string{"id"}, []interface{}{1})
	b := createTable(t, []string{"id"}, []interface{}{"1"})
	res := combine(t, []tabular.Table{a, b}, InnerJoin)
	require.Equal(t, tabular.ResultPartial, res.Kind)
	require.IsType(t, errors.MergeError{}, res.Err)
	require.Equal(t, 0, res.Steps)
}

func TestCombineSuffixCollision(t *testing.T) {
	a := createTable(t, []string{"id", "v", "v_right_1"}, []interface{}{1}, []interface{}{"a"}, []interface{}{"x"})
	b := createTable(t, []string{"id", "v"}, []interface{}{1}, []interface{}{"b"})
	res := combine(t, []tabular.Table{a, b}, InnerJoin)
	require.Equal(t, tabular.ResultPartial, res.Kind)
	require.IsType(t, errors.MergeError{}, res.Err)
	require.Equal(t, []string{"id", "v", "v_right_1"}, res.Table.Schema().ColumnNames())
}

func TestCombineMemoryLimit(t *testing.T) {
	a, b := createJoinTestTables(t)
	core, logs := observer.New(zapcore.InfoLevel)
	res, err := Combine([]tabular.Table{a, b}, "id", &CombineConf{MaxRows: 1, Logger: zap.New(core)})
	require.Nil(t, err)
	require.Equal(t, tabular.ResultPartial, res.Kind)
	require.Equal(t, errors.MemoryLimitError{Step: 1, MaxRows: 1}, res.Err)
	require.Equal(t, 3, res.Table.NumRows())
	require.IsType(t, &tabular.Uint8ColumnType{}, res.Table.Schema().ColumnTypes()[0])
	require.Equal(t, 1, logs.FilterMessage("MemoryError: Unable to allocate memory. Try reducing the chunk size.").Len())
}
