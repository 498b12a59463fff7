package tabular

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConvertValue(t *testing.T) {
	v, err := ConvertValue(int64(200), &Uint8ColumnType{})
	require.Nil(t, err)
	require.Equal(t, uint8(200), v)

	v, err = ConvertValue(3.0, &Int16ColumnType{})
	require.Nil(t, err)
	require.Equal(t, int16(3), v)

	v, err = ConvertValue(uint8(7), &Float64ColumnType{})
	require.Nil(t, err)
	require.Equal(t, 7.0, v)

	v, err = ConvertValue(nil, &Int64ColumnType{})
	require.Nil(t, err)
	require.Nil(t, v)
}

func TestConvertValueRejectsLoss(t *testing.T) {
	_, err := ConvertValue(int64(256), &Uint8ColumnType{})
	require.NotNil(t, err)
	_, err = ConvertValue(int64(-1), &Uint64ColumnType{})
	require.NotNil(t, err)
	_, err = ConvertValue(1.5, &Int64ColumnType{})
	require.NotNil(t, err)
	_, err = ConvertValue("1", &Int64ColumnType{})
	require.NotNil(t, err)
	_, err = ConvertValue(1, &VarStringColumnType{})
	require.NotNil(t, err)
	_, err = ConvertValue(uint64(math.MaxUint64), &Int64ColumnType{})
	require.NotNil(t, err)
}

func TestAsUnsigned(t *testing.T) {
	u, ok := AsUnsigned(4.0)
	require.True(t, ok)
	require.Equal(t, uint64(4), u)
	_, ok = AsUnsigned(-4.0)
	require.False(t, ok)
	_, ok = AsUnsigned(math.NaN())
	require.False(t, ok)
	_, ok = AsUnsigned(int8(-1))
	require.False(t, ok)
	_, ok = AsUnsigned("4")
	require.False(t, ok)
}

func TestAsSigned(t *testing.T) {
	i, ok := AsSigned(uint16(9))
	require.True(t, ok)
	require.Equal(t, int64(9), i)
	_, ok = AsSigned(0.25)
	require.False(t, ok)
	_, ok = AsSigned(math.Inf(1))
	require.False(t, ok)
}

func TestValuesEqual(t *testing.T) {
	require.True(t, ValuesEqual(nil, nil))
	require.True(t, ValuesEqual(math.NaN(), math.NaN()))
	require.True(t, ValuesEqual("a", "a"))
	require.False(t, ValuesEqual(nil, 0.0))
	require.False(t, ValuesEqual(int64(1), uint8(1)))
}

func TestSmallestUnsignedType(t *testing.T) {
	require.IsType(t, &Uint8ColumnType{}, SmallestUnsignedType(255))
	require.IsType(t, &Uint16ColumnType{}, SmallestUnsignedType(256))
	require.IsType(t, &Uint32ColumnType{}, SmallestUnsignedType(math.MaxUint16+1))
	require.IsType(t, &Uint64ColumnType{}, SmallestUnsignedType(math.MaxUint32+1))
}

func TestWidenNumeric(t *testing.T) {
	require.IsType(t, &Uint32ColumnType{}, WidenNumeric(&Uint8ColumnType{}, &Uint32ColumnType{}))
	require.IsType(t, &Int16ColumnType{}, WidenNumeric(&Int16ColumnType{}, &Int8ColumnType{}))
	require.IsType(t, &Int64ColumnType{}, WidenNumeric(&Uint8ColumnType{}, &Int8ColumnType{}))
	require.IsType(t, &Float64ColumnType{}, WidenNumeric(&Float32ColumnType{}, &Int8ColumnType{}))
	require.Nil(t, WidenNumeric(&VarStringColumnType{}, &Int8ColumnType{}))
}

func TestColumnTypeClassification(t *testing.T) {
	require.True(t, IsVariableLength(&VarStringColumnType{}))
	require.False(t, IsVariableLength(&Int32ColumnType{}))
	require.True(t, IsNumeric(&Float32ColumnType{}))
	require.False(t, IsNumeric(&BoolColumnType{}))
	require.True(t, IsInteger(&Uint64ColumnType{}))
	require.True(t, SameType(&Int8ColumnType{}, &Int8ColumnType{}))
	require.False(t, SameType(&Int8ColumnType{}, &Uint8ColumnType{}))
	require.False(t, SameType(&VarStringColumnType{}, nil))
	require.True(t, SameType(nil, nil))
	var a, b ColumnType = &Float64ColumnType{}, &Float64ColumnType{}
	require.True(t, SameType(a, b))
}

func TestFormatValue(t *testing.T) {
	require.Equal(t, "", FormatValue(nil, &Int64ColumnType{}))
	require.Equal(t, "-3", FormatValue(int64(-3), &Int64ColumnType{}))
	require.Equal(t, "0.1", FormatValue(0.1, &Float64ColumnType{}))
	require.Equal(t, "true", FormatValue(true, &BoolColumnType{}))
}

func TestResult(t *testing.T) {
	var none *Result
	require.False(t, none.Complete())
	require.False(t, none.Usable())
	partial := &Result{Kind: ResultPartial, Table: nil}
	require.False(t, partial.Complete())
	require.False(t, partial.Usable())
}
