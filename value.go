package tabular

import (
	"fmt"
	"math"
)

// twoTo64 is the smallest float64 which does not fit in a uint64
const twoTo64 = float64(1<<63) * 2

// ConvertValue converts a scalar value to the Go representation of the given
// ColumnType. nil (the missing-value marker) always converts to nil.
// An error is returned if the value cannot be represented without loss.
func ConvertValue(v interface{}, to ColumnType) (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	switch to.(type) {
	case *BoolColumnType:
		if b, ok := v.(bool); ok {
			return b, nil
		}
	case *VarStringColumnType:
		if s, ok := v.(string); ok {
			return s, nil
		}
	case *Float32ColumnType:
		if f, ok := AsFloat(v); ok {
			return float32(f), nil
		}
	case *Float64ColumnType:
		if f, ok := AsFloat(v); ok {
			return f, nil
		}
	case *Uint8ColumnType:
		if u, ok := AsUnsigned(v); ok && u <= math.MaxUint8 {
			return uint8(u), nil
		}
	case *Uint16ColumnType:
		if u, ok := AsUnsigned(v); ok && u <= math.MaxUint16 {
			return uint16(u), nil
		}
	case *Uint32ColumnType:
		if u, ok := AsUnsigned(v); ok && u <= math.MaxUint32 {
			return uint32(u), nil
		}
	case *Uint64ColumnType:
		if u, ok := AsUnsigned(v); ok {
			return u, nil
		}
	case *Int8ColumnType:
		if i, ok := AsSigned(v); ok && i >= math.MinInt8 && i <= math.MaxInt8 {
			return int8(i), nil
		}
	case *Int16ColumnType:
		if i, ok := AsSigned(v); ok && i >= math.MinInt16 && i <= math.MaxInt16 {
			return int16(i), nil
		}
	case *Int32ColumnType:
		if i, ok := AsSigned(v); ok && i >= math.MinInt32 && i <= math.MaxInt32 {
			return int32(i), nil
		}
	case *Int64ColumnType:
		if i, ok := AsSigned(v); ok {
			return i, nil
		}
	}
	return nil, fmt.Errorf("Value %v of type %T cannot be represented as %T", v, v, to)
}

// AsFloat returns the numeric value of v as a float64
func AsFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// AsUnsigned returns v as a uint64 iff v is a non-negative whole number which fits
func AsUnsigned(v interface{}) (uint64, bool) {
	switch n := v.(type) {
	case uint8:
		return uint64(n), true
	case uint16:
		return uint64(n), true
	case uint32:
		return uint64(n), true
	case uint64:
		return n, true
	case int8, int16, int32, int64:
		i, _ := AsSigned(n)
		if i < 0 {
			return 0, false
		}
		return uint64(i), true
	case float32:
		return floatToUnsigned(float64(n))
	case float64:
		return floatToUnsigned(n)
	}
	return 0, false
}

// AsSigned returns v as an int64 iff v is a whole number which fits
func AsSigned(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case float32:
		return floatToSigned(float64(n))
	case float64:
		return floatToSigned(n)
	}
	return 0, false
}

func floatToUnsigned(f float64) (uint64, bool) {
	if math.IsNaN(f) || f < 0 || f >= twoTo64 || f != math.Trunc(f) {
		return 0, false
	}
	return uint64(f), true
}

func floatToSigned(f float64) (int64, bool) {
	if math.IsNaN(f) || f < math.MinInt64 || f >= math.MaxInt64 || f != math.Trunc(f) {
		return 0, false
	}
	return int64(f), true
}

// ValuesEqual compares two scalar values. Two NaNs are considered equal, as are two nils.
func ValuesEqual(a interface{}, b interface{}) bool {
	if af, ok := a.(float64); ok {
		if bf, ok := b.(float64); ok && math.IsNaN(af) && math.IsNaN(bf) {
			return true
		}
	}
	if af, ok := a.(float32); ok {
		if bf, ok := b.(float32); ok && af != af && bf != bf {
			return true
		}
	}
	return a == b
}

// SmallestUnsignedType returns the narrowest unsigned ColumnType which can hold max
func SmallestUnsignedType(max uint64) ColumnType {
	switch {
	case max <= math.MaxUint8:
		return &Uint8ColumnType{}
	case max <= math.MaxUint16:
		return &Uint16ColumnType{}
	case max <= math.MaxUint32:
		return &Uint32ColumnType{}
	default:
		return &Uint64ColumnType{}
	}
}

// WidenNumeric returns the narrowest ColumnType able to hold values of both a and b,
// or nil if either is not numeric. Mixing signed and unsigned integers produces an Int64ColumnType.
func WidenNumeric(a ColumnType, b ColumnType) ColumnType {
	if !IsNumeric(a) || !IsNumeric(b) {
		return nil
	}
	if SameType(a, b) {
		return a
	}
	switch {
	case IsFloat(a) || IsFloat(b):
		return &Float64ColumnType{}
	case IsUnsigned(a) && IsUnsigned(b), IsSigned(a) && IsSigned(b):
		if a.Size() >= b.Size() {
			return a
		}
		return b
	default:
		return &Int64ColumnType{}
	}
}

// FormatValue produces a string representation of a value of the given ColumnType.
// Missing values are rendered as the empty string.
func FormatValue(v interface{}, colType ColumnType) string {
	if v == nil {
		return ""
	}
	return colType.ToString(v)
}
