package tabular

import (
	"reflect"
	"strconv"
)

// ColumnType is an interface which is implemented by all supported column types.
// Tabular provides a variety of built-in types in this package.
type ColumnType interface {
	Size() int                     // returns size in bytes of a value of this type, or 0 for variable-length types
	ToString(v interface{}) string // produces a string representation of a value of this type
}

// IsVariableLength returns true iff colType has no fixed width
func IsVariableLength(colType ColumnType) bool {
	return colType != nil && colType.Size() == 0
}

// IsInteger returns true iff colType stores signed or unsigned integers
func IsInteger(colType ColumnType) bool {
	return IsSigned(colType) || IsUnsigned(colType)
}

// IsSigned returns true iff colType stores signed integers
func IsSigned(colType ColumnType) bool {
	switch colType.(type) {
	case *Int8ColumnType, *Int16ColumnType, *Int32ColumnType, *Int64ColumnType:
		return true
	}
	return false
}

// IsUnsigned returns true iff colType stores unsigned integers
func IsUnsigned(colType ColumnType) bool {
	switch colType.(type) {
	case *Uint8ColumnType, *Uint16ColumnType, *Uint32ColumnType, *Uint64ColumnType:
		return true
	}
	return false
}

// IsFloat returns true iff colType stores floating point numbers
func IsFloat(colType ColumnType) bool {
	switch colType.(type) {
	case *Float32ColumnType, *Float64ColumnType:
		return true
	}
	return false
}

// IsNumeric returns true iff colType stores integers or floating point numbers
func IsNumeric(colType ColumnType) bool {
	return IsInteger(colType) || IsFloat(colType)
}

// SameType returns true iff a and b are the same kind of ColumnType
func SameType(a ColumnType, b ColumnType) bool {
	return reflect.TypeOf(a) == reflect.TypeOf(b)
}

// BoolColumnType is a column type which stores a boolean value
type BoolColumnType struct{}

// Size in bytes of a BoolColumn
func (b *BoolColumnType) Size() int {
	return 1
}

// ToString produces a string representation of a value of a BoolColumnType value
func (b *BoolColumnType) ToString(v interface{}) string {
	return strconv.FormatBool(v.(bool))
}

// Uint8ColumnType is a column type which stores a uint8 value
type Uint8ColumnType struct{}

// Size in bytes of a Uint8Column
func (b *Uint8ColumnType) Size() int {
	return 1
}

// ToString produces a string representation of a value of a Uint8ColumnType value
func (b *Uint8ColumnType) ToString(v interface{}) string {
	return strconv.FormatUint(uint64(v.(uint8)), 10)
}

// Uint16ColumnType is a column type which stores a uint16 value
type Uint16ColumnType struct{}

// Size in bytes of a Uint16Column
func (b *Uint16ColumnType) Size() int {
	return 2
}

// ToString produces a string representation of a value of a Uint16ColumnType value
func (b *Uint16ColumnType) ToString(v interface{}) string {
	return strconv.FormatUint(uint64(v.(uint16)), 10)
}

// Uint32ColumnType is a column type which stores a uint32 value
type Uint32ColumnType struct{}

// Size in bytes of a Uint32Column
func (b *Uint32ColumnType) Size() int {
	return 4
}

// ToString produces a string representation of a value of a Uint32ColumnType value
func (b *Uint32ColumnType) ToString(v interface{}) string {
	return strconv.FormatUint(uint64(v.(uint32)), 10)
}

// Uint64ColumnType is a column type which stores a uint64 value
type Uint64ColumnType struct{}

// Size in bytes of a Uint64Column
func (b *Uint64ColumnType) Size() int {
	return 8
}

// ToString produces a string representation of a value of a Uint64ColumnType value
func (b *Uint64ColumnType) ToString(v interface{}) string {
	return strconv.FormatUint(v.(uint64), 10)
}

// Int8ColumnType is a column type which stores a int8 value
type Int8ColumnType struct{}

// Size in bytes of a Int8Column
func (b *Int8ColumnType) Size() int {
	return 1
}

// ToString produces a string representation of a value of a Int8ColumnType value
func (b *Int8ColumnType) ToString(v interface{}) string {
	return strconv.FormatInt(int64(v.(int8)), 10)
}

// Int16ColumnType is a column type which stores a int16 value
type Int16ColumnType struct{}

// Size in bytes of a Int16Column
func (b *Int16ColumnType) Size() int {
	return 2
}

// ToString produces a string representation of a value of a Int16ColumnType value
func (b *Int16ColumnType) ToString(v interface{}) string {
	return strconv.FormatInt(int64(v.(int16)), 10)
}

// Int32ColumnType is a column type which stores a int32 value
type Int32ColumnType struct{}

// Size in bytes of a Int32Column
func (b *Int32ColumnType) Size() int {
	return 4
}

// ToString produces a string representation of a value of a Int32ColumnType value
func (b *Int32ColumnType) ToString(v interface{}) string {
	return strconv.FormatInt(int64(v.(int32)), 10)
}

// Int64ColumnType is a column type which stores a int64 value
type Int64ColumnType struct{}

// Size in bytes of a Int64Column
func (b *Int64ColumnType) Size() int {
	return 8
}

// ToString produces a string representation of a value of a Int64ColumnType value
func (b *Int64ColumnType) ToString(v interface{}) string {
	return strconv.FormatInt(v.(int64), 10)
}

// Float32ColumnType is a column type which stores a float32 value
type Float32ColumnType struct{}

// Size in bytes of a Float32Column
func (b *Float32ColumnType) Size() int {
	return 4
}

// ToString produces a string representation of a value of a Float32ColumnType value
func (b *Float32ColumnType) ToString(v interface{}) string {
	return strconv.FormatFloat(float64(v.(float32)), 'g', -1, 32)
}

// Float64ColumnType is a column type which stores a float64 value
type Float64ColumnType struct{}

// Size in bytes of a Float64Column
func (b *Float64ColumnType) Size() int {
	return 8
}

// ToString produces a string representation of a value of a Float64ColumnType value
func (b *Float64ColumnType) ToString(v interface{}) string {
	return strconv.FormatFloat(v.(float64), 'g', -1, 64)
}

// VarStringColumnType is a column type which stores a variable-length string value
type VarStringColumnType struct{}

// Size of a VarStringColumn is always 0, since it is variable-length
func (b *VarStringColumnType) Size() int {
	return 0
}

// ToString produces a string representation of a value of a VarStringColumnType value
func (b *VarStringColumnType) ToString(v interface{}) string {
	return v.(string)
}
