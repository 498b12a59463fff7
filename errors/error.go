package errors

import (
	"fmt"
)

// FileNotFoundError occurs when a file to be loaded does not exist
type FileNotFoundError struct{ Path string }

// Error returns a textual representation of this FileNotFoundError
func (e FileNotFoundError) Error() string {
	return fmt.Sprintf("File %s not found", e.Path)
}

// EmptyFileError occurs when a file to be loaded contains no columns or records
type EmptyFileError struct{ Path string }

// Error returns a textual representation of this EmptyFileError
func (e EmptyFileError) Error() string {
	if e.Path == "" {
		return "No data found"
	}
	return fmt.Sprintf("No data found in file %s", e.Path)
}

// ParseError occurs when the contents of a file cannot be parsed
type ParseError struct {
	Path  string
	Line  int // 1-based line number at which parsing failed, or 0 if unknown
	Cause error
}

// Error returns a textual representation of this ParseError
func (e ParseError) Error() string {
	source := e.Path
	if source == "" {
		source = "data"
	}
	if e.Line > 0 {
		return fmt.Sprintf("Unable to parse %s at line %d: %v", source, e.Line, e.Cause)
	}
	return fmt.Sprintf("Unable to parse %s: %v", source, e.Cause)
}

// Unwrap returns the cause of this ParseError
func (e ParseError) Unwrap() error {
	return e.Cause
}

// LoadError occurs when loading a file fails for any other reason
type LoadError struct {
	Path  string
	Cause error
}

// Error returns a textual representation of this LoadError
func (e LoadError) Error() string {
	return fmt.Sprintf("Unable to load %s: %v", e.Path, e.Cause)
}

// Unwrap returns the cause of this LoadError
func (e LoadError) Unwrap() error {
	return e.Cause
}

// InsufficientTablesError occurs when fewer than the required number of Tables is supplied to a join
type InsufficientTablesError struct{ Required, Supplied int }

// Error returns a textual representation of this InsufficientTablesError
func (e InsufficientTablesError) Error() string {
	return fmt.Sprintf("At least %d tables are required, but %d were supplied", e.Required, e.Supplied)
}

// UnknownJoinTypeError occurs when a join type is not one of inner, outer, left or right
type UnknownJoinTypeError struct{ JoinType string }

// Error returns a textual representation of this UnknownJoinTypeError
func (e UnknownJoinTypeError) Error() string {
	return fmt.Sprintf("Unknown join type %q", e.JoinType)
}

// MergeError occurs when two Tables cannot be merged on a key
type MergeError struct {
	Step   int // 1-based index of the Table being merged in
	Reason string
}

// Error returns a textual representation of this MergeError
func (e MergeError) Error() string {
	return fmt.Sprintf("Unable to merge table %d: %s", e.Step, e.Reason)
}

// MemoryLimitError occurs when a merge would produce more rows than permitted
type MemoryLimitError struct {
	Step    int
	MaxRows int
}

// Error returns a textual representation of this MemoryLimitError
func (e MemoryLimitError) Error() string {
	return fmt.Sprintf("Merging table %d would exceed the limit of %d rows", e.Step, e.MaxRows)
}

// MissingColumnError occurs when a named column does not exist in a Table
type MissingColumnError struct{ Name string }

// Error returns a textual representation of this MissingColumnError
func (e MissingColumnError) Error() string {
	return fmt.Sprintf("Column %s does not exist", e.Name)
}

// RowOutOfRangeError occurs when a row index does not exist in a Table
type RowOutOfRangeError struct{ Row, NumRows int }

// Error returns a textual representation of this RowOutOfRangeError
func (e RowOutOfRangeError) Error() string {
	return fmt.Sprintf("Row %d is out of range for a table with %d rows", e.Row, e.NumRows)
}

// IncompatibleColumnError occurs when the values supplied for a column do not match a Table
type IncompatibleColumnError struct {
	Name   string
	Reason string
}

// Error returns a textual representation of this IncompatibleColumnError
func (e IncompatibleColumnError) Error() string {
	return fmt.Sprintf("Column %s is not compatible with table: %s", e.Name, e.Reason)
}

// InvalidThresholdError occurs when a missing-value threshold lies outside [0, 1]
type InvalidThresholdError struct{ Threshold float64 }

// Error returns a textual representation of this InvalidThresholdError
func (e InvalidThresholdError) Error() string {
	return fmt.Sprintf("Threshold %g must lie within [0, 1]", e.Threshold)
}

// UnsupportedFormatError occurs when a file name does not map to a supported output format
type UnsupportedFormatError struct{ FileName string }

// Error returns a textual representation of this UnsupportedFormatError
func (e UnsupportedFormatError) Error() string {
	return fmt.Sprintf("Unsupported output format for file %s", e.FileName)
}
