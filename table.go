package tabular

// A Table is an ordered collection of named, typed columns of equal length.
// nil is the missing-value marker for every ColumnType.
type Table interface {
	ID() string                                                               // ID returns the unique ID of this Table
	Schema() Schema                                                           // Schema returns the Schema of this Table. Callers must not modify it.
	NumRows() int                                                             // NumRows returns the number of rows in this Table
	NumColumns() int                                                          // NumColumns returns the number of columns in this Table
	Get(colName string, row int) (interface{}, error)                         // Get returns a single value, or nil if it is missing
	IsNil(colName string, row int) bool                                       // IsNil returns true iff the given value is missing. Returns false if the value does not exist.
	Column(colName string) ([]interface{}, error)                             // Column returns a copy of the values of a column
	Row(row int) ([]interface{}, error)                                       // Row returns a copy of the values of a row, in column order
	SetColumn(colName string, colType ColumnType, values []interface{}) error // SetColumn replaces the type and values of an existing column in-place
	Clone() Table                                                             // Clone returns a deep copy of this Table, with a fresh ID
	ToString() string                                                         // ToString returns a string representation of this Table
	To(ops ...TableOperation) (Table, error)                                  // To applies a chain of TableOperations, returning the final Table
}

// A BuildableTable can be built row by row. Used in the implementation of DataSourceParsers and operations.
type BuildableTable interface {
	Table
	AppendRow(values []interface{}) error // AppendRow converts values to the types of the Schema, in column order, and appends them as a new row
}
