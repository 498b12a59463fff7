// Package table provides the in-memory, columnar implementation of tabular.Table
package table

import (
	"fmt"
	"strings"

	"github.com/go-sif/tabular"
	"github.com/go-sif/tabular/errors"
	"github.com/go-sif/tabular/logging"
	uuid "github.com/gofrs/uuid"
	"go.uber.org/zap"
)

// table stores one slice of values per column. nil values are missing.
type table struct {
	id      string
	schema  tabular.Schema
	columns map[string][]interface{}
	numRows int
}

// CreateTable creates a new, empty Table with the given Schema. The Table takes ownership of the Schema.
func CreateTable(schema tabular.Schema) tabular.BuildableTable {
	columns := make(map[string][]interface{}, schema.NumColumns())
	for _, name := range schema.ColumnNames() {
		columns[name] = make([]interface{}, 0)
	}
	return &table{
		id:      newID(),
		schema:  schema,
		columns: columns,
	}
}

func newID() string {
	id, err := uuid.NewV4()
	if err != nil {
		logging.Logger().Fatal("failed to generate UUID for Table", zap.Error(err))
	}
	return id.String()
}

// ID returns the unique ID of this Table
func (t *table) ID() string {
	return t.id
}

// Schema returns the Schema of this Table
func (t *table) Schema() tabular.Schema {
	return t.schema
}

// NumRows returns the number of rows in this Table
func (t *table) NumRows() int {
	return t.numRows
}

// NumColumns returns the number of columns in this Table
func (t *table) NumColumns() int {
	return t.schema.NumColumns()
}

// Get returns a single value, or nil if it is missing
func (t *table) Get(colName string, row int) (interface{}, error) {
	values, ok := t.columns[colName]
	if !ok {
		return nil, errors.MissingColumnError{Name: colName}
	}
	if row < 0 || row >= t.numRows {
		return nil, errors.RowOutOfRangeError{Row: row, NumRows: t.numRows}
	}
	return values[row], nil
}

// IsNil returns true iff the given value is missing
func (t *table) IsNil(colName string, row int) bool {
	values, ok := t.columns[colName]
	if !ok || row < 0 || row >= t.numRows {
		return false
	}
	return values[row] == nil
}

// Column returns a copy of the values of a column
func (t *table) Column(colName string) ([]interface{}, error) {
	values, ok := t.columns[colName]
	if !ok {
		return nil, errors.MissingColumnError{Name: colName}
	}
	res := make([]interface{}, len(values))
	copy(res, values)
	return res, nil
}

// Row returns a copy of the values of a row, in column order
func (t *table) Row(row int) ([]interface{}, error) {
	if row < 0 || row >= t.numRows {
		return nil, errors.RowOutOfRangeError{Row: row, NumRows: t.numRows}
	}
	names := t.schema.ColumnNames()
	res := make([]interface{}, len(names))
	for i, name := range names {
		res[i] = t.columns[name][row]
	}
	return res, nil
}

// AppendRow converts values to the types of the Schema, in column order, and appends them as a new row
func (t *table) AppendRow(values []interface{}) error {
	names := t.schema.ColumnNames()
	if len(values) != len(names) {
		return fmt.Errorf("Row has %d values, but table has %d columns", len(values), len(names))
	}
	types := t.schema.ColumnTypes()
	converted := make([]interface{}, len(values))
	for i, v := range values {
		cv, err := tabular.ConvertValue(normalize(v), types[i])
		if err != nil {
			return errors.IncompatibleColumnError{Name: names[i], Reason: err.Error()}
		}
		converted[i] = cv
	}
	for i, name := range names {
		t.columns[name] = append(t.columns[name], converted[i])
	}
	t.numRows++
	return nil
}

// SetColumn replaces the type and values of an existing column in-place.
// The column is left unchanged if any value cannot be converted to colType.
func (t *table) SetColumn(colName string, colType tabular.ColumnType, values []interface{}) error {
	if !t.schema.HasColumn(colName) {
		return errors.MissingColumnError{Name: colName}
	}
	if len(values) != t.numRows {
		return errors.IncompatibleColumnError{
			Name:   colName,
			Reason: fmt.Sprintf("expected %d values, got %d", t.numRows, len(values)),
		}
	}
	converted := make([]interface{}, len(values))
	for i, v := range values {
		cv, err := tabular.ConvertValue(normalize(v), colType)
		if err != nil {
			return errors.IncompatibleColumnError{Name: colName, Reason: err.Error()}
		}
		converted[i] = cv
	}
	if _, err := t.schema.RetypeColumn(colName, colType); err != nil {
		return err
	}
	t.columns[colName] = converted
	return nil
}

// Clone returns a deep copy of this Table, with a fresh ID
func (t *table) Clone() tabular.Table {
	columns := make(map[string][]interface{}, len(t.columns))
	for name, values := range t.columns {
		cp := make([]interface{}, len(values))
		copy(cp, values)
		columns[name] = cp
	}
	return &table{
		id:      newID(),
		schema:  t.schema.Clone(),
		columns: columns,
		numRows: t.numRows,
	}
}

// ToString returns a tab-separated representation of this Table, with a header line
func (t *table) ToString() string {
	var res strings.Builder
	names := t.schema.ColumnNames()
	types := t.schema.ColumnTypes()
	fmt.Fprintln(&res, strings.Join(names, "\t"))
	cells := make([]string, len(names))
	for r := 0; r < t.numRows; r++ {
		for i, name := range names {
			v := t.columns[name][r]
			if v == nil {
				cells[i] = "null"
			} else {
				cells[i] = types[i].ToString(v)
			}
		}
		fmt.Fprintln(&res, strings.Join(cells, "\t"))
	}
	return res.String()
}

// To applies a chain of TableOperations, returning the final Table
func (t *table) To(ops ...tabular.TableOperation) (tabular.Table, error) {
	var next tabular.Table = t
	for _, op := range ops {
		var err error
		next, err = op(next)
		if err != nil {
			return nil, err
		}
	}
	return next, nil
}
