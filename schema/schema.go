package schema

import (
	"fmt"
	"sort"

	"github.com/go-sif/tabular"
)

// column describes the position and type of a field within a Schema
type column struct {
	idx     int
	colType tabular.ColumnType
}

// Clone returns a copy of this Column
func (c *column) Clone() tabular.Column {
	return &column{c.idx, c.colType}
}

// Index returns the index of this Column within a Schema
func (c *column) Index() int {
	return c.idx
}

// SetIndex modifies the index of this Column within a Schema
func (c *column) SetIndex(newIndex int) {
	c.idx = newIndex
}

// Type returns the ColumnType of this Column
func (c *column) Type() tabular.ColumnType {
	return c.colType
}

// Schema is an ordered mapping from column names to Columns
type schema struct {
	schema map[string]tabular.Column
}

// CreateSchema is a factory for Schemas
func CreateSchema() tabular.Schema {
	return &schema{
		schema: make(map[string]tabular.Column),
	}
}

// Equals returns nil iff this and another Schema have the same columns, in the same order, with the same types
func (s *schema) Equals(otherSchema tabular.Schema) error {
	if s.NumColumns() != otherSchema.NumColumns() {
		return fmt.Errorf("Schemas have unequal numbers of columns")
	}
	return s.ForEachColumn(func(name string, col tabular.Column) error {
		otherCol, err := otherSchema.GetColumn(name)
		if err != nil {
			return err
		}
		if col.Index() != otherCol.Index() {
			return fmt.Errorf("Column %s indices do not match", name)
		}
		if !tabular.SameType(col.Type(), otherCol.Type()) {
			return fmt.Errorf("Column %s types do not match", name)
		}
		return nil
	})
}

// Clone returns a copy of this Schema
func (s *schema) Clone() tabular.Schema {
	newSchema := make(map[string]tabular.Column, len(s.schema))
	for k, v := range s.schema {
		newSchema[k] = v.Clone()
	}
	return &schema{schema: newSchema}
}

// NumColumns returns the number of columns in this Schema
func (s *schema) NumColumns() int {
	return len(s.schema)
}

// GetColumn returns the Column with the given name
func (s *schema) GetColumn(colName string) (col tabular.Column, err error) {
	col, ok := s.schema[colName]
	if !ok {
		err = fmt.Errorf("Schema does not contain column with name %s", colName)
	}
	return
}

// HasColumn returns true iff this schema contains a column with the given name
func (s *schema) HasColumn(colName string) bool {
	_, ok := s.schema[colName]
	return ok
}

// CreateColumn defines a new column at the end of the Schema
func (s *schema) CreateColumn(colName string, columnType tabular.ColumnType) (newSchema tabular.Schema, err error) {
	if _, exists := s.schema[colName]; exists {
		return nil, fmt.Errorf("Schema already contains column with name %s", colName)
	}
	if columnType == nil {
		return nil, fmt.Errorf("Column %s must have a type", colName)
	}
	s.schema[colName] = &column{len(s.schema), columnType}
	return s, nil
}

// RenameColumn renames a column within the Schema, retaining its position
func (s *schema) RenameColumn(oldName string, newName string) (newSchema tabular.Schema, err error) {
	col, err := s.GetColumn(oldName)
	if err != nil {
		return nil, err
	}
	if oldName == newName {
		return s, nil
	}
	if s.HasColumn(newName) {
		return nil, fmt.Errorf("Schema already contains column with name %s", newName)
	}
	s.schema[newName] = col
	delete(s.schema, oldName)
	return s, nil
}

// RetypeColumn changes the ColumnType of an existing column, retaining its position
func (s *schema) RetypeColumn(colName string, columnType tabular.ColumnType) (newSchema tabular.Schema, err error) {
	col, err := s.GetColumn(colName)
	if err != nil {
		return nil, err
	}
	s.schema[colName] = &column{col.Index(), columnType}
	return s, nil
}

// RemoveColumn removes a column from the Schema, shifting later columns down by one
func (s *schema) RemoveColumn(colName string) (tabular.Schema, bool) {
	removed, ok := s.schema[colName]
	if !ok {
		return s, false
	}
	delete(s.schema, colName)
	for _, col := range s.schema {
		if col.Index() > removed.Index() {
			col.SetIndex(col.Index() - 1)
		}
	}
	return s, true
}

// ColumnNames returns the names in the schema, in index order
func (s *schema) ColumnNames() []string {
	names := make([]string, len(s.schema))
	for k, v := range s.schema {
		names[v.Index()] = k
	}
	return names
}

// ColumnTypes returns the types in the schema, in index order
func (s *schema) ColumnTypes() []tabular.ColumnType {
	types := make([]tabular.ColumnType, len(s.schema))
	for _, v := range s.schema {
		types[v.Index()] = v.Type()
	}
	return types
}

// ForEachColumn iterates over the columns in this Schema, in index order
func (s *schema) ForEachColumn(fn func(name string, col tabular.Column) error) error {
	names := make([]string, 0, len(s.schema))
	for k := range s.schema {
		names = append(names, k)
	}
	sort.Slice(names, func(i, j int) bool {
		return s.schema[names[i]].Index() < s.schema[names[j]].Index()
	})
	for _, name := range names {
		err := fn(name, s.schema[name])
		if err != nil {
			return err
		}
	}
	return nil
}
