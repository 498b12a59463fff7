package table

import (
	"fmt"

	"github.com/go-sif/tabular"
	"github.com/go-sif/tabular/schema"
)

// FromColumns builds a Table from named columns of Go values. Column types are inferred
// from the values: numeric kinds are widened as necessary, and all-nil columns become strings.
func FromColumns(names []string, values [][]interface{}) (tabular.Table, error) {
	if len(names) != len(values) {
		return nil, fmt.Errorf("%d column names supplied for %d columns", len(names), len(values))
	}
	numRows := 0
	if len(values) > 0 {
		numRows = len(values[0])
	}
	s := schema.CreateSchema()
	for i, name := range names {
		if len(values[i]) != numRows {
			return nil, fmt.Errorf("Column %s has %d values, expected %d", name, len(values[i]), numRows)
		}
		colType, err := InferType(values[i])
		if err != nil {
			return nil, fmt.Errorf("Column %s: %w", name, err)
		}
		if _, err := s.CreateColumn(name, colType); err != nil {
			return nil, err
		}
	}
	t := CreateTable(s)
	row := make([]interface{}, len(names))
	for r := 0; r < numRows; r++ {
		for c := range names {
			row[c] = values[c][r]
		}
		if err := t.AppendRow(row); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// FromRecords builds a Table from a header and row-oriented records. See FromColumns.
func FromRecords(header []string, records [][]interface{}) (tabular.Table, error) {
	columns := make([][]interface{}, len(header))
	for c := range header {
		columns[c] = make([]interface{}, len(records))
	}
	for r, record := range records {
		if len(record) != len(header) {
			return nil, fmt.Errorf("Record %d has %d values, expected %d", r, len(record), len(header))
		}
		for c, v := range record {
			columns[c][r] = v
		}
	}
	return FromColumns(header, columns)
}

// InferType determines the narrowest ColumnType able to hold every value in a column of Go values
func InferType(values []interface{}) (tabular.ColumnType, error) {
	var colType tabular.ColumnType
	for _, v := range values {
		if v == nil {
			continue
		}
		vType, err := typeOf(normalize(v))
		if err != nil {
			return nil, err
		}
		switch {
		case colType == nil:
			colType = vType
		case tabular.SameType(colType, vType):
		case tabular.IsNumeric(colType) && tabular.IsNumeric(vType):
			colType = tabular.WidenNumeric(colType, vType)
		default:
			return nil, fmt.Errorf("mixed value types %T and %T", colType, vType)
		}
	}
	if colType == nil {
		return &tabular.VarStringColumnType{}, nil
	}
	return colType, nil
}

func typeOf(v interface{}) (tabular.ColumnType, error) {
	switch v.(type) {
	case bool:
		return &tabular.BoolColumnType{}, nil
	case string:
		return &tabular.VarStringColumnType{}, nil
	case uint8:
		return &tabular.Uint8ColumnType{}, nil
	case uint16:
		return &tabular.Uint16ColumnType{}, nil
	case uint32:
		return &tabular.Uint32ColumnType{}, nil
	case uint64:
		return &tabular.Uint64ColumnType{}, nil
	case int8:
		return &tabular.Int8ColumnType{}, nil
	case int16:
		return &tabular.Int16ColumnType{}, nil
	case int32:
		return &tabular.Int32ColumnType{}, nil
	case int64:
		return &tabular.Int64ColumnType{}, nil
	case float32:
		return &tabular.Float32ColumnType{}, nil
	case float64:
		return &tabular.Float64ColumnType{}, nil
	default:
		return nil, fmt.Errorf("unsupported value type %T", v)
	}
}

// normalize maps platform-sized integers onto their 64-bit equivalents
func normalize(v interface{}) interface{} {
	switch n := v.(type) {
	case int:
		return int64(n)
	case uint:
		return uint64(n)
	}
	return v
}
