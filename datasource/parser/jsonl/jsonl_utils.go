package jsonl

import (
	"strconv"

	"github.com/go-sif/tabular"
	"github.com/go-sif/tabular/table"
	"github.com/tidwall/gjson"
)

// scanColumn converts the values of a column to Go values and infers their type.
// Columns mixing incompatible JSON types fall back to their raw JSON text.
func scanColumn(name string, records []map[string]gjson.Result) (tabular.ColumnType, []interface{}) {
	values := make([]interface{}, len(records))
	for i, record := range records {
		values[i] = parseValue(record[name])
	}
	colType, err := table.InferType(values)
	if err == nil {
		return colType, values
	}
	for i, record := range records {
		if values[i] != nil {
			if record[name].Type == gjson.String {
				values[i] = record[name].Str
			} else {
				values[i] = record[name].Raw
			}
		}
	}
	return &tabular.VarStringColumnType{}, values
}

// parseValue converts a single JSON value. Nested objects and arrays are kept as raw JSON text.
func parseValue(val gjson.Result) interface{} {
	switch val.Type {
	case gjson.Null:
		return nil
	case gjson.True:
		return true
	case gjson.False:
		return false
	case gjson.Number:
		if ival, err := strconv.ParseInt(val.Raw, 10, 64); err == nil {
			return ival
		}
		return val.Num
	case gjson.String:
		return val.Str
	case gjson.JSON:
		return val.Raw
	default:
		return nil
	}
}
