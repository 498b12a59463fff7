package dsv

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-sif/tabular"
)

var boolValues = map[string]bool{
	"true": true, "True": true, "TRUE": true,
	"false": false, "False": false, "FALSE": false,
}

// scanColumn infers the narrowest of Int64, Uint64, Float64, Bool or VarString
// which can represent every non-missing cell, and parses the cells accordingly
func (p *Parser) scanColumn(cells []string) (tabular.ColumnType, []interface{}) {
	values := make([]interface{}, len(cells))
	if len(cells) == 0 || p.conf.KeepStrings {
		for i, cell := range cells {
			if !p.nilValues[cell] {
				values[i] = cell
			}
		}
		return &tabular.VarStringColumnType{}, values
	}

	present := 0
	for _, cell := range cells {
		if !p.nilValues[cell] {
			present++
		}
	}
	if present == 0 {
		return &tabular.Float64ColumnType{}, values
	}

	parsers := []struct {
		colType tabular.ColumnType
		parse   func(string) (interface{}, error)
	}{
		{&tabular.Int64ColumnType{}, parseInt},
		{&tabular.Uint64ColumnType{}, parseUint},
		{&tabular.Float64ColumnType{}, parseFloat},
		{&tabular.BoolColumnType{}, parseBool},
	}
	for _, candidate := range parsers {
		if p.scanAs(cells, values, candidate.parse) {
			return candidate.colType, values
		}
	}
	for i, cell := range cells {
		if p.nilValues[cell] {
			values[i] = nil
		} else {
			values[i] = cell
		}
	}
	return &tabular.VarStringColumnType{}, values
}

// scanAs parses every non-missing cell into values, returning false at the first failure
func (p *Parser) scanAs(cells []string, values []interface{}, parse func(string) (interface{}, error)) bool {
	for i, cell := range cells {
		if p.nilValues[cell] {
			values[i] = nil
			continue
		}
		v, err := parse(cell)
		if err != nil {
			return false
		}
		values[i] = v
	}
	return true
}

func parseInt(s string) (interface{}, error) {
	ival, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return nil, err
	}
	return ival, nil
}

func parseUint(s string) (interface{}, error) {
	ival, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return nil, err
	}
	return ival, nil
}

func parseFloat(s string) (interface{}, error) {
	fval, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil, err
	}
	return fval, nil
}

func parseBool(s string) (interface{}, error) {
	b, ok := boolValues[strings.TrimSpace(s)]
	if !ok {
		return nil, fmt.Errorf("%q is not a boolean", s)
	}
	return b, nil
}

// dedupeNames suffixes repeated header names with .1, .2, etc.
func dedupeNames(header []string) []string {
	names := make([]string, len(header))
	seen := make(map[string]bool, len(header))
	for i, name := range header {
		candidate := name
		for n := 1; seen[candidate]; n++ {
			candidate = fmt.Sprintf("%s.%d", name, n)
		}
		seen[candidate] = true
		names[i] = candidate
	}
	return names
}
