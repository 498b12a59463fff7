package dsv

import (
	"encoding/csv"
	stderrors "errors"
	"fmt"
	"io"

	"github.com/go-sif/tabular"
	"github.com/go-sif/tabular/errors"
	"github.com/go-sif/tabular/schema"
	"github.com/go-sif/tabular/table"
)

// DefaultNilValues are the strings, besides the empty string, which represent missing values by default
var DefaultNilValues = []string{"NA", "N/A", "n/a", "NaN", "nan", "-NaN", "null", "NULL", "None", "#N/A", "<NA>"}

// ParserConf configures a DSV Parser
type ParserConf struct {
	Delimiter   rune     // The delimiter separating columns in the file. Defaults to ,
	Comment     rune     // Lines beginning with the comment character are ignored. Cannot be equal to the Delimiter. Defaults to no comment character.
	NilValues   []string // Strings which represent missing values in the dataset, in addition to the empty string. Defaults to DefaultNilValues.
	KeepStrings bool     // Disables type inference, producing only VarString columns
}

// Parser produces Tables from DSV data
type Parser struct {
	conf      *ParserConf
	nilValues map[string]bool
}

// CreateParser returns a new DSV Parser
func CreateParser(conf *ParserConf) *Parser {
	if conf == nil {
		conf = &ParserConf{}
	}
	if conf.Delimiter == 0 {
		conf.Delimiter = ','
	}
	if conf.NilValues == nil {
		conf.NilValues = DefaultNilValues
	}
	nilValues := make(map[string]bool, len(conf.NilValues)+1)
	nilValues[""] = true
	for _, v := range conf.NilValues {
		nilValues[v] = true
	}
	return &Parser{conf: conf, nilValues: nilValues}
}

// Name returns the name of the format parsed by this Parser
func (p *Parser) Name() string {
	return "dsv"
}

// Parse reads DSV data, with a header line, into a new Table
func (p *Parser) Parse(r io.Reader) (tabular.Table, error) {
	reader := csv.NewReader(r)
	reader.Comma = p.conf.Delimiter
	reader.Comment = p.conf.Comment
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.EmptyFileError{}
	} else if err != nil {
		return nil, wrapReadError(err)
	}
	names := dedupeNames(header)

	// collect cells column-wise, padding short records with missing values
	cells := make([][]string, len(names))
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, wrapReadError(err)
		}
		if len(record) > len(names) {
			line, _ := reader.FieldPos(0)
			return nil, errors.ParseError{
				Line:  line,
				Cause: fmt.Errorf("expected %d fields, saw %d", len(names), len(record)),
			}
		}
		for i := range names {
			if i < len(record) {
				cells[i] = append(cells[i], record[i])
			} else {
				cells[i] = append(cells[i], "")
			}
		}
	}

	s := schema.CreateSchema()
	columns := make([][]interface{}, len(names))
	for i, name := range names {
		colType, values := p.scanColumn(cells[i])
		columns[i] = values
		if _, err := s.CreateColumn(name, colType); err != nil {
			return nil, errors.ParseError{Cause: err}
		}
	}
	t := table.CreateTable(s)
	numRows := 0
	if len(names) > 0 {
		numRows = len(cells[0])
	}
	row := make([]interface{}, len(names))
	for r := 0; r < numRows; r++ {
		for c := range names {
			row[c] = columns[c][r]
		}
		if err := t.AppendRow(row); err != nil {
			return nil, errors.ParseError{Line: r + 2, Cause: err}
		}
	}
	return t, nil
}

// wrapReadError distinguishes malformed content from failures of the underlying reader
func wrapReadError(err error) error {
	var csvErr *csv.ParseError
	if stderrors.As(err, &csvErr) {
		return errors.ParseError{Line: csvErr.Line, Cause: csvErr.Err}
	}
	return err
}
