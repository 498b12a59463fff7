package jsonl

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/go-sif/tabular"
	"github.com/go-sif/tabular/errors"
	"github.com/go-sif/tabular/schema"
	"github.com/go-sif/tabular/table"
	"github.com/hashicorp/go-multierror"
	"github.com/tidwall/gjson"
)

// ParserConf configures a JSONL Parser, suitable for JSON lines data
type ParserConf struct {
	Columns       []string // gjson paths to extract as columns, in order. Defaults to the top-level keys of each object, in order of first appearance.
	Comment       rune     // Lines beginning with the comment character are ignored. Defaults to no comment character.
	MaxBufferSize int      // Maximum size in bytes of the buffer used to read lines from the file
}

// Parser produces Tables from JSONL data
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new JSONL Parser
func CreateParser(conf *ParserConf) *Parser {
	if conf == nil {
		conf = &ParserConf{}
	}
	if conf.MaxBufferSize == 0 {
		conf.MaxBufferSize = bufio.MaxScanTokenSize
	}
	return &Parser{conf: conf}
}

// Name returns the name of the format parsed by this Parser
func (p *Parser) Name() string {
	return "jsonl"
}

// Parse reads JSONL data, one object per line, into a new Table. Every malformed line is reported in the returned ParseError.
func (p *Parser) Parse(r io.Reader) (tabular.Table, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), p.conf.MaxBufferSize)

	var multierr *multierror.Error
	names := append([]string{}, p.conf.Columns...)
	known := make(map[string]bool, len(names))
	for _, name := range names {
		known[name] = true
	}
	records := make([]map[string]gjson.Result, 0)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 || (p.conf.Comment != 0 && bytes.HasPrefix(line, []byte(string(p.conf.Comment)))) {
			continue
		}
		if !gjson.ValidBytes(line) {
			multierr = multierror.Append(multierr, fmt.Errorf("line %d is not valid JSON", lineNum))
			continue
		}
		obj := gjson.ParseBytes(line)
		if !obj.IsObject() {
			multierr = multierror.Append(multierr, fmt.Errorf("line %d is not a JSON object", lineNum))
			continue
		}
		record := make(map[string]gjson.Result)
		if len(p.conf.Columns) > 0 {
			for _, path := range p.conf.Columns {
				record[path] = obj.Get(path)
			}
		} else {
			obj.ForEach(func(key, value gjson.Result) bool {
				if !known[key.Str] {
					known[key.Str] = true
					names = append(names, key.Str)
				}
				record[key.Str] = value
				return true
			})
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if multierr != nil {
		return nil, errors.ParseError{Cause: multierr.ErrorOrNil()}
	}
	if len(records) == 0 && len(names) == 0 {
		return nil, errors.EmptyFileError{}
	}

	s := schema.CreateSchema()
	columns := make([][]interface{}, len(names))
	for i, name := range names {
		colType, values := scanColumn(name, records)
		columns[i] = values
		if _, err := s.CreateColumn(name, colType); err != nil {
			return nil, errors.ParseError{Cause: err}
		}
	}
	t := table.CreateTable(s)
	row := make([]interface{}, len(names))
	for r := range records {
		for c := range names {
			row[c] = columns[c][r]
		}
		if err := t.AppendRow(row); err != nil {
			return nil, errors.ParseError{Cause: err}
		}
	}
	return t, nil
}
