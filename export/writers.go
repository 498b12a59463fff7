package export

import (
	"bytes"
	"encoding/csv"
	"io"
	"math"

	"github.com/go-sif/tabular"
	json "github.com/goccy/go-json"
	"github.com/hashicorp/go-multierror"
	"github.com/xuri/excelize/v2"
)

// writeXLSX writes a single worksheet with a header row and one row per table row.
// Missing values are left as empty cells.
func writeXLSX(t tabular.Table, w io.Writer, conf *Conf) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = multierror.Append(err, cerr).ErrorOrNil()
		}
	}()
	if conf.SheetName != DefaultSheetName {
		if err := f.SetSheetName(DefaultSheetName, conf.SheetName); err != nil {
			return err
		}
	}
	sw, err := f.NewStreamWriter(conf.SheetName)
	if err != nil {
		return err
	}
	names := t.Schema().ColumnNames()
	header := make([]interface{}, len(names))
	for i, name := range names {
		header[i] = name
	}
	if err := sw.SetRow("A1", header); err != nil {
		return err
	}
	for r := 0; r < t.NumRows(); r++ {
		values, err := t.Row(r)
		if err != nil {
			return err
		}
		for i, v := range values {
			values[i] = finite(v)
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, values); err != nil {
			return err
		}
	}
	if err := sw.Flush(); err != nil {
		return err
	}
	return f.Write(w)
}

// writeCSV writes a header line and one record per row. Missing values are written as empty fields.
func writeCSV(t tabular.Table, w io.Writer, conf *Conf) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Schema().ColumnNames()); err != nil {
		return err
	}
	types := t.Schema().ColumnTypes()
	record := make([]string, len(types))
	for r := 0; r < t.NumRows(); r++ {
		values, err := t.Row(r)
		if err != nil {
			return err
		}
		for i, v := range values {
			record[i] = tabular.FormatValue(v, types[i])
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// writeJSONL writes one JSON object per row, with keys in column order. Missing values are written as null.
func writeJSONL(t tabular.Table, w io.Writer, conf *Conf) error {
	names := t.Schema().ColumnNames()
	keys := make([][]byte, len(names))
	for i, name := range names {
		key, err := json.Marshal(name)
		if err != nil {
			return err
		}
		keys[i] = key
	}
	var buf bytes.Buffer
	for r := 0; r < t.NumRows(); r++ {
		values, err := t.Row(r)
		if err != nil {
			return err
		}
		buf.Reset()
		buf.WriteByte('{')
		for i, v := range values {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.Write(keys[i])
			buf.WriteByte(':')
			val, err := json.Marshal(finite(v))
			if err != nil {
				return err
			}
			buf.Write(val)
		}
		buf.WriteString("}\n")
		if _, err := w.Write(buf.Bytes()); err != nil {
			return err
		}
	}
	return nil
}

// finite replaces NaN and infinite floats, which neither JSON nor spreadsheets can hold, with nil
func finite(v interface{}) interface{} {
	switch f := v.(type) {
	case float64:
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil
		}
	case float32:
		if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
			return nil
		}
	}
	return v
}
