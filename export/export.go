package export

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-sif/tabular"
	"github.com/go-sif/tabular/errors"
	"github.com/go-sif/tabular/logging"
	"github.com/go-sif/tabular/table"
	"github.com/hashicorp/go-multierror"
	"github.com/pierrec/lz4"
	"go.uber.org/zap"
)

// DefaultSheetName is the name of the single worksheet in an exported spreadsheet
const DefaultSheetName = "Sheet1"

// Conf configures Export
type Conf struct {
	SheetName string      // Worksheet name for .xlsx output. Defaults to DefaultSheetName.
	DirMode   os.FileMode // Permissions for created directories. Defaults to 0755.
	Logger    *zap.Logger // Receives export reports. Defaults to the global logger.
}

// writer writes a Table to w in a single format
type writer func(t tabular.Table, w io.Writer, conf *Conf) error

// Export writes t to folderName/fileName, creating folderName and any missing parents.
// An existing file is overwritten. Failures to write or close the file are returned together.
func Export(t tabular.Table, folderName string, fileName string, conf *Conf) error {
	c := Conf{}
	if conf != nil {
		c = *conf
	}
	if c.SheetName == "" {
		c.SheetName = DefaultSheetName
	}
	if c.DirMode == 0 {
		c.DirMode = 0755
	}
	logger := logging.OrDefault(c.Logger).With(zap.String("folder", folderName), zap.String("file", fileName))

	if err := export(t, folderName, fileName, &c); err != nil {
		logger.Error("Unable to export table.", zap.Error(err))
		return err
	}
	if isSpreadsheet(fileName) {
		logger.Info("Excel file saved at "+folderName, zap.String("table_id", t.ID()))
	} else {
		logger.Info("File saved at "+folderName, zap.String("table_id", t.ID()))
	}
	return nil
}

func export(t tabular.Table, folderName string, fileName string, conf *Conf) (err error) {
	write, compressed, err := writerFor(fileName)
	if err != nil {
		return err
	}
	if err = os.MkdirAll(folderName, conf.DirMode); err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(folderName, fileName))
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = multierror.Append(err, cerr).ErrorOrNil()
		}
	}()

	if !compressed {
		return write(t, f, conf)
	}
	zw := lz4.NewWriter(f)
	if err = write(t, zw, conf); err != nil {
		return multierror.Append(err, zw.Close()).ErrorOrNil()
	}
	return zw.Close()
}

// FromRecords builds a Table from a header and row-oriented records, ready for Export
func FromRecords(header []string, records [][]interface{}) (tabular.Table, error) {
	return table.FromRecords(header, records)
}

// writerFor selects a writer by file extension, reporting whether the output is lz4-compressed
func writerFor(fileName string) (writer, bool, error) {
	name := strings.ToLower(fileName)
	compressed := strings.HasSuffix(name, ".lz4")
	name = strings.TrimSuffix(name, ".lz4")
	switch filepath.Ext(name) {
	case ".xlsx":
		return writeXLSX, compressed, nil
	case ".csv":
		return writeCSV, compressed, nil
	case ".jsonl":
		return writeJSONL, compressed, nil
	default:
		return nil, false, errors.UnsupportedFormatError{FileName: fileName}
	}
}

func isSpreadsheet(fileName string) bool {
	return filepath.Ext(strings.TrimSuffix(strings.ToLower(fileName), ".lz4")) == ".xlsx"
}
