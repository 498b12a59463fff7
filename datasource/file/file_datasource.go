package file

import (
	stderrors "errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/go-sif/tabular"
	"github.com/go-sif/tabular/datasource/parser/dsv"
	"github.com/go-sif/tabular/datasource/parser/jsonl"
	"github.com/go-sif/tabular/errors"
	"github.com/go-sif/tabular/logging"
	"github.com/hashicorp/go-multierror"
	"github.com/pierrec/lz4"
	"go.uber.org/zap"
)

// LoadConf configures the loading of a file
type LoadConf struct {
	Logger *zap.Logger // Receives load reports. Defaults to the global logger.
}

// LoadDSV loads a comma-separated file with a header line, inferring column types
func LoadDSV(path string) *tabular.Result {
	return Load(path, dsv.CreateParser(&dsv.ParserConf{}), nil)
}

// LoadJSONL loads a JSON lines file, using the top-level keys of each object as columns
func LoadJSONL(path string) *tabular.Result {
	return Load(path, jsonl.CreateParser(&jsonl.ParserConf{}), nil)
}

// Load parses the file at path into a Table. It never returns an error: on failure, the
// returned Result has Kind tabular.ResultNone and Err set to one of errors.FileNotFoundError,
// errors.EmptyFileError, errors.ParseError or errors.LoadError, and the failure is logged.
func Load(path string, parser tabular.DataSourceParser, conf *LoadConf) *tabular.Result {
	if conf == nil {
		conf = &LoadConf{}
	}
	logger := logging.OrDefault(conf.Logger).With(zap.String("path", path), zap.String("format", parser.Name()))
	t, err := load(path, parser)
	if err != nil {
		err = classify(path, err)
		report(logger, err)
		return &tabular.Result{Kind: tabular.ResultNone, Err: err}
	}
	logger.Info("Data loaded successfully.",
		zap.String("table_id", t.ID()),
		zap.Int("rows", t.NumRows()),
		zap.Int("columns", t.NumColumns()),
	)
	return &tabular.Result{Kind: tabular.ResultComplete, Table: t, Steps: 1}
}

func load(path string, parser tabular.DataSourceParser) (t tabular.Table, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = multierror.Append(err, cerr).ErrorOrNil()
			t = nil
		}
	}()
	var r io.Reader = f
	if strings.HasSuffix(path, ".lz4") {
		r = lz4.NewReader(f)
	}
	return parser.Parse(r)
}

// classify maps a failure onto the load error taxonomy, attaching the path
func classify(path string, err error) error {
	var parseErr errors.ParseError
	var emptyErr errors.EmptyFileError
	switch {
	case stderrors.As(err, &parseErr):
		parseErr.Path = path
		return parseErr
	case stderrors.As(err, &emptyErr):
		return errors.EmptyFileError{Path: path}
	case stderrors.Is(err, fs.ErrNotExist):
		return errors.FileNotFoundError{Path: path}
	default:
		return errors.LoadError{Path: path, Cause: err}
	}
}

func report(logger *zap.Logger, err error) {
	switch err.(type) {
	case errors.FileNotFoundError:
		logger.Error("File not found. Please check the file path.", zap.Error(err))
	case errors.EmptyFileError:
		logger.Error("No data found in the file.", zap.Error(err))
	case errors.ParseError:
		logger.Error("Error parsing the file.", zap.Error(err))
	default:
		logger.Error("An error occurred: "+err.Error(), zap.Error(err))
	}
}
