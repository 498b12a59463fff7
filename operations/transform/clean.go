package transform

import (
	"math"
	"strings"

	"github.com/go-sif/tabular"
	"github.com/go-sif/tabular/errors"
	"github.com/go-sif/tabular/logging"
	"go.uber.org/zap"
)

// DefaultDropRowsThreshold is the fraction of missing values a row may contain before Clean drops it
const DefaultDropRowsThreshold = 0.5

// CleanConf configures Clean
type CleanConf struct {
	DropColumns       []string    // Columns to remove. Names which do not exist are ignored.
	DropRowsThreshold *float64    // The fraction of a row's values which may be missing. Defaults to DefaultDropRowsThreshold.
	TruncateThreshold bool        // Round the minimum number of present values down instead of up
	DropDuplicateRows bool        // Remove rows identical to an earlier row. Defaults to false.
	Logger            *zap.Logger // Receives cleaning reports. Defaults to the global logger.
}

// Threshold is a convenience for setting CleanConf.DropRowsThreshold
func Threshold(fraction float64) *float64 {
	return &fraction
}

// Clean produces a cleaned copy of t by, in order:
// trimming leading and trailing whitespace from every string value,
// removing conf.DropColumns,
// removing rows with fewer than ceil((1 - DropRowsThreshold) * columns) present values,
// and, if enabled, removing duplicate rows.
// Applying Clean twice with the same conf yields the same Table as applying it once.
func Clean(t tabular.Table, conf *CleanConf) (tabular.Table, error) {
	if conf == nil {
		conf = &CleanConf{}
	}
	threshold := DefaultDropRowsThreshold
	if conf.DropRowsThreshold != nil {
		threshold = *conf.DropRowsThreshold
	}
	if threshold < 0 || threshold > 1 || math.IsNaN(threshold) {
		return nil, errors.InvalidThresholdError{Threshold: threshold}
	}
	logger := logging.OrDefault(conf.Logger).With(zap.String("table_id", t.ID()))

	res, err := trimWhitespace(t)
	if err != nil {
		return nil, err
	}
	logger.Info("Whitespace trimmed from string columns.")

	if len(conf.DropColumns) > 0 {
		res, err = RemoveColumn(conf.DropColumns...)(res)
		if err != nil {
			return nil, err
		}
		logger.Info("Columns dropped.", zap.Strings("columns", conf.DropColumns))
	}

	before := res.NumRows()
	minPresent := minPresentValues(threshold, res.NumColumns(), conf.TruncateThreshold)
	res, err = Filter(func(values []interface{}) (bool, error) {
		present := 0
		for _, v := range values {
			if v != nil {
				present++
			}
		}
		return present >= minPresent, nil
	})(res)
	if err != nil {
		return nil, err
	}
	logger.Info("Rows dropped based on missing values threshold.",
		zap.Int("min_present", minPresent),
		zap.Int("dropped", before-res.NumRows()),
	)

	if conf.DropDuplicateRows {
		before = res.NumRows()
		res, err = DropDuplicateRows(res)
		if err != nil {
			return nil, err
		}
		logger.Info("Duplicates removed.", zap.Int("dropped", before-res.NumRows()))
	}
	return res, nil
}

// Cleaner adapts Clean to a TableOperation
func Cleaner(conf *CleanConf) tabular.TableOperation {
	return func(t tabular.Table) (tabular.Table, error) {
		return Clean(t, conf)
	}
}

// minPresentValues computes the number of present values a row needs to be retained
func minPresentValues(threshold float64, numColumns int, truncate bool) int {
	raw := (1 - threshold) * float64(numColumns)
	if truncate {
		return int(raw)
	}
	// tolerate representation error, e.g. (1 - 0.7) * 10 = 3.0000000000000004
	return int(math.Ceil(raw - 1e-9))
}

// trimWhitespace returns a copy of t with whitespace trimmed from every string value
func trimWhitespace(t tabular.Table) (tabular.Table, error) {
	res := t.Clone()
	names := res.Schema().ColumnNames()
	types := res.Schema().ColumnTypes()
	for i, name := range names {
		if _, ok := types[i].(*tabular.VarStringColumnType); !ok {
			continue
		}
		values, err := res.Column(name)
		if err != nil {
			return nil, err
		}
		for r, v := range values {
			if s, ok := v.(string); ok {
				values[r] = strings.TrimSpace(s)
			}
		}
		if err := res.SetColumn(name, types[i], values); err != nil {
			return nil, err
		}
	}
	return res, nil
}
