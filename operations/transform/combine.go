package transform

import (
	"github.com/go-sif/tabular"
	"github.com/go-sif/tabular/errors"
	"github.com/go-sif/tabular/logging"
	"go.uber.org/zap"
)

// JoinType describes which rows are retained when merging two Tables on a key
type JoinType string

const (
	// InnerJoin retains only rows whose key appears in both Tables
	InnerJoin JoinType = "inner"
	// OuterJoin retains every row of both Tables, filling unmatched columns with missing values
	OuterJoin JoinType = "outer"
	// LeftJoin retains every row of the left Table
	LeftJoin JoinType = "left"
	// RightJoin retains every row of the right Table
	RightJoin JoinType = "right"
)

// ParseJoinType converts a name such as "inner" to a JoinType
func ParseJoinType(name string) (JoinType, error) {
	switch jt := JoinType(name); jt {
	case InnerJoin, OuterJoin, LeftJoin, RightJoin:
		return jt, nil
	default:
		return "", errors.UnknownJoinTypeError{JoinType: name}
	}
}

// CombineConf configures Combine
type CombineConf struct {
	JoinType JoinType    // Defaults to InnerJoin
	MaxRows  int         // The maximum number of rows any merge may produce. Defaults to 0 (no limit).
	Logger   *zap.Logger // Receives merge reports. Defaults to the global logger.
}

// Combine joins two or more Tables on a shared key column, folding from left to right.
// Every input is first downcast with Optimize; the inputs themselves are not modified.
//
// When merging the table at index i (1-based, counting the first table as 0), non-key
// columns present on both sides are renamed with the suffixes _left_<i> and _right_<i>.
//
// Fewer than two tables, or an unknown join type, produce an error. A merge failure
// (errors.MergeError or errors.MemoryLimitError) stops the fold, and the returned Result
// has Kind tabular.ResultPartial and holds the Table combined so far.
func Combine(tables []tabular.Table, joinKey string, conf *CombineConf) (*tabular.Result, error) {
	if len(tables) < 2 {
		return nil, errors.InsufficientTablesError{Required: 2, Supplied: len(tables)}
	}
	if conf == nil {
		conf = &CombineConf{}
	}
	how := conf.JoinType
	if how == "" {
		how = InnerJoin
	}
	if _, err := ParseJoinType(string(how)); err != nil {
		return nil, err
	}
	logger := logging.OrDefault(conf.Logger).With(zap.String("join_key", joinKey), zap.String("join_type", string(how)))

	optimized := make([]tabular.Table, len(tables))
	for i, t := range tables {
		o, err := Optimize(t)
		if err != nil {
			return nil, err
		}
		optimized[i] = o
	}

	combined := optimized[0]
	steps := 0
	for i := 1; i < len(optimized); i++ {
		next, err := merge(combined, optimized[i], joinKey, how, i, conf.MaxRows)
		if err != nil {
			switch err.(type) {
			case errors.MemoryLimitError:
				logger.Error("MemoryError: Unable to allocate memory. Try reducing the chunk size.", zap.Int("step", i), zap.Error(err))
			default:
				logger.Error("MergeError", zap.Int("step", i), zap.Error(err))
			}
			return &tabular.Result{Kind: tabular.ResultPartial, Table: combined, Err: err, Steps: steps}, nil
		}
		combined = next
		steps++
		logger.Debug("Merged table", zap.Int("step", i), zap.Int("rows", combined.NumRows()))
	}
	logger.Info("Tables combined.",
		zap.String("table_id", combined.ID()),
		zap.Int("tables", len(tables)),
		zap.Int("rows", combined.NumRows()),
		zap.Int("columns", combined.NumColumns()),
	)
	return &tabular.Result{Kind: tabular.ResultComplete, Table: combined, Steps: steps}, nil
}
