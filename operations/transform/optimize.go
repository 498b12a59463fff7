package transform

import (
	"fmt"

	"github.com/go-sif/tabular"
	"github.com/go-sif/tabular/logging"
	"go.uber.org/zap"
)

// Optimize returns a copy of t in which every numeric column holding only non-negative
// whole numbers is stored as the narrowest sufficient unsigned integer type. Columns
// containing negative or fractional values are left as they are. t is not modified.
func Optimize(t tabular.Table) (tabular.Table, error) {
	res := t.Clone()
	if err := OptimizeInPlace(res); err != nil {
		return nil, err
	}
	return res, nil
}

// OptimizeInPlace performs the same downcast as Optimize, modifying t directly
func OptimizeInPlace(t tabular.Table) error {
	logger := logging.Logger().With(zap.String("table_id", t.ID()))
	names := t.Schema().ColumnNames()
	types := t.Schema().ColumnTypes()
	for i, name := range names {
		if !tabular.IsNumeric(types[i]) {
			continue
		}
		values, err := t.Column(name)
		if err != nil {
			return err
		}
		newType, ok := downcastType(values)
		if !ok || tabular.SameType(newType, types[i]) {
			continue
		}
		if err := t.SetColumn(name, newType, values); err != nil {
			return err
		}
		logger.Debug("Downcast column",
			zap.String("column", name),
			zap.String("from", fmt.Sprintf("%T", types[i])),
			zap.String("to", fmt.Sprintf("%T", newType)),
		)
	}
	return nil
}

// Optimizer adapts Optimize to a TableOperation
func Optimizer() tabular.TableOperation {
	return Optimize
}

// downcastType returns the narrowest unsigned type able to hold every value, or false
// if any value is not a non-negative whole number or every value is missing
func downcastType(values []interface{}) (tabular.ColumnType, bool) {
	var max uint64
	present := false
	for _, v := range values {
		if v == nil {
			continue
		}
		u, ok := tabular.AsUnsigned(v)
		if !ok {
			return nil, false
		}
		present = true
		if u > max {
			max = u
		}
	}
	return tabular.SmallestUnsignedType(max), present
}
