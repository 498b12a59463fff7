package transform

import (
	xxhash "github.com/cespare/xxhash/v2"
	"github.com/go-sif/tabular"
)

// DropDuplicateColumns removes every column which has the same type as, and is element-wise
// identical to (missing values included), an earlier column. Surviving columns keep their order.
//
// Every pair of columns is compared, so the cost grows with the square of the number of
// columns. Column fingerprints make most comparisons cheap, but very wide Tables remain slow.
func DropDuplicateColumns(t tabular.Table) (tabular.Table, error) {
	names := t.Schema().ColumnNames()
	types := t.Schema().ColumnTypes()
	cols := make([][]interface{}, len(names))
	fingerprints := make([]uint64, len(names))
	for i, name := range names {
		col, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		cols[i] = col
		fingerprints[i] = fingerprint(col)
	}

	duplicates := make([]string, 0)
	marked := make(map[string]bool)
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			if marked[names[j]] || fingerprints[i] != fingerprints[j] || !tabular.SameType(types[i], types[j]) {
				continue
			}
			if valuesEqual(cols[i], cols[j]) {
				marked[names[j]] = true
				duplicates = append(duplicates, names[j])
			}
		}
	}
	return RemoveColumn(duplicates...)(t)
}

// DuplicateColumnDropper adapts DropDuplicateColumns to a TableOperation
func DuplicateColumnDropper() tabular.TableOperation {
	return DropDuplicateColumns
}

// DropDuplicateRows removes every row which is identical to an earlier row, keeping the first occurrence
func DropDuplicateRows(t tabular.Table) (tabular.Table, error) {
	seen := make(map[uint64][][]interface{})
	return Filter(func(values []interface{}) (bool, error) {
		h := fingerprint(values)
		for _, other := range seen[h] {
			if valuesEqual(values, other) {
				return false, nil
			}
		}
		seen[h] = append(seen[h], values)
		return true, nil
	})(t)
}

// fingerprint hashes the canonical encoding of a sequence of values
func fingerprint(values []interface{}) uint64 {
	d := xxhash.New()
	buf := make([]byte, 0, 64)
	for _, v := range values {
		buf = appendKey(buf[:0], v)
		buf = append(buf, 0)
		d.Write(buf)
	}
	return d.Sum64()
}

func valuesEqual(a []interface{}, b []interface{}) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !tabular.ValuesEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}
