package transform

import (
	"bytes"
	"strconv"
	"strings"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/go-sif/tabular"
)

// appendKey appends a canonical encoding of v to buf. Numeric values are encoded
// by magnitude, so that uint8(3), int64(3) and float64(3) produce the same key.
func appendKey(buf []byte, v interface{}) []byte {
	switch n := v.(type) {
	case nil:
		return append(buf, 'n')
	case string:
		buf = append(buf, 's')
		buf = strconv.AppendInt(buf, int64(len(n)), 10)
		buf = append(buf, ':')
		return append(buf, n...)
	case bool:
		if n {
			return append(buf, 'b', '1')
		}
		return append(buf, 'b', '0')
	}
	if i, ok := tabular.AsSigned(v); ok {
		return strconv.AppendInt(append(buf, 'i'), i, 10)
	}
	if u, ok := tabular.AsUnsigned(v); ok {
		return strconv.AppendUint(append(buf, 'u'), u, 10)
	}
	f, _ := tabular.AsFloat(v)
	return strconv.AppendFloat(append(buf, 'f'), f, 'g', -1, 64)
}

// keyIndex is a hash index from join key values to row positions
type keyIndex struct {
	keys    [][]byte // canonical key per row, nil where the key is missing
	buckets map[uint64][]int
}

// buildKeyIndex indexes the values of a key column. Missing values are not indexed.
func buildKeyIndex(values []interface{}) *keyIndex {
	idx := &keyIndex{
		keys:    make([][]byte, len(values)),
		buckets: make(map[uint64][]int),
	}
	for row, v := range values {
		if v == nil {
			continue
		}
		key := appendKey(nil, v)
		idx.keys[row] = key
		h := xxhash.Sum64(key)
		idx.buckets[h] = append(idx.buckets[h], row)
	}
	return idx
}

// lookup returns the rows whose key equals key, in row order
func (idx *keyIndex) lookup(key []byte) []int {
	candidates := idx.buckets[xxhash.Sum64(key)]
	matches := make([]int, 0, len(candidates))
	for _, row := range candidates {
		if bytes.Equal(idx.keys[row], key) {
			matches = append(matches, row)
		}
	}
	return matches
}

// compareKeys orders two join key values: numbers by magnitude, strings by bytes and
// false before true. nil sorts after every present value.
func compareKeys(a interface{}, b interface{}) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	switch x := a.(type) {
	case string:
		if y, ok := b.(string); ok {
			return strings.Compare(x, y)
		}
	case bool:
		if y, ok := b.(bool); ok {
			switch {
			case x == y:
				return 0
			case y:
				return -1
			default:
				return 1
			}
		}
	}
	if x, ok := tabular.AsSigned(a); ok {
		if y, ok := tabular.AsSigned(b); ok {
			return order(x < y, x > y)
		}
	}
	if x, ok := tabular.AsUnsigned(a); ok {
		if y, ok := tabular.AsUnsigned(b); ok {
			return order(x < y, x > y)
		}
	}
	x, _ := tabular.AsFloat(a)
	y, _ := tabular.AsFloat(b)
	return order(x < y, x > y)
}

func order(less bool, greater bool) int {
	switch {
	case less:
		return -1
	case greater:
		return 1
	default:
		return 0
	}
}
