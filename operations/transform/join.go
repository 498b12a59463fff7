package transform

import (
	"fmt"
	"sort"

	"github.com/go-sif/tabular"
	"github.com/go-sif/tabular/errors"
	"github.com/go-sif/tabular/schema"
	"github.com/go-sif/tabular/table"
)

// rowPair identifies the left and right rows contributing to one output row. -1 marks a missing side.
type rowPair struct {
	left, right int
}

// merge joins right into left on key. step is the 1-based index of right among the tables
// being combined, and determines the suffixes applied to colliding column names.
func merge(left tabular.Table, right tabular.Table, key string, how JoinType, step int, maxRows int) (tabular.Table, error) {
	leftSchema := left.Schema()
	rightSchema := right.Schema()
	if !leftSchema.HasColumn(key) {
		return nil, errors.MergeError{Step: step, Reason: fmt.Sprintf("join key %s is missing from the combined table", key)}
	}
	if !rightSchema.HasColumn(key) {
		return nil, errors.MergeError{Step: step, Reason: fmt.Sprintf("join key %s is missing from the incoming table", key)}
	}
	leftKeyCol, _ := leftSchema.GetColumn(key)
	rightKeyCol, _ := rightSchema.GetColumn(key)
	keyType, err := joinKeyType(leftKeyCol.Type(), rightKeyCol.Type())
	if err != nil {
		return nil, errors.MergeError{Step: step, Reason: err.Error()}
	}

	outSchema, err := joinSchema(leftSchema, rightSchema, key, keyType, step)
	if err != nil {
		return nil, errors.MergeError{Step: step, Reason: err.Error()}
	}

	leftKeys, _ := left.Column(key)
	rightKeys, _ := right.Column(key)
	pairs, err := pairRows(leftKeys, rightKeys, how, step, maxRows)
	if err != nil {
		return nil, err
	}
	res, err := assemble(left, right, key, outSchema, pairs)
	if err != nil {
		return nil, errors.MergeError{Step: step, Reason: err.Error()}
	}
	return res, nil
}

// joinKeyType determines the type of the key column in a merged Table
func joinKeyType(leftType tabular.ColumnType, rightType tabular.ColumnType) (tabular.ColumnType, error) {
	if tabular.SameType(leftType, rightType) {
		return leftType, nil
	}
	if widened := tabular.WidenNumeric(leftType, rightType); widened != nil {
		return widened, nil
	}
	return nil, fmt.Errorf("join key types %T and %T are incompatible", leftType, rightType)
}

// joinSchema lays out all left columns followed by the non-key right columns, suffixing
// non-key names present on both sides
func joinSchema(leftSchema tabular.Schema, rightSchema tabular.Schema, key string, keyType tabular.ColumnType, step int) (tabular.Schema, error) {
	out := schema.CreateSchema()
	leftNames := leftSchema.ColumnNames()
	leftTypes := leftSchema.ColumnTypes()
	for i, name := range leftNames {
		colType := leftTypes[i]
		if name == key {
			colType = keyType
		} else if rightSchema.HasColumn(name) {
			name = fmt.Sprintf("%s_left_%d", name, step)
		}
		if _, err := out.CreateColumn(name, colType); err != nil {
			return nil, err
		}
	}
	rightNames := rightSchema.ColumnNames()
	rightTypes := rightSchema.ColumnTypes()
	for i, name := range rightNames {
		if name == key {
			continue
		}
		if leftSchema.HasColumn(name) {
			name = fmt.Sprintf("%s_right_%d", name, step)
		}
		if _, err := out.CreateColumn(name, rightTypes[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// pairRows matches rows on their keys according to the join type. Missing keys never match.
func pairRows(leftKeys []interface{}, rightKeys []interface{}, how JoinType, step int, maxRows int) ([]rowPair, error) {
	pairs := make([]rowPair, 0)
	add := func(l, r int) error {
		if maxRows > 0 && len(pairs) >= maxRows {
			return errors.MemoryLimitError{Step: step, MaxRows: maxRows}
		}
		pairs = append(pairs, rowPair{l, r})
		return nil
	}

	if how == RightJoin {
		leftIdx := buildKeyIndex(leftKeys)
		for r, v := range rightKeys {
			var matches []int
			if v != nil {
				matches = leftIdx.lookup(appendKey(nil, v))
			}
			if len(matches) == 0 {
				if err := add(-1, r); err != nil {
					return nil, err
				}
			}
			for _, l := range matches {
				if err := add(l, r); err != nil {
					return nil, err
				}
			}
		}
		return pairs, nil
	}

	keepUnmatchedLeft := how == LeftJoin || how == OuterJoin
	rightIdx := buildKeyIndex(rightKeys)
	matchedRight := make([]bool, len(rightKeys))
	for l, v := range leftKeys {
		var matches []int
		if v != nil {
			matches = rightIdx.lookup(appendKey(nil, v))
		}
		if len(matches) == 0 && keepUnmatchedLeft {
			if err := add(l, -1); err != nil {
				return nil, err
			}
		}
		for _, r := range matches {
			matchedRight[r] = true
			if err := add(l, r); err != nil {
				return nil, err
			}
		}
	}
	if how == OuterJoin {
		for r, matched := range matchedRight {
			if matched {
				continue
			}
			if err := add(-1, r); err != nil {
				return nil, err
			}
		}
		sortPairsByKey(pairs, leftKeys, rightKeys)
	}
	return pairs, nil
}

// sortPairsByKey orders outer join output by key value, keeping the existing order among
// equal keys. Rows with a missing key sort last.
func sortPairsByKey(pairs []rowPair, leftKeys []interface{}, rightKeys []interface{}) {
	keyOf := func(p rowPair) interface{} {
		if p.left >= 0 {
			return leftKeys[p.left]
		}
		return rightKeys[p.right]
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		return compareKeys(keyOf(pairs[i]), keyOf(pairs[j])) < 0
	})
}

// assemble builds the merged Table from matched row pairs
func assemble(left tabular.Table, right tabular.Table, key string, outSchema tabular.Schema, pairs []rowPair) (tabular.Table, error) {
	leftNames := left.Schema().ColumnNames()
	leftCols := make([][]interface{}, len(leftNames))
	keyPos := 0
	for i, name := range leftNames {
		leftCols[i], _ = left.Column(name)
		if name == key {
			keyPos = i
		}
	}
	rightKeys, _ := right.Column(key)
	rightCols := make([][]interface{}, 0, right.NumColumns()-1)
	for _, name := range right.Schema().ColumnNames() {
		if name == key {
			continue
		}
		col, _ := right.Column(name)
		rightCols = append(rightCols, col)
	}

	res := table.CreateTable(outSchema)
	row := make([]interface{}, len(leftCols)+len(rightCols))
	for _, p := range pairs {
		for i, col := range leftCols {
			if p.left >= 0 {
				row[i] = col[p.left]
			} else {
				row[i] = nil
			}
		}
		if p.left < 0 {
			row[keyPos] = rightKeys[p.right]
		}
		for i, col := range rightCols {
			if p.right >= 0 {
				row[len(leftCols)+i] = col[p.right]
			} else {
				row[len(leftCols)+i] = nil
			}
		}
		if err := res.AppendRow(row); err != nil {
			return nil, err
		}
	}
	return res, nil
}
