// Package transform provides operations which produce new Tables from existing
// ones: memory optimization, multi-table joins, cleaning, and the removal of
// duplicate columns and rows.
package transform
