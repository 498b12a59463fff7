// Package tabular contains the core types of Tabular, a small toolkit for loading,
// combining, cleaning and exporting in-memory tables. This root package defines
// the Table, Schema and ColumnType abstractions shared by every other package,
// and is an excellent overview of Tabular's key concepts.
//
// Tables are produced by the parsers in datasource/parser, transformed by the
// operations in operations/transform, and persisted by package export.
package tabular
