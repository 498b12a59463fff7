// Package export writes Tables to files. The output format is chosen by the
// extension of the file name: .xlsx, .csv or .jsonl, optionally followed by
// .lz4 for a compressed copy of any of them.
package export
