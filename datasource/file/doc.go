// Package file loads Tables from files on disk. Loading is a single best-effort
// attempt: failures are reported through the logger and returned as a Result
// without a Table, rather than as an error. Files ending in .lz4 are decompressed
// transparently.
package file
