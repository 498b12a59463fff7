package tabular

import "io"

// A DataSourceParser is capable of parsing raw data to produce a Table
type DataSourceParser interface {
	Name() string                     // Name returns a short description of the format handled by this DataSourceParser, for logging
	Parse(r io.Reader) (Table, error) // Parse reads all data from r into a new Table
}
