// Package dsv parses delimiter-separated text, such as CSV, into Tables. The first
// record is treated as a header, and column types are inferred from the data.
package dsv
