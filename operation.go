package tabular

// TableOperation - A generic single-table transform, producing a new Table
type TableOperation func(t Table) (Table, error)

// FilterOperation - A generic function for determining whether or not a row should be retained. values are supplied in column order.
type FilterOperation func(values []interface{}) (bool, error)
