package tabular

// ResultKind describes how completely an operation producing a Result succeeded
type ResultKind string

const (
	// ResultComplete indicates that the operation ran to completion
	ResultComplete ResultKind = "complete"
	// ResultNone indicates that the operation failed softly and produced no Table
	ResultNone ResultKind = "none"
	// ResultPartial indicates that the operation stopped early, and its Table holds the work completed so far
	ResultPartial ResultKind = "partial"
)

// Result is produced by operations which can fail without raising an error,
// such as loading a file or combining several Tables.
type Result struct {
	Kind  ResultKind
	Table Table // nil iff Kind is ResultNone
	Err   error // the failure which caused a ResultNone or ResultPartial
	Steps int   // the number of units of work applied to produce Table (e.g. merges performed)
}

// Complete returns true iff this Result holds a fully-built Table
func (r *Result) Complete() bool {
	return r != nil && r.Kind == ResultComplete
}

// Usable returns true iff this Result holds a Table, complete or partial
func (r *Result) Usable() bool {
	return r != nil && r.Table != nil
}
