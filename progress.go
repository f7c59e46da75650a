package xlsxgen

// ProgressEventKind enumerates spec.md §4.6/§6's progress stream states.
type ProgressEventKind int

const (
	ProgressSheetStart ProgressEventKind = iota
	ProgressSheetDone
	ProgressGlobalPartsStart
	ProgressFinished
	ProgressFailed
)

// ProgressEvent is one message on Book's progress channel. No pack repo
// models a progress-channel abstraction; this is new code grounded
// directly on spec.md §4.6/§6's event list and the "progressPercentage /
// description" fields it names.
type ProgressEvent struct {
	Kind               ProgressEventKind
	SheetIndex         int
	SheetName          string
	RowsWritten        int
	ProgressPercentage float64
	Description        string
	FailedKind         ErrorKind
}

// IsFinal reports whether this event ends the stream.
func (e ProgressEvent) IsFinal() bool {
	return e.Kind == ProgressFinished || e.Kind == ProgressFailed
}
