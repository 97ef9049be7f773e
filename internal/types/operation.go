package types

// OperationStatus is the outcome of one candidate path
type OperationStatus int

const (
	StatusRenamed OperationStatus = iota
	StatusWouldRename
	StatusSkipped
	StatusFailed
)

func (s OperationStatus) String() string {
	switch s {
	case StatusRenamed:
		return "renamed"
	case StatusWouldRename:
		return "would_rename"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// Skip reasons
const (
	SkipNoMatch  = "no-match"
	SkipDeclined = "declined"
)

// RenameOperation is the outcome of processing a single candidate path.
// It lives just long enough to be reported.
type RenameOperation struct {
	SourcePath string
	TargetPath string // Empty for skips and for failures before substitution
	Status     OperationStatus
	SkipReason string
	Pattern    string
	Err        error // Set for StatusFailed
}

// BatchSummary counts outcomes across a batch
type BatchSummary struct {
	Renamed     int
	WouldRename int
	Skipped     int
	Failed      int
}

// Add records one operation in the summary
func (s *BatchSummary) Add(op RenameOperation) {
	switch op.Status {
	case StatusRenamed:
		s.Renamed++
	case StatusWouldRename:
		s.WouldRename++
	case StatusSkipped:
		s.Skipped++
	case StatusFailed:
		s.Failed++
	}
}

// Total returns the number of processed paths
func (s BatchSummary) Total() int {
	return s.Renamed + s.WouldRename + s.Skipped + s.Failed
}
