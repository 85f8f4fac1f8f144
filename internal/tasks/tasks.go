// package tasks implements the long-running operations behind the CLI and
// TUI: full-listing exports and the backend health poller. Operations emit
// progress updates via channels for non-blocking status reporting.
package tasks

// ProgressUpdate represents a progress event during a long-running operation.
type ProgressUpdate struct {
	Phase    Phase  // Operation phase
	Resource string // Resource the update concerns
	Step     int    // Current step number within phase
	Total    int    // Total steps in this phase
	Message  string // Human-readable message for display
}

// Operation phase enumeration
type Phase int

const (
	FetchPages Phase = iota
	WriteFile
	Completed
	Failed
)

func (p Phase) String() string {
	switch p {
	case FetchPages:
		return "fetch_pages"
	case WriteFile:
		return "write_file"
	case Completed:
		return "completed"
	case Failed:
		return "failed"
	default:
		return ""
	}
}

// sendProgress sends a progress update without blocking. Uses select with
// default so progress reporting never stalls the operation.
func sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}
