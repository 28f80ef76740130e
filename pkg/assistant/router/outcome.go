package router

// Status classifies what a dispatch call did. "Don't crash the chat" and
// "don't tell anyone" are decoupled: misses and skips are not errors, but they
// are visible to the caller instead of silent no-ops.
type Status string

const (
	// StatusApplied means the executor invoked its mutation(s) successfully.
	StatusApplied Status = "applied"
	// StatusNotFound means a fuzzy entity reference matched nothing; no
	// mutation was attempted.
	StatusNotFound Status = "not_found"
	// StatusSkipped means required data was missing or unusable; no mutation
	// was attempted.
	StatusSkipped Status = "skipped"
	// StatusUnhandled means no module owns the action (CHAT, NAVIGATE, or an
	// unrecognized name); the host UI layer deals with these.
	StatusUnhandled Status = "unhandled"
	// StatusFailed means a hook mutation returned an error.
	StatusFailed Status = "failed"
)

// Outcome is the structured result of dispatching one intent.
type Outcome struct {
	Action    string
	Status    Status
	Reference string // the unresolved reference, for StatusNotFound
	Detail    string
	Err       error
}

func Applied(action string) Outcome {
	return Outcome{Action: action, Status: StatusApplied}
}

func AppliedDetail(action, detail string) Outcome {
	return Outcome{Action: action, Status: StatusApplied, Detail: detail}
}

func NotFound(action, reference string) Outcome {
	return Outcome{Action: action, Status: StatusNotFound, Reference: reference}
}

func Skipped(action, detail string) Outcome {
	return Outcome{Action: action, Status: StatusSkipped, Detail: detail}
}

func Unhandled(action string) Outcome {
	return Outcome{Action: action, Status: StatusUnhandled}
}

func Failed(action string, err error) Outcome {
	return Outcome{Action: action, Status: StatusFailed, Err: err}
}

func FailedDetail(action, detail string, err error) Outcome {
	return Outcome{Action: action, Status: StatusFailed, Detail: detail, Err: err}
}
