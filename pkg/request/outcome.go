package request

import "time"

// Kind classifies the result of an execution attempt.
type Kind int

const (
	// KindSuccess means the peer answered with a non-error status (< 400).
	KindSuccess Kind = iota
	// KindRemote means the peer answered with an error status (>= 400).
	KindRemote
	// KindNetwork means the call was sent but no response arrived
	// (timeout, connection refused, DNS failure).
	KindNetwork
	// KindInternal means the call could not be constructed or some other
	// local failure occurred before anything was sent.
	KindInternal
)

// Outcome is the structured result of one execution attempt. It exists only
// long enough to be rendered and is never stored.
type Outcome struct {
	Kind       Kind
	Method     string
	URL        string
	Status     int               // HTTP status code (success and remote only)
	StatusText string            // e.g. "OK", "Not Found"
	Headers    map[string]string // response headers, multi-values joined
	Body       string            // raw response body text
	Elapsed    time.Duration     // wall-clock time around the call
	Detail     string            // connectivity or internal error message
}
