package chat

// Step is the stage of the conversation a session currently occupies.
// It always reflects exactly which fields are still missing.
type Step int

const (
	// StepMethod awaits the method selection.
	StepMethod Step = iota
	// StepURL awaits the request URL.
	StepURL
	// StepBody awaits the JSON body (POST, PUT and PATCH only).
	StepBody
	// StepHeaders awaits a header block.
	StepHeaders
	// StepReady means method and URL are set; the request can be sent,
	// edited or reset. Ready is stable and revisitable, not terminal.
	StepReady
)

func (s Step) String() string {
	switch s {
	case StepMethod:
		return "awaiting_method"
	case StepURL:
		return "awaiting_url"
	case StepBody:
		return "awaiting_body"
	case StepHeaders:
		return "awaiting_headers"
	case StepReady:
		return "ready"
	}
	return "unknown"
}

// Session is one user's in-progress request state. It lives for the process
// lifetime unless explicitly reset.
type Session struct {
	Method  Method
	URL     string
	Headers map[string]string
	Body    string // raw JSON text, empty means unset
	Step    Step
}

// NewSession returns an empty session awaiting a method selection.
func NewSession() *Session {
	return &Session{Step: StepMethod}
}

// Reset discards all collected fields and starts over.
func (s *Session) Reset() {
	*s = Session{Step: StepMethod}
}

// Complete reports whether the request has everything it needs to be sent.
func (s *Session) Complete() bool {
	return s.Method != "" && s.URL != ""
}

// MissingFields names the required fields not yet collected, in fill order.
func (s *Session) MissingFields() []string {
	var missing []string
	if s.Method == "" {
		missing = append(missing, "method")
	}
	if s.URL == "" {
		missing = append(missing, "url")
	}
	return missing
}

// MergeHeaders folds parsed headers into the session, later values
// overwriting earlier ones for the same key.
func (s *Session) MergeHeaders(headers map[string]string) {
	if len(headers) == 0 {
		return
	}
	if s.Headers == nil {
		s.Headers = make(map[string]string, len(headers))
	}
	for key, value := range headers {
		s.Headers[key] = value
	}
}

// clone returns an independent copy so callers outside the store's lock
// never share the headers map.
func (s *Session) clone() Session {
	copied := *s
	if s.Headers != nil {
		copied.Headers = make(map[string]string, len(s.Headers))
		for key, value := range s.Headers {
			copied.Headers[key] = value
		}
	}
	return copied
}
