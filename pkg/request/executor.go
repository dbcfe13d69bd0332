package request

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds a single execution attempt. There are no retries;
// the user resends by triggering "send" again.
const DefaultTimeout = 10 * time.Second

// Executor performs HTTP calls for completed sessions.
type Executor struct {
	client         *http.Client
	defaultHeaders map[string]string
}

// NewExecutor creates an executor with the given timeout.
// A zero or negative timeout falls back to DefaultTimeout.
func NewExecutor(timeout time.Duration) *Executor {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Executor{
		client:         &http.Client{Timeout: timeout},
		defaultHeaders: make(map[string]string),
	}
}

// SetDefaultHeader registers a header applied to every outgoing request
// unless the session sets the same header itself. Used for the optional
// OAuth2 Authorization header.
func (e *Executor) SetDefaultHeader(key, value string) {
	e.defaultHeaders[key] = value
}

// Execute performs a single attempt for the given spec and classifies the
// result. A response with status >= 400 is reported as a remote failure with
// its raw payload, matching how the errors are shown to the user.
func (e *Executor) Execute(ctx context.Context, spec Spec) Outcome {
	var bodyReader io.Reader
	if spec.HasBody() {
		bodyReader = strings.NewReader(spec.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, spec.Method, spec.URL, bodyReader)
	if err != nil {
		return Outcome{
			Kind:   KindInternal,
			Method: spec.Method,
			URL:    spec.URL,
			Detail: err.Error(),
		}
	}

	if spec.HasBody() {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	for key, value := range e.defaultHeaders {
		httpReq.Header.Set(key, value)
	}
	for key, value := range spec.Headers {
		httpReq.Header.Set(key, value)
	}

	start := time.Now()
	httpResp, err := e.client.Do(httpReq)
	elapsed := time.Since(start)
	if err != nil {
		// The request left the building but nothing came back.
		return Outcome{
			Kind:    KindNetwork,
			Method:  spec.Method,
			URL:     spec.URL,
			Elapsed: elapsed,
			Detail:  "connection failed or timed out",
		}
	}
	defer httpResp.Body.Close()

	bodyBytes, err := io.ReadAll(httpResp.Body)
	elapsed = time.Since(start)
	if err != nil {
		return Outcome{
			Kind:    KindNetwork,
			Method:  spec.Method,
			URL:     spec.URL,
			Elapsed: elapsed,
			Detail:  "response body could not be read",
		}
	}

	headers := make(map[string]string, len(httpResp.Header))
	for key, values := range httpResp.Header {
		headers[key] = strings.Join(values, ", ")
	}

	kind := KindSuccess
	if httpResp.StatusCode >= 400 {
		kind = KindRemote
	}

	return Outcome{
		Kind:       kind,
		Method:     spec.Method,
		URL:        spec.URL,
		Status:     httpResp.StatusCode,
		StatusText: http.StatusText(httpResp.StatusCode),
		Headers:    headers,
		Body:       string(bodyBytes),
		Elapsed:    elapsed,
	}
}
