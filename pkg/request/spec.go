// Package request builds and executes a single outbound HTTP call from a
// completed chat session and classifies the result for rendering.
package request

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Spec is the immutable description of one outbound request.
// It is constructed once per execution and passed by value, so a session
// mutated mid-flight can never change the call that is already on the wire.
type Spec struct {
	Method  string            `yaml:"method"`            // HTTP method (GET, POST, ...)
	URL     string            `yaml:"url"`               // Absolute request URL
	Headers map[string]string `yaml:"headers,omitempty"` // Request headers
	Body    string            `yaml:"body,omitempty"`    // Raw JSON body text, empty if unset
}

// HasBody reports whether the spec carries a body that should be sent.
// Only POST, PUT and PATCH requests ever attach one.
func (s Spec) HasBody() bool {
	if s.Body == "" {
		return false
	}
	switch s.Method {
	case "POST", "PUT", "PATCH":
		return true
	}
	return false
}

// ExportYAML renders the spec as a YAML snippet for display in chat.
func (s Spec) ExportYAML() (string, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}
	return string(data), nil
}

// SortedHeaderKeys returns the header names in a stable order for display.
func (s Spec) SortedHeaderKeys() []string {
	keys := make([]string, 0, len(s.Headers))
	for k := range s.Headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
