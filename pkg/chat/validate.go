package chat

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ErrBadURL is returned when text does not parse as an absolute URL.
var ErrBadURL = errors.New("malformed URL")

// ErrBadJSON is returned when body text is not syntactically valid JSON.
var ErrBadJSON = errors.New("malformed JSON body")

// ValidateURL accepts text only if it parses as an absolute URL with a
// scheme and a host.
func ValidateURL(text string) error {
	u, err := url.Parse(text)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return ErrBadURL
	}
	return nil
}

// BodyValidator checks body text for JSON validity, optionally also against
// a configured JSON Schema.
type BodyValidator struct {
	schema *gojsonschema.Schema
}

// NewBodyValidator creates a syntax-only body validator.
func NewBodyValidator() *BodyValidator {
	return &BodyValidator{}
}

// NewBodyValidatorWithSchema compiles the JSON Schema at schemaPath and
// returns a validator that enforces it on top of the syntax check.
func NewBodyValidatorWithSchema(schemaPath string) (*BodyValidator, error) {
	abs, err := filepath.Abs(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve schema path: %w", err)
	}

	schema, err := gojsonschema.NewSchema(gojsonschema.NewReferenceLoader("file://" + abs))
	if err != nil {
		return nil, fmt.Errorf("failed to compile body schema: %w", err)
	}
	return &BodyValidator{schema: schema}, nil
}

// Validate accepts text only if it is valid JSON and, when a schema is
// configured, conforms to it.
func (v *BodyValidator) Validate(text string) error {
	if !json.Valid([]byte(text)) {
		return ErrBadJSON
	}

	if v.schema != nil {
		result, err := v.schema.Validate(gojsonschema.NewStringLoader(text))
		if err != nil {
			return ErrBadJSON
		}
		if !result.Valid() {
			var problems []string
			for _, desc := range result.Errors() {
				problems = append(problems, desc.String())
			}
			return fmt.Errorf("%w: %s", ErrBadJSON, strings.Join(problems, "; "))
		}
	}
	return nil
}

// ParseHeaderBlock splits input into lines and each line on the first colon.
// A line contributes a header only when both a non-empty trimmed key and a
// value segment exist; lines without a colon are silently skipped. That
// leniency is deliberate: partial garbage never fails the whole block.
func ParseHeaderBlock(text string) map[string]string {
	headers := make(map[string]string)
	for _, line := range strings.Split(text, "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		headers[key] = strings.TrimSpace(value)
	}
	return headers
}
