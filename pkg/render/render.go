// Package render turns execution outcomes and conversation prompts into
// bounded markdown text. The chat transport decides how that text is shown;
// nothing here is transport specific.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/apirocket/rocket/pkg/request"
)

// MaxBodyChars caps the rendered response body so the message stays inside
// the downstream transport's size limit.
const MaxBodyChars = 3000

const truncationMarker = "\n\n…truncated"

// Format renders an outcome into display text.
func Format(o request.Outcome) string {
	switch o.Kind {
	case request.KindSuccess:
		return formatSuccess(o)
	default:
		return formatFailure(o)
	}
}

func formatSuccess(o request.Outcome) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("✅ **%s %s**\n\n", o.Method, o.URL))
	sb.WriteString(fmt.Sprintf("📊 Status: `%d %s`\n", o.Status, o.StatusText))
	sb.WriteString(fmt.Sprintf("⏱️ Time: `%dms`\n\n", o.Elapsed.Milliseconds()))

	sb.WriteString("📋 **Headers:**\n")
	for key, value := range o.Headers {
		sb.WriteString(fmt.Sprintf("`%s`: %s\n", key, value))
	}

	sb.WriteString("\n💾 **Body:**\n")
	sb.WriteString(TruncateBody(prettyJSON(o.Body)))

	return sb.String()
}

func formatFailure(o request.Outcome) string {
	var sb strings.Builder

	sb.WriteString("❌ **REQUEST ERROR**\n\n")
	sb.WriteString(fmt.Sprintf("🔗 URL: `%s`\n", o.URL))
	sb.WriteString(fmt.Sprintf("📡 Method: `%s`\n\n", o.Method))

	switch o.Kind {
	case request.KindRemote:
		sb.WriteString(fmt.Sprintf("📊 Status: `%d %s`\n", o.Status, o.StatusText))
		sb.WriteString(fmt.Sprintf("💾 Error: `%s`", TruncateBody(o.Body)))
	case request.KindNetwork:
		sb.WriteString("🔌 Network error: " + o.Detail)
	default:
		sb.WriteString(fmt.Sprintf("🐛 Error: `%s`", o.Detail))
	}

	return sb.String()
}

// TruncateBody cuts text at MaxBodyChars and appends an explicit marker so
// the user knows the payload was larger than what is shown.
func TruncateBody(text string) string {
	if len(text) <= MaxBodyChars {
		return text
	}
	return text[:MaxBodyChars] + truncationMarker
}

// prettyJSON re-indents structured bodies; anything that is not valid JSON
// passes through untouched.
func prettyJSON(body string) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(body), "", "  "); err != nil {
		return body
	}
	return buf.String()
}
