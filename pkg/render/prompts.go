package render

import (
	"fmt"
	"strings"
)

// Validation messages. These render as short corrective prompts rather than
// the full outcome template; the machine stays on the same step.
const (
	BadURL     = "❌ Incorrect URL! Try again."
	BadJSON    = "❌ Incorrect JSON body! Try again."
	Incomplete = "❌ Fill in all fields!"
)

// MethodPrompt opens a new request.
func MethodPrompt() string {
	return "🚀 **API Rocket**\n\nSelect HTTP method for request:"
}

// URLPrompt asks for the request URL after a method was chosen.
func URLPrompt(method string) string {
	return fmt.Sprintf("✅ Current method: **%s**\n\n🔗 Send me link for request:", method)
}

// BodyPrompt asks for a JSON body for methods that carry one.
func BodyPrompt(method, url string) string {
	return fmt.Sprintf("📝 **%s** request to:\n`%s`\n\n💾 Send Body (JSON) or click \"Skip\":", method, url)
}

// HeadersPrompt asks for a header block, one "key: value" per line.
func HeadersPrompt() string {
	return "📋 Send headers in the format:\n\n```\nContent-Type: application/json\n```"
}

// MissingFields tells the user which fields still need to be filled.
func MissingFields(missing []string) string {
	if len(missing) == 0 {
		return Incomplete
	}
	return Incomplete + " Missing: " + strings.Join(missing, ", ") + "."
}

// ReadySummary shows what the request looks like before sending.
func ReadySummary(method, url string, headerCount, bodyLen int) string {
	var sb strings.Builder

	sb.WriteString("🎯 **Ready for request:**\n\n")
	sb.WriteString(fmt.Sprintf("📡 Method: `%s`\n", method))
	sb.WriteString(fmt.Sprintf("🔗 URL: `%s`\n", url))

	if headerCount > 0 {
		sb.WriteString(fmt.Sprintf("📋 Headers: `%d`\n", headerCount))
	}
	if bodyLen > 0 {
		sb.WriteString(fmt.Sprintf("💾 Body: `%d characters`\n", bodyLen))
	}

	return sb.String()
}

// Export wraps the YAML view of the request for display.
func Export(yamlText string) string {
	return "📦 **Request export:**\n\n```yaml\n" + strings.TrimRight(yamlText, "\n") + "\n```"
}
