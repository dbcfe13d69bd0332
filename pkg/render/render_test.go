package render

import (
	"strings"
	"testing"
	"time"

	"github.com/apirocket/rocket/pkg/request"
)

func TestFormat_Success(t *testing.T) {
	out := Format(request.Outcome{
		Kind:       request.KindSuccess,
		Method:     "GET",
		URL:        "https://example.com",
		Status:     200,
		StatusText: "OK",
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       `{"ok":true}`,
		Elapsed:    125 * time.Millisecond,
	})

	for _, want := range []string{
		"GET https://example.com",
		"200 OK",
		"125ms",
		"`Content-Type`: application/json",
		"{\n  \"ok\": true\n}",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q in:\n%s", want, out)
		}
	}
}

func TestFormat_RemoteError(t *testing.T) {
	out := Format(request.Outcome{
		Kind:       request.KindRemote,
		Method:     "POST",
		URL:        "https://example.com/users",
		Status:     422,
		StatusText: "Unprocessable Entity",
		Body:       `{"error":"name required"}`,
	})

	for _, want := range []string{"REQUEST ERROR", "https://example.com/users", "POST", "422", "name required"} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q in:\n%s", want, out)
		}
	}
}

func TestFormat_NetworkError(t *testing.T) {
	out := Format(request.Outcome{
		Kind:   request.KindNetwork,
		Method: "GET",
		URL:    "https://unreachable.example.com",
		Detail: "connection failed or timed out",
	})

	if !strings.Contains(out, "GET") || !strings.Contains(out, "https://unreachable.example.com") {
		t.Errorf("Format() should name method and URL:\n%s", out)
	}
	if !strings.Contains(out, "Network error") {
		t.Errorf("Format() missing network message:\n%s", out)
	}
	// No status line for network failures: nothing ever came back.
	if strings.Contains(out, "Status") {
		t.Errorf("Format() should not contain a status code:\n%s", out)
	}
}

func TestFormat_InternalError(t *testing.T) {
	out := Format(request.Outcome{
		Kind:   request.KindInternal,
		Method: "GET",
		URL:    "https://example.com",
		Detail: `net/http: invalid method "GET WITH SPACES"`,
	})

	if !strings.Contains(out, "invalid method") {
		t.Errorf("Format() should carry the raw error message:\n%s", out)
	}
}

func TestTruncateBody(t *testing.T) {
	long := strings.Repeat("x", 5000)
	out := TruncateBody(long)

	if !strings.HasPrefix(out, long[:MaxBodyChars]) {
		t.Error("truncated output should start with the first 3000 characters")
	}
	if !strings.HasSuffix(out, "…truncated") {
		t.Errorf("truncated output should end with the marker, got %q", out[len(out)-20:])
	}
	if len(out) != MaxBodyChars+len("\n\n…truncated") {
		t.Errorf("len = %d, want exactly %d plus marker", len(out), MaxBodyChars)
	}

	short := strings.Repeat("x", MaxBodyChars)
	if got := TruncateBody(short); got != short {
		t.Error("bodies at the cap should pass through untouched")
	}
}

func TestReadySummary(t *testing.T) {
	out := ReadySummary("POST", "https://example.com", 2, 17)
	for _, want := range []string{"POST", "https://example.com", "Headers: `2`", "17 characters"} {
		if !strings.Contains(out, want) {
			t.Errorf("ReadySummary() missing %q in:\n%s", want, out)
		}
	}

	bare := ReadySummary("GET", "https://example.com", 0, 0)
	if strings.Contains(bare, "Headers") || strings.Contains(bare, "characters") {
		t.Errorf("ReadySummary() should omit empty fields:\n%s", bare)
	}
}

func TestMissingFields(t *testing.T) {
	out := MissingFields([]string{"method", "url"})
	if !strings.Contains(out, "method") || !strings.Contains(out, "url") {
		t.Errorf("MissingFields() should list the fields:\n%s", out)
	}
}
