package request

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestExecute_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Request-Id", "abc-123")
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, `{"ok":true}`)
	}))
	defer server.Close()

	exec := NewExecutor(DefaultTimeout)
	outcome := exec.Execute(context.Background(), Spec{Method: "GET", URL: server.URL})

	if outcome.Kind != KindSuccess {
		t.Fatalf("Kind = %v, want KindSuccess", outcome.Kind)
	}
	if outcome.Status != 200 {
		t.Errorf("Status = %d, want 200", outcome.Status)
	}
	if outcome.StatusText != "OK" {
		t.Errorf("StatusText = %q, want %q", outcome.StatusText, "OK")
	}
	if outcome.Body != `{"ok":true}` {
		t.Errorf("Body = %q, want %q", outcome.Body, `{"ok":true}`)
	}
	if outcome.Headers["X-Request-Id"] != "abc-123" {
		t.Errorf("Headers[X-Request-Id] = %q, want %q", outcome.Headers["X-Request-Id"], "abc-123")
	}
	if outcome.Elapsed <= 0 {
		t.Errorf("Elapsed = %v, want > 0", outcome.Elapsed)
	}
}

func TestExecute_RemoteError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"error":"missing"}`)
	}))
	defer server.Close()

	exec := NewExecutor(DefaultTimeout)
	outcome := exec.Execute(context.Background(), Spec{Method: "GET", URL: server.URL})

	if outcome.Kind != KindRemote {
		t.Fatalf("Kind = %v, want KindRemote", outcome.Kind)
	}
	if outcome.Status != 404 {
		t.Errorf("Status = %d, want 404", outcome.Status)
	}
	if outcome.Body != `{"error":"missing"}` {
		t.Errorf("Body = %q, want error payload", outcome.Body)
	}
}

func TestExecute_BodyAttachment(t *testing.T) {
	tests := []struct {
		name     string
		spec     Spec
		wantBody string
		wantCT   string
	}{
		{
			name:     "POST sends JSON body with content type",
			spec:     Spec{Method: "POST", Body: `{"name":"zed"}`},
			wantBody: `{"name":"zed"}`,
			wantCT:   "application/json",
		},
		{
			name:     "GET never sends a body even if one is set",
			spec:     Spec{Method: "GET", Body: `{"name":"zed"}`},
			wantBody: "",
			wantCT:   "",
		},
		{
			name:     "POST with no body sends nothing",
			spec:     Spec{Method: "POST"},
			wantBody: "",
			wantCT:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotBody, gotCT string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				data, _ := io.ReadAll(r.Body)
				gotBody = string(data)
				gotCT = r.Header.Get("Content-Type")
			}))
			defer server.Close()

			spec := tt.spec
			spec.URL = server.URL
			exec := NewExecutor(DefaultTimeout)
			outcome := exec.Execute(context.Background(), spec)

			if outcome.Kind != KindSuccess {
				t.Fatalf("Kind = %v, want KindSuccess", outcome.Kind)
			}
			if gotBody != tt.wantBody {
				t.Errorf("server received body %q, want %q", gotBody, tt.wantBody)
			}
			if gotCT != tt.wantCT {
				t.Errorf("server received Content-Type %q, want %q", gotCT, tt.wantCT)
			}
		})
	}
}

func TestExecute_SessionHeadersOverrideDefaults(t *testing.T) {
	var gotAuth, gotExtra string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotExtra = r.Header.Get("X-Extra")
	}))
	defer server.Close()

	exec := NewExecutor(DefaultTimeout)
	exec.SetDefaultHeader("Authorization", "Bearer default-token")
	exec.SetDefaultHeader("X-Extra", "from-config")

	outcome := exec.Execute(context.Background(), Spec{
		Method:  "GET",
		URL:     server.URL,
		Headers: map[string]string{"Authorization": "Bearer user-token"},
	})

	if outcome.Kind != KindSuccess {
		t.Fatalf("Kind = %v, want KindSuccess", outcome.Kind)
	}
	if gotAuth != "Bearer user-token" {
		t.Errorf("Authorization = %q, want session value to win", gotAuth)
	}
	if gotExtra != "from-config" {
		t.Errorf("X-Extra = %q, want default value", gotExtra)
	}
}

func TestExecute_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	exec := NewExecutor(DefaultTimeout)
	outcome := exec.Execute(context.Background(), Spec{Method: "GET", URL: url})

	if outcome.Kind != KindNetwork {
		t.Fatalf("Kind = %v, want KindNetwork", outcome.Kind)
	}
	if outcome.Status != 0 {
		t.Errorf("Status = %d, want 0 for network failures", outcome.Status)
	}
	if outcome.Detail == "" {
		t.Error("Detail is empty, want connectivity message")
	}
}

func TestExecute_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	exec := NewExecutor(20 * time.Millisecond)
	outcome := exec.Execute(context.Background(), Spec{Method: "GET", URL: server.URL})

	if outcome.Kind != KindNetwork {
		t.Fatalf("Kind = %v, want KindNetwork on timeout", outcome.Kind)
	}
}

func TestExecute_InternalFailure(t *testing.T) {
	exec := NewExecutor(DefaultTimeout)
	outcome := exec.Execute(context.Background(), Spec{Method: "GET WITH SPACES", URL: "https://example.com"})

	if outcome.Kind != KindInternal {
		t.Fatalf("Kind = %v, want KindInternal", outcome.Kind)
	}
	if outcome.Detail == "" {
		t.Error("Detail is empty, want raw error message")
	}
}
