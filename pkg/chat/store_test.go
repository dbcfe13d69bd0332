package chat

import (
	"sync"
	"testing"
)

func TestStoreGetCreatesEmptySession(t *testing.T) {
	store := NewStore()

	session := store.Get("user-1")
	if session.Step != StepMethod {
		t.Errorf("Step = %v, want StepMethod for a fresh session", session.Step)
	}
	if session.Method != "" || session.URL != "" || session.Body != "" {
		t.Error("fresh session should have no fields set")
	}
}

func TestStorePutAndGetAreIndependentCopies(t *testing.T) {
	store := NewStore()

	session := Session{
		Method:  MethodPost,
		URL:     "https://example.com",
		Headers: map[string]string{"X-Id": "7"},
		Step:    StepReady,
	}
	store.Put("user-1", session)

	// Mutating the caller's map must not leak into the store.
	session.Headers["X-Id"] = "tampered"

	got := store.Get("user-1")
	if got.Headers["X-Id"] != "7" {
		t.Errorf("Headers[X-Id] = %q, want stored copy unaffected", got.Headers["X-Id"])
	}

	// And mutating what Get returned must not either.
	got.Headers["X-Id"] = "tampered again"
	if store.Get("user-1").Headers["X-Id"] != "7" {
		t.Error("Get should return an independent copy")
	}
}

func TestStoreReset(t *testing.T) {
	store := NewStore()
	store.Put("user-1", Session{Method: MethodGet, URL: "https://example.com", Step: StepReady})

	store.Reset("user-1")

	got := store.Get("user-1")
	if got.Step != StepMethod || got.Method != "" || got.URL != "" {
		t.Errorf("Reset should yield an empty session, got %+v", got)
	}
}

func TestStoreUsersAreIndependent(t *testing.T) {
	store := NewStore()
	store.Update("user-1", func(s *Session) Reply {
		s.Method = MethodGet
		return Reply{}
	})

	if store.Get("user-2").Method != "" {
		t.Error("one user's mutation leaked into another user's session")
	}
}

func TestStoreUpdateSerializesPerUser(t *testing.T) {
	store := NewStore()

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			store.Update("user-1", func(s *Session) Reply {
				// Read-modify-write through the URL field; lost updates
				// would leave the count short.
				s.URL += "x"
				return Reply{}
			})
		}()
	}
	wg.Wait()

	if got := len(store.Get("user-1").URL); got != workers {
		t.Errorf("applied %d updates, want %d", got, workers)
	}
}
