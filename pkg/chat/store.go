package chat

import "sync"

// Store maps user identifiers to their in-progress sessions. Sessions for
// different users are independent; events for the same user are serialized
// through a per-user lock so the step always matches the fields filled.
//
// There is no eviction and no persistence: lifetime equals process uptime.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*storeEntry
}

type storeEntry struct {
	mu      sync.Mutex
	session *Session
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*storeEntry)}
}

func (s *Store) entry(userID string) *storeEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[userID]
	if !ok {
		e = &storeEntry{session: NewSession()}
		s.sessions[userID] = e
	}
	return e
}

// Get returns a copy of the user's session, creating an empty one if absent.
func (s *Store) Get(userID string) Session {
	e := s.entry(userID)
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session.clone()
}

// Put replaces the user's stored session.
func (s *Store) Put(userID string, session Session) {
	e := s.entry(userID)
	e.mu.Lock()
	defer e.mu.Unlock()
	copied := session.clone()
	e.session = &copied
}

// Reset replaces the user's session with a fresh empty one.
func (s *Store) Reset(userID string) {
	e := s.entry(userID)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.session.Reset()
}

// Update applies fn to the user's session under its lock. Concurrent events
// for the same user (a rapid double-tap) run one at a time in arrival order;
// other users are not blocked.
func (s *Store) Update(userID string, fn func(*Session) Reply) Reply {
	e := s.entry(userID)
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.session)
}
