// internal/store/memory.go
//
// In-memory session store for games hosted by the HTTP server.
//
// Characteristics:
//   - Sessions are keyed by a random UUID.
//   - The map is guarded by an RWMutex; each Session has its own mutex so
//     events for one game apply one at a time, in arrival order.
//   - State is lost when the process restarts.
//   - Idle sessions are dropped by Sweep; attached ones (open WebSockets) stay.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-share/internal/game"
)

// ErrNotFound is returned by Get for unknown or swept session IDs.
var ErrNotFound = errors.New("session not found")

// Source records where a session's secret word came from.
type Source string

const (
	SourceCustom Source = "custom" // typed by the setter
	SourceLink   Source = "link"   // decoded from a share link
	SourceRandom Source = "random"
	SourceDaily  Source = "daily"
)

// Session owns one game and serialises access to it.
type Session struct {
	ID        string
	Source    Source
	CreatedAt time.Time

	mu       sync.Mutex
	game     *game.Game
	lastSeen time.Time
	conns    int // live connections holding the session
}

// Do runs fn with exclusive access to the session's game.
func (s *Session) Do(fn func(g *game.Game)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.game)
	s.lastSeen = time.Now()
}

// Touch marks the session as seen without applying an event.
func (s *Session) Touch() {
	s.mu.Lock()
	s.lastSeen = time.Now()
	s.mu.Unlock()
}

// Attach registers a live connection. Sweep keeps the session until the
// returned release func has been called.
func (s *Session) Attach() (release func()) {
	s.mu.Lock()
	s.conns++
	s.mu.Unlock()
	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			s.conns--
			s.lastSeen = time.Now()
			s.mu.Unlock()
		})
	}
}

// idle reports whether the session has no live connection and has not been
// seen since cutoff.
func (s *Session) idle(cutoff time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conns == 0 && s.lastSeen.Before(cutoff)
}

// Store defines session ownership for the server.
type Store interface {
	// Create registers g under a fresh ID.
	Create(ctx context.Context, g *game.Game, src Source) (*Session, error)

	// Get retrieves a session by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*Session, error)

	// Delete drops a session. Unknown IDs are ignored.
	Delete(ctx context.Context, id string) error

	// Sweep drops sessions idle since before cutoff and reports how many.
	// Sessions with an attached connection are never dropped.
	Sweep(ctx context.Context, cutoff time.Time) int

	// Len reports the number of live sessions.
	Len() int
}

type memory struct {
	mu       sync.RWMutex        // guards sessions
	sessions map[string]*Session // keyed by Session.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*Session)}
}

func (m *memory) Create(ctx context.Context, g *game.Game, src Source) (*Session, error) {
	now := time.Now()
	s := &Session{
		ID:        uuid.NewString(),
		Source:    src,
		CreatedAt: now,
		game:      g,
		lastSeen:  now,
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return s, nil
}

func (m *memory) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *memory) Sweep(ctx context.Context, cutoff time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, s := range m.sessions {
		if s.idle(cutoff) {
			delete(m.sessions, id)
			n++
		}
	}
	return n
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// RunSweeper calls Sweep every interval, dropping sessions idle for longer
// than ttl, until ctx is cancelled. A non-positive interval disables sweeping.
func RunSweeper(ctx context.Context, st Store, interval, ttl time.Duration) {
	if interval <= 0 {
		return
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			if n := st.Sweep(ctx, now.Add(-ttl)); n > 0 {
				log.Debug().Int("swept", n).Int("live", st.Len()).Msg("dropped idle sessions")
			}
		}
	}
}
