// Package session keeps one mounted page per visitor. Each page has its own
// signal channel, so one visitor's requests never touch another's view state.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Zachkp/portfolio/internal/signal"
	"github.com/Zachkp/portfolio/internal/viewstate"
)

// NewID returns a fresh session identifier.
func NewID() string {
	return uuid.NewString()
}

// ValidID reports whether id looks like one produced by NewID.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

type entry struct {
	page     *viewstate.Page
	lastSeen time.Time
}

// Store maps session IDs to mounted pages and unmounts pages that go idle.
type Store struct {
	mu     sync.Mutex
	pages  map[string]*entry
	ttl    time.Duration
	logger *slog.Logger
	now    func() time.Time
}

// NewStore returns a store that releases pages idle for longer than ttl.
func NewStore(ttl time.Duration, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		pages:  make(map[string]*entry),
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
	}
}

func mount() *viewstate.Page {
	p := viewstate.NewPage(signal.New())
	p.Mount()
	return p
}

// Acquire returns the page for id, mounting a new one if none is live.
func (s *Store) Acquire(id string) *viewstate.Page {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.pages[id]
	if !ok {
		e = &entry{page: mount()}
		s.pages[id] = e
		s.logger.Debug("session page mounted", "session", id)
	}
	e.lastSeen = s.now()
	return e.page
}

// Remount tears down the page for id, if any, and mounts a fresh one. A full
// page load starts from here.
func (s *Store) Remount(id string) *viewstate.Page {
	s.mu.Lock()
	old := s.pages[id]
	e := &entry{page: mount(), lastSeen: s.now()}
	s.pages[id] = e
	s.mu.Unlock()

	if old != nil {
		old.page.Unmount()
	}
	return e.page
}

// Release unmounts and forgets the page for id.
func (s *Store) Release(id string) {
	s.mu.Lock()
	e, ok := s.pages[id]
	delete(s.pages, id)
	s.mu.Unlock()

	if ok {
		e.page.Unmount()
		s.logger.Debug("session page released", "session", id)
	}
}

// Len reports the number of live pages.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pages)
}

// Sweep releases pages not seen since now minus the TTL and returns how many
// were released.
func (s *Store) Sweep(now time.Time) int {
	s.mu.Lock()
	var stale []*viewstate.Page
	for id, e := range s.pages {
		if now.Sub(e.lastSeen) > s.ttl {
			stale = append(stale, e.page)
			delete(s.pages, id)
		}
	}
	s.mu.Unlock()

	for _, p := range stale {
		p.Unmount()
	}
	return len(stale)
}

// Run sweeps every interval until ctx is done, then releases every page.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			n := s.releaseAll()
			s.logger.Info("session store stopped", "released", n)
			return
		case <-ticker.C:
			if n := s.Sweep(s.now()); n > 0 {
				s.logger.Info("idle sessions released", "count", n, "live", s.Len())
			}
		}
	}
}

func (s *Store) releaseAll() int {
	s.mu.Lock()
	pages := s.pages
	s.pages = make(map[string]*entry)
	s.mu.Unlock()

	for _, e := range pages {
		e.page.Unmount()
	}
	return len(pages)
}
