// Package history keeps a bounded, mutex-guarded record of submitted inputs
// and the last produced audit set, replacing what would otherwise be
// unsynchronized process-global state under concurrent request handling.
package history

import (
	"strings"
	"sync"

	"github.com/pagelens/pagelens/models"
)

// Store is an append-only-in-spirit, bounded session history.
// It is safe for concurrent use.
type Store struct {
	mu         sync.RWMutex
	entries    []string
	maxEntries int

	lastAudits *models.AuditSet
	lastURL    string
}

// New creates a Store keeping at most maxEntries inputs; the oldest entry
// is evicted first.
func New(maxEntries int) *Store {
	if maxEntries <= 0 {
		maxEntries = 1
	}
	return &Store{maxEntries: maxEntries}
}

// Append records one submitted input.
func (s *Store) Append(input string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, input)
	if len(s.entries) > s.maxEntries {
		s.entries = s.entries[len(s.entries)-s.maxEntries:]
	}
}

// Len returns the number of retained entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// LatestURL returns the most recently submitted input that is a URL.
// The second return is false when no URL has been submitted yet.
func (s *Store) LatestURL() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := len(s.entries) - 1; i >= 0; i-- {
		e := s.entries[i]
		if strings.HasPrefix(e, "http://") || strings.HasPrefix(e, "https://") {
			return e, true
		}
	}
	return "", false
}

// SetLastAudits snapshots the audit set produced for url, for the
// follow-up report view.
func (s *Store) SetLastAudits(url string, set *models.AuditSet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastURL = url
	s.lastAudits = set
}

// LastAudits returns the most recent audit snapshot, or ("", nil) when no
// URL analysis has completed yet.
func (s *Store) LastAudits() (string, *models.AuditSet) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastURL, s.lastAudits
}
