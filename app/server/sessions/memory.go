package sessions

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	userID    uint
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory. Sessions do not survive a
// restart; expired entries are rejected on read and swept periodically.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	done    chan struct{}
}

func NewMemoryStore(sweepInterval time.Duration) *MemoryStore {
	s := &MemoryStore{
		entries: make(map[string]memoryEntry),
		done:    make(chan struct{}),
	}
	go s.sweep(sweepInterval)
	return s
}

func (s *MemoryStore) Set(_ context.Context, sid string, userID uint, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[sid] = memoryEntry{
		userID:    userID,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, sid string) (uint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[sid]
	if !ok || time.Now().After(entry.expiresAt) {
		return 0, ErrNoSession
	}
	return entry.userID, nil
}

func (s *MemoryStore) Delete(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, sid)
	return nil
}

// Close stops the background sweep.
func (s *MemoryStore) Close() {
	close(s.done)
}

func (s *MemoryStore) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for sid, entry := range s.entries {
				if now.After(entry.expiresAt) {
					delete(s.entries, sid)
				}
			}
			s.mu.Unlock()
		}
	}
}
