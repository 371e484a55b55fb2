// Package state implements the single-use correlation token store backing the
// OAuth authorization round-trip. Two backends exist: an in-process map for
// single-instance deployments and a Redis store for everything else.
package state

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"sync"
	"time"

	"bid4service/internal/domain/entity"
	domainerrors "bid4service/internal/domain/errors"
	"bid4service/internal/errors"
)

// Tokens stay valid for one authorization round-trip, which realistically
// completes in seconds. Ten minutes leaves room for slow consent screens.
const TokenTTL = 10 * time.Minute

const tokenBytes = 32 // 256 bits of entropy

// newToken mints a cryptographically random, URL-safe token.
func newToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "read random bytes")
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

type memoryEntry struct {
	state     entity.CorrelationState
	expiresAt time.Time
}

// MemoryStore keeps correlation state in process memory. Suitable only when a
// single instance serves both the authorization redirect and its callback.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
	done    chan struct{}
	once    sync.Once
}

// NewMemoryStore builds the store and starts a background sweep that drops
// expired entries so abandoned round-trips do not accumulate.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	s := &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		done:    make(chan struct{}),
	}
	go s.sweep()

	return s
}

// Issue mints a token and records the correlation state under it.
func (s *MemoryStore) Issue(_ context.Context, provider entity.ProviderType, returnURL string) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}

	now := time.Now()
	s.mu.Lock()
	s.entries[token] = memoryEntry{
		state: entity.CorrelationState{
			Provider:  provider,
			ReturnURL: returnURL,
			IssuedAt:  now,
		},
		expiresAt: now.Add(s.ttl),
	}
	s.mu.Unlock()

	return token, nil
}

// Consume removes and returns the state in one step. Missing, expired and
// already-consumed tokens all fail identically, so a caller learns nothing
// about which case it hit.
func (s *MemoryStore) Consume(_ context.Context, token string) (*entity.CorrelationState, error) {
	s.mu.Lock()
	entry, ok := s.entries[token]
	if ok {
		delete(s.entries, token)
	}
	s.mu.Unlock()

	if !ok || time.Now().After(entry.expiresAt) {
		return nil, domainerrors.ErrInvalidState
	}

	state := entry.state

	return &state, nil
}

// Close stops the background sweep.
func (s *MemoryStore) Close() {
	s.once.Do(func() { close(s.done) })
}

func (s *MemoryStore) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for token, entry := range s.entries {
				if now.After(entry.expiresAt) {
					delete(s.entries, token)
				}
			}
			s.mu.Unlock()
		}
	}
}
