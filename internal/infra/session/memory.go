package session

import (
	"context"
	"sync"
	"time"

	"github.com/geekpf/agenda2/internal/domain"
)

// MemoryStore хранилище сессий в памяти процесса.
// Используется в тестах и при локальном запуске без Redis.
// Истекшие сессии удаляются лениво при чтении
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
	ttl      time.Duration
	now      func() time.Time
}

type memoryEntry struct {
	session   domain.BookingSession
	expiresAt time.Time
}

// NewMemoryStore создает in-memory хранилище сессий
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]memoryEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Save сохраняет копию сессии и продлевает её TTL
func (s *MemoryStore) Save(_ context.Context, sess *domain.BookingSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sess.ID] = memoryEntry{
		session:   *sess,
		expiresAt: s.now().Add(s.ttl),
	}
	return nil
}

// Get возвращает копию сессии по ID
func (s *MemoryStore) Get(_ context.Context, id string) (*domain.BookingSession, error) {
	s.mu.RLock()
	entry, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}

	if s.now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return nil, ErrSessionNotFound
	}

	sess := entry.session
	return &sess, nil
}

// Delete удаляет сессию. Отсутствие сессии не считается ошибкой
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}
