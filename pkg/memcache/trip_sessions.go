package mem

import (
	"sync"
	"time"

	"roamio/internal/models/domain_models"
)

// TripSessionStore keeps live trip sessions in memory. Sessions expire on a
// TTL instead of a browser unload; the TTL is refreshed on every write so an
// active client never loses its session mid-flow.
type TripSessionStore interface {
	Put(session *domain_models.TripSession, ttl time.Duration)

	// Get returns a copy of the session, or nil if missing/expired.
	Get(id string) *domain_models.TripSession

	// Update applies fn to the stored session under the store lock. All
	// mutations go through here so the generation goroutine and request
	// handlers never race. Returns false if the session is missing/expired.
	Update(id string, fn func(*domain_models.TripSession) error) (bool, error)

	Delete(id string)
}

type sessionEntry struct {
	session   *domain_models.TripSession
	ttl       time.Duration
	expiresAt time.Time
}

type TripSessions struct {
	mu   sync.RWMutex
	data map[string]*sessionEntry
}

func NewTripSessions() *TripSessions {
	return &TripSessions{
		data: make(map[string]*sessionEntry),
	}
}

func (s *TripSessions) Put(session *domain_models.TripSession, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[session.ID] = &sessionEntry{
		session:   session,
		ttl:       ttl,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *TripSessions) Get(id string) *domain_models.TripSession {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[id]
	if !ok || time.Now().After(e.expiresAt) {
		return nil
	}
	snapshot := *e.session
	return &snapshot
}

func (s *TripSessions) Update(id string, fn func(*domain_models.TripSession) error) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[id]
	if !ok {
		return false, nil
	}
	if time.Now().After(e.expiresAt) {
		delete(s.data, id) // cleanup expired
		return false, nil
	}
	if err := fn(e.session); err != nil {
		return true, err
	}
	e.expiresAt = time.Now().Add(e.ttl)
	return true, nil
}

func (s *TripSessions) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
}
