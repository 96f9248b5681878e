// Package state holds the client's shared, observable state.
package state

import (
	"sync"

	"github.com/dmitrijs2005/walletsession/internal/client/models"
)

// ProfileStore is the single shared profile. Any number of readers may
// subscribe; writers are expected to be the wallet session alone.
//
// Get returns copies and subscribers receive copies, so callers can never
// mutate the stored value. Subscribers run synchronously on the writer's
// goroutine, outside the store lock.
type ProfileStore struct {
	mu      sync.RWMutex
	profile *models.Profile
	subs    map[uint64]func(*models.Profile)
	nextID  uint64
}

func NewProfileStore() *ProfileStore {
	return &ProfileStore{subs: make(map[uint64]func(*models.Profile))}
}

// Get returns the current profile, or nil when none is loaded.
func (s *ProfileStore) Get() *models.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile.Clone()
}

func (s *ProfileStore) Set(p *models.Profile) {
	s.mu.Lock()
	s.profile = p.Clone()
	subs := s.snapshotSubs()
	s.mu.Unlock()

	s.notify(subs, p)
}

func (s *ProfileStore) Clear() {
	s.Set(nil)
}

// Subscribe registers fn for every subsequent change and returns a function
// that removes it.
func (s *ProfileStore) Subscribe(fn func(*models.Profile)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

func (s *ProfileStore) snapshotSubs() []func(*models.Profile) {
	out := make([]func(*models.Profile), 0, len(s.subs))
	for _, fn := range s.subs {
		out = append(out, fn)
	}
	return out
}

func (s *ProfileStore) notify(subs []func(*models.Profile), p *models.Profile) {
	for _, fn := range subs {
		fn(p.Clone())
	}
}
