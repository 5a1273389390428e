package session

import (
	"sync"
	"time"

	"ulascansenturk/weather-client/internal/view"
)

type entry struct {
	page       *view.Page
	expiration time.Time
}

// Store keeps one page per browser session. Reading a session extends its
// lifetime by the store TTL.
type Store interface {
	Get(id string) (*view.Page, bool)
	Set(id string, page *view.Page)
	Delete(id string)
}

type InMemoryStore struct {
	sessions        map[string]entry
	mutex           sync.Mutex
	ttl             time.Duration
	cleanupInterval time.Duration
	stop            chan struct{}
	stopOnce        sync.Once
}

func NewInMemoryStore(ttl, cleanupInterval time.Duration) *InMemoryStore {
	store := &InMemoryStore{
		sessions:        make(map[string]entry),
		ttl:             ttl,
		cleanupInterval: cleanupInterval,
		stop:            make(chan struct{}),
	}

	go store.startCleanup()

	return store
}

func (m *InMemoryStore) Get(id string) (*view.Page, bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	e, exists := m.sessions[id]
	if !exists {
		return nil, false
	}

	now := time.Now()
	if now.After(e.expiration) {
		delete(m.sessions, id)
		return nil, false
	}

	e.expiration = now.Add(m.ttl)
	m.sessions[id] = e

	return e.page, true
}

func (m *InMemoryStore) Set(id string, page *view.Page) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.sessions[id] = entry{
		page:       page,
		expiration: time.Now().Add(m.ttl),
	}
}

func (m *InMemoryStore) Delete(id string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	delete(m.sessions, id)
}

// Len reports the number of sessions held, expired or not.
func (m *InMemoryStore) Len() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return len(m.sessions)
}

// Stop ends the cleanup loop. It is safe to call more than once.
func (m *InMemoryStore) Stop() {
	m.stopOnce.Do(func() { close(m.stop) })
}

func (m *InMemoryStore) startCleanup() {
	ticker := time.NewTicker(m.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			m.mutex.Lock()
			now := time.Now()
			for k, v := range m.sessions {
				if now.After(v.expiration) {
					delete(m.sessions, k)
				}
			}
			m.mutex.Unlock()
		}
	}
}
