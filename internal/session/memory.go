package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// Memory is an in-process Store with TTL expiry, the default when no Redis is
// configured. State is stored as JSON so Get hands back copies, same as the
// Redis store would.
type Memory struct {
	ttl time.Duration

	mu      sync.Mutex
	entries map[string]memoryEntry
	stop    chan struct{}
	once    sync.Once
}

type memoryEntry struct {
	data     []byte
	deadline time.Time
}

func NewMemory(ttl time.Duration) *Memory {
	m := &Memory{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
		stop:    make(chan struct{}),
	}
	go m.sweep()
	return m
}

func (m *Memory) Get(ctx context.Context, id string) (*State, error) {
	m.mu.Lock()
	e, ok := m.entries[id]
	if ok && time.Now().After(e.deadline) {
		delete(m.entries, id)
		ok = false
	}
	m.mu.Unlock()

	if !ok {
		return NewState(), nil
	}
	st := NewState()
	if err := json.Unmarshal(e.data, st); err != nil {
		return NewState(), nil
	}
	if st.Cart == nil {
		st.Cart = map[string]int{}
	}
	return st, nil
}

func (m *Memory) Put(ctx context.Context, id string, st *State) error {
	data, err := json.Marshal(st)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.entries[id] = memoryEntry{data: data, deadline: time.Now().Add(m.ttl)}
	m.mu.Unlock()
	return nil
}

func (m *Memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	delete(m.entries, id)
	m.mu.Unlock()
	return nil
}

// Close stops the background sweeper.
func (m *Memory) Close() {
	m.once.Do(func() { close(m.stop) })
}

func (m *Memory) sweep() {
	interval := m.ttl / 2
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-m.stop:
			return
		case now := <-ticker.C:
			m.mu.Lock()
			for id, e := range m.entries {
				if now.After(e.deadline) {
					delete(m.entries, id)
				}
			}
			m.mu.Unlock()
		}
	}
}
