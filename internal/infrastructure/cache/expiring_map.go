package cache

import (
	"strings"
	"sync"
	"time"
)

type expiringEntry struct {
	value     []byte
	expiresAt time.Time
}

// expiringMap is a mutex-guarded map whose entries expire after a TTL.
// A background loop sweeps expired entries until Close is called.
type expiringMap struct {
	mu        sync.RWMutex
	entries   map[string]expiringEntry
	stopChan  chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
	now       func() time.Time
}

func newExpiringMap(sweepEvery time.Duration) *expiringMap {
	m := &expiringMap{
		entries:  make(map[string]expiringEntry),
		stopChan: make(chan struct{}),
		now:      time.Now,
	}
	m.wg.Add(1)
	go m.sweepLoop(sweepEvery)
	return m
}

// setIfAbsent stores value unless a live entry exists; it reports whether it stored
func (m *expiringMap) setIfAbsent(key string, value []byte, ttl time.Duration) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.entries[key]; ok && m.now().Before(e.expiresAt) {
		return false
	}
	m.entries[key] = expiringEntry{value: value, expiresAt: m.now().Add(ttl)}
	return true
}

func (m *expiringMap) set(key string, value []byte, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = expiringEntry{value: value, expiresAt: m.now().Add(ttl)}
}

func (m *expiringMap) get(key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[key]
	if !ok || !m.now().Before(e.expiresAt) {
		return nil, false
	}
	return e.value, true
}

// deletePrefix removes every key starting with prefix
func (m *expiringMap) deletePrefix(prefix string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for k := range m.entries {
		if strings.HasPrefix(k, prefix) {
			delete(m.entries, k)
			n++
		}
	}
	return n
}

func (m *expiringMap) size() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

func (m *expiringMap) close() {
	m.closeOnce.Do(func() {
		close(m.stopChan)
		m.wg.Wait()
	})
}

func (m *expiringMap) sweepLoop(every time.Duration) {
	defer m.wg.Done()

	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-m.stopChan:
			return
		case <-ticker.C:
			m.sweep()
		}
	}
}

func (m *expiringMap) sweep() {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	for k, e := range m.entries {
		if !now.Before(e.expiresAt) {
			delete(m.entries, k)
		}
	}
}
