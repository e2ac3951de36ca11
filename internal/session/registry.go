// Package session correlates rendered language-picker messages with the
// original text they offer to translate. The registry is bounded: once the
// capacity is reached the oldest session is evicted, so a long-running bot
// does not grow without limit.
package session

import "sync"

// DefaultCapacity bounds the registry when no explicit capacity is given.
const DefaultCapacity = 4096

// Key identifies a picker message within a chat.
type Key struct {
	ChatID    int64
	MessageID int
}

// Registry is a bounded, concurrency-safe table of translation sessions.
type Registry struct {
	mu       sync.Mutex
	capacity int
	entries  map[Key]string
	order    []Key // insertion order, oldest first
}

// New creates a registry holding at most capacity sessions. A capacity <= 0
// falls back to DefaultCapacity.
func New(capacity int) *Registry {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Registry{
		capacity: capacity,
		entries:  make(map[Key]string),
	}
}

// Put registers the original text for a picker message, evicting the oldest
// session when the registry is full. Re-registering an existing key replaces
// its text without consuming capacity.
func (r *Registry) Put(key Key, originalText string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[key]; exists {
		r.entries[key] = originalText
		return
	}

	if len(r.entries) >= r.capacity {
		oldest := r.order[0]
		r.order = r.order[1:]
		delete(r.entries, oldest)
	}

	r.entries[key] = originalText
	r.order = append(r.order, key)
}

// Get returns the original text for a picker message. The second return value
// is false when the session is unknown or was evicted.
func (r *Registry) Get(key Key) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	text, ok := r.entries[key]
	return text, ok
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.entries)
}
