package session

import (
	"fmt"
	"testing"
)

func TestPutGet_RoundTrip(t *testing.T) {
	registry := New(10)
	key := Key{ChatID: 100, MessageID: 7}

	registry.Put(key, "Hello")

	text, ok := registry.Get(key)
	if !ok {
		t.Fatal("Get failed for a just-inserted key")
	}
	if text != "Hello" {
		t.Errorf("Expected 'Hello', got '%s'", text)
	}
}

func TestGet_UnknownKey(t *testing.T) {
	registry := New(10)

	if _, ok := registry.Get(Key{ChatID: 1, MessageID: 1}); ok {
		t.Error("Get succeeded for a never-inserted key")
	}
}

func TestPut_ReplacesExistingKey(t *testing.T) {
	registry := New(2)
	key := Key{ChatID: 1, MessageID: 1}

	registry.Put(key, "first")
	registry.Put(key, "second")

	if registry.Len() != 1 {
		t.Errorf("Expected 1 entry after re-put, got %d", registry.Len())
	}

	text, _ := registry.Get(key)
	if text != "second" {
		t.Errorf("Expected replaced text 'second', got '%s'", text)
	}
}

func TestPut_EvictsOldestAtCapacity(t *testing.T) {
	registry := New(3)

	for i := 1; i <= 4; i++ {
		registry.Put(Key{ChatID: 1, MessageID: i}, fmt.Sprintf("text-%d", i))
	}

	if registry.Len() != 3 {
		t.Fatalf("Expected 3 entries at capacity, got %d", registry.Len())
	}

	if _, ok := registry.Get(Key{ChatID: 1, MessageID: 1}); ok {
		t.Error("Oldest entry should have been evicted")
	}

	for i := 2; i <= 4; i++ {
		if _, ok := registry.Get(Key{ChatID: 1, MessageID: i}); !ok {
			t.Errorf("Entry %d missing after eviction", i)
		}
	}
}

func TestNew_DefaultCapacity(t *testing.T) {
	registry := New(0)
	if registry.capacity != DefaultCapacity {
		t.Errorf("Expected default capacity %d, got %d", DefaultCapacity, registry.capacity)
	}
}
