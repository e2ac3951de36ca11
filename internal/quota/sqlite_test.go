package quota

import (
	"path/filepath"
	"testing"
)

func TestSQLiteStore_RoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "quota.db")

	store, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	defer store.Close()

	// Empty database yields a zero record, not an error.
	record, err := store.Usage()
	if err != nil {
		t.Fatalf("Usage on empty store failed: %v", err)
	}
	if record.Day != "" || record.Count != 0 {
		t.Errorf("Expected zero record, got %+v", record)
	}

	want := Record{Day: "2025-06-01", Count: 42}
	if err := store.SetUsage(want); err != nil {
		t.Fatalf("SetUsage failed: %v", err)
	}

	got, err := store.Usage()
	if err != nil {
		t.Fatalf("Usage failed: %v", err)
	}
	if got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}

	// Overwrite keeps a single row.
	want = Record{Day: "2025-06-02", Count: 0}
	if err := store.SetUsage(want); err != nil {
		t.Fatalf("SetUsage overwrite failed: %v", err)
	}
	got, _ = store.Usage()
	if got != want {
		t.Errorf("Expected %+v after overwrite, got %+v", want, got)
	}
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "quota.db")

	store, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}

	want := Record{Day: "2025-06-01", Count: 7}
	if err := store.SetUsage(want); err != nil {
		t.Fatalf("SetUsage failed: %v", err)
	}
	store.Close()

	reopened, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Usage()
	if err != nil {
		t.Fatalf("Usage after reopen failed: %v", err)
	}
	if got != want {
		t.Errorf("Expected %+v after reopen, got %+v", want, got)
	}
}

func TestGateOverSQLiteStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "quota.db")

	store, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	defer store.Close()

	gate := NewGate(store, 2)
	gate.now = fixedDay("2025-06-01")

	if err := gate.Reserve(); err != nil {
		t.Fatalf("First reserve failed: %v", err)
	}
	if err := gate.Reserve(); err != nil {
		t.Fatalf("Second reserve failed: %v", err)
	}
	if err := gate.Reserve(); err == nil {
		t.Error("Expected exhaustion on third reserve")
	}
}
