package quota

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func fixedDay(day string) func() time.Time {
	t, err := time.Parse("2006-01-02", day)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func TestReserve_AdmitsUpToLimit(t *testing.T) {
	store := NewMemoryStore()
	gate := NewGate(store, 3)
	gate.now = fixedDay("2025-06-01")

	for i := 0; i < 3; i++ {
		if err := gate.Reserve(); err != nil {
			t.Fatalf("Reserve %d failed: %v", i+1, err)
		}
	}

	err := gate.Reserve()
	if !errors.Is(err, ErrQuotaExceeded) {
		t.Errorf("Expected ErrQuotaExceeded after limit, got %v", err)
	}

	record, _ := store.Usage()
	if record.Count != 3 {
		t.Errorf("Expected stored count 3, got %d", record.Count)
	}
}

func TestReserve_ResetsOnDayRollover(t *testing.T) {
	store := NewMemoryStore()
	gate := NewGate(store, 2)
	gate.now = fixedDay("2025-06-01")

	if err := gate.Reserve(); err != nil {
		t.Fatalf("Reserve failed: %v", err)
	}
	if err := gate.Reserve(); err != nil {
		t.Fatalf("Reserve failed: %v", err)
	}
	if err := gate.Reserve(); !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("Expected exhaustion on first day, got %v", err)
	}

	// Next day: the stale record counts as zero again.
	gate.now = fixedDay("2025-06-02")
	if err := gate.Reserve(); err != nil {
		t.Errorf("Reserve after rollover failed: %v", err)
	}

	record, _ := store.Usage()
	if record.Day != "2025-06-02" {
		t.Errorf("Expected stored day 2025-06-02, got %s", record.Day)
	}
	if record.Count != 1 {
		t.Errorf("Expected stored count 1 after rollover, got %d", record.Count)
	}
}

func TestRemaining_RolloverIsDurable(t *testing.T) {
	store := NewMemoryStore()
	store.record = Record{Day: "2025-05-31", Count: 1400}

	gate := NewGate(store, 1500)
	gate.now = fixedDay("2025-06-01")

	remaining, err := gate.Remaining()
	if err != nil {
		t.Fatalf("Remaining failed: %v", err)
	}
	if remaining != 1500 {
		t.Errorf("Expected full budget after rollover, got %d", remaining)
	}

	// The reset must have been written back, not just read-interpreted.
	record, _ := store.Usage()
	if record.Day != "2025-06-01" || record.Count != 0 {
		t.Errorf("Expected durable reset record {2025-06-01 0}, got %+v", record)
	}
}

func TestReserve_StoreErrorFailsClosed(t *testing.T) {
	store := NewMemoryStore()
	store.FailWith = errors.New("disk gone")

	gate := NewGate(store, 10)

	err := gate.Reserve()
	if err == nil {
		t.Fatal("Expected error from failing store")
	}
	if errors.Is(err, ErrQuotaExceeded) {
		t.Error("Store failure must not be reported as quota exhaustion")
	}
}

func TestReserve_ConcurrentAdmissionsAreExact(t *testing.T) {
	store := NewMemoryStore()
	gate := NewGate(store, 50)
	gate.now = fixedDay("2025-06-01")

	var wg sync.WaitGroup
	var mu sync.Mutex
	admitted := 0

	for i := 0; i < 80; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := gate.Reserve(); err == nil {
				mu.Lock()
				admitted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if admitted != 50 {
		t.Errorf("Expected exactly 50 admissions, got %d", admitted)
	}

	record, _ := store.Usage()
	if record.Count != 50 {
		t.Errorf("Expected stored count 50, got %d", record.Count)
	}
}

func TestNewGate_DefaultLimit(t *testing.T) {
	gate := NewGate(NewMemoryStore(), 0)
	if gate.limit != DefaultDailyLimit {
		t.Errorf("Expected default limit %d, got %d", DefaultDailyLimit, gate.limit)
	}
}
