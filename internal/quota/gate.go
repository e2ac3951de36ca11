package quota

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// DefaultDailyLimit caps translation requests per calendar day across all users.
const DefaultDailyLimit = 1500

// ErrQuotaExceeded is returned by Reserve once the daily limit is reached.
var ErrQuotaExceeded = errors.New("quota: daily translation limit exceeded")

// Gate admits translation requests against a shared daily budget. The stored
// record is reset to zero the first time it is touched on a new calendar day,
// and the reset is written back so it survives restarts.
type Gate struct {
	mu    sync.Mutex
	store Store
	limit int
	now   func() time.Time
}

// NewGate creates a gate over the given store. A limit <= 0 falls back to
// DefaultDailyLimit.
func NewGate(store Store, limit int) *Gate {
	if limit <= 0 {
		limit = DefaultDailyLimit
	}
	return &Gate{
		store: store,
		limit: limit,
		now:   time.Now,
	}
}

// Reserve atomically admits one translation request and consumes one unit of
// the daily budget. It returns ErrQuotaExceeded when the budget is spent, and
// propagates store errors without admitting (fail closed).
func (g *Gate) Reserve() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	record, err := g.effectiveRecord()
	if err != nil {
		return err
	}

	if record.Count >= g.limit {
		return ErrQuotaExceeded
	}

	record.Count++
	if err := g.store.SetUsage(record); err != nil {
		return fmt.Errorf("quota: failed to record admission: %w", err)
	}
	return nil
}

// Remaining reports how many admissions are left for the current day.
func (g *Gate) Remaining() (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	record, err := g.effectiveRecord()
	if err != nil {
		return 0, err
	}

	remaining := g.limit - record.Count
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

// effectiveRecord reads the stored record and durably resets it when the
// calendar day has rolled over. Callers must hold g.mu.
func (g *Gate) effectiveRecord() (Record, error) {
	record, err := g.store.Usage()
	if err != nil {
		return Record{}, fmt.Errorf("quota: failed to read usage: %w", err)
	}

	today := g.today()
	if record.Day != today {
		record = Record{Day: today, Count: 0}
		if err := g.store.SetUsage(record); err != nil {
			return Record{}, fmt.Errorf("quota: failed to reset usage for new day: %w", err)
		}
	}
	return record, nil
}

func (g *Gate) today() string {
	return g.now().Format("2006-01-02")
}
