package quota

// Record is the persisted daily usage counter.
type Record struct {
	Day   string // calendar day in YYYY-MM-DD form
	Count int
}

// Store abstracts persistence of the shared daily usage record.
type Store interface {
	// Usage returns the stored record, or a zero record if none exists yet.
	Usage() (Record, error)

	// SetUsage overwrites the stored record.
	SetUsage(Record) error

	Close() error
}
