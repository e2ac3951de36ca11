// Package quota enforces the shared daily translation budget. A Gate wraps a
// Store holding a single (day, count) record, resets the counter on calendar
// day rollover, and admits requests with an atomic compare-and-increment.
package quota
