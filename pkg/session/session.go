// Package session accumulates field-pipeline simulation runs for one
// interactive session. The log is append-only: every run adds a record,
// nothing is edited, deduplicated or removed, and the whole log is
// discarded with the session that owns it.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/edamos/emrp/pkg/field"
)

// Record is one completed simulation run.
type Record struct {
	ID     uuid.UUID `json:"id"`
	RanAt  time.Time `json:"ran_at"`
	Planet string    `json:"planet"`
	field.Inputs
	field.Metrics
}

// Log is the per-session accumulator. A Log is owned by whoever created
// it (the CLI invocation or the server process); sessions never share one.
// The mutex exists because net/http drives handlers from multiple
// goroutines, not because concurrent sessions share state.
type Log struct {
	mu      sync.Mutex
	records []Record
}

// NewLog returns an empty accumulator. Call it at session start.
func NewLog() *Log {
	return &Log{}
}

// Run evaluates the field pipeline for the given planet and inputs,
// appends the resulting record and returns it. Repeated identical inputs
// append identical-valued but distinct records.
func (l *Log) Run(planet string, in field.Inputs) Record {
	rec := Record{
		ID:      uuid.New(),
		RanAt:   time.Now().UTC(),
		Planet:  planet,
		Inputs:  in,
		Metrics: field.Evaluate(in),
	}
	l.mu.Lock()
	l.records = append(l.records, rec)
	l.mu.Unlock()
	return rec
}

// Records returns a copy of all accumulated records in run order.
func (l *Log) Records() []Record {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Record, len(l.records))
	copy(out, l.records)
	return out
}

// Len reports how many runs have accumulated.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}

// Latest returns the most recent record, or false when the log is empty.
func (l *Log) Latest() (Record, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.records) == 0 {
		return Record{}, false
	}
	return l.records[len(l.records)-1], true
}
