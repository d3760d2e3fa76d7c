// Package audit carries informational notifications about grade list access.
// Sinks observe successful operations only; they never influence the result or
// the error returned to the caller of the operation being observed.
//
// Audit Architecture:
//   - Event envelopes stamped with a UUID and UTC time, checked by struct tags
//   - Sink interface with no error return; delivery failures stay inside the sink
//   - LogSink writes slog records, Info for mutations and Debug for reads
//   - StreamSink publishes to a Redis stream under a rate budget and deadline
//   - MultiSink fans out to several sinks and sums their publish counters
//
// Integration with Grade Workflows:
//   - grades.List: emits one Event per successful operation
//   - New: selects the sink from configuration.AuditConfig
//   - StatsReporter: published, dropped and failed counts for shutdown logging
package audit

import (
	"time"

	"github.com/google/uuid"

	"github.com/ahrav/gradebook/internal/domain"
)

// Op identifies the grade list operation an event describes.
type Op string

const (
	// OpAppend is emitted after a score is added to the end of the list.
	OpAppend Op = "append"

	// OpGet is emitted after a single score is read.
	OpGet Op = "get"

	// OpList is emitted after the full list is copied out.
	OpList Op = "list"

	// OpUpdate is emitted after a score is replaced in place.
	OpUpdate Op = "update"

	// OpDelete is emitted after a score is removed.
	OpDelete Op = "delete"
)

// String returns the string representation of the operation.
func (o Op) String() string { return string(o) }

// IsMutation reports whether the operation changes the list.
func (o Op) IsMutation() bool {
	switch o {
	case OpAppend, OpUpdate, OpDelete:
		return true
	default:
		return false
	}
}

// NoIndex is the Index of events that do not address a single position.
const NoIndex = -1

// Event describes one successful grade list operation.
type Event struct {
	// ID uniquely identifies the notification.
	ID uuid.UUID `json:"id" validate:"required"`

	// Op is the operation that succeeded.
	Op Op `json:"op" validate:"required,oneof=append get list update delete"`

	// Index is the zero-based position touched, or NoIndex for OpList.
	Index int `json:"index" validate:"min=-1"`

	// Value is the score written, read or removed. Zero for OpList.
	Value float64 `json:"value"`

	// Count is the list length after the operation.
	Count int `json:"count" validate:"min=0"`

	// OccurredAt records when the operation completed.
	OccurredAt time.Time `json:"occurred_at" validate:"required"`
}

// NewEvent stamps an event with a fresh ID and the current UTC time.
func NewEvent(op Op, index int, value float64, count int) Event {
	return Event{
		ID:         uuid.New(),
		Op:         op,
		Index:      index,
		Value:      value,
		Count:      count,
		OccurredAt: time.Now().UTC(),
	}
}

// Position returns the one-based record number for Index, or 0 for NoIndex.
func (e Event) Position() int {
	if e.Index < 0 {
		return 0
	}
	return e.Index + 1
}

// Validate checks the event envelope constraints.
func (e *Event) Validate() error { return domain.Validator().Struct(e) }
