// Package grades manages an ordered, index-addressable list of scores for a
// course. Every stored score has passed the list's ScoreValidator; failed
// operations leave the list untouched.
//
// List Architecture:
//   - Scores held in insertion order and addressed by zero-based index
//   - Bounds policy injected as a domain.ScoreValidator at construction
//   - Validate-then-mutate: index checks precede value checks on Update
//   - Reads return copies so callers never alias internal storage
//   - Mean over an empty list is an error, not zero
//
// Integration with Course Workflows:
//   - Append, Update and Delete: audited mutations of the score sequence
//   - At and All: audited reads used by reporting and the CLI
//   - Audit: successful operations are reported to an audit.Sink
//
// A List is not safe for concurrent use.
package grades

import (
	"fmt"
	"slices"

	"github.com/ahrav/gradebook/internal/audit"
	"github.com/ahrav/gradebook/internal/domain"
)

// List is an ordered sequence of validated scores.
type List struct {
	scores    []float64
	validator domain.ScoreValidator
	sink      audit.Sink
}

// NewList creates an empty list. A nil validator selects
// domain.DefaultScoreValidator; a nil sink discards audit events.
func NewList(validator domain.ScoreValidator, sink audit.Sink) *List {
	if validator == nil {
		validator = domain.DefaultScoreValidator()
	}
	if sink == nil {
		sink = audit.NopSink{}
	}
	return &List{validator: validator, sink: sink}
}

// Len returns the number of stored scores.
func (l *List) Len() int { return len(l.scores) }

// Append adds score to the end of the list. Validator errors are returned as is.
func (l *List) Append(score float64) error {
	if err := l.validator.Validate(score); err != nil {
		return err
	}
	l.scores = append(l.scores, score)
	l.sink.Record(audit.NewEvent(audit.OpAppend, len(l.scores)-1, score, len(l.scores)))
	return nil
}

// At returns the score stored at index.
func (l *List) At(index int) (float64, error) {
	if err := l.checkIndex(index); err != nil {
		return 0, err
	}
	score := l.scores[index]
	l.sink.Record(audit.NewEvent(audit.OpGet, index, score, len(l.scores)))
	return score, nil
}

// All returns a copy of every stored score in insertion order.
func (l *List) All() []float64 {
	out := slices.Clone(l.scores)
	if out == nil {
		out = []float64{}
	}
	l.sink.Record(audit.NewEvent(audit.OpList, audit.NoIndex, 0, len(l.scores)))
	return out
}

// Update replaces the score at index. The index is checked before the value,
// so an out-of-range index is reported without consulting the validator.
func (l *List) Update(index int, score float64) error {
	if err := l.checkIndex(index); err != nil {
		return err
	}
	if err := l.validator.Validate(score); err != nil {
		return err
	}
	l.scores[index] = score
	l.sink.Record(audit.NewEvent(audit.OpUpdate, index, score, len(l.scores)))
	return nil
}

// Delete removes the score at index and shifts later scores down by one.
func (l *List) Delete(index int) error {
	if err := l.checkIndex(index); err != nil {
		return err
	}
	removed := l.scores[index]
	l.scores = slices.Delete(l.scores, index, index+1)
	l.sink.Record(audit.NewEvent(audit.OpDelete, index, removed, len(l.scores)))
	return nil
}

// Mean returns the arithmetic mean of the stored scores.
// It fails with domain.ErrEmptyState when the list is empty.
func (l *List) Mean() (float64, error) {
	if len(l.scores) == 0 {
		return 0, domain.ErrEmptyState
	}
	return domain.Mean(l.scores), nil
}

func (l *List) checkIndex(index int) error {
	if index < 0 || index >= len(l.scores) {
		return fmt.Errorf("%w: index %d, length %d", domain.ErrIndexOutOfRange, index, len(l.scores))
	}
	return nil
}
