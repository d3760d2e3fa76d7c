// Package enrollment tracks course capacity against the number of enrolled
// students and offers a standalone mean over caller-supplied scores.
//
// Enrollment Architecture:
//   - Capacity fixed at construction and never negative
//   - Enrolled count stored verbatim with no upper bound
//   - No shared state with the grades package
//
// Integration with Course Workflows:
//   - HasAvailableCapacity: seat check before admitting another student
//   - Mean: stateless average where a nil list and an empty list are distinct errors
package enrollment

import (
	"fmt"

	"github.com/ahrav/gradebook/internal/domain"
)

// Course holds a capacity and the current enrollment count. The zero value is
// a course with no capacity, which is enough for Mean.
//
// No relation between capacity and count is enforced; a course may report
// more enrolled students than seats.
type Course struct {
	capacity int
	enrolled int
}

// NewCourse creates a course with the given capacity and nobody enrolled.
func NewCourse(capacity int) (*Course, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: capacity %d is negative", domain.ErrInvalidArgument, capacity)
	}
	return &Course{capacity: capacity}, nil
}

// Capacity returns the number of seats.
func (c *Course) Capacity() int { return c.capacity }

// Enrolled returns the current enrollment count.
func (c *Course) Enrolled() int { return c.enrolled }

// SetEnrolled stores n as the enrollment count without validation.
func (c *Course) SetEnrolled(n int) { c.enrolled = n }

// HasAvailableCapacity reports whether fewer students are enrolled than seats exist.
func (c *Course) HasAvailableCapacity() bool { return c.enrolled < c.capacity }

// Mean returns the arithmetic mean of scores. A nil slice fails with
// domain.ErrNullInput and an empty one with domain.ErrInvalidArgument.
// Values are not bounds-checked.
func (c *Course) Mean(scores []float64) (float64, error) {
	if scores == nil {
		return 0, domain.ErrNullInput
	}
	if len(scores) == 0 {
		return 0, fmt.Errorf("%w: no scores to average", domain.ErrInvalidArgument)
	}
	return domain.Mean(scores), nil
}
