// Package domain defines the score types, bounds policies and error kinds shared
// by the grade list and enrollment packages.
//
// A score is a plain float64. The default policy accepts values in the closed
// range [MinScore, MaxScore]. NaN stands for an absent score and is rejected by
// every policy, mirroring a missing value at the boundary of the system.
package domain

import (
	"fmt"
	"math"
)

const (
	// MinScore is the lowest score accepted by the default policy.
	MinScore = 0.0

	// MaxScore is the highest score accepted by the default policy.
	MaxScore = 10.0
)

// NoScore returns the value used to represent an absent score.
func NoScore() float64 { return math.NaN() }

// IsAbsent reports whether score represents a missing value.
func IsAbsent(score float64) bool { return math.IsNaN(score) }

// ScoreValidator enforces a bounds policy on individual scores.
// Implementations must be stateless and free of side effects so they can be
// swapped for alternate policies or test doubles without changing callers.
type ScoreValidator interface {
	// Validate returns nil when score is acceptable. Rejections wrap
	// ErrInvalidArgument.
	Validate(score float64) error
}

// ValidatorFunc adapts an ordinary function to the ScoreValidator interface.
type ValidatorFunc func(score float64) error

// Validate calls f(score).
func (f ValidatorFunc) Validate(score float64) error { return f(score) }

// RangeValidator accepts scores inside an inclusive [Min, Max] range.
type RangeValidator struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	tag string
}

// NewRangeValidator builds a policy for the inclusive range [lo, hi].
// Bounds must be finite and lo must not exceed hi.
func NewRangeValidator(lo, hi float64) (*RangeValidator, error) {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil, fmt.Errorf("%w: bounds must be finite, got [%g, %g]", ErrInvalidArgument, lo, hi)
	}
	if lo > hi {
		return nil, fmt.Errorf("%w: lower bound %g exceeds upper bound %g", ErrInvalidArgument, lo, hi)
	}
	return &RangeValidator{Min: lo, Max: hi, tag: boundsTag(lo, hi)}, nil
}

// DefaultScoreValidator returns the [MinScore, MaxScore] policy.
func DefaultScoreValidator() *RangeValidator {
	return &RangeValidator{Min: MinScore, Max: MaxScore, tag: boundsTag(MinScore, MaxScore)}
}

// Validate implements ScoreValidator.
func (v *RangeValidator) Validate(score float64) error {
	if IsAbsent(score) {
		return fmt.Errorf("%w: score is absent", ErrInvalidArgument)
	}
	tag := v.tag
	if tag == "" {
		tag = boundsTag(v.Min, v.Max)
	}
	if err := validate.Var(score, tag); err != nil {
		return fmt.Errorf("%w: score %g must be between %g and %g", ErrInvalidArgument, score, v.Min, v.Max)
	}
	return nil
}

// String returns the accepted range, e.g. "[0, 10]".
func (v *RangeValidator) String() string { return fmt.Sprintf("[%g, %g]", v.Min, v.Max) }
