package grades_test

import (
	"errors"
	"math"
	"testing"
	"testing/quick"

	"github.com/ahrav/gradebook/internal/domain"
	"github.com/ahrav/gradebook/internal/grades"
)

func fold(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return math.Abs(math.Mod(x, domain.MaxScore))
}

// Property: appending a valid score grows the list by one and stores it last
func TestList_Append_Property(t *testing.T) {
	f := func(raw []float64, next float64) bool {
		l := grades.NewList(nil, nil)
		for _, x := range raw {
			if err := l.Append(fold(x)); err != nil {
				return false
			}
		}
		before := l.Len()
		s := fold(next)
		if err := l.Append(s); err != nil {
			return false
		}
		got, err := l.At(l.Len() - 1)
		return err == nil && l.Len() == before+1 && got == s
	}

	if err := quick.Check(f, nil); err != nil {
		t.Errorf("append property failed: %v", err)
	}
}

// Property: any index outside [0, len) is rejected without changing the list
func TestList_IndexOutOfRange_Property(t *testing.T) {
	f := func(raw []float64, idx int) bool {
		l := grades.NewList(nil, nil)
		for _, x := range raw {
			_ = l.Append(fold(x))
		}
		n := l.Len()
		if idx >= 0 && idx < n {
			idx = -1 - idx
		}

		_, getErr := l.At(idx)
		updErr := l.Update(idx, 5)
		delErr := l.Delete(idx)

		return errors.Is(getErr, domain.ErrIndexOutOfRange) &&
			errors.Is(updErr, domain.ErrIndexOutOfRange) &&
			errors.Is(delErr, domain.ErrIndexOutOfRange) &&
			l.Len() == n
	}

	if err := quick.Check(f, nil); err != nil {
		t.Errorf("index property failed: %v", err)
	}
}

// Property: Mean matches sum/count for any non-empty list of valid scores
func TestList_Mean_Property(t *testing.T) {
	f := func(raw []float64) bool {
		l := grades.NewList(nil, nil)
		var sum float64
		for _, x := range raw {
			s := fold(x)
			sum += s
			_ = l.Append(s)
		}

		mean, err := l.Mean()
		if len(raw) == 0 {
			return errors.Is(err, domain.ErrEmptyState)
		}
		return err == nil && math.Abs(mean-sum/float64(len(raw))) < 1e-9
	}

	if err := quick.Check(f, nil); err != nil {
		t.Errorf("mean property failed: %v", err)
	}
}
