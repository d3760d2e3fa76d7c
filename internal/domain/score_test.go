package domain //nolint:testpackage // Need access to unexported validate

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultScoreValidator_Validate(t *testing.T) {
	v := DefaultScoreValidator()

	tests := []struct {
		name    string
		score   float64
		wantErr bool
	}{
		{name: "lower bound", score: 0, wantErr: false},
		{name: "mid range", score: 5.5, wantErr: false},
		{name: "upper bound", score: 10, wantErr: false},
		{name: "negative", score: -5, wantErr: true},
		{name: "just below zero", score: -0.0001, wantErr: true},
		{name: "above ten", score: 11, wantErr: true},
		{name: "just above ten", score: 10.0001, wantErr: true},
		{name: "absent", score: NoScore(), wantErr: true},
		{name: "positive infinity", score: math.Inf(1), wantErr: true},
		{name: "negative infinity", score: math.Inf(-1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.score)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidArgument)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRangeValidator_AbsentMessage(t *testing.T) {
	err := DefaultScoreValidator().Validate(NoScore())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent")
}

func TestRangeValidator_OutOfRangeMessage(t *testing.T) {
	err := DefaultScoreValidator().Validate(11)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "between 0 and 10")
}

func TestNewRangeValidator(t *testing.T) {
	t.Run("custom bounds", func(t *testing.T) {
		v, err := NewRangeValidator(1, 5)
		require.NoError(t, err)
		assert.Equal(t, 1.0, v.Min)
		assert.Equal(t, 5.0, v.Max)
		assert.NoError(t, v.Validate(1))
		assert.NoError(t, v.Validate(5))
		assert.ErrorIs(t, v.Validate(0.5), ErrInvalidArgument)
		assert.ErrorIs(t, v.Validate(5.5), ErrInvalidArgument)
	})

	t.Run("single point range", func(t *testing.T) {
		v, err := NewRangeValidator(3, 3)
		require.NoError(t, err)
		assert.NoError(t, v.Validate(3))
		assert.Error(t, v.Validate(3.1))
	})

	t.Run("negative bounds", func(t *testing.T) {
		v, err := NewRangeValidator(-2.5, -1)
		require.NoError(t, err)
		assert.NoError(t, v.Validate(-2))
		assert.Error(t, v.Validate(0))
	})

	t.Run("inverted bounds", func(t *testing.T) {
		v, err := NewRangeValidator(10, 0)
		assert.Nil(t, v)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("non-finite bounds", func(t *testing.T) {
		_, err := NewRangeValidator(math.NaN(), 10)
		assert.ErrorIs(t, err, ErrInvalidArgument)
		_, err = NewRangeValidator(0, math.Inf(1))
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestRangeValidator_ZeroValue(t *testing.T) {
	var v RangeValidator
	assert.NoError(t, v.Validate(0))
	assert.Error(t, v.Validate(1))
}

func TestRangeValidator_String(t *testing.T) {
	assert.Equal(t, "[0, 10]", DefaultScoreValidator().String())
}

func TestValidatorFunc(t *testing.T) {
	errRejected := errors.New("rejected")
	var called float64
	var v ScoreValidator = ValidatorFunc(func(score float64) error {
		called = score
		return errRejected
	})

	err := v.Validate(7)
	assert.ErrorIs(t, err, errRejected)
	assert.Equal(t, 7.0, called)
}

func TestIsAbsent(t *testing.T) {
	assert.True(t, IsAbsent(NoScore()))
	assert.False(t, IsAbsent(0))
	assert.False(t, IsAbsent(math.Inf(1)))
}

func TestScoreBounds(t *testing.T) {
	assert.Equal(t, 0.0, MinScore)
	assert.Equal(t, 10.0, MaxScore)
	assert.Equal(t, "gte=0,lte=10", boundsTag(MinScore, MaxScore))
	assert.Equal(t, "gte=-1.5,lte=2.25", boundsTag(-1.5, 2.25))
}
