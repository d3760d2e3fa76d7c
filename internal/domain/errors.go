package domain

import "errors"

// ErrInvalidArgument indicates that a score is absent or falls outside the
// accepted bounds, or that an argument such as a capacity is not usable.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrIndexOutOfRange indicates that a position is negative or not below the
// current length of the list it addresses.
var ErrIndexOutOfRange = errors.New("index out of range")

// ErrEmptyState indicates that an operation needs at least one recorded score.
var ErrEmptyState = errors.New("no scores recorded")

// ErrNullInput indicates that a required list argument was not supplied at all.
var ErrNullInput = errors.New("input list is nil")
