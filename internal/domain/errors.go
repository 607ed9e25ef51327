package domain

import "errors"

var (
	// ErrDateFormat is returned when a date string does not match DateLayout.
	ErrDateFormat = errors.New("invalid date format, expected dd/MM/yyyy")
	// ErrInvalidRange is returned when a range starts after it ends.
	ErrInvalidRange = errors.New("invalid date range: start is after end")
	ErrNotFound     = errors.New("employee not found")
	ErrDuplicateID  = errors.New("employee id already exists")
)
