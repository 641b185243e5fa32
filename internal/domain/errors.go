package domain

import "errors"

var (
	// ErrInvalidTarget indicates a target value that is not a whole number >= 1.
	ErrInvalidTarget = errors.New("invalid target")

	// ErrInvalidTargetMode indicates a target mode outside daily/monthly/yearly.
	ErrInvalidTargetMode = errors.New("invalid target mode")

	// ErrInvalidCount indicates a count delta that is not a whole number > 0.
	ErrInvalidCount = errors.New("invalid count")

	// ErrInvalidDate indicates a date key that is not YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date")
)
