package command

import "errors"

var (
	// unknown verb or a token shape outside the grammar
	ErrInvalidCommand = errors.New("invalid command")

	// a date or date-time literal that doesn't parse
	ErrInvalidDateTime = errors.New("invalid date time")

	// a range whose first instant isn't strictly before its second
	ErrInvalidRange = errors.New("invalid range")
)
