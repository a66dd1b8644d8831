package model

import "errors"

var (
	// unknown property name, or a property value that doesn't parse or
	// breaks an event invariant
	ErrInvalidPropertyValue = errors.New("invalid property value")

	// a recurrence template with neither a count nor an until date;
	// validated input should never get here
	ErrUnboundedRecurrence = errors.New("recurrence has no count or until bound")
)
