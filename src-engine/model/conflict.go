package model

import "time"

// EffectiveEnd is the instant an event stops blocking time. Events without an
// end occupy the remainder of their start day, so the stand-in is the next
// midnight in the calendar's zone. Output paths never use this; an all-day
// event is still reported without an end.
func (e *Event) EffectiveEnd(loc *time.Location) time.Time {
	if e.EndUnixUTC != 0 {
		return e.End()
	}
	s := e.Start().In(loc)
	return time.Date(s.Year(), s.Month(), s.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, 1)
}

// ConflictsWith reports half-open interval overlap: aStart < bEnd && bStart < aEnd.
// An event conflicts with itself; back-to-back events don't.
func (e *Event) ConflictsWith(other *Event, loc *time.Location) bool {
	aStart, aEnd := e.Start(), e.EffectiveEnd(loc)
	bStart, bEnd := other.Start(), other.EffectiveEnd(loc)
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
