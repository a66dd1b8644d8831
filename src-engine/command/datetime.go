package command

import (
	"fmt"
	"time"
)

// Literals carry no zone of their own; the owning calendar's zone applies at
// execution time. Until then parsed values are wall-clock carriers in UTC.
const (
	dateLayout = "2006-01-02"

	dateTimeLayout        = "2006-01-02T15:04"
	dateTimeSecondsLayout = "2006-01-02T15:04:05"
)

// ParseDateTime accepts a combined date-time literal or a date-only literal,
// the latter defaulting the time-of-day to midnight.
func ParseDateTime(token string) (time.Time, error) {
	for _, layout := range []string{dateTimeSecondsLayout, dateTimeLayout, dateLayout} {
		if t, err := time.ParseInLocation(layout, token, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("ParseDateTime: %q: %w", token, ErrInvalidDateTime)
}

// OnArg is the result of an "on" argument: the full instant (midnight when
// the literal had no time) and the pure date.
type OnArg struct {
	Instant time.Time
	Date    time.Time
}

func ParseOn(token string) (OnArg, error) {
	instant, err := ParseDateTime(token)
	if err != nil {
		return OnArg{}, fmt.Errorf("ParseOn: %w", err)
	}
	return OnArg{
		Instant: instant,
		Date:    instant.Truncate(24 * time.Hour),
	}, nil
}

// ParseRange parses two date-time literals and requires the first to be
// strictly before the second.
func ParseRange(fromToken, toToken string) (time.Time, time.Time, error) {
	from, err := ParseDateTime(fromToken)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("ParseRange: %w", err)
	}
	to, err := ParseDateTime(toToken)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("ParseRange: %w", err)
	}
	if !from.Before(to) {
		return time.Time{}, time.Time{}, fmt.Errorf("ParseRange: %q is not before %q: %w", fromToken, toToken, ErrInvalidRange)
	}
	return from, to, nil
}

// atZone reinterprets a wall-clock carrier in the given zone.
func atZone(wall time.Time, loc *time.Location) time.Time {
	return time.Date(
		wall.Year(), wall.Month(), wall.Day(),
		wall.Hour(), wall.Minute(), wall.Second(), 0,
		loc,
	)
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
