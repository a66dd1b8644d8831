package command

import (
	"fmt"
	"time"
)

var weekdayLetters = map[rune]time.Weekday{
	'M': time.Monday,
	'T': time.Tuesday,
	'W': time.Wednesday,
	'R': time.Thursday,
	'F': time.Friday,
	'S': time.Saturday,
	'U': time.Sunday,
}

// ParseWeekdays decodes a run of single-letter weekday codes (MTWRFSU,
// R=Thursday, U=Sunday). Repeated letters collapse.
func ParseWeekdays(token string) ([]time.Weekday, error) {
	seen := make(map[time.Weekday]struct{})
	weekdays := make([]time.Weekday, 0, len(token))
	for _, r := range token {
		wd, ok := weekdayLetters[r]
		if !ok {
			return nil, fmt.Errorf("ParseWeekdays: unknown weekday letter %q: %w", string(r), ErrInvalidCommand)
		}
		if _, dup := seen[wd]; dup {
			continue
		}
		seen[wd] = struct{}{}
		weekdays = append(weekdays, wd)
	}
	return weekdays, nil
}
