package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/olebedev/when"
)

// ResolveNaturalDates replaces every {...} span in line with a date-time
// literal resolved by the when parser, e.g.
//
//	create event Standup from {next monday 9am} to {next monday 9:30am}
//
// becomes a line the strict grammar accepts. Returns the line unchanged when
// it contains no braces.
func ResolveNaturalDates(w *when.Parser, line string, base time.Time) (string, error) {
	if !strings.Contains(line, "{") {
		return line, nil
	}

	var sb strings.Builder
	rest := line
	for {
		open := strings.Index(rest, "{")
		if open == -1 {
			sb.WriteString(rest)
			break
		}
		closing := strings.Index(rest[open:], "}")
		if closing == -1 {
			return "", fmt.Errorf("ResolveNaturalDates: unclosed brace in %q", line)
		}
		closing += open

		sb.WriteString(rest[:open])
		text := strings.TrimSpace(rest[open+1 : closing])
		result, err := w.Parse(text, base)
		if err != nil {
			return "", fmt.Errorf("ResolveNaturalDates: can't parse %q: %w", text, err)
		}
		if result == nil {
			return "", fmt.Errorf("ResolveNaturalDates: %q is not a date", text)
		}
		sb.WriteString(result.Time.Format("2006-01-02T15:04"))

		rest = rest[closing+1:]
	}

	return sb.String(), nil
}
