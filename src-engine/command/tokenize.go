package command

import (
	"fmt"
	"strings"
)

// Tokenize splits a command line on whitespace. Double quotes group a
// multi-word value into one token and are stripped.
func Tokenize(line string) ([]string, error) {
	tokens := make([]string, 0)
	var current strings.Builder
	inQuotes := false
	hasToken := false

	flush := func() {
		if hasToken {
			tokens = append(tokens, current.String())
			current.Reset()
			hasToken = false
		}
	}

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			hasToken = true
		case !inQuotes && (r == ' ' || r == '\t'):
			flush()
		default:
			current.WriteRune(r)
			hasToken = true
		}
	}
	if inQuotes {
		return nil, fmt.Errorf("Tokenize: unterminated quote: %w", ErrInvalidCommand)
	}
	flush()

	return tokens, nil
}
