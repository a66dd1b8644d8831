package command

import "fmt"

type eventFlags struct {
	description string
	location    string
	isPublic    bool
	autoDecline bool
}

// takeValueFlag removes "--name value" from the token stream, returning the
// value and the remaining tokens.
func takeValueFlag(tokens []string, name string) (string, []string, error) {
	for i, token := range tokens {
		if token != name {
			continue
		}
		if i+1 >= len(tokens) {
			return "", nil, fmt.Errorf("flag %s has no value: %w", name, ErrInvalidCommand)
		}
		value := tokens[i+1]
		rest := make([]string, 0, len(tokens)-2)
		rest = append(rest, tokens[:i]...)
		rest = append(rest, tokens[i+2:]...)
		return value, rest, nil
	}
	return "", tokens, nil
}

func takeBoolFlag(tokens []string, name string) (bool, []string) {
	for i, token := range tokens {
		if token != name {
			continue
		}
		rest := make([]string, 0, len(tokens)-1)
		rest = append(rest, tokens[:i]...)
		rest = append(rest, tokens[i+1:]...)
		return true, rest
	}
	return false, tokens
}

// extractEventFlags strips the optional event flags before positional
// matching. The order is fixed (description, location, visibility, then
// auto-decline) so overlapping tokens never match two flags.
func extractEventFlags(tokens []string) (eventFlags, []string, error) {
	flags := eventFlags{isPublic: true}
	var err error

	flags.description, tokens, err = takeValueFlag(tokens, "--desc")
	if err != nil {
		return eventFlags{}, nil, err
	}
	flags.location, tokens, err = takeValueFlag(tokens, "--location")
	if err != nil {
		return eventFlags{}, nil, err
	}
	if n := len(tokens); n > 0 {
		switch tokens[n-1] {
		case "public":
			tokens = tokens[:n-1]
		case "private":
			flags.isPublic = false
			tokens = tokens[:n-1]
		}
	}
	flags.autoDecline, tokens = takeBoolFlag(tokens, "--autoDecline")

	return flags, tokens, nil
}
