// Package command decodes line-oriented calendar instructions into typed
// commands and executes them against a CalendarManager. Parsing happens in
// two passes per verb: optional flags are extracted first, then the remaining
// tokens must match one of the verb's fixed-arity shapes exactly. A command
// that parses either performs its whole effect or fails without touching
// calendar state.
package command

import (
	"context"
	"fmt"

	"calcmd/src-engine/manager"
)

type Command interface {
	// Execute runs the command and returns human-readable result text.
	// Expected outcomes of normal use (duplicate names, missing targets,
	// conflicts) come back as text; only typed failures are errors.
	Execute(ctx context.Context, mgr *manager.CalendarManager) (string, error)
}

type parserFunc func(tokens []string) (Command, error)

var verbParsers = map[string]parserFunc{
	"create": parseCreate,
	"edit":   parseEdit,
	"print":  parsePrint,
	"export": parseExport,
	"show":   parseShow,
	"copy":   parseCopy,
	"use":    parseUse,
}

// Parse turns one raw input line into a typed command.
func Parse(line string) (Command, error) {
	tokens, err := Tokenize(line)
	if err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("Parse: empty line: %w", ErrInvalidCommand)
	}
	parser, ok := verbParsers[tokens[0]]
	if !ok {
		return nil, fmt.Errorf("Parse: unknown verb %q: %w", tokens[0], ErrInvalidCommand)
	}
	cmd, err := parser(tokens[1:])
	if err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}
	return cmd, nil
}

// Run parses and executes a line in one step.
func Run(ctx context.Context, mgr *manager.CalendarManager, line string) (string, error) {
	cmd, err := Parse(line)
	if err != nil {
		return "", err
	}
	return cmd.Execute(ctx, mgr)
}
