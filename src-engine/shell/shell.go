// Package shell holds the line-reader front ends. They contain no calendar
// logic: lines go to the command engine, result text comes back out.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"calcmd/src-engine/command"
	"calcmd/src-engine/manager"
	"calcmd/src-engine/metric"
)

// runLine feeds one line to the engine. Typed errors propagate to the caller,
// which stops processing; soft outcomes are just text.
func runLine(ctx context.Context, mgr *manager.CalendarManager, line string, w io.Writer) error {
	metric.CountCommand()
	result, err := command.Run(ctx, mgr, line)
	if err != nil {
		metric.CountCommandError()
		return err
	}
	fmt.Fprintln(w, result)
	return nil
}

// Interactive reads commands from r until a lone "q" line or EOF. A typed
// error ends the session.
func Interactive(ctx context.Context, mgr *manager.CalendarManager, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, "> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		switch line {
		case "":
			continue
		case "q":
			return nil
		}
		if err := runLine(ctx, mgr, line, w); err != nil {
			fmt.Fprintf(w, "Error: %s\n", err)
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("Interactive: %w", err)
	}
	return nil
}

// RunFile processes a command file line by line until EOF or the first typed
// error; the rest of the file is skipped on error.
func RunFile(ctx context.Context, mgr *manager.CalendarManager, path string, w io.Writer) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("RunFile: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}
		if err := runLine(ctx, mgr, line, w); err != nil {
			return fmt.Errorf("RunFile: line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("RunFile: %w", err)
	}
	return nil
}
