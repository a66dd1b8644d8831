package command

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"calcmd/src-engine/manager"
)

type ExportCalCommand struct {
	FileName string
}

func parseExport(tokens []string) (Command, error) {
	// cal <file>.csv
	if len(tokens) != 2 || tokens[0] != "cal" {
		return nil, fmt.Errorf("parseExport: %w", ErrInvalidCommand)
	}
	if !strings.HasSuffix(tokens[1], ".csv") {
		return nil, fmt.Errorf("parseExport: %q is not a .csv file: %w", tokens[1], ErrInvalidCommand)
	}
	return &ExportCalCommand{FileName: tokens[1]}, nil
}

func (c *ExportCalCommand) Execute(ctx context.Context, mgr *manager.CalendarManager) (string, error) {
	calendarModel, err := mgr.Current(ctx)
	if err != nil {
		return "", fmt.Errorf("ExportCalCommand: %w", err)
	}

	file, err := os.Create(c.FileName)
	if err != nil {
		return "", fmt.Errorf("ExportCalCommand: can't create %q: %w", c.FileName, err)
	}
	if err := calendarModel.ExportCSV(ctx, mgr.DB(), file); err != nil {
		file.Close()
		return "", fmt.Errorf("ExportCalCommand: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("ExportCalCommand: can't flush %q: %w", c.FileName, err)
	}

	path, err := filepath.Abs(c.FileName)
	if err != nil {
		path = c.FileName
	}
	return fmt.Sprintf("calendar %q exported to %s", calendarModel.Name, path), nil
}
