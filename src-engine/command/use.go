package command

import (
	"context"
	"fmt"

	"calcmd/src-engine/manager"
)

type UseCalendarCommand struct {
	Name string
}

func parseUse(tokens []string) (Command, error) {
	// calendar --name <name>
	if len(tokens) != 3 || tokens[0] != "calendar" || tokens[1] != "--name" {
		return nil, fmt.Errorf("parseUse: %w", ErrInvalidCommand)
	}
	return &UseCalendarCommand{Name: tokens[2]}, nil
}

func (c *UseCalendarCommand) Execute(ctx context.Context, mgr *manager.CalendarManager) (string, error) {
	used, err := mgr.UseCalendar(ctx, c.Name)
	if err != nil {
		return "", fmt.Errorf("UseCalendarCommand: %w", err)
	}
	if !used {
		return fmt.Sprintf("calendar %q not found", c.Name), nil
	}
	return fmt.Sprintf("using calendar %q", c.Name), nil
}
