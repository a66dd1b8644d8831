package command

import (
	"context"
	"fmt"
	"time"

	"calcmd/src-engine/manager"
)

type ShowStatusCommand struct {
	AtWall time.Time
}

func parseShow(tokens []string) (Command, error) {
	// status on <dt>
	if len(tokens) != 3 || tokens[0] != "status" || tokens[1] != "on" {
		return nil, fmt.Errorf("parseShow: %w", ErrInvalidCommand)
	}
	at, err := ParseDateTime(tokens[2])
	if err != nil {
		return nil, fmt.Errorf("parseShow: %w", err)
	}
	return &ShowStatusCommand{AtWall: at}, nil
}

func (c *ShowStatusCommand) Execute(ctx context.Context, mgr *manager.CalendarManager) (string, error) {
	calendarModel, err := mgr.Current(ctx)
	if err != nil {
		return "", fmt.Errorf("ShowStatusCommand: %w", err)
	}
	loc, err := calendarModel.Location()
	if err != nil {
		return "", fmt.Errorf("ShowStatusCommand: %w", err)
	}
	busy, err := calendarModel.IsBusyAt(ctx, mgr.DB(), atZone(c.AtWall, loc))
	if err != nil {
		return "", fmt.Errorf("ShowStatusCommand: %w", err)
	}
	if busy {
		return "busy", nil
	}
	return "available", nil
}
