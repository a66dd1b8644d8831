package command

import (
	"context"
	"fmt"
	"strings"
	"time"

	"calcmd/src-engine/manager"
	"calcmd/src-engine/model"
)

type PrintEventsOnCommand struct {
	Date time.Time
}

type PrintEventsBetweenCommand struct {
	StartWall time.Time
	EndWall   time.Time
}

func parsePrint(tokens []string) (Command, error) {
	if len(tokens) == 0 || tokens[0] != "events" {
		return nil, fmt.Errorf("parsePrint: %w", ErrInvalidCommand)
	}
	switch {
	// events on <date>
	case len(tokens) == 3 && tokens[1] == "on":
		on, err := ParseOn(tokens[2])
		if err != nil {
			return nil, fmt.Errorf("parsePrint: %w", err)
		}
		return &PrintEventsOnCommand{Date: on.Date}, nil
	// events from <dt> to <dt>
	case len(tokens) == 5 && tokens[1] == "from" && tokens[3] == "to":
		start, end, err := ParseRange(tokens[2], tokens[4])
		if err != nil {
			return nil, fmt.Errorf("parsePrint: %w", err)
		}
		return &PrintEventsBetweenCommand{StartWall: start, EndWall: end}, nil
	default:
		return nil, fmt.Errorf("parsePrint: %w", ErrInvalidCommand)
	}
}

func formatEvents(eventModels []model.Event, loc *time.Location) string {
	if len(eventModels) == 0 {
		return "no events"
	}
	lines := make([]string, 0, len(eventModels))
	for _, event := range eventModels {
		start := event.Start().In(loc)
		var span string
		if event.IsAllDay() {
			span = start.Format("2006-01-02") + " (all day)"
		} else {
			end := event.End().In(loc)
			span = start.Format("2006-01-02 15:04") + " - " + end.Format("2006-01-02 15:04")
		}
		line := fmt.Sprintf("- %s: %s", event.Summary, span)
		if event.Location != "" {
			line += " @ " + event.Location
		}
		if !event.IsPublic {
			line += " (private)"
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (c *PrintEventsOnCommand) Execute(ctx context.Context, mgr *manager.CalendarManager) (string, error) {
	calendarModel, err := mgr.Current(ctx)
	if err != nil {
		return "", fmt.Errorf("PrintEventsOnCommand: %w", err)
	}
	loc, err := calendarModel.Location()
	if err != nil {
		return "", fmt.Errorf("PrintEventsOnCommand: %w", err)
	}
	eventModels, err := calendarModel.EventsOnDate(ctx, mgr.DB(), c.Date)
	if err != nil {
		return "", fmt.Errorf("PrintEventsOnCommand: %w", err)
	}
	return formatEvents(eventModels, loc), nil
}

func (c *PrintEventsBetweenCommand) Execute(ctx context.Context, mgr *manager.CalendarManager) (string, error) {
	calendarModel, err := mgr.Current(ctx)
	if err != nil {
		return "", fmt.Errorf("PrintEventsBetweenCommand: %w", err)
	}
	loc, err := calendarModel.Location()
	if err != nil {
		return "", fmt.Errorf("PrintEventsBetweenCommand: %w", err)
	}
	eventModels, err := calendarModel.EventsBetween(
		ctx, mgr.DB(), atZone(c.StartWall, loc), atZone(c.EndWall, loc),
	)
	if err != nil {
		return "", fmt.Errorf("PrintEventsBetweenCommand: %w", err)
	}
	return formatEvents(eventModels, loc), nil
}
