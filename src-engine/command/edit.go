package command

import (
	"context"
	"fmt"
	"time"

	"calcmd/src-engine/manager"
)

type EditEventCommand struct {
	Property  string
	Name      string
	StartWall time.Time
	EndWall   time.Time
	Value     string
}

type EditEventsCommand struct {
	Property string
	Name     string
	FromWall time.Time
	Value    string
}

type EditAllEventsCommand struct {
	Property string
	Name     string
	Value    string
}

type EditCalendarCommand struct {
	Name     string
	Property string
	Value    string
}

func parseEdit(tokens []string) (Command, error) {
	if len(tokens) == 0 {
		return nil, fmt.Errorf("parseEdit: %w", ErrInvalidCommand)
	}
	switch tokens[0] {
	case "event":
		// event <property> <name> from <dt> to <dt> with <value>
		if len(tokens) != 9 || tokens[3] != "from" || tokens[5] != "to" || tokens[7] != "with" {
			return nil, fmt.Errorf("parseEdit: %w", ErrInvalidCommand)
		}
		start, err := ParseDateTime(tokens[4])
		if err != nil {
			return nil, fmt.Errorf("parseEdit: %w", err)
		}
		end, err := ParseDateTime(tokens[6])
		if err != nil {
			return nil, fmt.Errorf("parseEdit: %w", err)
		}
		return &EditEventCommand{
			Property:  tokens[1],
			Name:      tokens[2],
			StartWall: start,
			EndWall:   end,
			Value:     tokens[8],
		}, nil

	case "events":
		switch {
		// events <property> <name> from <dt> with <value>
		case len(tokens) == 7 && tokens[3] == "from" && tokens[5] == "with":
			from, err := ParseDateTime(tokens[4])
			if err != nil {
				return nil, fmt.Errorf("parseEdit: %w", err)
			}
			return &EditEventsCommand{
				Property: tokens[1],
				Name:     tokens[2],
				FromWall: from,
				Value:    tokens[6],
			}, nil
		// events <property> <name> <value>
		case len(tokens) == 4:
			return &EditAllEventsCommand{
				Property: tokens[1],
				Name:     tokens[2],
				Value:    tokens[3],
			}, nil
		default:
			return nil, fmt.Errorf("parseEdit: %w", ErrInvalidCommand)
		}

	case "calendar":
		// calendar --name <name> --property <property> <value>
		if len(tokens) != 6 || tokens[1] != "--name" || tokens[3] != "--property" {
			return nil, fmt.Errorf("parseEdit: %w", ErrInvalidCommand)
		}
		return &EditCalendarCommand{
			Name:     tokens[2],
			Property: tokens[4],
			Value:    tokens[5],
		}, nil

	default:
		return nil, fmt.Errorf("parseEdit: %w", ErrInvalidCommand)
	}
}

func (c *EditEventCommand) Execute(ctx context.Context, mgr *manager.CalendarManager) (string, error) {
	calendarModel, err := mgr.Current(ctx)
	if err != nil {
		return "", fmt.Errorf("EditEventCommand: %w", err)
	}
	loc, err := calendarModel.Location()
	if err != nil {
		return "", fmt.Errorf("EditEventCommand: %w", err)
	}
	edited, err := calendarModel.EditEvent(
		ctx, mgr.DB(), c.Property, c.Name,
		atZone(c.StartWall, loc), atZone(c.EndWall, loc), c.Value,
	)
	if err != nil {
		return "", fmt.Errorf("EditEventCommand: %w", err)
	}
	if !edited {
		return fmt.Sprintf("no event %q matches the given start and end", c.Name), nil
	}
	return fmt.Sprintf("event %q updated", c.Name), nil
}

func (c *EditEventsCommand) Execute(ctx context.Context, mgr *manager.CalendarManager) (string, error) {
	calendarModel, err := mgr.Current(ctx)
	if err != nil {
		return "", fmt.Errorf("EditEventsCommand: %w", err)
	}
	loc, err := calendarModel.Location()
	if err != nil {
		return "", fmt.Errorf("EditEventsCommand: %w", err)
	}
	edited, err := calendarModel.EditEvents(
		ctx, mgr.DB(), c.Property, c.Name, atZone(c.FromWall, loc), c.Value,
	)
	if err != nil {
		return "", fmt.Errorf("EditEventsCommand: %w", err)
	}
	if !edited {
		return fmt.Sprintf("no events %q start at or after the given time", c.Name), nil
	}
	return fmt.Sprintf("events %q updated", c.Name), nil
}

func (c *EditAllEventsCommand) Execute(ctx context.Context, mgr *manager.CalendarManager) (string, error) {
	calendarModel, err := mgr.Current(ctx)
	if err != nil {
		return "", fmt.Errorf("EditAllEventsCommand: %w", err)
	}
	edited, err := calendarModel.EditAllEvents(ctx, mgr.DB(), c.Property, c.Name, c.Value)
	if err != nil {
		return "", fmt.Errorf("EditAllEventsCommand: %w", err)
	}
	if !edited {
		return fmt.Sprintf("no events named %q", c.Name), nil
	}
	return fmt.Sprintf("events %q updated", c.Name), nil
}

func (c *EditCalendarCommand) Execute(ctx context.Context, mgr *manager.CalendarManager) (string, error) {
	edited, err := mgr.EditCalendar(ctx, c.Name, c.Property, c.Value)
	if err != nil {
		return "", fmt.Errorf("EditCalendarCommand: %w", err)
	}
	if !edited {
		return fmt.Sprintf("can't update calendar %q", c.Name), nil
	}
	return fmt.Sprintf("calendar %q updated", c.Name), nil
}
