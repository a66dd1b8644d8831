package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"calcmd/src-engine/manager"
)

type CopyEventCommand struct {
	Name       string
	SourceWall time.Time
	Target     string
	NewWall    time.Time
}

type CopyEventsOnCommand struct {
	Date       time.Time
	Target     string
	TargetDate time.Time
}

type CopyEventsBetweenCommand struct {
	Start      time.Time
	End        time.Time
	Target     string
	TargetDate time.Time
}

func parseCopy(tokens []string) (Command, error) {
	if len(tokens) == 0 {
		return nil, fmt.Errorf("parseCopy: %w", ErrInvalidCommand)
	}
	switch tokens[0] {
	case "event":
		// event <name> on <dt> --target <calendar> to <dt>
		if len(tokens) != 8 || tokens[2] != "on" || tokens[4] != "--target" || tokens[6] != "to" {
			return nil, fmt.Errorf("parseCopy: %w", ErrInvalidCommand)
		}
		source, err := ParseDateTime(tokens[3])
		if err != nil {
			return nil, fmt.Errorf("parseCopy: %w", err)
		}
		newStart, err := ParseDateTime(tokens[7])
		if err != nil {
			return nil, fmt.Errorf("parseCopy: %w", err)
		}
		return &CopyEventCommand{
			Name:       tokens[1],
			SourceWall: source,
			Target:     tokens[5],
			NewWall:    newStart,
		}, nil

	case "events":
		switch {
		// events on <date> --target <calendar> to <date>
		case len(tokens) == 7 && tokens[1] == "on" && tokens[3] == "--target" && tokens[5] == "to":
			date, err := ParseOn(tokens[2])
			if err != nil {
				return nil, fmt.Errorf("parseCopy: %w", err)
			}
			targetDate, err := ParseOn(tokens[6])
			if err != nil {
				return nil, fmt.Errorf("parseCopy: %w", err)
			}
			return &CopyEventsOnCommand{
				Date:       date.Date,
				Target:     tokens[4],
				TargetDate: targetDate.Date,
			}, nil
		// events between <date> and <date> --target <calendar> to <date>
		case len(tokens) == 9 && tokens[1] == "between" && tokens[3] == "and" &&
			tokens[5] == "--target" && tokens[7] == "to":
			start, err := ParseOn(tokens[2])
			if err != nil {
				return nil, fmt.Errorf("parseCopy: %w", err)
			}
			end, err := ParseOn(tokens[4])
			if err != nil {
				return nil, fmt.Errorf("parseCopy: %w", err)
			}
			targetDate, err := ParseOn(tokens[8])
			if err != nil {
				return nil, fmt.Errorf("parseCopy: %w", err)
			}
			return &CopyEventsBetweenCommand{
				Start:      start.Date,
				End:        end.Date,
				Target:     tokens[6],
				TargetDate: targetDate.Date,
			}, nil
		default:
			return nil, fmt.Errorf("parseCopy: %w", ErrInvalidCommand)
		}

	default:
		return nil, fmt.Errorf("parseCopy: %w", ErrInvalidCommand)
	}
}

func (c *CopyEventCommand) Execute(ctx context.Context, mgr *manager.CalendarManager) (string, error) {
	source, err := mgr.Current(ctx)
	if errors.Is(err, manager.ErrNoActiveCalendar) {
		return "no calendar in use", nil
	}
	if err != nil {
		return "", fmt.Errorf("CopyEventCommand: %w", err)
	}
	sourceLoc, err := source.Location()
	if err != nil {
		return "", fmt.Errorf("CopyEventCommand: %w", err)
	}
	target, err := mgr.GetCalendar(ctx, c.Target)
	if err != nil {
		return "", fmt.Errorf("CopyEventCommand: %w", err)
	}
	if target == nil {
		return fmt.Sprintf("calendar %q not found", c.Target), nil
	}
	targetLoc, err := target.Location()
	if err != nil {
		return "", fmt.Errorf("CopyEventCommand: %w", err)
	}

	// the source literal reads in the current calendar's zone, the
	// destination literal in the target's
	copied, err := mgr.CopyEvent(
		ctx, c.Name,
		atZone(c.SourceWall, sourceLoc),
		c.Target,
		atZone(c.NewWall, targetLoc),
	)
	if err != nil {
		return "", fmt.Errorf("CopyEventCommand: %w", err)
	}
	if !copied {
		return fmt.Sprintf("event %q could not be copied to calendar %q", c.Name, c.Target), nil
	}
	return fmt.Sprintf("event %q copied to calendar %q", c.Name, c.Target), nil
}

func (c *CopyEventsOnCommand) Execute(ctx context.Context, mgr *manager.CalendarManager) (string, error) {
	copied, err := mgr.CopyEventsOn(ctx, c.Date, c.Target, c.TargetDate)
	if err != nil {
		return "", fmt.Errorf("CopyEventsOnCommand: %w", err)
	}
	if !copied {
		return fmt.Sprintf("no events copied to calendar %q", c.Target), nil
	}
	return fmt.Sprintf("events copied to calendar %q", c.Target), nil
}

func (c *CopyEventsBetweenCommand) Execute(ctx context.Context, mgr *manager.CalendarManager) (string, error) {
	copied, err := mgr.CopyEventsBetween(ctx, c.Start, c.End, c.Target, c.TargetDate)
	if err != nil {
		return "", fmt.Errorf("CopyEventsBetweenCommand: %w", err)
	}
	if !copied {
		return fmt.Sprintf("no events copied to calendar %q", c.Target), nil
	}
	return fmt.Sprintf("events copied to calendar %q", c.Target), nil
}
