package command

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"calcmd/src-engine/manager"
	"calcmd/src-engine/model"

	"github.com/google/uuid"
)

type CreateEventCommand struct {
	Name        string
	Description string
	Location    string
	IsPublic    bool
	AutoDecline bool

	StartWall time.Time
	EndWall   time.Time // zero for all-day

	// recurring when Weekdays is non-empty
	Weekdays  []time.Weekday
	Count     int
	UntilWall time.Time
}

type CreateCalendarCommand struct {
	Name     string
	Timezone string
}

func parseCreate(tokens []string) (Command, error) {
	if len(tokens) == 0 {
		return nil, fmt.Errorf("parseCreate: %w", ErrInvalidCommand)
	}
	switch tokens[0] {
	case "event":
		return parseCreateEvent(tokens[1:])
	case "calendar":
		if len(tokens) != 5 || tokens[1] != "--name" || tokens[3] != "--timezone" {
			return nil, fmt.Errorf("parseCreate: %w", ErrInvalidCommand)
		}
		return &CreateCalendarCommand{Name: tokens[2], Timezone: tokens[4]}, nil
	default:
		return nil, fmt.Errorf("parseCreate: %w", ErrInvalidCommand)
	}
}

func parseCreateEvent(tokens []string) (Command, error) {
	flags, rest, err := extractEventFlags(tokens)
	if err != nil {
		return nil, fmt.Errorf("parseCreateEvent: %w", err)
	}

	cmd := &CreateEventCommand{
		Description: flags.description,
		Location:    flags.location,
		IsPublic:    flags.isPublic,
		AutoDecline: flags.autoDecline,
	}

	switch {
	// <name> from <dt> to <dt>
	case len(rest) == 5 && rest[1] == "from" && rest[3] == "to":
		cmd.Name = rest[0]
		cmd.StartWall, cmd.EndWall, err = ParseRange(rest[2], rest[4])
		if err != nil {
			return nil, fmt.Errorf("parseCreateEvent: %w", err)
		}
		return cmd, nil

	// <name> from <dt> to <dt> repeats <weekdays> for <N> times
	case len(rest) == 10 && rest[1] == "from" && rest[3] == "to" &&
		rest[5] == "repeats" && rest[7] == "for" && rest[9] == "times":
		cmd.Name = rest[0]
		if cmd.StartWall, cmd.EndWall, err = ParseRange(rest[2], rest[4]); err != nil {
			return nil, fmt.Errorf("parseCreateEvent: %w", err)
		}
		if !sameDate(cmd.StartWall, cmd.EndWall) {
			return nil, fmt.Errorf("parseCreateEvent: recurring event spans midnight: %w", ErrInvalidCommand)
		}
		if cmd.Weekdays, err = ParseWeekdays(rest[6]); err != nil {
			return nil, fmt.Errorf("parseCreateEvent: %w", err)
		}
		if cmd.Count, err = parseCount(rest[8]); err != nil {
			return nil, fmt.Errorf("parseCreateEvent: %w", err)
		}
		return cmd, nil

	// <name> from <dt> to <dt> repeats <weekdays> until <date>
	case len(rest) == 9 && rest[1] == "from" && rest[3] == "to" &&
		rest[5] == "repeats" && rest[7] == "until":
		cmd.Name = rest[0]
		if cmd.StartWall, cmd.EndWall, err = ParseRange(rest[2], rest[4]); err != nil {
			return nil, fmt.Errorf("parseCreateEvent: %w", err)
		}
		if !sameDate(cmd.StartWall, cmd.EndWall) {
			return nil, fmt.Errorf("parseCreateEvent: recurring event spans midnight: %w", ErrInvalidCommand)
		}
		if cmd.Weekdays, err = ParseWeekdays(rest[6]); err != nil {
			return nil, fmt.Errorf("parseCreateEvent: %w", err)
		}
		until, err := ParseOn(rest[8])
		if err != nil {
			return nil, fmt.Errorf("parseCreateEvent: %w", err)
		}
		cmd.UntilWall = until.Date
		return cmd, nil

	// <name> on <dt>
	case len(rest) == 3 && rest[1] == "on":
		cmd.Name = rest[0]
		on, err := ParseOn(rest[2])
		if err != nil {
			return nil, fmt.Errorf("parseCreateEvent: %w", err)
		}
		cmd.StartWall = on.Instant
		return cmd, nil

	// <name> on <dt> repeats <weekdays> for <N> times
	case len(rest) == 8 && rest[1] == "on" && rest[3] == "repeats" &&
		rest[5] == "for" && rest[7] == "times":
		cmd.Name = rest[0]
		on, err := ParseOn(rest[2])
		if err != nil {
			return nil, fmt.Errorf("parseCreateEvent: %w", err)
		}
		cmd.StartWall = on.Instant
		if cmd.Weekdays, err = ParseWeekdays(rest[4]); err != nil {
			return nil, fmt.Errorf("parseCreateEvent: %w", err)
		}
		if cmd.Count, err = parseCount(rest[6]); err != nil {
			return nil, fmt.Errorf("parseCreateEvent: %w", err)
		}
		return cmd, nil

	// <name> on <dt> repeats <weekdays> until <date>
	case len(rest) == 7 && rest[1] == "on" && rest[3] == "repeats" &&
		rest[5] == "until":
		cmd.Name = rest[0]
		on, err := ParseOn(rest[2])
		if err != nil {
			return nil, fmt.Errorf("parseCreateEvent: %w", err)
		}
		cmd.StartWall = on.Instant
		if cmd.Weekdays, err = ParseWeekdays(rest[4]); err != nil {
			return nil, fmt.Errorf("parseCreateEvent: %w", err)
		}
		until, err := ParseOn(rest[6])
		if err != nil {
			return nil, fmt.Errorf("parseCreateEvent: %w", err)
		}
		cmd.UntilWall = until.Date
		return cmd, nil

	default:
		return nil, fmt.Errorf("parseCreateEvent: %w", ErrInvalidCommand)
	}
}

func parseCount(token string) (int, error) {
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("parseCount: %q is not an integer: %w", token, ErrInvalidCommand)
	}
	if n < 1 {
		return 0, fmt.Errorf("parseCount: %d is not a positive count: %w", n, ErrInvalidCommand)
	}
	return n, nil
}

func (c *CreateEventCommand) Execute(ctx context.Context, mgr *manager.CalendarManager) (string, error) {
	calendarModel, err := mgr.Current(ctx)
	if err != nil {
		return "", fmt.Errorf("CreateEventCommand: %w", err)
	}
	loc, err := calendarModel.Location()
	if err != nil {
		return "", fmt.Errorf("CreateEventCommand: %w", err)
	}

	if len(c.Weekdays) > 0 {
		template, err := model.NewRecurringEvent(
			c.Name, c.StartWall, c.endTimeOfDay(), c.Weekdays, c.Count, c.UntilWall,
		)
		if err != nil {
			return "", fmt.Errorf("CreateEventCommand: %w", err)
		}
		template.Description = c.Description
		template.Location = c.Location
		template.IsPublic = c.IsPublic

		added, err := calendarModel.AddRecurringEvent(ctx, mgr.DB(), template, c.AutoDecline)
		if err != nil {
			return "", fmt.Errorf("CreateEventCommand: %w", err)
		}
		return fmt.Sprintf("created %d occurrence(s) of recurring event %q in calendar %q", added, c.Name, calendarModel.Name), nil
	}

	event := model.Event{
		ID:           uuid.NewString(),
		Summary:      c.Name,
		Description:  c.Description,
		Location:     c.Location,
		IsPublic:     c.IsPublic,
		StartUnixUTC: atZone(c.StartWall, loc).Unix(),
	}
	if !c.EndWall.IsZero() {
		event.EndUnixUTC = atZone(c.EndWall, loc).Unix()
	}

	added, err := calendarModel.AddEvent(ctx, mgr.DB(), &event, c.AutoDecline)
	if err != nil {
		return "", fmt.Errorf("CreateEventCommand: %w", err)
	}
	if !added {
		return fmt.Sprintf("event %q conflicts with an existing event, not created", c.Name), nil
	}
	return fmt.Sprintf("event %q created in calendar %q", c.Name, calendarModel.Name), nil
}

func (c *CreateEventCommand) endTimeOfDay() *time.Time {
	if c.EndWall.IsZero() {
		return nil
	}
	end := c.EndWall
	return &end
}

func (c *CreateCalendarCommand) Execute(ctx context.Context, mgr *manager.CalendarManager) (string, error) {
	created, err := mgr.CreateCalendar(ctx, c.Name, c.Timezone)
	if err != nil {
		return "", fmt.Errorf("CreateCalendarCommand: %w", err)
	}
	if !created {
		return fmt.Sprintf("calendar %q already exists", c.Name), nil
	}
	return fmt.Sprintf("calendar %q created with timezone %s", c.Name, c.Timezone), nil
}
