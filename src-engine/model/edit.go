package model

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/uptrace/bun"
)

// recognized event properties, compared case-insensitively
const (
	propSubject     = "subject"
	propDescription = "description"
	propLocation    = "location"
	propStart       = "start"
	propEnd         = "end"
	propIsPublic    = "ispublic"
)

func parseEditDateTime(value string, loc *time.Location) (time.Time, error) {
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("parseEditDateTime: %q: %w", value, ErrInvalidPropertyValue)
}

// applyEdit mutates one property on the event. Changing start shifts an
// existing end by the same delta; a new end must stay strictly after start.
func applyEdit(event *Event, property, value string, loc *time.Location) error {
	switch strings.ToLower(property) {
	case propSubject:
		event.Summary = value
	case propDescription:
		event.Description = value
	case propLocation:
		event.Location = value
	case propStart:
		newStart, err := parseEditDateTime(value, loc)
		if err != nil {
			return err
		}
		if event.EndUnixUTC != 0 {
			delta := newStart.Unix() - event.StartUnixUTC
			event.EndUnixUTC += delta
		}
		event.StartUnixUTC = newStart.Unix()
	case propEnd:
		newEnd, err := parseEditDateTime(value, loc)
		if err != nil {
			return err
		}
		if newEnd.Unix() <= event.StartUnixUTC {
			return fmt.Errorf("applyEdit: end not after start: %w", ErrInvalidPropertyValue)
		}
		event.EndUnixUTC = newEnd.Unix()
	case propIsPublic:
		isPublic, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("applyEdit: %q is not a bool: %w", value, ErrInvalidPropertyValue)
		}
		event.IsPublic = isPublic
	default:
		return fmt.Errorf("applyEdit: unknown property %q: %w", property, ErrInvalidPropertyValue)
	}
	return nil
}

// editMatching applies one property change to every event the filter accepts.
// All edits are validated in memory before the first write, so a bad value
// leaves the calendar untouched.
func (c *Calendar) editMatching(ctx context.Context, db bun.IDB, property, value string, match func(*Event) bool) (bool, error) {
	loc, err := c.Location()
	if err != nil {
		return false, fmt.Errorf("(*Calendar).editMatching: %w", err)
	}

	eventModels, err := c.EventModels(ctx, db)
	if err != nil {
		return false, fmt.Errorf("(*Calendar).editMatching: %w", err)
	}

	targets := make([]*Event, 0)
	for i := range eventModels {
		if match(&eventModels[i]) {
			targets = append(targets, &eventModels[i])
		}
	}
	for _, event := range targets {
		if err := applyEdit(event, property, value, loc); err != nil {
			return false, err
		}
	}
	for _, event := range targets {
		if err := event.Upsert(ctx, db); err != nil {
			return false, fmt.Errorf("(*Calendar).editMatching: %w", err)
		}
	}
	return len(targets) > 0, nil
}

// EditEvent edits the single event matching title, start, and end exactly.
func (c *Calendar) EditEvent(ctx context.Context, db bun.IDB, property, title string, start, end time.Time, value string) (bool, error) {
	return c.editMatching(ctx, db, property, value, func(e *Event) bool {
		return e.Summary == title &&
			e.StartUnixUTC == start.Unix() &&
			e.EndUnixUTC == end.Unix()
	})
}

// EditEvents edits every event with the title starting at or after from.
func (c *Calendar) EditEvents(ctx context.Context, db bun.IDB, property, title string, from time.Time, value string) (bool, error) {
	return c.editMatching(ctx, db, property, value, func(e *Event) bool {
		return e.Summary == title && e.StartUnixUTC >= from.Unix()
	})
}

// EditAllEvents edits every event sharing the title.
func (c *Calendar) EditAllEvents(ctx context.Context, db bun.IDB, property, title, value string) (bool, error) {
	return c.editMatching(ctx, db, property, value, func(e *Event) bool {
		return e.Summary == title
	})
}
