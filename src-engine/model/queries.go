package model

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// EventModels returns the calendar's events in insertion order.
func (c *Calendar) EventModels(ctx context.Context, db bun.IDB) ([]Event, error) {
	eventModels := make([]Event, 0)
	if err := db.NewSelect().
		Model(&eventModels).
		Where("calendar_id = ?", c.ID).
		OrderExpr("rowid ASC").
		Scan(ctx); err != nil {
		return nil, fmt.Errorf("(*Calendar).EventModels: %w", err)
	}
	return eventModels, nil
}

// AddEvent appends an event. With autoDecline the event is silently dropped
// when it conflicts with anything already in the calendar; without it
// conflicting events coexist. Returns whether the event was added.
func (c *Calendar) AddEvent(ctx context.Context, db bun.IDB, event *Event, autoDecline bool) (bool, error) {
	loc, err := c.Location()
	if err != nil {
		return false, fmt.Errorf("(*Calendar).AddEvent: %w", err)
	}

	if autoDecline {
		eventModels, err := c.EventModels(ctx, db)
		if err != nil {
			return false, fmt.Errorf("(*Calendar).AddEvent: %w", err)
		}
		for i := range eventModels {
			if event.ConflictsWith(&eventModels[i], loc) {
				return false, nil
			}
		}
	}

	event.CalendarID = c.ID
	if err := event.Upsert(ctx, db); err != nil {
		return false, fmt.Errorf("(*Calendar).AddEvent: %w", err)
	}
	return true, nil
}

// AddRecurringEvent expands the template and adds every occurrence, each one
// independently subject to the auto-decline policy. Returns how many were added.
func (c *Calendar) AddRecurringEvent(ctx context.Context, db bun.IDB, template *RecurringEvent, autoDecline bool) (int, error) {
	loc, err := c.Location()
	if err != nil {
		return 0, fmt.Errorf("(*Calendar).AddRecurringEvent: %w", err)
	}

	occurrences, err := template.Expand(loc)
	if err != nil {
		return 0, fmt.Errorf("(*Calendar).AddRecurringEvent: %w", err)
	}

	added := 0
	for i := range occurrences {
		occurrences[i].ID = uuid.NewString()
		ok, err := c.AddEvent(ctx, db, &occurrences[i], autoDecline)
		if err != nil {
			return added, fmt.Errorf("(*Calendar).AddRecurringEvent: %w", err)
		}
		if ok {
			added++
		}
	}
	return added, nil
}

// EventsOnDate returns events starting on the given date (year/month/day in
// the calendar's zone), plus events whose busy interval spans into it.
func (c *Calendar) EventsOnDate(ctx context.Context, db bun.IDB, date time.Time) ([]Event, error) {
	loc, err := c.Location()
	if err != nil {
		return nil, fmt.Errorf("(*Calendar).EventsOnDate: %w", err)
	}
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)

	eventModels, err := c.EventModels(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("(*Calendar).EventsOnDate: %w", err)
	}

	matched := make([]Event, 0)
	for _, event := range eventModels {
		start := event.Start().In(loc)
		sameDate := start.Year() == dayStart.Year() &&
			start.Month() == dayStart.Month() &&
			start.Day() == dayStart.Day()
		spans := start.Before(dayStart) && event.EffectiveEnd(loc).After(dayStart)
		if sameDate || spans {
			matched = append(matched, event)
		}
	}
	return matched, nil
}

// EventsBetween returns events intersecting the inclusive instant range.
// Timed events match on interval overlap; all-day events match only when
// their start instant falls inside the range. The asymmetry is load-bearing
// for existing callers.
func (c *Calendar) EventsBetween(ctx context.Context, db bun.IDB, start, end time.Time) ([]Event, error) {
	eventModels, err := c.EventModels(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("(*Calendar).EventsBetween: %w", err)
	}

	matched := make([]Event, 0)
	for _, event := range eventModels {
		if event.IsAllDay() {
			s := event.Start()
			if !s.Before(start) && !s.After(end) {
				matched = append(matched, event)
			}
			continue
		}
		if !event.Start().After(end) && !event.End().Before(start) {
			matched = append(matched, event)
		}
	}
	return matched, nil
}

// IsBusyAt reports whether some event's [start, effective end] interval,
// inclusive on both sides, contains the instant.
func (c *Calendar) IsBusyAt(ctx context.Context, db bun.IDB, at time.Time) (bool, error) {
	loc, err := c.Location()
	if err != nil {
		return false, fmt.Errorf("(*Calendar).IsBusyAt: %w", err)
	}

	eventModels, err := c.EventModels(ctx, db)
	if err != nil {
		return false, fmt.Errorf("(*Calendar).IsBusyAt: %w", err)
	}
	for _, event := range eventModels {
		if !at.Before(event.Start()) && !at.After(event.EffectiveEnd(loc)) {
			return true, nil
		}
	}
	return false, nil
}
