// Package manager owns the set of named calendars, the current-calendar
// pointer, and cross-calendar copies with timezone translation.
package manager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"calcmd/src-engine/model"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

var (
	ErrInvalidTimezone  = errors.New("invalid timezone")
	ErrNoActiveCalendar = errors.New("no active calendar")
)

type CalendarManager struct {
	db *bun.DB

	// holds the calendar's id, never its name, so renames can't orphan it;
	// blank until the first calendar is created
	currentID string
}

func New(db *bun.DB) *CalendarManager {
	return &CalendarManager{db: db}
}

func (m *CalendarManager) DB() *bun.DB {
	return m.db
}

// CreateCalendar registers a new named calendar. A duplicate name is a soft
// failure (false); an unresolvable timezone is an error. The first calendar
// ever created becomes current.
func (m *CalendarManager) CreateCalendar(ctx context.Context, name, timezone string) (bool, error) {
	if _, err := time.LoadLocation(timezone); err != nil {
		return false, fmt.Errorf("CreateCalendar: %q: %w", timezone, ErrInvalidTimezone)
	}

	exists, err := m.db.NewSelect().
		Model((*model.Calendar)(nil)).
		Where("name = ?", name).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("CreateCalendar: %w", err)
	}
	if exists {
		return false, nil
	}

	calendarModel := model.Calendar{
		ID:       uuid.NewString(),
		Name:     name,
		Timezone: timezone,
	}
	if err := calendarModel.Upsert(ctx, m.db); err != nil {
		return false, fmt.Errorf("CreateCalendar: %w", err)
	}
	if m.currentID == "" {
		m.currentID = calendarModel.ID
	}
	return true, nil
}

// GetCalendar looks a calendar up by name; nil when not found.
func (m *CalendarManager) GetCalendar(ctx context.Context, name string) (*model.Calendar, error) {
	calendarModel := new(model.Calendar)
	err := m.db.NewSelect().
		Model(calendarModel).
		Where("name = ?", name).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetCalendar: %w", err)
	}
	return calendarModel, nil
}

// Current returns the current calendar, or ErrNoActiveCalendar.
func (m *CalendarManager) Current(ctx context.Context) (*model.Calendar, error) {
	if m.currentID == "" {
		return nil, fmt.Errorf("Current: %w", ErrNoActiveCalendar)
	}
	calendarModel := new(model.Calendar)
	if err := m.db.NewSelect().
		Model(calendarModel).
		Where("id = ?", m.currentID).
		Scan(ctx); err != nil {
		return nil, fmt.Errorf("Current: %w", err)
	}
	return calendarModel, nil
}

// Calendars returns every calendar, for rendering collaborators.
func (m *CalendarManager) Calendars(ctx context.Context) ([]model.Calendar, error) {
	calendarModels := make([]model.Calendar, 0)
	if err := m.db.NewSelect().
		Model(&calendarModels).
		OrderExpr("name ASC").
		Scan(ctx); err != nil {
		return nil, fmt.Errorf("Calendars: %w", err)
	}
	return calendarModels, nil
}

// UseCalendar selects the current calendar; false and no mutation when the
// name is unknown. Re-selecting the already-current calendar is a no-op.
func (m *CalendarManager) UseCalendar(ctx context.Context, name string) (bool, error) {
	calendarModel, err := m.GetCalendar(ctx, name)
	if err != nil {
		return false, fmt.Errorf("UseCalendar: %w", err)
	}
	if calendarModel == nil {
		return false, nil
	}
	m.currentID = calendarModel.ID
	return true, nil
}

// EditCalendar changes one calendar property. Renaming onto a taken name and
// an unresolvable timezone are both soft failures. A timezone change keeps
// every owned event on the same instant, so wall-clock times re-express in
// the new zone with durations intact.
func (m *CalendarManager) EditCalendar(ctx context.Context, name, property, value string) (bool, error) {
	calendarModel, err := m.GetCalendar(ctx, name)
	if err != nil {
		return false, fmt.Errorf("EditCalendar: %w", err)
	}
	if calendarModel == nil {
		return false, nil
	}

	switch strings.ToLower(property) {
	case "name":
		taken, err := m.GetCalendar(ctx, value)
		if err != nil {
			return false, fmt.Errorf("EditCalendar: %w", err)
		}
		if taken != nil {
			return false, nil
		}
		calendarModel.Name = value
	case "timezone":
		if _, err := time.LoadLocation(value); err != nil {
			return false, nil
		}
		calendarModel.Timezone = value
	default:
		return false, fmt.Errorf("EditCalendar: unknown property %q: %w", property, model.ErrInvalidPropertyValue)
	}

	if err := calendarModel.Upsert(ctx, m.db); err != nil {
		return false, fmt.Errorf("EditCalendar: %w", err)
	}
	return true, nil
}

// CopyEvent copies the current calendar's event matching title+start into the
// target calendar at newStart, preserving duration. Soft failures: no current
// calendar, unknown target, no matching event, or the target already busy at
// newStart.
func (m *CalendarManager) CopyEvent(ctx context.Context, title string, sourceStart time.Time, targetName string, newStart time.Time) (bool, error) {
	if m.currentID == "" {
		return false, nil
	}
	source, err := m.Current(ctx)
	if err != nil {
		return false, fmt.Errorf("CopyEvent: %w", err)
	}
	target, err := m.GetCalendar(ctx, targetName)
	if err != nil {
		return false, fmt.Errorf("CopyEvent: %w", err)
	}
	if target == nil {
		return false, nil
	}

	eventModels, err := source.EventModels(ctx, m.db)
	if err != nil {
		return false, fmt.Errorf("CopyEvent: %w", err)
	}
	var match *model.Event
	for i := range eventModels {
		if eventModels[i].Summary == title && eventModels[i].StartUnixUTC == sourceStart.Unix() {
			match = &eventModels[i]
			break
		}
	}
	if match == nil {
		return false, nil
	}

	busy, err := target.IsBusyAt(ctx, m.db, newStart)
	if err != nil {
		return false, fmt.Errorf("CopyEvent: %w", err)
	}
	if busy {
		return false, nil
	}

	copied := model.Event{
		ID:           uuid.NewString(),
		Summary:      match.Summary,
		Description:  match.Description,
		Location:     match.Location,
		IsPublic:     match.IsPublic,
		StartUnixUTC: newStart.Unix(),
	}
	if match.EndUnixUTC != 0 {
		copied.EndUnixUTC = newStart.Unix() + (match.EndUnixUTC - match.StartUnixUTC)
	}

	// the busy pre-check already declined conflicts at the new start
	if _, err := target.AddEvent(ctx, m.db, &copied, false); err != nil {
		return false, fmt.Errorf("CopyEvent: %w", err)
	}
	return true, nil
}

// CopyEventsOn copies every event on date in the current calendar onto
// targetDate in the target calendar. Each start instant is re-expressed in the
// target zone and re-anchored onto targetDate at that wall-clock time. Partial
// success is fine; true when at least one copy landed.
func (m *CalendarManager) CopyEventsOn(ctx context.Context, date time.Time, targetName string, targetDate time.Time) (bool, error) {
	if m.currentID == "" {
		return false, nil
	}
	source, err := m.Current(ctx)
	if err != nil {
		return false, fmt.Errorf("CopyEventsOn: %w", err)
	}
	target, err := m.GetCalendar(ctx, targetName)
	if err != nil {
		return false, fmt.Errorf("CopyEventsOn: %w", err)
	}
	if target == nil {
		return false, nil
	}
	targetLoc, err := target.Location()
	if err != nil {
		return false, fmt.Errorf("CopyEventsOn: %w", err)
	}

	eventModels, err := source.EventsOnDate(ctx, m.db, date)
	if err != nil {
		return false, fmt.Errorf("CopyEventsOn: %w", err)
	}

	anyCopied := false
	for _, event := range eventModels {
		startInTarget := event.Start().In(targetLoc)
		newStart := time.Date(
			targetDate.Year(), targetDate.Month(), targetDate.Day(),
			startInTarget.Hour(), startInTarget.Minute(), startInTarget.Second(), 0,
			targetLoc,
		)
		ok, err := m.CopyEvent(ctx, event.Summary, event.Start(), targetName, newStart)
		if err != nil {
			return anyCopied, fmt.Errorf("CopyEventsOn: %w", err)
		}
		if ok {
			anyCopied = true
		}
	}
	return anyCopied, nil
}

// CopyEventsBetween copies every day in the inclusive source date range, each
// day remapped with the same day offset from targetStart.
func (m *CalendarManager) CopyEventsBetween(ctx context.Context, sourceStart, sourceEnd time.Time, targetName string, targetStart time.Time) (bool, error) {
	if sourceStart.After(sourceEnd) {
		return false, nil
	}

	anyCopied := false
	for offset, day := 0, sourceStart; !day.After(sourceEnd); offset, day = offset+1, day.AddDate(0, 0, 1) {
		targetDay := targetStart.AddDate(0, 0, offset)
		ok, err := m.CopyEventsOn(ctx, day, targetName, targetDay)
		if err != nil {
			return anyCopied, fmt.Errorf("CopyEventsBetween: %w", err)
		}
		if ok {
			anyCopied = true
		}
	}
	return anyCopied, nil
}
