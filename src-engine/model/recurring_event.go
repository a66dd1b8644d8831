package model

import (
	"fmt"
	"time"

	"github.com/xyedo/rrule"
)

// RecurringEvent is a recurrence template. It is never stored; Expand turns it
// into concrete events and the template is discarded.
type RecurringEvent struct {
	Summary     string
	Description string
	Location    string
	IsPublic    bool

	// Start carries both the time-of-day of every occurrence and the date the
	// weekday search begins on, as wall-clock components in the calendar zone.
	Start time.Time
	// EndTimeOfDay, when set, gives each occurrence an end on its own date;
	// occurrences never span midnight. Nil produces all-day occurrences.
	EndTimeOfDay *time.Time

	Weekdays []time.Weekday

	// exactly one bound is set
	Count int
	Until time.Time
}

// NewRecurringEvent enforces that exactly one of count/until is set.
func NewRecurringEvent(summary string, start time.Time, endTimeOfDay *time.Time, weekdays []time.Weekday, count int, until time.Time) (*RecurringEvent, error) {
	if (count > 0) == !until.IsZero() {
		return nil, fmt.Errorf("NewRecurringEvent: need exactly one of count and until: %w", ErrUnboundedRecurrence)
	}
	return &RecurringEvent{
		Summary:      summary,
		IsPublic:     true,
		Start:        start,
		EndTimeOfDay: endTimeOfDay,
		Weekdays:     weekdays,
		Count:        count,
		Until:        until,
	}, nil
}

var rruleWeekdays = map[time.Weekday]rrule.Weekday{
	time.Monday:    rrule.MO,
	time.Tuesday:   rrule.TU,
	time.Wednesday: rrule.WE,
	time.Thursday:  rrule.TH,
	time.Friday:    rrule.FR,
	time.Saturday:  rrule.SA,
	time.Sunday:    rrule.SU,
}

// Expand walks forward from the start date and emits one event per date whose
// weekday is in the recurrence set, until the bound is exhausted. The count
// bound is a weeks' worth of matches per requested repeat (count*7 raw
// occurrences), which existing data depends on.
func (r *RecurringEvent) Expand(loc *time.Location) ([]Event, error) {
	if r.Count <= 0 && r.Until.IsZero() {
		return nil, fmt.Errorf("(*RecurringEvent).Expand: %w", ErrUnboundedRecurrence)
	}
	if len(r.Weekdays) == 0 {
		return []Event{}, nil
	}

	byweekday := make([]rrule.Weekday, 0, len(r.Weekdays))
	for _, wd := range r.Weekdays {
		byweekday = append(byweekday, rruleWeekdays[wd])
	}

	option := rrule.ROption{
		Freq: rrule.WEEKLY,
		Dtstart: time.Date(
			r.Start.Year(), r.Start.Month(), r.Start.Day(),
			r.Start.Hour(), r.Start.Minute(), 0, 0, loc,
		),
		Byweekday: byweekday,
	}
	switch {
	case r.Count > 0:
		option.Count = r.Count * 7
	default:
		// inclusive of the until date itself
		option.Until = time.Date(
			r.Until.Year(), r.Until.Month(), r.Until.Day(),
			23, 59, 59, 0, loc,
		)
	}

	rule, err := rrule.NewRRule(option)
	if err != nil {
		return nil, fmt.Errorf("(*RecurringEvent).Expand: %w", err)
	}

	occurrences := rule.All()
	events := make([]Event, 0, len(occurrences))
	for _, occStart := range occurrences {
		event := Event{
			Summary:      r.Summary,
			Description:  r.Description,
			Location:     r.Location,
			IsPublic:     r.IsPublic,
			StartUnixUTC: occStart.UTC().Unix(),
		}
		if r.EndTimeOfDay != nil {
			end := time.Date(
				occStart.Year(), occStart.Month(), occStart.Day(),
				r.EndTimeOfDay.Hour(), r.EndTimeOfDay.Minute(), 0, 0, loc,
			)
			event.EndUnixUTC = end.UTC().Unix()
		}
		events = append(events, event)
	}

	return events, nil
}
