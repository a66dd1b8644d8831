package model_test

import (
	"context"
	"testing"
	"time"

	"calcmd/src-engine/model"
)

func TestAddEventAutoDecline(t *testing.T) {
	db := newTestDB(t)
	calendarModel := newCalendar(t, db, "work", "America/New_York")
	loc := mustLoc(t, "America/New_York")
	ctx := context.Background()

	mustAddEvent(t, db, calendarModel, timedEvent("meeting",
		time.Date(2025, 3, 1, 8, 0, 0, 0, loc),
		time.Date(2025, 3, 1, 9, 0, 0, 0, loc)))

	overlap := timedEvent("overlap",
		time.Date(2025, 3, 1, 8, 30, 0, 0, loc),
		time.Date(2025, 3, 1, 9, 30, 0, 0, loc))
	overlap.ID = "overlap-declined"
	added, err := calendarModel.AddEvent(ctx, db, &overlap, true)
	if err != nil {
		t.Fatal(err)
	}
	if added {
		t.Error("auto-decline should drop a conflicting event")
	}

	overlap.ID = "overlap-kept"
	added, err = calendarModel.AddEvent(ctx, db, &overlap, false)
	if err != nil {
		t.Fatal(err)
	}
	if !added {
		t.Error("without auto-decline a conflicting event should still be added")
	}

	eventModels, err := calendarModel.EventModels(ctx, db)
	if err != nil {
		t.Fatal(err)
	}
	if len(eventModels) != 2 {
		t.Errorf("got %d events, want 2", len(eventModels))
	}
}

func TestEventModelsInsertionOrder(t *testing.T) {
	db := newTestDB(t)
	calendarModel := newCalendar(t, db, "work", "UTC")

	names := []string{"charlie", "alpha", "bravo"}
	for i, name := range names {
		mustAddEvent(t, db, calendarModel, timedEvent(name,
			time.Date(2025, 3, 1, 8+i, 0, 0, 0, time.UTC),
			time.Date(2025, 3, 1, 9+i, 0, 0, 0, time.UTC)))
	}

	eventModels, err := calendarModel.EventModels(context.Background(), db)
	if err != nil {
		t.Fatal(err)
	}
	if len(eventModels) != len(names) {
		t.Fatalf("got %d events, want %d", len(eventModels), len(names))
	}
	for i, event := range eventModels {
		if event.Summary != names[i] {
			t.Errorf("event %d = %q, want %q", i, event.Summary, names[i])
		}
	}
}

func TestEventsOnDate(t *testing.T) {
	db := newTestDB(t)
	calendarModel := newCalendar(t, db, "work", "America/New_York")
	loc := mustLoc(t, "America/New_York")
	ctx := context.Background()

	mustAddEvent(t, db, calendarModel, timedEvent("on the day",
		time.Date(2025, 3, 1, 14, 0, 0, 0, loc),
		time.Date(2025, 3, 1, 15, 0, 0, 0, loc)))
	mustAddEvent(t, db, calendarModel, timedEvent("spans in",
		time.Date(2025, 2, 28, 23, 0, 0, 0, loc),
		time.Date(2025, 3, 1, 1, 0, 0, 0, loc)))
	mustAddEvent(t, db, calendarModel, timedEvent("day before",
		time.Date(2025, 2, 28, 8, 0, 0, 0, loc),
		time.Date(2025, 2, 28, 9, 0, 0, 0, loc)))
	mustAddEvent(t, db, calendarModel, allDayEvent("holiday",
		time.Date(2025, 3, 1, 0, 0, 0, 0, loc)))

	matched, err := calendarModel.EventsOnDate(ctx, db, time.Date(2025, 3, 1, 0, 0, 0, 0, loc))
	if err != nil {
		t.Fatal(err)
	}
	got := make(map[string]bool, len(matched))
	for _, event := range matched {
		got[event.Summary] = true
	}
	for _, want := range []string{"on the day", "spans in", "holiday"} {
		if !got[want] {
			t.Errorf("%q should match the date", want)
		}
	}
	if got["day before"] {
		t.Error("an event entirely on the previous day should not match")
	}
	if len(matched) != 3 {
		t.Errorf("got %d events, want 3", len(matched))
	}
}

// Timed events match the range on interval overlap; all-day events match only
// when their start instant is inside it.
func TestEventsBetweenAsymmetry(t *testing.T) {
	db := newTestDB(t)
	calendarModel := newCalendar(t, db, "work", "America/New_York")
	loc := mustLoc(t, "America/New_York")
	ctx := context.Background()

	mustAddEvent(t, db, calendarModel, timedEvent("timed overlap",
		time.Date(2025, 3, 1, 8, 0, 0, 0, loc),
		time.Date(2025, 3, 1, 12, 0, 0, 0, loc)))
	mustAddEvent(t, db, calendarModel, allDayEvent("all-day before",
		time.Date(2025, 3, 1, 0, 0, 0, 0, loc)))
	mustAddEvent(t, db, calendarModel, allDayEvent("all-day inside",
		time.Date(2025, 3, 1, 10, 0, 0, 0, loc)))

	// the range starts mid-morning, after both all-day starts except one
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, loc)
	end := time.Date(2025, 3, 1, 11, 0, 0, 0, loc)
	matched, err := calendarModel.EventsBetween(ctx, db, start, end)
	if err != nil {
		t.Fatal(err)
	}

	got := make(map[string]bool, len(matched))
	for _, event := range matched {
		got[event.Summary] = true
	}
	if !got["timed overlap"] {
		t.Error("a timed event overlapping the range should match")
	}
	if !got["all-day inside"] {
		t.Error("an all-day event starting inside the range should match")
	}
	if got["all-day before"] {
		t.Error("an all-day event starting before the range should not match, even though its day spans it")
	}
}

func TestIsBusyAt(t *testing.T) {
	db := newTestDB(t)
	calendarModel := newCalendar(t, db, "work", "America/New_York")
	loc := mustLoc(t, "America/New_York")
	ctx := context.Background()

	mustAddEvent(t, db, calendarModel, timedEvent("meeting",
		time.Date(2025, 3, 1, 8, 0, 0, 0, loc),
		time.Date(2025, 3, 1, 9, 0, 0, 0, loc)))

	cases := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"before", time.Date(2025, 3, 1, 7, 59, 0, 0, loc), false},
		{"at start", time.Date(2025, 3, 1, 8, 0, 0, 0, loc), true},
		{"inside", time.Date(2025, 3, 1, 8, 30, 0, 0, loc), true},
		{"at end", time.Date(2025, 3, 1, 9, 0, 0, 0, loc), true},
		{"after", time.Date(2025, 3, 1, 9, 1, 0, 0, loc), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			busy, err := calendarModel.IsBusyAt(ctx, db, tc.at)
			if err != nil {
				t.Fatal(err)
			}
			if busy != tc.want {
				t.Errorf("IsBusyAt(%v) = %v, want %v", tc.at, busy, tc.want)
			}
		})
	}
}

func TestIsBusyAtAllDay(t *testing.T) {
	db := newTestDB(t)
	calendarModel := newCalendar(t, db, "work", "America/New_York")
	loc := mustLoc(t, "America/New_York")
	ctx := context.Background()

	mustAddEvent(t, db, calendarModel, allDayEvent("holiday",
		time.Date(2025, 3, 1, 0, 0, 0, 0, loc)))

	busy, err := calendarModel.IsBusyAt(ctx, db, time.Date(2025, 3, 1, 23, 0, 0, 0, loc))
	if err != nil {
		t.Fatal(err)
	}
	if !busy {
		t.Error("an all-day event occupies the rest of its day")
	}
}

func TestAddRecurringEvent(t *testing.T) {
	db := newTestDB(t)
	calendarModel := newCalendar(t, db, "work", "America/New_York")
	ctx := context.Background()

	template, err := model.NewRecurringEvent(
		"standup",
		time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC),
		nil,
		[]time.Weekday{time.Monday, time.Wednesday, time.Friday},
		0,
		time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC),
	)
	if err != nil {
		t.Fatal(err)
	}

	added, err := calendarModel.AddRecurringEvent(ctx, db, template, false)
	if err != nil {
		t.Fatal(err)
	}
	if added != 3 {
		t.Errorf("added %d occurrences, want 3", added)
	}

	eventModels, err := calendarModel.EventModels(ctx, db)
	if err != nil {
		t.Fatal(err)
	}
	if len(eventModels) != 3 {
		t.Errorf("got %d stored events, want 3", len(eventModels))
	}
	for _, event := range eventModels {
		if event.Summary != "standup" {
			t.Errorf("summary = %q, want %q", event.Summary, "standup")
		}
	}
}
