package command_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"calcmd/src-engine/command"
)

func TestParseAccepts(t *testing.T) {
	cases := []struct {
		name string
		line string
		want interface{}
	}{
		{"create calendar", `create calendar --name work --timezone America/New_York`, &command.CreateCalendarCommand{}},
		{"create timed event", `create event standup from 2025-03-01T08:00 to 2025-03-01T09:00`, &command.CreateEventCommand{}},
		{"create all-day event", `create event holiday on 2025-03-01`, &command.CreateEventCommand{}},
		{"create recurring for times", `create event standup from 2025-03-03T08:00 to 2025-03-03T09:00 repeats MWF for 3 times`, &command.CreateEventCommand{}},
		{"create recurring until", `create event standup on 2025-03-03T08:00 repeats MWF until 2025-03-09`, &command.CreateEventCommand{}},
		{"edit event", `edit event subject standup from 2025-03-01T08:00 to 2025-03-01T09:00 with sync`, &command.EditEventCommand{}},
		{"edit events from", `edit events location standup from 2025-03-01T08:00 with "room 4"`, &command.EditEventsCommand{}},
		{"edit all events", `edit events subject standup sync`, &command.EditAllEventsCommand{}},
		{"edit calendar", `edit calendar --name work --property timezone Asia/Kolkata`, &command.EditCalendarCommand{}},
		{"print on", `print events on 2025-03-01`, &command.PrintEventsOnCommand{}},
		{"print between", `print events from 2025-03-01T08:00 to 2025-03-01T17:00`, &command.PrintEventsBetweenCommand{}},
		{"export", `export cal out.csv`, &command.ExportCalCommand{}},
		{"show status", `show status on 2025-03-01T08:30`, &command.ShowStatusCommand{}},
		{"copy event", `copy event standup on 2025-03-01T08:00 --target travel to 2025-03-02T08:00`, &command.CopyEventCommand{}},
		{"copy events on", `copy events on 2025-03-01 --target travel to 2025-03-02`, &command.CopyEventsOnCommand{}},
		{"copy events between", `copy events between 2025-03-01 and 2025-03-03 --target travel to 2025-04-01`, &command.CopyEventsBetweenCommand{}},
		{"use calendar", `use calendar --name work`, &command.UseCalendarCommand{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := command.Parse(tc.line)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tc.line, err)
			}
			if gotType, wantType := fmt.Sprintf("%T", got), fmt.Sprintf("%T", tc.want); gotType != wantType {
				t.Errorf("Parse(%q) = %s, want %s", tc.line, gotType, wantType)
			}
		})
	}
}

func TestParseRejects(t *testing.T) {
	cases := []struct {
		name string
		line string
		want error
	}{
		{"empty line", ``, command.ErrInvalidCommand},
		{"unknown verb", `destroy calendar --name work`, command.ErrInvalidCommand},
		{"create without subject", `create`, command.ErrInvalidCommand},
		{"create calendar missing flag", `create calendar --name work`, command.ErrInvalidCommand},
		{"create event bad shape", `create event standup at 2025-03-01T08:00`, command.ErrInvalidCommand},
		{"create event bad datetime", `create event standup on 03/01/2025`, command.ErrInvalidDateTime},
		{"create event reversed range", `create event standup from 2025-03-01T09:00 to 2025-03-01T08:00`, command.ErrInvalidRange},
		{"recurring spans midnight", `create event standup from 2025-03-01T22:00 to 2025-03-02T01:00 repeats MWF for 3 times`, command.ErrInvalidCommand},
		{"recurring zero count", `create event standup from 2025-03-03T08:00 to 2025-03-03T09:00 repeats MWF for 0 times`, command.ErrInvalidCommand},
		{"recurring non-numeric count", `create event standup from 2025-03-03T08:00 to 2025-03-03T09:00 repeats MWF for many times`, command.ErrInvalidCommand},
		{"recurring bad weekdays", `create event standup from 2025-03-03T08:00 to 2025-03-03T09:00 repeats XYZ for 3 times`, command.ErrInvalidCommand},
		{"edit missing with", `edit event subject standup from 2025-03-01T08:00 to 2025-03-01T09:00 sync`, command.ErrInvalidCommand},
		{"export without csv", `export cal out.txt`, command.ErrInvalidCommand},
		{"export missing file", `export cal`, command.ErrInvalidCommand},
		{"show bad shape", `show status at 2025-03-01T08:30`, command.ErrInvalidCommand},
		{"copy bad shape", `copy event standup to travel`, command.ErrInvalidCommand},
		{"use without name flag", `use calendar work`, command.ErrInvalidCommand},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := command.Parse(tc.line)
			if !errors.Is(err, tc.want) {
				t.Errorf("Parse(%q): got %v, want %v", tc.line, err, tc.want)
			}
		})
	}
}

func TestParseEventFlags(t *testing.T) {
	line := `create event standup from 2025-03-01T08:00 to 2025-03-01T09:00 --desc "daily sync" --location "room 4" --autoDecline private`
	cmd, err := command.Parse(line)
	if err != nil {
		t.Fatal(err)
	}
	create, ok := cmd.(*command.CreateEventCommand)
	if !ok {
		t.Fatalf("got %T, want *CreateEventCommand", cmd)
	}
	if create.Description != "daily sync" {
		t.Errorf("Description = %q", create.Description)
	}
	if create.Location != "room 4" {
		t.Errorf("Location = %q", create.Location)
	}
	if create.IsPublic {
		t.Error("event should be private")
	}
	if !create.AutoDecline {
		t.Error("auto-decline should be set")
	}
}

func TestParseEventFlagDefaults(t *testing.T) {
	cmd, err := command.Parse(`create event standup from 2025-03-01T08:00 to 2025-03-01T09:00`)
	if err != nil {
		t.Fatal(err)
	}
	create := cmd.(*command.CreateEventCommand)
	if !create.IsPublic {
		t.Error("events default to public")
	}
	if create.AutoDecline {
		t.Error("auto-decline defaults to off")
	}
	if create.Description != "" || create.Location != "" {
		t.Errorf("flags should default to empty, got desc %q location %q", create.Description, create.Location)
	}
}

func TestParseRecurringFields(t *testing.T) {
	cmd, err := command.Parse(`create event standup from 2025-03-03T08:00 to 2025-03-03T09:00 repeats MWF for 3 times`)
	if err != nil {
		t.Fatal(err)
	}
	create := cmd.(*command.CreateEventCommand)
	if create.Count != 3 {
		t.Errorf("Count = %d, want 3", create.Count)
	}
	want := []time.Weekday{time.Monday, time.Wednesday, time.Friday}
	if len(create.Weekdays) != len(want) {
		t.Fatalf("Weekdays = %v, want %v", create.Weekdays, want)
	}
	for i := range want {
		if create.Weekdays[i] != want[i] {
			t.Errorf("Weekdays[%d] = %v, want %v", i, create.Weekdays[i], want[i])
		}
	}
	if !create.UntilWall.IsZero() {
		t.Errorf("UntilWall should be zero for a count-bounded event, got %v", create.UntilWall)
	}
}
