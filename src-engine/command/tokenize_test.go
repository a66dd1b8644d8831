package command_test

import (
	"errors"
	"reflect"
	"testing"

	"calcmd/src-engine/command"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		name string
		line string
		want []string
	}{
		{"plain", "create calendar", []string{"create", "calendar"}},
		{"collapses whitespace", "  create \t calendar  ", []string{"create", "calendar"}},
		{"quoted value", `create event "Team Meeting" on 2025-03-01`,
			[]string{"create", "event", "Team Meeting", "on", "2025-03-01"}},
		{"empty quotes", `edit events subject standup ""`,
			[]string{"edit", "events", "subject", "standup", ""}},
		{"quotes glued to word", `print"ed"`, []string{"printed"}},
		{"empty line", "", []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := command.Tokenize(tc.line)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Tokenize(%q) = %#v, want %#v", tc.line, got, tc.want)
			}
		})
	}
}

func TestTokenizeUnterminatedQuote(t *testing.T) {
	_, err := command.Tokenize(`create event "Team Meeting on 2025-03-01`)
	if !errors.Is(err, command.ErrInvalidCommand) {
		t.Errorf("got %v, want ErrInvalidCommand", err)
	}
}
