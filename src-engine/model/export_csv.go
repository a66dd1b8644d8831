package model

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/uptrace/bun"
)

const (
	csvHeader     = "Subject, Start Date, Start Time, End Date, End Time, All Day Event, Description, Location, Private"
	csvDateLayout = "01/02/2006"
	csvTimeLayout = "03:04 PM"
)

// ExportCSV writes one row per event, dates and times in the calendar's zone.
// The Private column is the negation of the public flag. Field values are
// written as-is; the format performs no delimiter escaping.
func (c *Calendar) ExportCSV(ctx context.Context, db bun.IDB, w io.Writer) error {
	loc, err := c.Location()
	if err != nil {
		return fmt.Errorf("(*Calendar).ExportCSV: %w", err)
	}

	eventModels, err := c.EventModels(ctx, db)
	if err != nil {
		return fmt.Errorf("(*Calendar).ExportCSV: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(csvHeader + "\n")
	for _, event := range eventModels {
		start := event.Start().In(loc)
		endDate, endTime := "", ""
		allDay := "True"
		if !event.IsAllDay() {
			end := event.End().In(loc)
			endDate = end.Format(csvDateLayout)
			endTime = end.Format(csvTimeLayout)
			allDay = "False"
		}
		private := "True"
		if event.IsPublic {
			private = "False"
		}
		sb.WriteString(strings.Join([]string{
			event.Summary,
			start.Format(csvDateLayout),
			start.Format(csvTimeLayout),
			endDate,
			endTime,
			allDay,
			event.Description,
			event.Location,
			private,
		}, ",") + "\n")
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("(*Calendar).ExportCSV: %w", err)
	}
	return nil
}
