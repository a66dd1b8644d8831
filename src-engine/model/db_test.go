package model_test

import (
	"context"
	"database/sql"
	"testing"

	"calcmd/src-engine/model"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

func newTestDB(t *testing.T) *bun.DB {
	t.Helper()
	sqldb, err := sql.Open(sqliteshim.ShimName, ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	// one connection keeps every query on the same in-memory database
	sqldb.SetMaxOpenConns(1)
	db := bun.NewDB(sqldb, sqlitedialect.New())
	if err := model.CreateSchema(db); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func newCalendar(t *testing.T, db *bun.DB, name, timezone string) *model.Calendar {
	t.Helper()
	calendarModel := &model.Calendar{
		ID:       uuid.NewString(),
		Name:     name,
		Timezone: timezone,
	}
	if err := calendarModel.Upsert(context.Background(), db); err != nil {
		t.Fatal(err)
	}
	return calendarModel
}

func mustAddEvent(t *testing.T, db *bun.DB, c *model.Calendar, event model.Event) model.Event {
	t.Helper()
	event.ID = uuid.NewString()
	added, err := c.AddEvent(context.Background(), db, &event, false)
	if err != nil {
		t.Fatal(err)
	}
	if !added {
		t.Fatalf("event %q was not added", event.Summary)
	}
	return event
}
