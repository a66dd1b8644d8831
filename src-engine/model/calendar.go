package model

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

type Calendar struct {
	bun.BaseModel `bun:"table:calendars"`

	ID       string `bun:"id,pk"`               // required, stable across renames
	Name     string `bun:"name,notnull,unique"` // required
	Timezone string `bun:"timezone,notnull"`    // required, IANA identifier

	Events []*Event `bun:"rel:has-many,join:id=calendar_id"`
}

// Location resolves the calendar's IANA timezone against the host database.
func (c *Calendar) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("(*Calendar).Location: %w", err)
	}
	return loc, nil
}

func (c *Calendar) Upsert(ctx context.Context, db bun.IDB) error {
	switch {
	case c.ID == "":
		return fmt.Errorf("(*Calendar).Upsert: id is blank")
	case c.Name == "":
		return fmt.Errorf("(*Calendar).Upsert: name is blank")
	case c.Timezone == "":
		return fmt.Errorf("(*Calendar).Upsert: timezone is blank")
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("(*Calendar).Upsert: timezone is invalid: %w", err)
	}

	exists, err := db.NewSelect().
		Model((*Calendar)(nil)).
		Where("id = ?", c.ID).
		Exists(ctx)
	if err != nil {
		return fmt.Errorf("(*Calendar).Upsert: %w", err)
	}

	switch exists {
	case true:
		if _, err := db.NewUpdate().
			Model(c).
			WherePK().
			Exec(ctx); err != nil {
			return fmt.Errorf("(*Calendar).Upsert: %w", err)
		}
	case false:
		if _, err := db.NewInsert().
			Model(c).
			Exec(ctx); err != nil {
			return fmt.Errorf("(*Calendar).Upsert: %w", err)
		}
	}

	return nil
}
