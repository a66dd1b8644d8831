package metric

import (
	"context"

	"calcmd/src-engine/model"
	"calcmd/src-engine/utils"
)

func countCalendars(as *utils.AppState) (int, error) {
	return as.BunDB.NewSelect().
		Model((*model.Calendar)(nil)).
		Count(context.Background())
}

func countEvents(as *utils.AppState) (int, error) {
	return as.BunDB.NewSelect().
		Model((*model.Event)(nil)).
		Count(context.Background())
}
