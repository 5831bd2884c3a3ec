package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/scavengerhunt-backend/internal/model"
)

const insertHuntEventsQuery = `
INSERT INTO hunt_events (
	kind,
	cluster,
	game,
	participant,
	reference,
	location_index,
	verdict,
	reason,
	created_at
) VALUES`

// InsertHuntEvents stores event rows in ClickHouse.
func (r *Repository) InsertHuntEvents(ctx context.Context, events []model.HuntEvent) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_hunt_events", err, start)
	}()

	if len(events) == 0 {
		return nil
	}

	batch, err := r.batches.PrepareBatch(ctx, insertHuntEventsQuery)
	if err != nil {
		return fmt.Errorf("prepare hunt events batch: %w", err)
	}

	for _, event := range events {
		if err = batch.Append(
			string(event.Kind),
			string(event.Cluster),
			event.Game,
			event.Participant,
			event.Reference,
			event.LocationIndex,
			string(event.Verdict),
			event.Reason,
			event.CreatedAt,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append hunt event: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert hunt events: %w", err)
	}
	return nil
}
