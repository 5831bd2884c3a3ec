package clickhouse

import (
	"context"
	"fmt"
	"time"
)

// ParticipantCheckIns returns how many accepted check-ins each participant of game was handed,
// keyed by participant. It feeds organizer dashboards; transaction building never reads it.
func (r *Repository) ParticipantCheckIns(ctx context.Context, game string) (counts map[string]uint64, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("participant_check_ins", err, start)
	}()

	const query = `
SELECT participant, count() AS check_ins
FROM hunt_events
WHERE game = ? AND kind = 'check_in' AND verdict = 'accepted'
GROUP BY participant`

	rows, err := r.conn.Query(ctx, query, game)
	if err != nil {
		return nil, fmt.Errorf("query participant check-ins: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	counts = make(map[string]uint64)
	for rows.Next() {
		var (
			participant string
			checkIns    uint64
		)
		if err = rows.Scan(&participant, &checkIns); err != nil {
			return nil, fmt.Errorf("scan participant check-ins: %w", err)
		}
		counts[participant] = checkIns
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate participant check-ins: %w", err)
	}
	return counts, nil
}
