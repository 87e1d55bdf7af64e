package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/pgxscan"
)

var (
	ErrInsertFailed = errors.New("insert operation failed")
	ErrSelectFailed = errors.New("select operation failed")
	ErrDeleteFailed = errors.New("delete operation failed")
	ErrNotFound     = errors.New("record not found")
)

func (db *DB) InsertEvent(ctx context.Context, event Event) error {
	const fn = "DB:InsertEvent"
	_, err := db.pool.Exec(ctx, `
		INSERT INTO events (
			id,
			kind,
			magnitude,
			device_label,
			device_id,
			image_url,
			captured_at,
			acknowledged
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, event.ID, event.Kind, event.Magnitude, event.DeviceLabel, event.DeviceID,
		event.ImageURL, event.CapturedAt, event.Acknowledged)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}
	return nil
}

// LatestEvents returns up to limit events, most recent capture time first.
func (db *DB) LatestEvents(ctx context.Context, limit int) ([]Event, error) {
	const fn = "DB:LatestEvents"
	events := []Event{}
	err := pgxscan.Select(ctx, db.pool, &events, `
		SELECT
			id::text AS id,
			kind,
			magnitude,
			device_label,
			device_id,
			image_url,
			captured_at,
			acknowledged
		FROM events
		ORDER BY captured_at DESC, created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return events, nil
}
