package db

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/pgxscan"
)

const deviceColumns = `
	id::text AS id,
	user_id,
	name,
	code,
	location,
	active,
	created_at
`

func (db *DB) ListDevices(ctx context.Context, userID string) ([]Device, error) {
	const fn = "DB:ListDevices"
	devices := []Device{}
	err := pgxscan.Select(ctx, db.pool, &devices, `
		SELECT `+deviceColumns+`
		FROM devices
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return devices, nil
}

func (db *DB) CreateDevice(ctx context.Context, device Device) (Device, error) {
	const fn = "DB:CreateDevice"
	var created Device
	err := pgxscan.Get(ctx, db.pool, &created, `
		INSERT INTO devices (
			user_id,
			name,
			code,
			location
		) VALUES ($1, $2, $3, $4)
		RETURNING `+deviceColumns,
		device.UserID, device.Name, device.Code, device.Location)
	if err != nil {
		return Device{}, fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}
	return created, nil
}

// DeleteDevice removes the device only when it belongs to userID. Deleting an
// unknown or foreign id affects no rows and is not an error.
func (db *DB) DeleteDevice(ctx context.Context, userID, id string) error {
	const fn = "DB:DeleteDevice"
	_, err := db.pool.Exec(ctx, `
		DELETE FROM devices
		WHERE id::text = $1
		AND user_id = $2
	`, id, userID)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrDeleteFailed, err)
	}
	return nil
}

// FindDeviceByCode returns the most recently created device with the pairing
// code. Codes are not unique.
func (db *DB) FindDeviceByCode(ctx context.Context, code string) (Device, error) {
	const fn = "DB:FindDeviceByCode"
	var device Device
	err := pgxscan.Get(ctx, db.pool, &device, `
		SELECT `+deviceColumns+`
		FROM devices
		WHERE code = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, code)
	if err != nil {
		if pgxscan.NotFound(err) {
			return Device{}, fmt.Errorf("%s:%w", fn, ErrNotFound)
		}
		return Device{}, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return device, nil
}
