package db

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/pgxscan"
)

func (db *DB) UpsertProfile(ctx context.Context, profile Profile) error {
	const fn = "DB:UpsertProfile"
	_, err := db.pool.Exec(ctx, `
		INSERT INTO profiles (id, email, name)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE
		SET email = EXCLUDED.email, name = EXCLUDED.name
	`, profile.ID, profile.Email, profile.Name)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}
	return nil
}

func (db *DB) GetProfile(ctx context.Context, id string) (Profile, error) {
	const fn = "DB:GetProfile"
	var profile Profile
	err := pgxscan.Get(ctx, db.pool, &profile, `
		SELECT id, email, name
		FROM profiles
		WHERE id = $1
	`, id)
	if err != nil {
		if pgxscan.NotFound(err) {
			return Profile{}, fmt.Errorf("%s:%w", fn, ErrNotFound)
		}
		return Profile{}, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return profile, nil
}

func (db *DB) CreateSession(ctx context.Context, session Session) error {
	const fn = "DB:CreateSession"
	_, err := db.pool.Exec(ctx, `
		INSERT INTO sessions (token, user_id, email, expires_at)
		VALUES ($1, $2, $3, $4)
	`, session.Token, session.UserID, session.Email, session.ExpiresAt)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}
	return nil
}

// GetSession only returns sessions that have not expired.
func (db *DB) GetSession(ctx context.Context, token string) (Session, error) {
	const fn = "DB:GetSession"
	var session Session
	err := pgxscan.Get(ctx, db.pool, &session, `
		SELECT token, user_id, email, expires_at
		FROM sessions
		WHERE token = $1
		AND expires_at > now()
	`, token)
	if err != nil {
		if pgxscan.NotFound(err) {
			return Session{}, fmt.Errorf("%s:%w", fn, ErrNotFound)
		}
		return Session{}, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return session, nil
}

func (db *DB) DeleteSession(ctx context.Context, token string) error {
	const fn = "DB:DeleteSession"
	_, err := db.pool.Exec(ctx, `DELETE FROM sessions WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrDeleteFailed, err)
	}
	return nil
}
