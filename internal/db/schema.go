package db

import "time"

type Event struct {
	ID           string  `db:"id"`
	Kind         string  `db:"kind"`
	Magnitude    float64 `db:"magnitude"`
	DeviceLabel  string  `db:"device_label"`
	DeviceID     string  `db:"device_id"`
	ImageURL     string  `db:"image_url"`
	CapturedAt   int64   `db:"captured_at"`
	Acknowledged bool    `db:"acknowledged"`
}

type Device struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Name      string    `db:"name"`
	Code      string    `db:"code"`
	Location  string    `db:"location"`
	Active    bool      `db:"active"`
	CreatedAt time.Time `db:"created_at"`
}

type Profile struct {
	ID    string `db:"id"`
	Email string `db:"email"`
	Name  string `db:"name"`
}

type Session struct {
	Token     string    `db:"token"`
	UserID    string    `db:"user_id"`
	Email     string    `db:"email"`
	ExpiresAt time.Time `db:"expires_at"`
}
