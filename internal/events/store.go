package events

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"fallguard-backend/internal/db"
)

const (
	DefaultRetention = 100
	PersistedLimit   = 50
)

var ErrStoreFailed = errors.New("event store failed")

// Store holds events newest-first. Writes are append-only.
type Store interface {
	Append(ctx context.Context, event Event) error
	Recent(ctx context.Context) ([]Event, error)
}

// MemoryStore keeps the most recent events in process memory. Once the bound
// is exceeded the oldest insertion is dropped, regardless of capture time.
type MemoryStore struct {
	mu     sync.Mutex
	bound  int
	events []Event
}

func NewMemoryStore(bound int) *MemoryStore {
	if bound <= 0 {
		bound = DefaultRetention
	}
	return &MemoryStore{
		bound:  bound,
		events: make([]Event, 0, bound),
	}
}

func (s *MemoryStore) Append(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append(s.events, Event{})
	copy(s.events[1:], s.events)
	s.events[0] = event
	if len(s.events) > s.bound {
		clear(s.events[s.bound:])
		s.events = s.events[:s.bound]
	}
	return nil
}

func (s *MemoryStore) Recent(_ context.Context) ([]Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out, nil
}

type repository interface {
	InsertEvent(ctx context.Context, event db.Event) error
	LatestEvents(ctx context.Context, limit int) ([]db.Event, error)
}

// PostgresStore persists one row per event and reads back the most recent
// rows by capture time.
type PostgresStore struct {
	repo  repository
	limit int
}

func NewPostgresStore(repo repository) *PostgresStore {
	return &PostgresStore{repo: repo, limit: PersistedLimit}
}

func (s *PostgresStore) Append(ctx context.Context, event Event) error {
	const fn = "PostgresStore:Append"
	err := s.repo.InsertEvent(ctx, db.Event{
		ID:           event.ID,
		Kind:         event.Kind,
		Magnitude:    event.Magnitude,
		DeviceLabel:  event.Device,
		DeviceID:     event.DeviceID,
		ImageURL:     event.ImageURL,
		CapturedAt:   event.CapturedAt.UnixMilli(),
		Acknowledged: event.Acknowledged,
	})
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrStoreFailed, err)
	}
	return nil
}

func (s *PostgresStore) Recent(ctx context.Context) ([]Event, error) {
	const fn = "PostgresStore:Recent"
	rows, err := s.repo.LatestEvents(ctx, s.limit)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrStoreFailed, err)
	}
	out := make([]Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, Event{
			ID:           row.ID,
			Kind:         row.Kind,
			Magnitude:    row.Magnitude,
			Device:       row.DeviceLabel,
			DeviceID:     row.DeviceID,
			ImageURL:     row.ImageURL,
			CapturedAt:   time.UnixMilli(row.CapturedAt),
			Acknowledged: row.Acknowledged,
		})
	}
	return out, nil
}
