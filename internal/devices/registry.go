package devices

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"fallguard-backend/internal/db"
)

const (
	CodePrefix = "FG-"

	DefaultName = "Mi Dispositivo"

	codeLength  = 6
	codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var (
	ErrUnknownCode    = errors.New("unknown pairing code")
	ErrRegistryFailed = errors.New("device registry failed")
)

type Device struct {
	ID        string
	UserID    string
	Name      string
	Code      string
	Location  string
	Active    bool
	CreatedAt time.Time
}

type repository interface {
	ListDevices(ctx context.Context, userID string) ([]db.Device, error)
	CreateDevice(ctx context.Context, device db.Device) (db.Device, error)
	DeleteDevice(ctx context.Context, userID, id string) error
	FindDeviceByCode(ctx context.Context, code string) (db.Device, error)
}

type Registry struct {
	repo repository
}

func NewRegistry(repo repository) *Registry {
	return &Registry{repo: repo}
}

// List returns the caller's devices, newest first.
func (r *Registry) List(ctx context.Context, userID string) ([]Device, error) {
	const fn = "Registry:List"
	rows, err := r.repo.ListDevices(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrRegistryFailed, err)
	}
	out := make([]Device, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromRow(row))
	}
	return out, nil
}

// Create registers a device with a fresh pairing code. Codes are not checked
// for collisions with existing devices.
func (r *Registry) Create(ctx context.Context, userID, name, location string) (Device, error) {
	const fn = "Registry:Create"
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultName
	}
	code, err := GenerateCode()
	if err != nil {
		return Device{}, fmt.Errorf("%s:%w:%w", fn, ErrRegistryFailed, err)
	}
	row, err := r.repo.CreateDevice(ctx, db.Device{
		UserID:   userID,
		Name:     name,
		Code:     code,
		Location: strings.TrimSpace(location),
	})
	if err != nil {
		return Device{}, fmt.Errorf("%s:%w:%w", fn, ErrRegistryFailed, err)
	}
	return fromRow(row), nil
}

// Delete removes a device owned by userID; anything else is a silent no-op.
func (r *Registry) Delete(ctx context.Context, userID, id string) error {
	const fn = "Registry:Delete"
	if err := r.repo.DeleteDevice(ctx, userID, id); err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrRegistryFailed, err)
	}
	return nil
}

func (r *Registry) ResolveCode(ctx context.Context, code string) (Device, error) {
	const fn = "Registry:ResolveCode"
	row, err := r.repo.FindDeviceByCode(ctx, code)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Device{}, fmt.Errorf("%s:%w", fn, ErrUnknownCode)
		}
		return Device{}, fmt.Errorf("%s:%w:%w", fn, ErrRegistryFailed, err)
	}
	return fromRow(row), nil
}

// GenerateCode returns CodePrefix followed by six random uppercase
// alphanumerics, e.g. "FG-7K2QXA".
func GenerateCode() (string, error) {
	return generateCode(rand.Reader)
}

// generateCode draws uniformly from codeCharset, discarding bytes at or
// above the largest multiple of its length.
func generateCode(r io.Reader) (string, error) {
	limit := byte(256 - 256%len(codeCharset))
	var sb strings.Builder
	sb.WriteString(CodePrefix)
	buf := make([]byte, codeLength)
	for n := 0; n < codeLength; {
		if _, err := io.ReadFull(r, buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			if b >= limit || n == codeLength {
				continue
			}
			sb.WriteByte(codeCharset[int(b)%len(codeCharset)])
			n++
		}
	}
	return sb.String(), nil
}

func fromRow(row db.Device) Device {
	return Device{
		ID:        row.ID,
		UserID:    row.UserID,
		Name:      row.Name,
		Code:      row.Code,
		Location:  row.Location,
		Active:    row.Active,
		CreatedAt: row.CreatedAt,
	}
}
