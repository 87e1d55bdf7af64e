package status

import (
	"context"
	"errors"
	"sync"
	"time"
)

// OnlineWindow is how recent the last heartbeat must be for the device to
// count as online. A heartbeat exactly OnlineWindow old is offline.
const OnlineWindow = 30 * time.Second

const (
	DefaultDeviceID = "ESP32-CAM"
	UnknownIP       = "desconocida"
)

var ErrTrackerFailed = errors.New("status tracker failed")

type DeviceInfo struct {
	ID   string `json:"id"`
	IP   string `json:"ip"`
	RSSI int    `json:"rssi"`
}

type Heartbeat struct {
	DeviceID string
	IP       string
	RSSI     int
}

// Snapshot is the last heartbeat seen. A zero LastPing means none yet.
type Snapshot struct {
	LastPing time.Time   `json:"last_ping"`
	Device   *DeviceInfo `json:"device"`
}

// OnlineAt reports whether the snapshot counts as online at now.
func (s Snapshot) OnlineAt(now time.Time) bool {
	if s.LastPing.IsZero() {
		return false
	}
	return now.Sub(s.LastPing) < OnlineWindow
}

type Tracker interface {
	Ping(ctx context.Context, hb Heartbeat) error
	Snapshot(ctx context.Context) (Snapshot, error)
}

func normalize(hb Heartbeat) *DeviceInfo {
	info := &DeviceInfo{ID: hb.DeviceID, IP: hb.IP, RSSI: hb.RSSI}
	if info.ID == "" {
		info.ID = DefaultDeviceID
	}
	if info.IP == "" {
		info.IP = UnknownIP
	}
	return info
}

// MemoryTracker keeps the snapshot in process memory.
type MemoryTracker struct {
	mu       sync.Mutex
	now      func() time.Time
	snapshot Snapshot
}

func NewMemoryTracker(now func() time.Time) *MemoryTracker {
	if now == nil {
		now = time.Now
	}
	return &MemoryTracker{now: now}
}

func (t *MemoryTracker) Ping(_ context.Context, hb Heartbeat) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.snapshot = Snapshot{LastPing: t.now(), Device: normalize(hb)}
	return nil
}

func (t *MemoryTracker) Snapshot(_ context.Context) (Snapshot, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	snap := t.snapshot
	if snap.Device != nil {
		device := *snap.Device
		snap.Device = &device
	}
	return snap, nil
}
