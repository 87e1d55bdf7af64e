package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"fallguard-backend/internal/metrics"
	"fallguard-backend/internal/notify"
	"fallguard-backend/internal/status"
)

const msgPingReceived = "Ping recibido"

// Ping records a heartbeat. An empty body counts as a heartbeat with
// default device info.
func (a *API) Ping(w http.ResponseWriter, r *http.Request) {
	if a.status == nil {
		writeResultError(w, r, ErrNotConfigured)
		return
	}
	var req PingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeResultError(w, r, badRequest(msgInvalidBody, err))
		return
	}
	err := a.status.Ping(r.Context(), status.Heartbeat{
		DeviceID: req.Dispositivo,
		IP:       req.IP,
		RSSI:     req.RSSI,
	})
	if err != nil {
		writeResultError(w, r, err)
		return
	}
	metrics.Heartbeats.Inc()
	writeJSON(w, http.StatusOK, MessageResponse{Success: true, Message: msgPingReceived})
}

func (a *API) GetStatus(w http.ResponseWriter, r *http.Request) {
	if a.status == nil {
		writeResultError(w, r, ErrNotConfigured)
		return
	}
	snap, err := a.status.Snapshot(r.Context())
	if err != nil {
		writeResultError(w, r, err)
		return
	}
	resp := StatusResponse{
		Online: snap.OnlineAt(a.now()),
		Device: snap.Device,
	}
	if !snap.LastPing.IsZero() {
		lastUpdate := notify.FormatDate(snap.LastPing, a.loc)
		resp.LastUpdate = &lastUpdate
	}
	writeJSON(w, http.StatusOK, resp)
}
