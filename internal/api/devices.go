package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"fallguard-backend/internal/devices"
)

func (a *API) ListDevices(w http.ResponseWriter, r *http.Request) {
	user, _ := userFrom(r.Context())
	if a.devices == nil {
		writeError(w, r, ErrNotConfigured)
		return
	}
	list, err := a.devices.List(r.Context(), user.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	resp := ListDevicesResponse{Dispositivos: make([]Device, 0, len(list))}
	for _, d := range list {
		resp.Dispositivos = append(resp.Dispositivos, toDevice(d))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *API) CreateDevice(w http.ResponseWriter, r *http.Request) {
	user, _ := userFrom(r.Context())
	var req CreateDeviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, r, badRequest(msgInvalidBody, err))
		return
	}
	if a.devices == nil {
		writeError(w, r, ErrNotConfigured)
		return
	}
	device, err := a.devices.Create(r.Context(), user.ID, req.Nombre, req.Ubicacion)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, CreateDeviceResponse{Dispositivo: toDevice(device)})
}

func (a *API) DeleteDevice(w http.ResponseWriter, r *http.Request) {
	user, _ := userFrom(r.Context())
	id := strings.TrimSpace(r.URL.Query().Get("id"))
	if id == "" {
		writeError(w, r, badRequest(msgIDRequired, nil))
		return
	}
	if a.devices == nil {
		writeError(w, r, ErrNotConfigured)
		return
	}
	if err := a.devices.Delete(r.Context(), user.ID, id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
}

func toDevice(d devices.Device) Device {
	return Device{
		ID:        d.ID,
		UserID:    d.UserID,
		Nombre:    d.Name,
		Codigo:    d.Code,
		Ubicacion: d.Location,
		Activo:    d.Active,
		CreatedAt: d.CreatedAt,
	}
}
