package api

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"fallguard-backend/internal/events"
	"fallguard-backend/internal/notify"
)

const (
	maxIngestBytes     = 12 << 20
	maxMultipartMemory = 8 << 20

	msgEventReceived = "Alerta recibida"
)

func (a *API) IngestEvent(w http.ResponseWriter, r *http.Request) {
	if a.events == nil {
		writeResultError(w, r, ErrNotConfigured)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxIngestBytes)

	report, err := decodeReport(r)
	if err != nil {
		writeResultError(w, r, err)
		return
	}
	event, err := a.events.Ingest(r.Context(), report)
	if err != nil {
		writeResultError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, IngestEventResponse{
		Success: true,
		Message: msgEventReceived,
		EventID: event.ID,
	})
}

func (a *API) ListEvents(w http.ResponseWriter, r *http.Request) {
	if a.events == nil {
		writeResultError(w, r, ErrNotConfigured)
		return
	}
	list, err := a.events.Recent(r.Context())
	if err != nil {
		writeResultError(w, r, err)
		return
	}
	resp := ListEventsResponse{Success: true, Events: make([]Event, 0, len(list)), Total: len(list)}
	for _, e := range list {
		resp.Events = append(resp.Events, a.toEvent(e))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *API) toEvent(e events.Event) Event {
	return Event{
		ID:          e.ID,
		Tipo:        e.Kind,
		Magnitud:    e.Magnitude,
		Dispositivo: e.Device,
		DeviceID:    e.DeviceID,
		FotoURL:     e.ImageURL,
		Timestamp:   e.CapturedAt.UnixMilli(),
		Fecha:       notify.FormatDate(e.CapturedAt, a.loc),
		Reconocido:  e.Acknowledged,
	}
}

// decodeReport dispatches on Content-Type. Anything that is not multipart is
// read as JSON.
func decodeReport(r *http.Request) (events.Report, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		return decodeMultipartReport(r)
	}
	return decodeJSONReport(r)
}

func decodeJSONReport(r *http.Request) (events.Report, error) {
	var req IngestEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return events.Report{}, badRequest(msgInvalidBody, err)
	}
	report := events.Report{
		Format:    events.FormatJSON,
		Kind:      req.Evento,
		Magnitude: req.Magnitud,
		Device:    req.Dispositivo,
		Code:      req.Codigo,
	}
	if req.Timestamp > 0 {
		report.CapturedAt = time.UnixMilli(req.Timestamp)
	}
	report.Image = decodeImageField(r, req.Foto)
	return report, nil
}

func decodeMultipartReport(r *http.Request) (events.Report, error) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		return events.Report{}, badRequest(msgInvalidBody, err)
	}
	report := events.Report{
		Format: events.FormatMultipart,
		Kind:   r.FormValue("evento"),
		Device: r.FormValue("dispositivo"),
		Code:   r.FormValue("codigo"),
	}
	if v := strings.TrimSpace(r.FormValue("magnitud")); v != "" {
		m, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return events.Report{}, badRequest(msgInvalidBody, fmt.Errorf("magnitud: %w", err))
		}
		report.Magnitude = m
	}
	if v := strings.TrimSpace(r.FormValue("timestamp")); v != "" {
		ts, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return events.Report{}, badRequest(msgInvalidBody, fmt.Errorf("timestamp: %w", err))
		}
		report.CapturedAt = time.UnixMilli(ts)
	}

	file, header, err := r.FormFile("foto")
	switch {
	case err == nil:
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil || len(data) == 0 {
			slog.WarnContext(r.Context(), "Ignoring unreadable image part", "error", err)
			break
		}
		contentType := header.Header.Get("Content-Type")
		if contentType == "" || contentType == "application/octet-stream" {
			contentType = http.DetectContentType(data)
		}
		report.Image = &events.Image{Data: data, ContentType: contentType}
	default:
		report.Image = decodeImageField(r, r.FormValue("foto"))
	}
	return report, nil
}

// decodeImageField never fails the request: a bad image is dropped.
func decodeImageField(r *http.Request, encoded string) *events.Image {
	image, err := events.DecodeImage(encoded)
	if err != nil {
		slog.WarnContext(r.Context(), "Ignoring undecodable image", "error", err)
		return nil
	}
	return image
}
