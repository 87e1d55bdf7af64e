package api

import (
	"time"

	"fallguard-backend/internal/status"
)

type IngestEventRequest struct {
	Evento      string  `json:"evento"`
	Magnitud    float64 `json:"magnitud"`
	Dispositivo string  `json:"dispositivo"`
	Codigo      string  `json:"codigo"`
	Foto        string  `json:"foto"`
	Timestamp   int64   `json:"timestamp"`
}

type IngestEventResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	EventID string `json:"eventId"`
}

type Event struct {
	ID          string  `json:"id"`
	Tipo        string  `json:"tipo"`
	Magnitud    float64 `json:"magnitud"`
	Dispositivo string  `json:"dispositivo"`
	DeviceID    string  `json:"device_id"`
	FotoURL     string  `json:"foto_url,omitempty"`
	Timestamp   int64   `json:"timestamp"`
	Fecha       string  `json:"fecha"`
	Reconocido  bool    `json:"reconocido"`
}

type ListEventsResponse struct {
	Success bool    `json:"success"`
	Events  []Event `json:"events"`
	Total   int     `json:"total"`
}

type PingRequest struct {
	Dispositivo string `json:"dispositivo"`
	IP          string `json:"ip"`
	RSSI        int    `json:"rssi"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type StatusResponse struct {
	Online     bool               `json:"online"`
	LastUpdate *string            `json:"lastUpdate"`
	Device     *status.DeviceInfo `json:"device"`
}

type Device struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Nombre    string    `json:"nombre"`
	Codigo    string    `json:"codigo"`
	Ubicacion string    `json:"ubicacion"`
	Activo    bool      `json:"activo"`
	CreatedAt time.Time `json:"created_at"`
}

type ListDevicesResponse struct {
	Dispositivos []Device `json:"dispositivos"`
}

type CreateDeviceRequest struct {
	Nombre    string `json:"nombre"`
	Ubicacion string `json:"ubicacion"`
}

type CreateDeviceResponse struct {
	Dispositivo Device `json:"dispositivo"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type RegisterRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type User struct {
	ID     string  `json:"id"`
	Email  string  `json:"email"`
	Nombre *string `json:"nombre,omitempty"`
}

type LoginResponse struct {
	Success bool `json:"success"`
	User    User `json:"user"`
}

type MeResponse struct {
	User *User `json:"user"`
}
