package api

import (
	"context"
	"io/fs"
	"net/http"
	"time"

	"fallguard-backend/internal/auth"
	"fallguard-backend/internal/devices"
	"fallguard-backend/internal/events"
	"fallguard-backend/internal/status"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type eventService interface {
	Ingest(ctx context.Context, report events.Report) (events.Event, error)
	Recent(ctx context.Context) ([]events.Event, error)
}

type statusTracker interface {
	Ping(ctx context.Context, hb status.Heartbeat) error
	Snapshot(ctx context.Context) (status.Snapshot, error)
}

type deviceRegistry interface {
	List(ctx context.Context, userID string) ([]devices.Device, error)
	Create(ctx context.Context, userID, name, location string) (devices.Device, error)
	Delete(ctx context.Context, userID, id string) error
}

type authenticator interface {
	Register(ctx context.Context, email, password, name string) (auth.User, error)
	Login(ctx context.Context, email, password string) (auth.Session, error)
	Resolve(ctx context.Context, token string) (auth.User, error)
	Logout(ctx context.Context, token string) error
}

// Config wires the handlers. Devices and Auth may be left nil when no
// database is configured; their routes then answer "Servidor no configurado".
type Config struct {
	Events       eventService
	Status       statusTracker
	Devices      deviceRegistry
	Auth         authenticator
	Location     *time.Location
	SecureCookie bool
	Web          fs.FS
	Now          func() time.Time
}

type API struct {
	events       eventService
	status       statusTracker
	devices      deviceRegistry
	auth         authenticator
	loc          *time.Location
	secureCookie bool
	web          fs.FS
	now          func() time.Time
}

func New(cfg Config) *API {
	a := &API{
		events:       cfg.Events,
		status:       cfg.Status,
		devices:      cfg.Devices,
		auth:         cfg.Auth,
		loc:          cfg.Location,
		secureCookie: cfg.SecureCookie,
		web:          cfg.Web,
		now:          cfg.Now,
	}
	if a.loc == nil {
		a.loc = time.UTC
	}
	if a.now == nil {
		a.now = time.Now
	}
	return a
}

func (a *API) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		for _, path := range []string{"/events/ingest", "/fall-detection"} {
			r.Post(path, a.IngestEvent)
			r.Options(path, a.Preflight)
		}
		r.Get("/events", a.ListEvents)
		r.Get("/events/export", a.ExportEvents)

		r.Post("/status/ping", a.Ping)
		r.Post("/status", a.Ping)
		r.Get("/status", a.GetStatus)

		r.Group(func(r chi.Router) {
			r.Use(a.requireSession)
			for _, path := range []string{"/devices", "/dispositivos"} {
				r.Get(path, a.ListDevices)
				r.Post(path, a.CreateDevice)
				r.Delete(path, a.DeleteDevice)
			}
		})

		r.Post("/auth/register", a.Register)
		r.Post("/auth/login", a.Login)
		r.Get("/auth/me", a.Me)
		r.Post("/auth/logout", a.Logout)
	})

	if a.web != nil {
		r.Handle("/*", http.FileServer(http.FS(a.web)))
	}
	return r
}

func (a *API) Preflight(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct{}{})
}
