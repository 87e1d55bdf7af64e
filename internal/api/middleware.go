package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"fallguard-backend/internal/auth"

	"github.com/go-chi/chi/v5/middleware"
)

const sessionCookie = "session"

type ctxKey int

const userKey ctxKey = iota

func withUser(ctx context.Context, user auth.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

func userFrom(ctx context.Context) (auth.User, bool) {
	user, ok := ctx.Value(userKey).(auth.User)
	return user, ok
}

// requireSession resolves the session cookie and stores the user in the
// request context.
func (a *API) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookie)
		if err != nil || cookie.Value == "" {
			writeError(w, r, ErrUnauthorized)
			return
		}
		if a.auth == nil {
			writeError(w, r, ErrNotConfigured)
			return
		}
		user, err := a.auth.Resolve(r.Context(), cookie.Value)
		if err != nil {
			writeError(w, r, sessionError(err))
			return
		}
		next.ServeHTTP(w, r.WithContext(withUser(r.Context(), user)))
	})
}

func sessionError(err error) error {
	if errors.Is(err, auth.ErrUnauthorized) {
		return ErrUnauthorized
	}
	return err
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		slog.InfoContext(r.Context(), "HTTP request",
			"request_id", middleware.GetReqID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
