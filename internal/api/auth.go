package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"fallguard-backend/internal/auth"
	"fallguard-backend/internal/identity"
)

const msgRegistered = "Usuario registrado correctamente"

func (a *API) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, badRequest(msgInvalidBody, err))
		return
	}
	if a.auth == nil {
		writeError(w, r, ErrNotConfigured)
		return
	}
	_, err := a.auth.Register(r.Context(), req.Email, req.Password, req.Nombre)
	if err != nil {
		var rejected *identity.RejectedError
		switch {
		case errors.Is(err, auth.ErrAlreadyRegistered):
			err = badRequest(msgAlreadyRegistered, err)
		case errors.As(err, &rejected):
			err = badRequest(rejected.Message, err)
		case errors.Is(err, auth.ErrInvalidInput):
			err = badRequest(msgCredentialsNeeded, err)
		}
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Success: true, Message: msgRegistered})
}

func (a *API) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, badRequest(msgInvalidBody, err))
		return
	}
	if a.auth == nil {
		writeError(w, r, ErrNotConfigured)
		return
	}
	session, err := a.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			logFailure(r, http.StatusUnauthorized, err)
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: msgBadCredentials})
			return
		}
		writeError(w, r, err)
		return
	}
	http.SetCookie(w, a.newSessionCookie(session.Token, session.ExpiresAt))
	writeJSON(w, http.StatusOK, LoginResponse{
		Success: true,
		User:    User{ID: session.User.ID, Email: session.User.Email},
	})
}

// Me answers {user: null} with 401 for any missing or invalid session.
func (a *API) Me(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil || cookie.Value == "" {
		writeJSON(w, http.StatusUnauthorized, MeResponse{User: nil})
		return
	}
	if a.auth == nil {
		writeError(w, r, ErrNotConfigured)
		return
	}
	user, err := a.auth.Resolve(r.Context(), cookie.Value)
	if err != nil {
		if !errors.Is(err, auth.ErrUnauthorized) {
			logFailure(r, http.StatusInternalServerError, err)
		}
		writeJSON(w, http.StatusUnauthorized, MeResponse{User: nil})
		return
	}
	name := user.Name
	writeJSON(w, http.StatusOK, MeResponse{User: &User{ID: user.ID, Email: user.Email, Nombre: &name}})
}

func (a *API) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookie); err == nil && a.auth != nil {
		if err := a.auth.Logout(r.Context(), cookie.Value); err != nil {
			writeError(w, r, err)
			return
		}
	}
	http.SetCookie(w, a.newSessionCookie("", time.Time{}))
	writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
}

// newSessionCookie builds the session cookie; an empty token clears it.
func (a *API) newSessionCookie(token string, expires time.Time) *http.Cookie {
	c := &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   a.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
	if token == "" {
		c.MaxAge = -1
		return c
	}
	c.MaxAge = int(auth.SessionTTL.Seconds())
	c.Expires = expires
	return c
}
