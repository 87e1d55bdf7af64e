package api

import (
	"errors"
	"net/http"
)

var (
	ErrClientInput   = errors.New("invalid client input")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrNotConfigured = errors.New("server not configured")
)

const (
	msgUnauthorized      = "No autorizado"
	msgNotConfigured     = "Servidor no configurado"
	msgServerError       = "Error del servidor"
	msgInvalidBody       = "Solicitud inválida"
	msgIDRequired        = "ID requerido"
	msgBadCredentials    = "Credenciales incorrectas"
	msgAlreadyRegistered = "Este correo ya está registrado"
	msgCredentialsNeeded = "Email y contraseña requeridos"
)

// clientError carries the message shown to the caller for a 400.
type clientError struct {
	message string
	err     error
}

func (e *clientError) Error() string {
	if e.err != nil {
		return e.message + ": " + e.err.Error()
	}
	return e.message
}

func (e *clientError) Unwrap() []error {
	if e.err != nil {
		return []error{ErrClientInput, e.err}
	}
	return []error{ErrClientInput}
}

func badRequest(message string, err error) error {
	return &clientError{message: message, err: err}
}

// classify maps an error onto its status code and public message.
func classify(err error) (int, string) {
	var ce *clientError
	switch {
	case errors.As(err, &ce):
		return http.StatusBadRequest, ce.message
	case errors.Is(err, ErrClientInput):
		return http.StatusBadRequest, msgInvalidBody
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized, msgUnauthorized
	case errors.Is(err, ErrNotConfigured):
		return http.StatusInternalServerError, msgNotConfigured
	default:
		return http.StatusInternalServerError, msgServerError
	}
}
