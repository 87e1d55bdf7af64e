package notify

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"fallguard-backend/internal/config"

	"github.com/go-resty/resty/v2"
)

const (
	resendBaseURL = "https://api.resend.com"

	EmailSubject = "ALERTA DE CAIDA DETECTADA"
)

var emailTemplate = template.Must(template.New("alert").Parse(`<div style="font-family: sans-serif; padding: 20px;">
  <h1 style="color: #dc2626;">ALERTA DE CAIDA</h1>
  <p>Se ha detectado una posible caida.</p>
  <table style="margin: 20px 0;">
    <tr><td><strong>Magnitud:</strong></td><td>{{printf "%g" .Magnitude}}G</td></tr>
    <tr><td><strong>Dispositivo:</strong></td><td>{{.Device}}</td></tr>
    <tr><td><strong>Fecha:</strong></td><td>{{.Date}}</td></tr>
  </table>
  {{if .ImageURL}}<p><img src="{{.ImageURL}}" alt="captura" style="max-width: 480px;"></p>{{end}}
  <p style="color: #dc2626; font-weight: bold;">
    Por favor, verifica el estado del adulto mayor inmediatamente.
  </p>
</div>`))

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type resendResponse struct {
	ID string `json:"id"`
}

type resendError struct {
	Name       string `json:"name"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

// Email sends alerts through the Resend HTTP API.
type Email struct {
	client     *resty.Client
	from       string
	recipients []string
}

type EmailConfig struct {
	APIKey     config.Secret
	From       string
	Recipients []string
	BaseURL    string
}

// NewEmail returns nil when no API key is configured.
func NewEmail(cfg EmailConfig) *Email {
	if cfg.APIKey.IsEmpty() {
		return nil
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = resendBaseURL
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10*time.Second).
		SetAuthToken(cfg.APIKey.Value()).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Email{client: client, from: cfg.From, recipients: cfg.Recipients}
}

func (e *Email) Name() string { return "email" }

func (e *Email) Recipients() []string { return e.recipients }

func (e *Email) Send(ctx context.Context, recipient string, alert Alert) error {
	const fn = "Email:Send"
	html, err := EmailHTML(alert)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrDeliveryFailed, err)
	}
	var (
		result resendResponse
		apiErr resendError
	)
	resp, err := e.client.R().
		SetContext(ctx).
		SetBody(resendRequest{
			From:    e.from,
			To:      []string{recipient},
			Subject: EmailSubject,
			HTML:    html,
		}).
		SetResult(&result).
		SetError(&apiErr).
		Post("/emails")
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrDeliveryFailed, err)
	}
	if resp.IsError() {
		return fmt.Errorf("%s:%w: resend status %d: %s", fn, ErrDeliveryFailed, resp.StatusCode(), apiErr.Message)
	}
	return nil
}

func EmailHTML(alert Alert) (string, error) {
	var buf bytes.Buffer
	if err := emailTemplate.Execute(&buf, alert); err != nil {
		return "", err
	}
	return buf.String(), nil
}
