package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fallguard-backend/internal/config"

	"github.com/go-resty/resty/v2"
)

const twilioBaseURL = "https://api.twilio.com"

var ErrDeliveryFailed = errors.New("notification delivery failed")

type twilioError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

type twilioMessage struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
}

// WhatsApp sends alerts through the Twilio WhatsApp messaging API.
type WhatsApp struct {
	client     *resty.Client
	accountSID string
	from       string
	recipients []string
}

type WhatsAppConfig struct {
	AccountSID string
	AuthToken  config.Secret
	From       string
	Recipients []string
	BaseURL    string
}

// NewWhatsApp returns nil when the Twilio credentials are absent, which
// leaves the channel disabled.
func NewWhatsApp(cfg WhatsAppConfig) *WhatsApp {
	if cfg.AccountSID == "" || cfg.AuthToken.IsEmpty() {
		return nil
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = twilioBaseURL
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10*time.Second).
		SetBasicAuth(cfg.AccountSID, cfg.AuthToken.Value()).
		SetHeader("Accept", "application/json")

	return &WhatsApp{
		client:     client,
		accountSID: cfg.AccountSID,
		from:       cfg.From,
		recipients: cfg.Recipients,
	}
}

func (w *WhatsApp) Name() string { return "whatsapp" }

func (w *WhatsApp) Recipients() []string { return w.recipients }

func (w *WhatsApp) Send(ctx context.Context, recipient string, alert Alert) error {
	const fn = "WhatsApp:Send"
	var (
		result twilioMessage
		apiErr twilioError
	)
	resp, err := w.client.R().
		SetContext(ctx).
		SetPathParam("sid", w.accountSID).
		SetFormData(map[string]string{
			"From": whatsAppAddress(w.from),
			"To":   whatsAppAddress(recipient),
			"Body": WhatsAppBody(alert),
		}).
		SetResult(&result).
		SetError(&apiErr).
		Post("/2010-04-01/Accounts/{sid}/Messages.json")
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrDeliveryFailed, err)
	}
	if resp.IsError() {
		return fmt.Errorf("%s:%w: twilio status %d code %d: %s", fn, ErrDeliveryFailed, resp.StatusCode(), apiErr.Code, apiErr.Message)
	}
	return nil
}

func whatsAppAddress(number string) string {
	if strings.HasPrefix(number, "whatsapp:") {
		return number
	}
	return "whatsapp:" + number
}

func WhatsAppBody(alert Alert) string {
	return fmt.Sprintf("ALERTA DE CAIDA!\n\nSe detecto una caida.\nMagnitud: %gG\nDispositivo: %s\nFecha: %s\n\nVerifica el estado del adulto mayor inmediatamente.",
		alert.Magnitude, alert.Device, alert.Date)
}
