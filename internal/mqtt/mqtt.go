package mqtt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"fallguard-backend/internal/config"
	"fallguard-backend/internal/events"
	"fallguard-backend/internal/metrics"
	"fallguard-backend/internal/status"

	paho "github.com/eclipse/paho.mqtt.golang"
)

const (
	EventTopic = "fallguard/+/event"
	PingTopic  = "fallguard/+/ping"

	handlerTimeout = 15 * time.Second
	connectTimeout = 10 * time.Second
)

var (
	ErrConnectFailed = errors.New("mqtt connect failed")
	ErrInvalidTopic  = errors.New("invalid topic")
	ErrInvalidBody   = errors.New("invalid payload")
)

// MessageHandler handles one message; errors are logged by the subscriber.
type MessageHandler func(topic string, payload []byte) error

type ingester interface {
	Ingest(ctx context.Context, report events.Report) (events.Event, error)
}

type pinger interface {
	Ping(ctx context.Context, hb status.Heartbeat) error
}

type eventPayload struct {
	Evento      string  `json:"evento"`
	Magnitud    float64 `json:"magnitud"`
	Dispositivo string  `json:"dispositivo"`
	Codigo      string  `json:"codigo"`
	Foto        string  `json:"foto"`
	Timestamp   int64   `json:"timestamp"`
}

type pingPayload struct {
	Dispositivo string `json:"dispositivo"`
	IP          string `json:"ip"`
	RSSI        int    `json:"rssi"`
}

type Config struct {
	Broker   string
	ClientID string
	Username string
	Password config.Secret
	QoS      byte
}

// Subscriber feeds device messages from an MQTT broker into the same ingest
// and heartbeat paths the HTTP API uses.
type Subscriber struct {
	client paho.Client
	events ingester
	status pinger
	qos    byte
	ctx    context.Context
}

func NewSubscriber(cfg Config, events ingester, status pinger) *Subscriber {
	s := &Subscriber{
		events: events,
		status: status,
		qos:    cfg.QoS,
		ctx:    context.Background(),
	}

	opts := paho.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientID)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if !cfg.Password.IsEmpty() {
		opts.SetPassword(cfg.Password.Value())
	}
	opts.SetAutoReconnect(true)
	opts.SetCleanSession(true)
	opts.SetConnectTimeout(connectTimeout)
	// Clean sessions drop subscriptions, so resubscribe on every (re)connect.
	opts.SetOnConnectHandler(s.subscribe)
	opts.SetConnectionLostHandler(func(_ paho.Client, err error) {
		slog.Warn("MQTT connection lost", "error", err)
	})

	s.client = paho.NewClient(opts)
	return s
}

func (s *Subscriber) Start(ctx context.Context) error {
	const fn = "Subscriber:Start"
	s.ctx = ctx
	token := s.client.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return fmt.Errorf("%s:%w: timed out", fn, ErrConnectFailed)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrConnectFailed, err)
	}
	slog.InfoContext(ctx, "MQTT subscriber started")
	return nil
}

func (s *Subscriber) Close(ctx context.Context) {
	slog.InfoContext(ctx, "Closing MQTT subscriber...")
	s.client.Disconnect(250)
}

func (s *Subscriber) subscribe(c paho.Client) {
	handlers := map[string]MessageHandler{
		EventTopic: s.HandleEvent,
		PingTopic:  s.HandlePing,
	}
	for topic, handler := range handlers {
		token := c.Subscribe(topic, s.qos, wrap(handler))
		if token.Wait() && token.Error() != nil {
			slog.Error("MQTT subscribe failed", "topic", topic, "error", token.Error())
			continue
		}
		slog.Info("MQTT subscribed", "topic", topic)
	}
}

func wrap(handler MessageHandler) paho.MessageHandler {
	return func(_ paho.Client, msg paho.Message) {
		if err := handler(msg.Topic(), msg.Payload()); err != nil {
			slog.Error("Error handling MQTT message", "topic", msg.Topic(), "error", err)
		}
	}
}

func (s *Subscriber) HandleEvent(topic string, payload []byte) error {
	const fn = "Subscriber:HandleEvent"
	device, err := deviceFromTopic(topic)
	if err != nil {
		return fmt.Errorf("%s:%w", fn, err)
	}
	var p eventPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrInvalidBody, err)
	}
	report := events.Report{
		Format:    events.FormatMQTT,
		Kind:      p.Evento,
		Magnitude: p.Magnitud,
		Device:    p.Dispositivo,
		Code:      p.Codigo,
	}
	if report.Device == "" {
		report.Device = device
	}
	if p.Timestamp > 0 {
		report.CapturedAt = time.UnixMilli(p.Timestamp)
	}
	if p.Foto != "" {
		image, err := events.DecodeImage(p.Foto)
		if err != nil {
			slog.Warn("Ignoring undecodable image", "topic", topic, "error", err)
		}
		report.Image = image
	}

	ctx, cancel := context.WithTimeout(s.ctx, handlerTimeout)
	defer cancel()
	if _, err := s.events.Ingest(ctx, report); err != nil {
		return fmt.Errorf("%s:%w", fn, err)
	}
	return nil
}

func (s *Subscriber) HandlePing(topic string, payload []byte) error {
	const fn = "Subscriber:HandlePing"
	device, err := deviceFromTopic(topic)
	if err != nil {
		return fmt.Errorf("%s:%w", fn, err)
	}
	var p pingPayload
	if len(strings.TrimSpace(string(payload))) > 0 {
		if err := json.Unmarshal(payload, &p); err != nil {
			return fmt.Errorf("%s:%w:%w", fn, ErrInvalidBody, err)
		}
	}
	if p.Dispositivo == "" {
		p.Dispositivo = device
	}

	ctx, cancel := context.WithTimeout(s.ctx, handlerTimeout)
	defer cancel()
	if err := s.status.Ping(ctx, status.Heartbeat{DeviceID: p.Dispositivo, IP: p.IP, RSSI: p.RSSI}); err != nil {
		return fmt.Errorf("%s:%w", fn, err)
	}
	metrics.Heartbeats.Inc()
	return nil
}

// deviceFromTopic extracts <device> from fallguard/<device>/<kind>.
func deviceFromTopic(topic string) (string, error) {
	parts := strings.Split(topic, "/")
	if len(parts) != 3 || parts[1] == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidTopic, topic)
	}
	return parts[1], nil
}
