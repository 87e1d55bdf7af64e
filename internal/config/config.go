package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Environment variable naming the optional config file.
const FileEnv = "FALLGUARD_CONFIG"

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

type Config struct {
	HTTP     HTTPConfig     `mapstructure:"http"`
	Log      LogConfig      `mapstructure:"log"`
	Timezone string         `mapstructure:"timezone"`
	Database DatabaseConfig `mapstructure:"database"`
	Events   EventsConfig   `mapstructure:"events"`
	Kafka    KafkaConfig    `mapstructure:"kafka"`
	Redis    RedisConfig    `mapstructure:"redis"`
	MQTT     MQTTConfig     `mapstructure:"mqtt"`
	Supabase SupabaseConfig `mapstructure:"supabase"`
	Twilio   TwilioConfig   `mapstructure:"twilio"`
	WhatsApp WhatsAppConfig `mapstructure:"whatsapp"`
	Resend   ResendConfig   `mapstructure:"resend"`
	Email    EmailConfig    `mapstructure:"email"`
	Session  SessionConfig  `mapstructure:"session"`
}

type HTTPConfig struct {
	Addr string `mapstructure:"addr"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type DatabaseConfig struct {
	URL            Secret `mapstructure:"url"`
	MigrationsPath string `mapstructure:"migrations_path"`
	MaxConns       int32  `mapstructure:"max_conns"`
}

type EventsConfig struct {
	Store     string `mapstructure:"store"`
	Retention int    `mapstructure:"retention"`
}

type KafkaConfig struct {
	Brokers    string `mapstructure:"brokers"`
	AlertTopic string `mapstructure:"alert_topic"`
	GroupID    string `mapstructure:"group_id"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password Secret `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type MQTTConfig struct {
	Broker   string `mapstructure:"broker"`
	ClientID string `mapstructure:"client_id"`
	Username string `mapstructure:"username"`
	Password Secret `mapstructure:"password"`
}

type SupabaseConfig struct {
	URL     string `mapstructure:"url"`
	AnonKey Secret `mapstructure:"anon_key"`
	Bucket  string `mapstructure:"bucket"`
}

type TwilioConfig struct {
	AccountSID   string `mapstructure:"account_sid"`
	AuthToken    Secret `mapstructure:"auth_token"`
	WhatsAppFrom string `mapstructure:"whatsapp_from"`
}

type WhatsAppConfig struct {
	Phone1 string `mapstructure:"phone_1"`
	Phone2 string `mapstructure:"phone_2"`
}

type ResendConfig struct {
	APIKey Secret `mapstructure:"api_key"`
	From   string `mapstructure:"from"`
}

type EmailConfig struct {
	Address1 string `mapstructure:"address_1"`
	Address2 string `mapstructure:"address_2"`
}

type SessionConfig struct {
	SecureCookie bool `mapstructure:"secure_cookie"`
}

var defaults = map[string]any{
	"http.addr":                ":8080",
	"log.level":                "info",
	"timezone":                 "America/Lima",
	"database.url":             "",
	"database.migrations_path": "internal/db/migrations",
	"database.max_conns":       10,
	"events.store":             StoreMemory,
	"events.retention":         100,
	"kafka.brokers":            "",
	"kafka.alert_topic":        "fall-alerts",
	"kafka.group_id":           "alerter-group",
	"redis.addr":               "",
	"redis.password":           "",
	"redis.db":                 0,
	"mqtt.broker":              "",
	"mqtt.client_id":           "fallguard-backend",
	"mqtt.username":            "",
	"mqtt.password":            "",
	"supabase.url":             "",
	"supabase.anon_key":        "",
	"supabase.bucket":          "fall-images",
	"twilio.account_sid":       "",
	"twilio.auth_token":        "",
	"twilio.whatsapp_from":     "",
	"whatsapp.phone_1":         "",
	"whatsapp.phone_2":         "",
	"resend.api_key":           "",
	"resend.from":              "onboarding@resend.dev",
	"email.address_1":          "",
	"email.address_2":          "",
	"session.secure_cookie":    false,
}

// Load reads configuration from the environment (DATABASE_URL for database.url, and so
// on) layered over an optional file named by FALLGUARD_CONFIG.
func Load() (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path := os.Getenv(FileEnv); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.Events.Store != StoreMemory && cfg.Events.Store != StorePostgres {
		return nil, fmt.Errorf("events.store must be %q or %q, got %q", StoreMemory, StorePostgres, cfg.Events.Store)
	}
	if cfg.Events.Store == StorePostgres && cfg.Database.URL.IsEmpty() {
		return nil, fmt.Errorf("events.store %q requires database.url", StorePostgres)
	}
	if cfg.Events.Retention <= 0 {
		cfg.Events.Retention = 100
	}
	return &cfg, nil
}

// Location resolves the display timezone, falling back to UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c *Config) WhatsAppRecipients() []string {
	return nonEmpty(c.WhatsApp.Phone1, c.WhatsApp.Phone2)
}

func (c *Config) EmailRecipients() []string {
	return nonEmpty(c.Email.Address1, c.Email.Address2)
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
