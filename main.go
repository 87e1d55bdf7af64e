package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"
	_ "time/tzdata"

	"fallguard-backend/internal/api"
	"fallguard-backend/internal/auth"
	"fallguard-backend/internal/blob"
	"fallguard-backend/internal/config"
	"fallguard-backend/internal/db"
	"fallguard-backend/internal/devices"
	"fallguard-backend/internal/events"
	"fallguard-backend/internal/identity"
	"fallguard-backend/internal/kafka"
	"fallguard-backend/internal/mqtt"
	"fallguard-backend/internal/notify"
	"fallguard-backend/internal/processors/alerter"
	"fallguard-backend/internal/status"
	"fallguard-backend/web"

	"github.com/go-redis/redis/v8"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel(cfg.Log.Level)})))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	slog.InfoContext(ctx, "Starting service...", "addr", cfg.HTTP.Addr, "store", cfg.Events.Store)
	loc := cfg.Location()

	var database *db.DB
	if !cfg.Database.URL.IsEmpty() {
		database, err = db.Init(ctx, db.Config{
			ConnString:     cfg.Database.URL.Value(),
			MigrationsPath: cfg.Database.MigrationsPath,
			MaxConns:       cfg.Database.MaxConns,
		})
		if err != nil {
			panic(err)
		}
		defer database.Close()
	}

	var store events.Store = events.NewMemoryStore(cfg.Events.Retention)
	if cfg.Events.Store == config.StorePostgres {
		store = events.NewPostgresStore(database)
	}

	var tracker status.Tracker = status.NewMemoryTracker(nil)
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password.Value(),
			DB:       cfg.Redis.DB,
		})
		defer client.Close()
		tracker = status.NewRedisTracker(client, nil)
	}

	var channels []notify.Channel
	if wa := notify.NewWhatsApp(notify.WhatsAppConfig{
		AccountSID: cfg.Twilio.AccountSID,
		AuthToken:  cfg.Twilio.AuthToken,
		From:       cfg.Twilio.WhatsAppFrom,
		Recipients: cfg.WhatsAppRecipients(),
	}); wa != nil {
		channels = append(channels, wa)
	} else {
		slog.WarnContext(ctx, "WhatsApp notifications disabled")
	}
	if em := notify.NewEmail(notify.EmailConfig{
		APIKey:     cfg.Resend.APIKey,
		From:       cfg.Resend.From,
		Recipients: cfg.EmailRecipients(),
	}); em != nil {
		channels = append(channels, em)
	} else {
		slog.WarnContext(ctx, "Email notifications disabled")
	}
	fanout := notify.NewFanout(channels...)

	wg := sync.WaitGroup{}
	svcCfg := events.Config{Store: store}

	var (
		publisher *alerter.Publisher
		wAlerter  *alerter.Alerter
		async     *notify.AsyncDispatcher
	)
	if brokers := splitBrokers(cfg.Kafka.Brokers); len(brokers) > 0 {
		if err := kafka.WaitForBroker(ctx, brokers[0], 60*time.Second, 2*time.Second); err != nil {
			panic(err)
		}
		publisher = alerter.NewPublisher(brokers, cfg.Kafka.AlertTopic)
		wAlerter = alerter.New(alerter.Config{
			Brokers:  brokers,
			GroupID:  cfg.Kafka.GroupID,
			Topic:    cfg.Kafka.AlertTopic,
			Notifier: fanout,
			Location: loc,
		})
		wg.Go(func() {
			wAlerter.Run(ctx)
		})
		svcCfg.Dispatcher = publisher
	} else {
		async = notify.NewAsyncDispatcher(fanout, loc)
		svcCfg.Dispatcher = async
	}

	if blobs := blob.New(blob.Config{
		URL:    cfg.Supabase.URL,
		Key:    cfg.Supabase.AnonKey,
		Bucket: cfg.Supabase.Bucket,
	}); blobs != nil {
		svcCfg.Blobs = blobs
	} else {
		slog.WarnContext(ctx, "Image storage disabled")
	}

	apiCfg := api.Config{
		Status:       tracker,
		Location:     loc,
		SecureCookie: cfg.Session.SecureCookie,
	}
	if database != nil {
		registry := devices.NewRegistry(database)
		svcCfg.Resolver = registry
		apiCfg.Devices = registry
		if provider := identity.New(identity.Config{URL: cfg.Supabase.URL, AnonKey: cfg.Supabase.AnonKey}); provider != nil {
			apiCfg.Auth = auth.NewService(provider, database)
		} else {
			slog.WarnContext(ctx, "Authentication disabled")
		}
	}

	svc := events.NewService(svcCfg)
	apiCfg.Events = svc

	if webFS, err := web.GetFS(); err == nil {
		apiCfg.Web = webFS
	} else {
		slog.WarnContext(ctx, "Dashboard unavailable", "error", err)
	}

	var subscriber *mqtt.Subscriber
	if cfg.MQTT.Broker != "" {
		subscriber = mqtt.NewSubscriber(mqtt.Config{
			Broker:   cfg.MQTT.Broker,
			ClientID: cfg.MQTT.ClientID,
			Username: cfg.MQTT.Username,
			Password: cfg.MQTT.Password,
			QoS:      1,
		}, svc, tracker)
		if err := subscriber.Start(ctx); err != nil {
			slog.ErrorContext(ctx, "MQTT ingress unavailable", "error", err)
			subscriber = nil
		}
	}

	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           api.New(apiCfg).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	wg.Go(func() {
		slog.InfoContext(ctx, "HTTP server listening", "addr", cfg.HTTP.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "HTTP server error", "error", err)
			cancel()
		}
	})

	select {
	case <-sigs:
	case <-ctx.Done():
	}
	slog.InfoContext(ctx, "Shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "HTTP server shutdown failed", "error", err)
	}
	if subscriber != nil {
		subscriber.Close(shutdownCtx)
	}

	wg.Wait()

	if wAlerter != nil {
		wAlerter.Close(shutdownCtx)
	}
	if publisher != nil {
		publisher.Close(shutdownCtx)
	}
	if async != nil {
		async.Wait()
	}
}

func logLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}

func splitBrokers(brokers string) []string {
	var out []string
	for _, b := range strings.Split(brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}
