package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	k "fallguard-backend/internal/kafka"
)

// Steps:
// 1. Ping the status endpoint and confirm the device reads as online
// 2. Ingest a fall report with a unique device name
// 3. Confirm the event is listed first by /api/events
// 4. With -brokers set, confirm the alert record reached the alert topic

type ingestResponse struct {
	Success bool   `json:"success"`
	EventID string `json:"eventId"`
}

type event struct {
	ID          string  `json:"id"`
	Tipo        string  `json:"tipo"`
	Magnitud    float64 `json:"magnitud"`
	Dispositivo string  `json:"dispositivo"`
	Fecha       string  `json:"fecha"`
}

type listResponse struct {
	Events []event `json:"events"`
	Total  int     `json:"total"`
}

type statusResponse struct {
	Online     bool    `json:"online"`
	LastUpdate *string `json:"lastUpdate"`
	Device     *struct {
		ID string `json:"id"`
	} `json:"device"`
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "backend base URL")
	brokers := flag.String("brokers", "", "comma separated Kafka brokers; empty skips the alert topic check")
	topic := flag.String("topic", "fall-alerts", "alert topic")
	flag.Parse()

	device := fmt.Sprintf("E2E-%d", time.Now().UnixNano())
	failures := 0
	check := func(ok bool, format string, args ...any) {
		if ok {
			fmt.Printf("PASS "+format+"\n", args...)
			return
		}
		failures++
		fmt.Printf("FAIL "+format+"\n", args...)
	}

	// 1. heartbeat
	status, _ := doJSON(http.MethodPost, *baseURL+"/api/status/ping", map[string]any{
		"dispositivo": device, "ip": "10.0.0.9", "rssi": -55,
	}, nil)
	check(status == http.StatusOK, "ping accepted (HTTP %d)", status)

	var st statusResponse
	status, _ = doJSON(http.MethodGet, *baseURL+"/api/status", nil, &st)
	check(status == http.StatusOK && st.Online, "device online after ping")
	check(st.Device != nil && st.Device.ID == device, "status reports device %s", device)

	// 2. fall report
	var ingested ingestResponse
	status, _ = doJSON(http.MethodPost, *baseURL+"/api/events/ingest", map[string]any{
		"evento": "caida", "magnitud": 3.2, "dispositivo": device,
	}, &ingested)
	check(status == http.StatusOK && ingested.Success && ingested.EventID != "", "fall report ingested as %s", ingested.EventID)

	// 3. listing
	var list listResponse
	status, _ = doJSON(http.MethodGet, *baseURL+"/api/events", nil, &list)
	check(status == http.StatusOK && len(list.Events) > 0, "events listed (total %d)", list.Total)
	if len(list.Events) > 0 {
		first := list.Events[0]
		check(first.ID == ingested.EventID, "newest event is the ingested one")
		check(first.Tipo == "caida" && first.Dispositivo == device, "event fields round-trip")
		check(first.Fecha != "", "event carries a display date")
	}

	// 4. alert topic
	if *brokers != "" {
		check(alertPublished(strings.Split(*brokers, ","), *topic, ingested.EventID), "alert record published for %s", ingested.EventID)
	}

	if failures > 0 {
		fmt.Printf("E2E test failed: %d check(s)\n", failures)
		os.Exit(1)
	}
	fmt.Println("E2E test completed")
}

func alertPublished(brokers []string, topic, eventID string) bool {
	reader := k.NewReader(brokers, fmt.Sprintf("e2e-%d", time.Now().UnixNano()), topic)
	defer reader.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			fmt.Printf("Error reading alert topic: %v\n", err)
			return false
		}
		payload, err := k.ParseAlertRecord(msg.Value)
		if err != nil {
			continue
		}
		if payload.EventID == eventID {
			return true
		}
	}
}

func doJSON(method, url string, body, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, err
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Printf("%s %s failed: %v\n", method, url, err)
		return 0, err
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, err
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			fmt.Printf("Raw response: %s\n", raw)
			return resp.StatusCode, err
		}
	}
	return resp.StatusCode, nil
}
