package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"time"
)

type PingRequest struct {
	Dispositivo string `json:"dispositivo"`
	IP          string `json:"ip"`
	RSSI        int    `json:"rssi"`
}

type EventRequest struct {
	Evento      string  `json:"evento"`
	Magnitud    float64 `json:"magnitud"`
	Dispositivo string  `json:"dispositivo"`
	Timestamp   int64   `json:"timestamp"`
}

// Simulates an ESP32-CAM: a heartbeat every interval and, every few
// heartbeats, a fall report.
func main() {
	baseURL := flag.String("url", "http://localhost:8080", "backend base URL")
	device := flag.String("device", "ESP32-CAM-SIM", "device identifier")
	interval := flag.Duration("interval", 10*time.Second, "heartbeat interval")
	fallEvery := flag.Int("fall-every", 3, "send a fall report every N heartbeats")
	count := flag.Int("count", 6, "number of heartbeats to send")
	flag.Parse()

	for i := 1; i <= *count; i++ {
		post(*baseURL+"/api/status/ping", PingRequest{
			Dispositivo: *device,
			IP:          "192.168.1.50",
			RSSI:        -40 - rand.IntN(40),
		})

		if *fallEvery > 0 && i%*fallEvery == 0 {
			post(*baseURL+"/api/events/ingest", EventRequest{
				Evento:      "caida",
				Magnitud:    2.5 + rand.Float64()*2,
				Dispositivo: *device,
				Timestamp:   time.Now().UnixMilli(),
			})
		}

		if i < *count {
			time.Sleep(*interval)
		}
	}
}

func post(url string, body any) {
	payload, err := json.Marshal(body)
	if err != nil {
		panic(err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		fmt.Printf("POST %s failed: %v\n", url, err)
		return
	}
	defer resp.Body.Close()
	respBody, _ := io.ReadAll(resp.Body)
	fmt.Printf("POST %s %s: %s\n", url, resp.Status, respBody)
}
