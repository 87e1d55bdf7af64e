package blob

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"fallguard-backend/internal/config"

	"github.com/go-resty/resty/v2"
)

var ErrUploadFailed = errors.New("blob upload failed")

type storageError struct {
	StatusCode string `json:"statusCode"`
	Error      string `json:"error"`
	Message    string `json:"message"`
}

// Store uploads event images to a Supabase storage bucket and returns their
// public URL.
type Store struct {
	client  *resty.Client
	baseURL string
	bucket  string
}

type Config struct {
	URL     string
	Key     config.Secret
	Bucket  string
	Timeout time.Duration
}

// New returns nil when storage is not configured.
func New(cfg Config) *Store {
	if cfg.URL == "" || cfg.Key.IsEmpty() || cfg.Bucket == "" {
		return nil
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	baseURL := strings.TrimRight(cfg.URL, "/")
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetAuthToken(cfg.Key.Value()).
		SetHeader("apikey", cfg.Key.Value())

	return &Store{client: client, baseURL: baseURL, bucket: cfg.Bucket}
}

func (s *Store) Upload(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	const fn = "Store:Upload"
	var apiErr storageError
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetHeader("x-upsert", "false").
		SetBody(data).
		SetError(&apiErr).
		Post(s.objectPath("object", name))
	if err != nil {
		return "", fmt.Errorf("%s:%w:%w", fn, ErrUploadFailed, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("%s:%w: storage status %d: %s", fn, ErrUploadFailed, resp.StatusCode(), apiErr.Message)
	}
	return s.baseURL + s.objectPath("object/public", name), nil
}

func (s *Store) objectPath(kind, name string) string {
	parts := strings.Split(name, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return "/storage/v1/" + kind + "/" + url.PathEscape(s.bucket) + "/" + strings.Join(parts, "/")
}
