package identity

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"fallguard-backend/internal/config"

	"github.com/go-resty/resty/v2"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAlreadyRegistered  = errors.New("email already registered")
	ErrIdentityFailed     = errors.New("identity provider request failed")
	ErrRejected           = errors.New("rejected by identity provider")
)

// RejectedError carries the provider's message for a refused sign-up.
type RejectedError struct {
	Status  int
	Message string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("identity provider status %d: %s", e.Status, e.Message)
}

func (e *RejectedError) Unwrap() error { return ErrRejected }

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type signUpRequest struct {
	Email    string            `json:"email"`
	Password string            `json:"password"`
	Data     map[string]string `json:"data,omitempty"`
}

type tokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GoTrue answers signup with either a bare user or a session wrapping one,
// depending on whether e-mail confirmation is enabled.
type authResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	AccessToken string `json:"access_token"`
	User        *User  `json:"user"`
}

func (r authResponse) user() User {
	if r.User != nil {
		return *r.User
	}
	return User{ID: r.ID, Email: r.Email}
}

type apiError struct {
	Code             int    `json:"code"`
	ErrorCode        string `json:"error_code"`
	Msg              string `json:"msg"`
	Err              string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func (e apiError) message() string {
	for _, s := range []string{e.Msg, e.ErrorDescription, e.Err} {
		if s != "" {
			return s
		}
	}
	return ""
}

// Client talks to a Supabase GoTrue auth server. Passwords never touch local
// storage.
type Client struct {
	client *resty.Client
}

type Config struct {
	URL     string
	AnonKey config.Secret
}

// New returns nil when the provider is not configured.
func New(cfg Config) *Client {
	if cfg.URL == "" || cfg.AnonKey.IsEmpty() {
		return nil
	}
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.URL, "/")+"/auth/v1").
		SetTimeout(10*time.Second).
		SetHeader("apikey", cfg.AnonKey.Value()).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	return &Client{client: client}
}

func (c *Client) SignUp(ctx context.Context, email, password, name string) (User, error) {
	const fn = "Client:SignUp"
	req := signUpRequest{Email: email, Password: password}
	if name != "" {
		req.Data = map[string]string{"nombre": name}
	}
	var (
		result authResponse
		apiErr apiError
	)
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		SetError(&apiErr).
		Post("/signup")
	if err != nil {
		return User{}, fmt.Errorf("%s:%w:%w", fn, ErrIdentityFailed, err)
	}
	if resp.IsError() {
		if apiErr.ErrorCode == "user_already_exists" || apiErr.ErrorCode == "email_exists" ||
			strings.Contains(strings.ToLower(apiErr.message()), "already registered") {
			return User{}, fmt.Errorf("%s:%w", fn, ErrAlreadyRegistered)
		}
		if resp.StatusCode() < http.StatusInternalServerError {
			return User{}, fmt.Errorf("%s:%w", fn, &RejectedError{Status: resp.StatusCode(), Message: apiErr.message()})
		}
		return User{}, fmt.Errorf("%s:%w: status %d: %s", fn, ErrIdentityFailed, resp.StatusCode(), apiErr.message())
	}
	user := result.user()
	if user.ID == "" {
		return User{}, fmt.Errorf("%s:%w: response without user", fn, ErrIdentityFailed)
	}
	return user, nil
}

func (c *Client) SignIn(ctx context.Context, email, password string) (User, error) {
	const fn = "Client:SignIn"
	var (
		result authResponse
		apiErr apiError
	)
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("grant_type", "password").
		SetBody(tokenRequest{Email: email, Password: password}).
		SetResult(&result).
		SetError(&apiErr).
		Post("/token")
	if err != nil {
		return User{}, fmt.Errorf("%s:%w:%w", fn, ErrIdentityFailed, err)
	}
	switch {
	case resp.StatusCode() == http.StatusBadRequest || resp.StatusCode() == http.StatusUnauthorized:
		return User{}, fmt.Errorf("%s:%w: %s", fn, ErrInvalidCredentials, apiErr.message())
	case resp.IsError():
		return User{}, fmt.Errorf("%s:%w: status %d: %s", fn, ErrIdentityFailed, resp.StatusCode(), apiErr.message())
	}
	user := result.user()
	if user.ID == "" {
		return User{}, fmt.Errorf("%s:%w: response without user", fn, ErrIdentityFailed)
	}
	return user, nil
}
