package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"fallguard-backend/internal/db"
	"fallguard-backend/internal/identity"
)

const SessionTTL = 7 * 24 * time.Hour

var (
	ErrInvalidInput       = errors.New("email and password are required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAlreadyRegistered  = errors.New("email already registered")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrAuthFailed         = errors.New("auth failed")
)

type User struct {
	ID    string
	Email string
	Name  string
}

type Session struct {
	Token     string
	User      User
	ExpiresAt time.Time
}

type provider interface {
	SignUp(ctx context.Context, email, password, name string) (identity.User, error)
	SignIn(ctx context.Context, email, password string) (identity.User, error)
}

type repository interface {
	UpsertProfile(ctx context.Context, profile db.Profile) error
	GetProfile(ctx context.Context, id string) (db.Profile, error)
	CreateSession(ctx context.Context, session db.Session) error
	GetSession(ctx context.Context, token string) (db.Session, error)
	DeleteSession(ctx context.Context, token string) error
}

// Service delegates credential checks to the identity provider and keeps
// its own opaque sessions.
type Service struct {
	provider provider
	repo     repository
	now      func() time.Time
}

func NewService(provider provider, repo repository) *Service {
	return &Service{provider: provider, repo: repo, now: time.Now}
}

func (s *Service) Register(ctx context.Context, email, password, name string) (User, error) {
	const fn = "Service:Register"
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)
	if email == "" || password == "" {
		return User{}, fmt.Errorf("%s:%w", fn, ErrInvalidInput)
	}
	u, err := s.provider.SignUp(ctx, email, password, name)
	if err != nil {
		if errors.Is(err, identity.ErrAlreadyRegistered) {
			return User{}, fmt.Errorf("%s:%w", fn, ErrAlreadyRegistered)
		}
		if errors.Is(err, identity.ErrRejected) {
			return User{}, fmt.Errorf("%s:%w", fn, err)
		}
		return User{}, fmt.Errorf("%s:%w:%w", fn, ErrAuthFailed, err)
	}
	user := User{ID: u.ID, Email: u.Email, Name: name}
	if user.Email == "" {
		user.Email = email
	}
	// The account already exists at the provider; a missing profile only
	// loses the display name.
	if err := s.repo.UpsertProfile(ctx, db.Profile{ID: user.ID, Email: user.Email, Name: name}); err != nil {
		slog.WarnContext(ctx, "Profile upsert failed after sign-up", "user_id", user.ID, "error", err)
	}
	slog.InfoContext(ctx, "User registered", "user_id", user.ID)
	return user, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (Session, error) {
	const fn = "Service:Login"
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return Session{}, fmt.Errorf("%s:%w", fn, ErrInvalidCredentials)
	}
	u, err := s.provider.SignIn(ctx, email, password)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			return Session{}, fmt.Errorf("%s:%w", fn, ErrInvalidCredentials)
		}
		return Session{}, fmt.Errorf("%s:%w:%w", fn, ErrAuthFailed, err)
	}
	token, err := newToken()
	if err != nil {
		return Session{}, fmt.Errorf("%s:%w:%w", fn, ErrAuthFailed, err)
	}
	session := Session{
		Token:     token,
		User:      User{ID: u.ID, Email: u.Email},
		ExpiresAt: s.now().Add(SessionTTL),
	}
	err = s.repo.CreateSession(ctx, db.Session{
		Token:     session.Token,
		UserID:    session.User.ID,
		Email:     session.User.Email,
		ExpiresAt: session.ExpiresAt,
	})
	if err != nil {
		return Session{}, fmt.Errorf("%s:%w:%w", fn, ErrAuthFailed, err)
	}
	slog.InfoContext(ctx, "User logged in", "user_id", u.ID)
	return session, nil
}

// Resolve maps a session token to its user. The display name is joined from
// the profile when one exists.
func (s *Service) Resolve(ctx context.Context, token string) (User, error) {
	const fn = "Service:Resolve"
	if token == "" {
		return User{}, fmt.Errorf("%s:%w", fn, ErrUnauthorized)
	}
	session, err := s.repo.GetSession(ctx, token)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, fmt.Errorf("%s:%w", fn, ErrUnauthorized)
		}
		return User{}, fmt.Errorf("%s:%w:%w", fn, ErrAuthFailed, err)
	}
	user := User{ID: session.UserID, Email: session.Email}
	profile, err := s.repo.GetProfile(ctx, session.UserID)
	switch {
	case err == nil:
		user.Name = profile.Name
	case !errors.Is(err, db.ErrNotFound):
		slog.WarnContext(ctx, "Profile lookup failed", "user_id", session.UserID, "error", err)
	}
	return user, nil
}

func (s *Service) Logout(ctx context.Context, token string) error {
	const fn = "Service:Logout"
	if token == "" {
		return nil
	}
	if err := s.repo.DeleteSession(ctx, token); err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrAuthFailed, err)
	}
	return nil
}

func newToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
