package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"fallguard-backend/internal/db"
	"fallguard-backend/internal/identity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	signUpErr error
	signInErr error
	user      identity.User
}

func (f *fakeProvider) SignUp(_ context.Context, email, _, _ string) (identity.User, error) {
	if f.signUpErr != nil {
		return identity.User{}, f.signUpErr
	}
	return identity.User{ID: f.user.ID, Email: email}, nil
}

func (f *fakeProvider) SignIn(_ context.Context, email, _ string) (identity.User, error) {
	if f.signInErr != nil {
		return identity.User{}, f.signInErr
	}
	return identity.User{ID: f.user.ID, Email: email}, nil
}

type fakeRepo struct {
	profiles map[string]db.Profile
	sessions map[string]db.Session
	now      time.Time
	err      error
}

func newFakeRepo(now time.Time) *fakeRepo {
	return &fakeRepo{profiles: map[string]db.Profile{}, sessions: map[string]db.Session{}, now: now}
}

func (f *fakeRepo) UpsertProfile(_ context.Context, p db.Profile) error {
	if f.err != nil {
		return f.err
	}
	f.profiles[p.ID] = p
	return nil
}

func (f *fakeRepo) GetProfile(_ context.Context, id string) (db.Profile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return db.Profile{}, fmt.Errorf("fake:%w", db.ErrNotFound)
	}
	return p, nil
}

func (f *fakeRepo) CreateSession(_ context.Context, s db.Session) error {
	if f.err != nil {
		return f.err
	}
	f.sessions[s.Token] = s
	return nil
}

func (f *fakeRepo) GetSession(_ context.Context, token string) (db.Session, error) {
	if f.err != nil {
		return db.Session{}, f.err
	}
	s, ok := f.sessions[token]
	if !ok || !s.ExpiresAt.After(f.now) {
		return db.Session{}, fmt.Errorf("fake:%w", db.ErrNotFound)
	}
	return s, nil
}

func (f *fakeRepo) DeleteSession(_ context.Context, token string) error {
	delete(f.sessions, token)
	return nil
}

func Test_Register(t *testing.T) {
	cases := []struct {
		name        string
		email       string
		password    string
		provider    *fakeProvider
		expectedErr error
	}{
		{name: "registered", email: " ana@example.com ", password: "secreto1", provider: &fakeProvider{user: identity.User{ID: "u1"}}},
		{name: "missing password", email: "ana@example.com", provider: &fakeProvider{}, expectedErr: ErrInvalidInput},
		{name: "already registered", email: "ana@example.com", password: "x", provider: &fakeProvider{signUpErr: identity.ErrAlreadyRegistered}, expectedErr: ErrAlreadyRegistered},
		{name: "rejected", email: "ana@example.com", password: "x", provider: &fakeProvider{signUpErr: &identity.RejectedError{Status: 422, Message: "weak"}}, expectedErr: identity.ErrRejected},
		{name: "provider down", email: "ana@example.com", password: "x", provider: &fakeProvider{signUpErr: identity.ErrIdentityFailed}, expectedErr: ErrAuthFailed},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo(time.Now())
			svc := NewService(tt.provider, repo)

			user, err := svc.Register(context.Background(), tt.email, tt.password, " Ana ")
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, User{ID: "u1", Email: "ana@example.com", Name: "Ana"}, user)
			assert.Equal(t, db.Profile{ID: "u1", Email: "ana@example.com", Name: "Ana"}, repo.profiles["u1"])
		})
	}
}

func Test_SessionLifecycle(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := newFakeRepo(now)
	repo.profiles["u1"] = db.Profile{ID: "u1", Email: "ana@example.com", Name: "Ana"}
	svc := NewService(&fakeProvider{user: identity.User{ID: "u1"}}, repo)
	svc.now = func() time.Time { return now }

	session, err := svc.Login(context.Background(), "ana@example.com", "secreto1")
	require.NoError(t, err)
	assert.Len(t, session.Token, 64)
	assert.Equal(t, now.Add(7*24*time.Hour), session.ExpiresAt)
	assert.Equal(t, User{ID: "u1", Email: "ana@example.com"}, session.User)

	user, err := svc.Resolve(context.Background(), session.Token)
	require.NoError(t, err)
	assert.Equal(t, User{ID: "u1", Email: "ana@example.com", Name: "Ana"}, user)

	require.NoError(t, svc.Logout(context.Background(), session.Token))
	_, err = svc.Resolve(context.Background(), session.Token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func Test_LoginTokensAreUnique(t *testing.T) {
	repo := newFakeRepo(time.Now())
	svc := NewService(&fakeProvider{user: identity.User{ID: "u1"}}, repo)

	a, err := svc.Login(context.Background(), "ana@example.com", "x")
	require.NoError(t, err)
	b, err := svc.Login(context.Background(), "ana@example.com", "x")
	require.NoError(t, err)
	assert.NotEqual(t, a.Token, b.Token)
}

func Test_LoginFailures(t *testing.T) {
	cases := []struct {
		name        string
		email       string
		password    string
		provider    *fakeProvider
		expectedErr error
	}{
		{name: "empty credentials", provider: &fakeProvider{}, expectedErr: ErrInvalidCredentials},
		{name: "wrong password", email: "a@example.com", password: "x", provider: &fakeProvider{signInErr: identity.ErrInvalidCredentials}, expectedErr: ErrInvalidCredentials},
		{name: "provider down", email: "a@example.com", password: "x", provider: &fakeProvider{signInErr: identity.ErrIdentityFailed}, expectedErr: ErrAuthFailed},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(tt.provider, newFakeRepo(time.Now()))
			_, err := svc.Login(context.Background(), tt.email, tt.password)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func Test_Resolve(t *testing.T) {
	now := time.Now()
	repo := newFakeRepo(now)
	repo.sessions["expired"] = db.Session{Token: "expired", UserID: "u1", ExpiresAt: now.Add(-time.Minute)}
	repo.sessions["no-profile"] = db.Session{Token: "no-profile", UserID: "u2", Email: "b@example.com", ExpiresAt: now.Add(time.Hour)}
	svc := NewService(&fakeProvider{}, repo)

	_, err := svc.Resolve(context.Background(), "")
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = svc.Resolve(context.Background(), "expired")
	assert.ErrorIs(t, err, ErrUnauthorized)

	user, err := svc.Resolve(context.Background(), "no-profile")
	require.NoError(t, err)
	assert.Equal(t, User{ID: "u2", Email: "b@example.com"}, user)

	repo.err = errors.New("db down")
	_, err = svc.Resolve(context.Background(), "no-profile")
	assert.ErrorIs(t, err, ErrAuthFailed)
}

func Test_RegisterSurvivesProfileWriteFailure(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo(time.Now())
	repo.err = errors.New("db down")
	svc := NewService(&fakeProvider{user: identity.User{ID: "u1"}}, repo)

	user, err := svc.Register(ctx, "ana@example.com", "secreto1", "Ana")
	require.NoError(t, err)
	assert.Equal(t, User{ID: "u1", Email: "ana@example.com", Name: "Ana"}, user)
	assert.Empty(t, repo.profiles)

	repo.err = nil
	session, err := svc.Login(ctx, "ana@example.com", "secreto1")
	require.NoError(t, err)
	resolved, err := svc.Resolve(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, User{ID: "u1", Email: "ana@example.com"}, resolved)
}
