package client

import (
	"context"
	"sync"

	"gamestore/models"
)

// AdminSession manages the back-office credential domain. It owns the
// admin_token storage slot and nothing else; the customer session is a fully
// independent sibling.
type AdminSession struct {
	c     *Client
	store TokenStore

	mu    sync.Mutex
	token string
}

func (c *Client) NewAdminSession(store TokenStore) *AdminSession {
	return &AdminSession{c: c, store: store}
}

func (s *AdminSession) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *AdminSession) Active() bool {
	return s.Token() != ""
}

// Login exchanges credentials for a token. On failure any prior session is
// left untouched.
func (s *AdminSession) Login(ctx context.Context, username, password string) error {
	var out struct {
		Token string `json:"token"`
	}
	payload := map[string]string{"username": username, "password": password}
	if err := s.c.doJSON(ctx, "POST", "/api/admin/login", "", payload, &out); err != nil {
		return err
	}

	s.mu.Lock()
	s.token = out.Token
	s.mu.Unlock()
	return s.store.Set(AdminTokenKey, out.Token)
}

// Restore reactivates a persisted session by probing a protected endpoint.
// A rejected token is dropped silently: the end state is logged out, with
// nothing surfaced to the user.
func (s *AdminSession) Restore(ctx context.Context) bool {
	token, err := s.store.Get(AdminTokenKey)
	if err != nil || token == "" {
		return false
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	var out struct {
		Games []models.Game `json:"games"`
	}
	if err := s.c.doJSON(ctx, "GET", "/api/admin/games", token, nil, &out); err != nil {
		s.Logout()
		return false
	}
	return true
}

func (s *AdminSession) Logout() {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
	_ = s.store.Delete(AdminTokenKey)
}

// UserSession manages the customer credential domain: its own token slot,
// the cached profile and the on-demand order history.
type UserSession struct {
	c     *Client
	store TokenStore

	mu      sync.Mutex
	token   string
	profile *models.User
	orders  []models.Order // nil until fetched; empty slice means loaded-and-empty
}

func (c *Client) NewUserSession(store TokenStore) *UserSession {
	return &UserSession{c: c, store: store}
}

func (s *UserSession) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *UserSession) Active() bool {
	return s.Token() != ""
}

// Profile returns a copy of the cached profile, or nil before login/restore.
func (s *UserSession) Profile() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return nil
	}
	p := *s.profile
	return &p
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
}

// Login authenticates and activates the session. A prior session survives a
// failed attempt.
func (s *UserSession) Login(ctx context.Context, username, password string) error {
	payload := map[string]string{"username": username, "password": password}
	return s.authenticate(ctx, "/api/users/login", payload)
}

// RegisterPayload is the profile submitted at sign-up.
type RegisterPayload struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone,omitempty"`
}

// Register creates an account and, on success, behaves exactly like Login.
// Server-side validation errors carry the server's detail message verbatim.
func (s *UserSession) Register(ctx context.Context, payload RegisterPayload) error {
	return s.authenticate(ctx, "/api/users/register", payload)
}

func (s *UserSession) authenticate(ctx context.Context, path string, payload any) error {
	var out tokenResponse
	if err := s.c.doJSON(ctx, "POST", path, "", payload, &out); err != nil {
		return err
	}

	s.mu.Lock()
	s.token = out.AccessToken
	s.orders = nil
	s.mu.Unlock()

	if err := s.store.Set(UserTokenKey, out.AccessToken); err != nil {
		return err
	}

	// Best effort; the profile is re-fetched by the next Restore if this
	// one fails.
	var profile models.User
	if err := s.c.doJSON(ctx, "GET", "/api/users/me", out.AccessToken, nil, &profile); err == nil {
		s.mu.Lock()
		s.profile = &profile
		s.mu.Unlock()
	}
	return nil
}

// Restore validates a persisted token against the identity endpoint. Any
// rejection logs the session out silently.
func (s *UserSession) Restore(ctx context.Context) bool {
	token, err := s.store.Get(UserTokenKey)
	if err != nil || token == "" {
		return false
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	var profile models.User
	if err := s.c.doJSON(ctx, "GET", "/api/users/me", token, nil, &profile); err != nil {
		s.Logout()
		return false
	}

	s.mu.Lock()
	s.profile = &profile
	s.mu.Unlock()
	return true
}

// Logout clears the token, the cached profile and the order history.
func (s *UserSession) Logout() {
	s.mu.Lock()
	s.token = ""
	s.profile = nil
	s.orders = nil
	s.mu.Unlock()
	_ = s.store.Delete(UserTokenKey)
}

// Orders fetches the customer's order history on demand.
func (s *UserSession) Orders(ctx context.Context) ([]models.Order, error) {
	var out struct {
		Orders []models.Order `json:"orders"`
	}
	if err := s.c.doJSON(ctx, "GET", "/api/users/orders", s.Token(), nil, &out); err != nil {
		return nil, err
	}
	if out.Orders == nil {
		out.Orders = []models.Order{}
	}

	s.mu.Lock()
	s.orders = out.Orders
	s.mu.Unlock()
	return out.Orders, nil
}

// OrdersLoaded distinguishes "no orders yet fetched" from "fetched, empty".
func (s *UserSession) OrdersLoaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders != nil
}
