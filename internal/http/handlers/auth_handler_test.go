package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/http/handlers"
	"wayfarer/internal/modules/user"
)

// stubAccounts is a test double for handlers.Accounts.
type stubAccounts struct {
	registered  *user.User
	registerErr error
	authed      *user.User
	authErr     error
}

func (s *stubAccounts) Register(_ context.Context, _, _ string) (*user.User, error) {
	return s.registered, s.registerErr
}

func (s *stubAccounts) Authenticate(_ context.Context, _, _ string) (*user.User, error) {
	return s.authed, s.authErr
}

// stubSessionManager is a test double for handlers.SessionManager.
type stubSessionManager struct {
	token   string
	deleted []string
}

func (s *stubSessionManager) Create(_ context.Context, _ int64) (string, error) {
	return s.token, nil
}

func (s *stubSessionManager) Delete(_ context.Context, token string) error {
	s.deleted = append(s.deleted, token)
	return nil
}

func buildAuthRouter(accounts handlers.Accounts, sessions handlers.SessionManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handlers.NewAuthHandler(accounts, sessions)
	r.POST("/api/auth/signup", h.Signup)
	r.POST("/api/auth/signin", h.Signin)
	return r
}

func TestSignup_Created(t *testing.T) {
	accounts := &stubAccounts{registered: &user.User{ID: 3, Username: "alice"}}
	r := buildAuthRouter(accounts, &stubSessionManager{})

	w := doRequest(r, http.MethodPost, "/api/auth/signup", map[string]any{"username": "alice", "password": "pw"}, "")
	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
}

func TestSignup_Duplicate(t *testing.T) {
	accounts := &stubAccounts{registerErr: user.ErrExists}
	r := buildAuthRouter(accounts, &stubSessionManager{})

	w := doRequest(r, http.MethodPost, "/api/auth/signup", map[string]any{"username": "alice", "password": "pw"}, "")
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}
}

func TestSignup_MissingFields(t *testing.T) {
	r := buildAuthRouter(&stubAccounts{}, &stubSessionManager{})

	w := doRequest(r, http.MethodPost, "/api/auth/signup", map[string]any{"username": "alice"}, "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestSignin_IssuesToken(t *testing.T) {
	accounts := &stubAccounts{authed: &user.User{ID: 3, Username: "alice"}}
	r := buildAuthRouter(accounts, &stubSessionManager{token: "tok123"})

	w := doRequest(r, http.MethodPost, "/api/auth/signin", map[string]any{"username": "alice", "password": "pw"}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Token    string `json:"token"`
		Username string `json:"username"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token != "tok123" || resp.Username != "alice" {
		t.Errorf("resp = %+v", resp)
	}
}

func TestSignin_InvalidCredentials(t *testing.T) {
	accounts := &stubAccounts{authErr: user.ErrInvalidCredentials}
	r := buildAuthRouter(accounts, &stubSessionManager{})

	w := doRequest(r, http.MethodPost, "/api/auth/signin", map[string]any{"username": "alice", "password": "bad"}, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}
