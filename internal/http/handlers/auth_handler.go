// README: Auth handlers (signup, signin, logout).
package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/http/middleware"
	"wayfarer/internal/modules/user"
)

// Accounts is the slice of the user service the handler needs.
type Accounts interface {
	Register(ctx context.Context, username, password string) (*user.User, error)
	Authenticate(ctx context.Context, username, password string) (*user.User, error)
}

// SessionManager mints and invalidates session tokens.
type SessionManager interface {
	Create(ctx context.Context, userID int64) (string, error)
	Delete(ctx context.Context, token string) error
}

type AuthHandler struct {
	accounts Accounts
	sessions SessionManager
}

func NewAuthHandler(accounts Accounts, sessions SessionManager) *AuthHandler {
	return &AuthHandler{accounts: accounts, sessions: sessions}
}

type credentialsReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Signup handles POST /api/auth/signup.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req credentialsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		writeError(c, http.StatusBadRequest, "missing username or password")
		return
	}

	u, err := h.accounts.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeUserError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, map[string]any{"id": u.ID, "username": u.Username})
}

// Signin handles POST /api/auth/signin.
func (h *AuthHandler) Signin(c *gin.Context) {
	var req credentialsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	u, err := h.accounts.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeUserError(c, err)
		return
	}

	token, err := h.sessions.Create(c.Request.Context(), u.ID)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{"token": token, "username": u.Username})
}

// Logout handles POST /api/auth/logout (requires auth middleware).
func (h *AuthHandler) Logout(c *gin.Context) {
	token := middleware.CallerToken(c)
	if token != "" {
		if err := h.sessions.Delete(c.Request.Context(), token); err != nil {
			writeError(c, http.StatusInternalServerError, "internal error")
			return
		}
	}
	writeJSON(c, http.StatusOK, map[string]any{"status": "ok"})
}
