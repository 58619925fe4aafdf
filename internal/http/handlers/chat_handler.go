// README: Chat handlers (itinerary generation + history).
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/http/middleware"
	"wayfarer/internal/modules/chat"
)

// Generator is the slice of the chat service the handler needs.
type Generator interface {
	Generate(ctx context.Context, userID int64, message string) (string, error)
	History(ctx context.Context, userID int64) ([]chat.Record, error)
}

type ChatHandler struct {
	chat Generator
}

func NewChatHandler(chatSvc Generator) *ChatHandler {
	return &ChatHandler{chat: chatSvc}
}

type generateReq struct {
	Message string `json:"message"`
}

// Generate handles POST /api/generate.
func (h *ChatHandler) Generate(c *gin.Context) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Message == "" {
		writeError(c, http.StatusBadRequest, "no message provided")
		return
	}

	response, err := h.chat.Generate(c.Request.Context(), middleware.CallerUserID(c), req.Message)
	if err != nil {
		writeChatError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{"response": response})
}

// History handles GET /api/history.
func (h *ChatHandler) History(c *gin.Context) {
	records, err := h.chat.History(c.Request.Context(), middleware.CallerUserID(c))
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	if records == nil {
		records = []chat.Record{}
	}
	writeJSON(c, http.StatusOK, map[string]any{"chats": records})
}
