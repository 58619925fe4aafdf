// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/http/handlers"
	"wayfarer/internal/http/middleware"
)

type Deps struct {
	Accounts handlers.Accounts
	Sessions SessionStore
	Chat     handlers.Generator
}

// SessionStore is the full session surface the router wires: verification for
// the middleware plus create/delete for the auth handler.
type SessionStore interface {
	middleware.SessionVerifier
	handlers.SessionManager
}

func NewRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	authHandler := handlers.NewAuthHandler(deps.Accounts, deps.Sessions)
	chatHandler := handlers.NewChatHandler(deps.Chat)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := r.Group("/api")
	api.POST("/auth/signup", authHandler.Signup)
	api.POST("/auth/signin", authHandler.Signin)

	authed := api.Group("", middleware.Auth(deps.Sessions))
	authed.POST("/auth/logout", authHandler.Logout)
	authed.POST("/generate", chatHandler.Generate)
	authed.GET("/history", chatHandler.History)

	return r
}
