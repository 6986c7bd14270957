package server

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/gguatit/Today-s-horoscope/ai"
	"github.com/gguatit/Today-s-horoscope/auth"
	"github.com/gguatit/Today-s-horoscope/observability"
	"github.com/gguatit/Today-s-horoscope/services"
)

// Server wires the HTTP surface: it turns fortune-service decisions into
// status codes and bodies. It never talks to the quota store directly.
type Server struct {
	log       *slog.Logger
	service   services.IFortuneService
	generator ai.IFortuneGenerator
	stats     *observability.Stats
	tokens    auth.TokenManager
}

func New(
	log *slog.Logger,
	service services.IFortuneService,
	generator ai.IFortuneGenerator,
	stats *observability.Stats,
	tokens auth.TokenManager,
) *Server {
	return &Server{
		log:       log,
		service:   service,
		generator: generator,
		stats:     stats,
		tokens:    tokens,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})
	r.GET("/api/stats", s.handleStats)

	authed := r.Group("/api", auth.Middleware(s.tokens))
	authed.POST("/fortune", s.handleFortune)
	authed.GET("/fortune/limit", s.handleLimit)
	authed.GET("/fortune/count", s.handleCount)

	admin := authed.Group("/admin", auth.RequireRole("admin"))
	admin.DELETE("/limits/:userId", s.handleReset)

	return r
}
