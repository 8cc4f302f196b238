// Package rest exposes the public HTTP API: account registration and
// authentication, profile management, and stream key endpoints.
package rest

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/streamcast/user-service/internal/logging"
	"github.com/streamcast/user-service/internal/server/services"
)

type Server struct {
	address string
	logger  logging.Logger
	db      *sql.DB
	auth    *services.AuthService
	users   *services.UserService
}

func NewServer(address string, l logging.Logger, db *sql.DB, auth *services.AuthService, users *services.UserService) *Server {
	return &Server{
		address: address,
		logger:  l.With("module", "rest_server"),
		db:      db,
		auth:    auth,
		users:   users,
	}
}

func (s *Server) setupRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())
	router.Use(RequestLoggerMiddleware(s.logger))

	router.GET("/health", s.health)
	router.GET("/health/db", s.healthDB)

	api := router.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/register", s.register)
	auth.POST("/login", s.login)
	auth.POST("/refresh", s.refresh)
	auth.POST("/logout", s.logout)
	auth.POST("/change-password", s.authMiddleware(), s.changePassword)
	auth.GET("/me", s.authMiddleware(), s.me)

	users := api.Group("/users", s.authMiddleware())
	users.GET("", s.listUsers)
	users.GET("/:id", s.getUser)
	users.PUT("/:id", s.updateUser)
	users.DELETE("/:id", s.deleteUser)

	stream := api.Group("/stream")
	stream.POST("/validate-stream-key", s.validateStreamKey)
	stream.GET("/key", s.authMiddleware(), s.getStreamKey)
	stream.POST("/regenerate-key", s.authMiddleware(), s.regenerateStreamKey)

	return router
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.setupRouter(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "user-service"})
}

func (s *Server) healthDB(c *gin.Context) {
	if err := s.db.PingContext(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "database": "disconnected"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "database": "connected"})
}
