package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/streamcast/user-service/internal/common"
)

// validateStreamKey is called by the ingest edge before it accepts a
// publish. It always answers 200: the verdict travels in the body so the
// caller does not have to tell a rejection apart from an HTTP error.
func (s *Server) validateStreamKey(c *gin.Context) {
	var req validateStreamKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := s.users.ValidateStreamKey(c.Request.Context(), req.StreamKey)
	if err != nil {
		resp := validateStreamKeyResponse{Valid: false}
		switch {
		case errors.Is(err, common.ErrorNotFound):
			resp.Message = "Invalid stream key"
		case errors.Is(err, common.ErrInactiveUser):
			resp.Message = "User account is inactive"
		default:
			resp.Message = "Internal server error"
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	s.logger.Info(c.Request.Context(), "stream key validated",
		"user_id", user.ID, "ip_address", req.IPAddress)

	c.JSON(http.StatusOK, validateStreamKeyResponse{
		Valid:    true,
		UserID:   user.ID,
		UserName: user.UserName,
		Message:  "Stream key is valid",
	})
}

func (s *Server) getStreamKey(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"stream_key": user.StreamKey,
		"user_id":    user.ID,
		"username":   user.UserName,
	})
}

// regenerateStreamKey swaps the key; the previous one stops validating as
// soon as the new one is stored.
func (s *Server) regenerateStreamKey(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	key, err := s.users.RegenerateStreamKey(c.Request.Context(), user.ID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Stream key regenerated successfully",
		"stream_key": key,
	})
}
