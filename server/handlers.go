package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gguatit/Today-s-horoscope/auth"
	"github.com/gguatit/Today-s-horoscope/domain/fortune"
)

// handleFortune runs one request through the guard and, when admitted,
// through the model. Status mapping is part of the caller contract:
// duplicate → 400, exhausted quota → 429, admitted → 200.
func (s *Server) handleFortune(c *gin.Context) {
	userID := c.GetString(auth.UserIDKey)

	var req fortuneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validateFortuneRequest(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	decision, err := s.service.ValidateAndIncrement(userID, req.Question)
	if err != nil {
		s.log.Error("Admission failed", "user", userID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	switch decision.Outcome {
	case fortune.OutcomeDuplicate:
		c.JSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"remaining": decision.Remaining,
			"message":   decision.Message,
		})
		return
	case fortune.OutcomeQuotaExceeded:
		c.JSON(http.StatusTooManyRequests, gin.H{
			"success":   false,
			"remaining": decision.Remaining,
			"message":   decision.Message,
		})
		return
	}

	answer, err := s.generator.Fortune(c.Request.Context(), userID, req.Question)
	if err != nil {
		s.log.Error("Fortune generation failed", "user", userID, "err", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "fortune generation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"fortune":   answer,
		"remaining": decision.Remaining,
		"message":   decision.Message,
	})
}

func (s *Server) handleLimit(c *gin.Context) {
	userID := c.GetString(auth.UserIDKey)
	check, err := s.service.CheckDailyLimit(userID)
	if err != nil {
		s.log.Error("Limit check failed", "user", userID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"allowed":   check.Allowed,
		"remaining": check.Remaining,
		"message":   check.Message,
	})
}

func (s *Server) handleCount(c *gin.Context) {
	userID := c.GetString(auth.UserIDKey)
	count, err := s.service.GetDailyRequestCount(userID)
	if err != nil {
		s.log.Error("Count lookup failed", "user", userID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

func (s *Server) handleReset(c *gin.Context) {
	target := c.Param("userId")
	if err := s.service.ResetDailyCount(target); err != nil {
		s.log.Error("Reset failed", "user", target, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.stats.Snapshot())
}
