package handler

import (
	"errors"
	"log"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"skillpathservice/usecase"
)

type SkillPathHandler struct {
	usecase *usecase.SkillPathUsecase
}

func NewSkillPathHandler(uc *usecase.SkillPathUsecase) *SkillPathHandler {
	return &SkillPathHandler{usecase: uc}
}

// GetSkillPath returns the student's skill-path recommendations, gated to
// their subscription tier. Serves the cached record when fresh, otherwise
// generates a new analysis.
func (h *SkillPathHandler) GetSkillPath(c *gin.Context) {
	userID, tier, ok := callerIdentity(c)
	if !ok {
		return
	}

	response, err := h.usecase.GetSkillPath(c.Request.Context(), userID, tier)
	if err != nil {
		log.Printf("Failed to build skill path for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch skill path recommendations"})
		return
	}

	c.JSON(http.StatusOK, response)
}

// RefreshSkillPath forces a regeneration ahead of the TTL, throttled to one
// refresh per tier cooldown window.
func (h *SkillPathHandler) RefreshSkillPath(c *gin.Context) {
	userID, tier, ok := callerIdentity(c)
	if !ok {
		return
	}

	response, err := h.usecase.RefreshSkillPath(c.Request.Context(), userID, tier)
	if err != nil {
		var cooldownErr *usecase.CooldownActiveError
		if errors.As(err, &cooldownErr) {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":             "Refresh cooldown active",
				"retryAfterMinutes": int(math.Ceil(cooldownErr.RetryAfter.Minutes())),
			})
			return
		}
		log.Printf("Failed to refresh skill path for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh skill path recommendations"})
		return
	}

	c.JSON(http.StatusOK, response)
}

func callerIdentity(c *gin.Context) (string, string, bool) {
	userID, ok := c.Get("user_id")
	if !ok || userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: Missing user ID"})
		return "", "", false
	}
	userIDStr, ok := userID.(string)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user ID format"})
		return "", "", false
	}

	tierStr := ""
	if tier, ok := c.Get("tier"); ok {
		tierStr, _ = tier.(string)
	}
	return userIDStr, tierStr, true
}
