package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"skillswap/models"
	"skillswap/services"
)

// Swipe handles POST /api/swipe.
func Swipe(svc *services.SwipeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload models.SwipeRequest
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		userID, ok := oid(c, payload.UserID)
		if !ok {
			return
		}
		targetID, ok := oid(c, payload.TargetID)
		if !ok {
			return
		}

		ctx, cancel := requestContext()
		defer cancel()

		result, err := svc.Swipe(ctx, userID, targetID, payload.Action)
		if err == services.ErrInvalidAction {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid action"})
			return
		}
		if err != nil {
			log.Printf("[Swipe] store error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record swipe"})
			return
		}

		if result.Status == services.SwipeMatched {
			log.Printf("[Swipe] matched %s and %s (match %s)", payload.UserID, payload.TargetID, result.MatchID)
		}
		c.JSON(http.StatusOK, result)
	}
}
