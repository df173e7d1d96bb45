package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"skillswap/models"
	"skillswap/services"
	"skillswap/store"
)

// CreateSession handles POST /api/sessions.
func CreateSession(svc *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload models.SessionCreate
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		matchID, ok := oid(c, payload.MatchID)
		if !ok {
			return
		}

		ctx, cancel := requestContext()
		defer cancel()

		id, err := svc.Create(ctx, matchID, payload.Topic, payload.ScheduledTime, payload.Mode)
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Match not found"})
			return
		}
		if err != nil {
			log.Printf("[CreateSession] store error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id.Hex()})
	}
}

// CompleteSession handles POST /api/sessions/:id/complete. Both participants
// are credited the fixed reward; there is no completed-already guard, a
// second call pays out again.
func CompleteSession(svc *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, ok := oid(c, c.Param("id"))
		if !ok {
			return
		}

		ctx, cancel := requestContext()
		defer cancel()

		awarded, err := svc.Complete(ctx, sessionID)
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}
		if err != nil {
			log.Printf("[CompleteSession] store error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete session"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "completed", "skillcoins_awarded": awarded})
	}
}
