package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"skillswap/services"
)

// GetMatches handles GET /api/matches?user_id=...
func GetMatches(svc *services.MatchService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := oid(c, c.Query("user_id"))
		if !ok {
			return
		}

		ctx, cancel := requestContext()
		defer cancel()

		matches, err := svc.ListForUser(ctx, userID)
		if err != nil {
			log.Printf("[GetMatches] store error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch matches"})
			return
		}
		c.JSON(http.StatusOK, matches)
	}
}
