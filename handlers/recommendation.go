package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"skillswap/services"
	"skillswap/store"
)

// GetRecommendations handles GET /api/recommendations?user_id=...&limit=...
func GetRecommendations(svc *services.RecommendationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := oid(c, c.Query("user_id"))
		if !ok {
			return
		}

		limit := services.DefaultRecommendationLimit
		if raw := c.Query("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
				return
			}
			limit = n
		}

		ctx, cancel := requestContext()
		defer cancel()

		recs, err := svc.Recommend(ctx, userID, limit)
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		if err != nil {
			log.Printf("[GetRecommendations] store error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recommendations"})
			return
		}
		c.JSON(http.StatusOK, recs)
	}
}
