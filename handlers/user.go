package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"skillswap/models"
	"skillswap/services"
	"skillswap/store"
)

// CreateOrGetUser handles POST /api/users. Creation is idempotent by email:
// posting an existing email returns the stored profile untouched.
func CreateOrGetUser(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload models.UserCreate
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		ctx, cancel := requestContext()
		defer cancel()

		user, err := svc.CreateOrGet(ctx, payload)
		if err != nil {
			log.Printf("[CreateOrGetUser] store error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// ListUsers handles GET /api/users.
func ListUsers(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext()
		defer cancel()

		users, err := svc.List(ctx)
		if err != nil {
			log.Printf("[ListUsers] store error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

// GetSkillCoins handles GET /api/skillcoins?user_id=...
func GetSkillCoins(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := oid(c, c.Query("user_id"))
		if !ok {
			return
		}

		ctx, cancel := requestContext()
		defer cancel()

		balance, err := svc.Balance(ctx, userID)
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		if err != nil {
			log.Printf("[GetSkillCoins] store error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch balance"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"balance": balance})
	}
}
