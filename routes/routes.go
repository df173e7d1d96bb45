package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"skillswap/handlers"
	"skillswap/middleware"
	"skillswap/services"
	"skillswap/store"
)

// Deps carries everything the router needs, constructed once in main.
type Deps struct {
	Store  store.Store
	DBName string

	Users           *services.UserService
	Recommendations *services.RecommendationService
	Swipes          *services.SwipeService
	Matches         *services.MatchService
	Sessions        *services.SessionService

	RateLimiter *middleware.IPRateLimiter
}

func SetupRouter(d *Deps) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.RequestID())

	// Every origin is allowed; there is no auth boundary.
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:   []string{"Content-Length", "Content-Type", middleware.RequestIDHeader},
		MaxAge:          12 * time.Hour,
	}))

	router.GET("/", handlers.Root())
	router.GET("/health", handlers.Health())
	router.GET("/test", handlers.Test(d.Store, d.DBName))

	api := router.Group("/api")
	if d.RateLimiter != nil {
		api.Use(middleware.RateLimit(d.RateLimiter))
	}

	// Users
	api.POST("/users", handlers.CreateOrGetUser(d.Users))
	api.GET("/users", handlers.ListUsers(d.Users))
	api.GET("/skillcoins", handlers.GetSkillCoins(d.Users))

	// Recommendations
	api.GET("/recommendations", handlers.GetRecommendations(d.Recommendations))

	// Swipes and matches
	api.POST("/swipe", handlers.Swipe(d.Swipes))
	api.GET("/matches", handlers.GetMatches(d.Matches))

	// Sessions
	api.POST("/sessions", handlers.CreateSession(d.Sessions))
	api.POST("/sessions/:id/complete", handlers.CompleteSession(d.Sessions))

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Endpoint not found",
				"path":  c.Request.URL.Path,
			})
			return
		}
		c.Next()
	})

	return router
}
