package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"

	"skillswap/config"
	"skillswap/database"
	"skillswap/middleware"
	"skillswap/routes"
	"skillswap/services"
	"skillswap/store"
)

func main() {
	log.Println("🚀 Starting SkillSwap Backend Server...")

	// .env is optional; real deployments set env vars directly.
	_ = godotenv.Load()
	cfg := config.Load()

	// ===== CONNECT TO MONGODB WITH RETRY =====
	log.Println("🔌 Connecting to MongoDB...")

	var client *mongo.Client
	var dbErr error
	for i := 1; i <= 3; i++ {
		c, err := database.Connect(cfg.MongoURI)
		if err != nil {
			dbErr = err
			log.Printf("❌ MongoDB connection attempt %d failed: %v", i, err)
			time.Sleep(2 * time.Second)
			continue
		}
		client = c
		dbErr = nil
		break
	}

	if dbErr != nil {
		log.Fatal("❌ Failed to connect to MongoDB:", dbErr)
	}
	log.Println("✅ MongoDB connected successfully")

	st := store.NewMongo(client.Database(cfg.MongoDB))

	// ===== GIN MODE =====
	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
		log.Println("⚙️ Running in RELEASE mode")
	} else {
		gin.SetMode(gin.DebugMode)
		log.Println("⚙️ Running in DEBUG mode")
	}

	// ===== SERVICES & ROUTER =====
	deps := &routes.Deps{
		Store:           st,
		DBName:          cfg.MongoDB,
		Users:           &services.UserService{Store: st},
		Recommendations: &services.RecommendationService{Store: st},
		Swipes:          &services.SwipeService{Store: st},
		Matches:         &services.MatchService{Store: st},
		Sessions:        &services.SessionService{Store: st},
		RateLimiter:     middleware.NewIPRateLimiter(cfg.RateLimit, cfg.RateLimitWindow),
	}
	router := routes.SetupRouter(deps)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("🌐 Server running on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("❌ Server error:", err)
		}
	}()

	log.Println("✅ Server is ready and accepting connections")

	// ===== GRACEFUL SHUTDOWN =====
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Println("❌ Forced shutdown:", err)
	}

	if err := database.Disconnect(client); err != nil {
		log.Println("❌ MongoDB disconnect failed:", err)
	}

	log.Println("👋 Server stopped gracefully")
}
