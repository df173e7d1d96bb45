package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"skillswap/store"
)

// Root handles GET /.
func Root() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "SkillSwap Backend Running"})
	}
}

// Health handles GET /health, for the hosting platform's probe.
func Health() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	}
}

// Test handles GET /test, a store diagnostic. Inspection failures are
// reported inside the response body; this endpoint never fails the request.
func Test(st store.Store, dbName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := gin.H{
			"backend":           "✅ Running",
			"database":          "❌ Not Available",
			"database_url":      nil,
			"database_name":     nil,
			"connection_status": "Not Connected",
			"collections":       []string{},
		}

		if st != nil {
			if err := st.Ping(c.Request.Context()); err != nil {
				msg := err.Error()
				if len(msg) > 80 {
					msg = msg[:80]
				}
				response["database"] = "❌ Error: " + msg
			} else {
				response["database"] = "✅ Connected & Working"
				if os.Getenv("MONGODB_URI") != "" {
					response["database_url"] = "✅ Set"
				} else {
					response["database_url"] = "❌ Not Set"
				}
				response["database_name"] = dbName
				response["connection_status"] = "Connected"
				if names, err := st.CollectionNames(c.Request.Context()); err == nil {
					response["collections"] = names
				}
			}
		}

		c.JSON(http.StatusOK, response)
	}
}
