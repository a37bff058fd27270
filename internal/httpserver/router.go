package httpserver

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// buildRouter wires routes for the webhook server.
func buildRouter(logger *log.Logger, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.Bot))
	router.POST("/webhook", webhookHandler(logger, deps.Bot))

	return router
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func readyHandler(bot UpdateProcessor) gin.HandlerFunc {
	return func(c *gin.Context) {
		if bot == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "bot not configured"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}
