package httpserver

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	tele "gopkg.in/telebot.v3"
)

// webhookHandler decodes one Telegram update per request and hands it to
// the bot. Telegram retries on non-2xx, so decode failures answer 400 and
// are otherwise dropped.
func webhookHandler(logger *log.Logger, bot UpdateProcessor) gin.HandlerFunc {
	return func(c *gin.Context) {
		if bot == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "bot not configured"})
			return
		}
		var update tele.Update
		if err := c.ShouldBindJSON(&update); err != nil {
			logger.Printf("webhook: decode update: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "malformed update"})
			return
		}
		bot.ProcessUpdate(update)
		c.Status(http.StatusOK)
	}
}
