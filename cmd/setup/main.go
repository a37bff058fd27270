package main

import (
	"flag"
	"log"
	"os"

	tele "gopkg.in/telebot.v3"

	"github.com/Baruhatal/tbot/internal/config"
)

// setup registers (or removes) the Telegram webhook for the webhook server
// variant. Run it once after deploying to a new public URL.
func main() {
	remove := flag.Bool("remove", false, "remove the registered webhook instead of setting one")
	flag.Parse()

	logger := log.New(os.Stdout, "[setup] ", log.LstdFlags|log.LUTC)

	cfg, err := config.FromEnv()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	tb, err := tele.NewBot(tele.Settings{Token: cfg.BotToken})
	if err != nil {
		logger.Fatalf("init telegram bot: %v", err)
	}

	if *remove {
		if _, err := tb.Raw("deleteWebhook", map[string]string{}); err != nil {
			logger.Fatalf("delete webhook: %v", err)
		}
		logger.Printf("webhook removed")
		return
	}

	if cfg.WebhookURL == "" {
		logger.Fatalf("WEBHOOK_URL must be provided")
	}
	if _, err := tb.Raw("setWebhook", map[string]string{"url": cfg.WebhookURL}); err != nil {
		logger.Fatalf("set webhook: %v", err)
	}
	logger.Printf("webhook set to %s", cfg.WebhookURL)
}
