package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	tele "gopkg.in/telebot.v3"

	"github.com/Baruhatal/tbot/internal/bot"
	"github.com/Baruhatal/tbot/internal/catalog"
	"github.com/Baruhatal/tbot/internal/config"
	cartrepo "github.com/Baruhatal/tbot/internal/repository/cart"
	orderrepo "github.com/Baruhatal/tbot/internal/repository/order"
	cartsvc "github.com/Baruhatal/tbot/internal/service/cart"
	ordersvc "github.com/Baruhatal/tbot/internal/service/order"
)

func main() {
	logger := log.New(os.Stdout, "[bot] ", log.LstdFlags|log.LUTC)

	cfg, err := config.FromEnv()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	cat, err := catalog.Default()
	if err != nil {
		logger.Fatalf("build catalog: %v", err)
	}

	cartService := cartsvc.New(cartrepo.NewMemory())
	orderService := ordersvc.New(orderrepo.NewMemory())

	tb, err := tele.NewBot(tele.Settings{
		Token:   cfg.BotToken,
		Poller:  &tele.LongPoller{Timeout: cfg.PollTimeout},
		OnError: bot.ErrorHandler(logger),
	})
	if err != nil {
		logger.Fatalf("init telegram bot: %v", err)
	}

	storefront, err := bot.New(tb, logger, bot.Deps{
		Catalog: cat,
		Carts:   cartService,
		Orders:  orderService,
	})
	if err != nil {
		logger.Fatalf("init bot: %v", err)
	}

	go func() {
		logger.Printf("starting long polling")
		storefront.Start()
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-stopCh
	logger.Printf("received signal %s, shutting down", sig)
	storefront.Stop()
	logger.Printf("bot stopped")
}
