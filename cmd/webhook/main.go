package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	tele "gopkg.in/telebot.v3"

	"github.com/Baruhatal/tbot/internal/bot"
	"github.com/Baruhatal/tbot/internal/catalog"
	"github.com/Baruhatal/tbot/internal/config"
	"github.com/Baruhatal/tbot/internal/httpserver"
	cartrepo "github.com/Baruhatal/tbot/internal/repository/cart"
	orderrepo "github.com/Baruhatal/tbot/internal/repository/order"
	cartsvc "github.com/Baruhatal/tbot/internal/service/cart"
	ordersvc "github.com/Baruhatal/tbot/internal/service/order"
)

func main() {
	logger := log.New(os.Stdout, "[webhook] ", log.LstdFlags|log.LUTC)

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

	// No poller: updates arrive over HTTP and are fed in via ProcessUpdate.
	tb, err := tele.NewBot(tele.Settings{
		Token:   cfg.BotToken,
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

	srv, err := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{Bot: storefront})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
