package bot

import (
	"context"
	"errors"
	"log"

	tele "gopkg.in/telebot.v3"

	"github.com/Baruhatal/tbot/internal/catalog"
	"github.com/Baruhatal/tbot/internal/domain"
)

// Catalog is the read-only product listing the bot browses.
type Catalog interface {
	List(f catalog.Filter) []domain.Product
	FindByID(id int64) (*domain.Product, error)
	Categories() []string
}

// CartService mutates per-user carts.
type CartService interface {
	Get(ctx context.Context, userID int64) ([]domain.CartItem, error)
	Add(ctx context.Context, userID int64, product domain.Product, quantity int) ([]domain.CartItem, error)
	SetQuantity(ctx context.Context, userID, productID int64, quantity int) error
	Remove(ctx context.Context, userID, productID int64) error
	Clear(ctx context.Context, userID int64) error
}

// OrderService creates and looks up orders.
type OrderService interface {
	Create(ctx context.Context, userID int64, items []domain.CartItem) (*domain.Order, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
}

// Deps collects the bot's collaborators.
type Deps struct {
	Catalog Catalog
	Carts   CartService
	Orders  OrderService
}

// Bot is the Telegram presentation layer. All storefront copy lives here;
// the services underneath never produce user-facing text.
type Bot struct {
	tb      *tele.Bot
	logger  *log.Logger
	catalog Catalog
	carts   CartService
	orders  OrderService
}

// New wires the storefront handlers onto tb.
func New(tb *tele.Bot, logger *log.Logger, deps Deps) (*Bot, error) {
	if deps.Catalog == nil || deps.Carts == nil || deps.Orders == nil {
		return nil, errors.New("bot: all deps are required")
	}
	b := &Bot{
		tb:      tb,
		logger:  logger,
		catalog: deps.Catalog,
		carts:   deps.Carts,
		orders:  deps.Orders,
	}
	b.register()
	return b, nil
}

// Start begins long polling. It blocks until Stop is called.
func (b *Bot) Start() {
	b.tb.Start()
}

// Stop ends long polling.
func (b *Bot) Stop() {
	b.tb.Stop()
}

// ProcessUpdate feeds one update into the handler chain. Used by the
// webhook server variant.
func (b *Bot) ProcessUpdate(u tele.Update) {
	b.tb.ProcessUpdate(u)
}

func (b *Bot) register() {
	b.tb.Handle("/start", b.handleStart)
	b.tb.Handle("/order", b.handleOrderStatus)

	// Main menu reply-keyboard buttons arrive as plain text.
	b.tb.Handle(labelProducts, b.handleProducts)
	b.tb.Handle(labelCategories, b.handleCategories)
	b.tb.Handle(labelCart, b.handleCart)
	b.tb.Handle(labelBestSellers, b.handleBestSellers)
	b.tb.Handle(labelAbout, b.handleAbout)
	b.tb.Handle(labelContact, b.handleContact)
	b.tb.Handle(labelShipping, b.handleShipping)
	b.tb.Handle(labelFAQ, b.handleFAQ)

	b.tb.Handle(&tele.Btn{Unique: cbProduct}, b.handleProductDetails)
	b.tb.Handle(&tele.Btn{Unique: cbAdd}, b.handleAddToCart)
	b.tb.Handle(&tele.Btn{Unique: cbIncrease}, b.handleIncrease)
	b.tb.Handle(&tele.Btn{Unique: cbDecrease}, b.handleDecrease)
	b.tb.Handle(&tele.Btn{Unique: cbRemove}, b.handleRemoveFromCart)
	b.tb.Handle(&tele.Btn{Unique: cbQuantity}, b.handleQuantityTap)
	b.tb.Handle(&tele.Btn{Unique: cbViewCart}, b.handleCart)
	b.tb.Handle(&tele.Btn{Unique: cbBrowse}, b.handleProducts)
	b.tb.Handle(&tele.Btn{Unique: cbCategories}, b.handleCategories)
	b.tb.Handle(&tele.Btn{Unique: cbCategory}, b.handleCategory)
	b.tb.Handle(&tele.Btn{Unique: cbBestSellers}, b.handleBestSellers)
	b.tb.Handle(&tele.Btn{Unique: cbClearCart}, b.handleClearCart)
	b.tb.Handle(&tele.Btn{Unique: cbCheckout}, b.handleCheckout)
	b.tb.Handle(&tele.Btn{Unique: cbContact}, b.handleContact)
	b.tb.Handle(&tele.Btn{Unique: cbFAQ}, b.handleFAQ)
	b.tb.Handle(&tele.Btn{Unique: cbShipping}, b.handleShipping)
}

func (b *Bot) handleStart(c tele.Context) error {
	b.logger.Printf("start command from %d", c.Sender().ID)
	return c.Send(
		"🍃 Welcome to the Hidden Leaf Tea Shop! 🍃\n\nExplore our small-batch teas and teaware.",
		mainMenu(),
	)
}

// ErrorHandler returns the bot-level catch-all: log the failure and give
// the user a generic retry message.
func ErrorHandler(logger *log.Logger) func(error, tele.Context) {
	return func(err error, c tele.Context) {
		logger.Printf("bot error: %v", err)
		if c != nil {
			_ = c.Send("Sorry, something went wrong. Please try again later.")
		}
	}
}
