package bot

import (
	"context"
	"errors"
	"strings"

	tele "gopkg.in/telebot.v3"

	"github.com/Baruhatal/tbot/internal/domain"
)

func (b *Bot) handleCart(c tele.Context) error {
	b.ack(c)
	return b.renderCart(c)
}

func (b *Bot) renderCart(c tele.Context) error {
	items, err := b.carts.Get(context.Background(), c.Sender().ID)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return c.Send(
			"Your cart is empty! 🛒\n\nBrowse our products to add items.",
			mainMenu(),
		)
	}
	return c.Send(formatCart(items), cartKeyboard(items))
}

func (b *Bot) handleAddToCart(c tele.Context) error {
	b.ack(c)
	id, ok := parseID(c.Data())
	if !ok {
		return c.Send("Product not found")
	}
	product, err := b.catalog.FindByID(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Send("Product not found")
		}
		return err
	}
	if _, err := b.carts.Add(context.Background(), c.Sender().ID, *product, 1); err != nil {
		return err
	}
	b.logger.Printf("user %d added product %d to cart", c.Sender().ID, product.ID)
	return c.Send(
		"✅ Added "+product.Name+" to your cart!\n\nWhat would you like to do next?",
		addedToCartKeyboard(),
	)
}

func (b *Bot) handleIncrease(c tele.Context) error {
	return b.adjustQuantity(c, +1)
}

func (b *Bot) handleDecrease(c tele.Context) error {
	return b.adjustQuantity(c, -1)
}

// adjustQuantity shifts a line's quantity by delta. Dropping to zero
// removes the line entirely; a stale button for a vanished line is a no-op.
func (b *Bot) adjustQuantity(c tele.Context, delta int) error {
	b.ack(c)
	id, ok := parseID(c.Data())
	if !ok {
		return b.renderCart(c)
	}
	ctx := context.Background()
	userID := c.Sender().ID

	items, err := b.carts.Get(ctx, userID)
	if err != nil {
		return err
	}
	for _, item := range items {
		if item.ProductID == id {
			if err := b.carts.SetQuantity(ctx, userID, id, item.Quantity+delta); err != nil {
				return err
			}
			break
		}
	}
	return b.renderCart(c)
}

func (b *Bot) handleQuantityTap(c tele.Context) error {
	return c.Respond(&tele.CallbackResponse{Text: "Use ➖ and ➕ to change the quantity."})
}

func (b *Bot) handleRemoveFromCart(c tele.Context) error {
	b.ack(c)
	id, ok := parseID(c.Data())
	if !ok {
		return b.renderCart(c)
	}
	if err := b.carts.Remove(context.Background(), c.Sender().ID, id); err != nil {
		return err
	}
	return b.renderCart(c)
}

func (b *Bot) handleClearCart(c tele.Context) error {
	b.ack(c)
	if err := b.carts.Clear(context.Background(), c.Sender().ID); err != nil {
		return err
	}
	return c.Send(
		"🗑 Cart cleared!\n\nReady to start fresh? Browse our products!",
		mainMenu(),
	)
}

func (b *Bot) handleCheckout(c tele.Context) error {
	b.ack(c)
	ctx := context.Background()
	userID := c.Sender().ID

	items, err := b.carts.Get(ctx, userID)
	if err != nil {
		return err
	}
	order, err := b.orders.Create(ctx, userID, items)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyCart) {
			return c.Send("Your cart is empty! Add some products first.")
		}
		return err
	}
	if err := b.carts.Clear(ctx, userID); err != nil {
		return err
	}
	b.logger.Printf("user %d placed order %s (%s)", userID, order.ID, domain.FormatCents(order.TotalCents))
	return c.Send(formatOrderConfirmation(order))
}

func (b *Bot) handleOrderStatus(c tele.Context) error {
	id := strings.TrimSpace(c.Message().Payload)
	if id == "" {
		return c.Send("Send /order followed by your order number, e.g. /order m1x2c3-1")
	}
	order, err := b.orders.Get(context.Background(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Send("No order found with that number. Double-check and try again.")
		}
		return err
	}
	if order.UserID != c.Sender().ID {
		// Order numbers are not secrets, but other users' orders stay private.
		return c.Send("No order found with that number. Double-check and try again.")
	}
	return c.Send(formatOrderStatus(order))
}
