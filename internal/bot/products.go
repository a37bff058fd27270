package bot

import (
	"errors"

	tele "gopkg.in/telebot.v3"

	"github.com/Baruhatal/tbot/internal/catalog"
	"github.com/Baruhatal/tbot/internal/domain"
)

func (b *Bot) handleProducts(c tele.Context) error {
	b.ack(c)
	return b.listProducts(c, catalog.All, "🍃 Our Teas & Teaware:")
}

func (b *Bot) handleBestSellers(c tele.Context) error {
	b.ack(c)
	return b.listProducts(c, catalog.BestSellers, "💫 Our Best Sellers:")
}

func (b *Bot) handleCategory(c tele.Context) error {
	b.ack(c)
	tag := c.Data()
	return b.listProducts(c, catalog.Category(tag), categoryLabel(tag)+":")
}

func (b *Bot) listProducts(c tele.Context, f catalog.Filter, title string) error {
	products := b.catalog.List(f)
	if len(products) == 0 {
		return c.Send("Nothing here yet. Check back soon!", categoryKeyboard(b.catalog.Categories()))
	}
	return c.Send(title+"\n\nSelect a product to view details:", productListKeyboard(products))
}

func (b *Bot) handleCategories(c tele.Context) error {
	b.ack(c)
	return c.Send(
		"📂 Product Categories\n\nChoose a category to explore:",
		categoryKeyboard(b.catalog.Categories()),
	)
}

func (b *Bot) handleProductDetails(c tele.Context) error {
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
	if product.Image != "" {
		photo := &tele.Photo{
			File:    tele.FromURL(product.Image),
			Caption: "📸 " + product.Name,
		}
		if err := c.Send(photo); err != nil {
			// A broken image reference should not block the detail view.
			b.logger.Printf("send photo for product %d: %v", product.ID, err)
		}
	}
	return c.Send(formatProduct(*product), productDetailKeyboard(product.ID))
}

// ack answers the pending callback query, if any, so the client stops
// showing a spinner. Plain text updates have nothing to answer.
func (b *Bot) ack(c tele.Context) {
	if c.Callback() != nil {
		_ = c.Respond()
	}
}
