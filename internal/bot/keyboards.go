package bot

import (
	"strconv"

	tele "gopkg.in/telebot.v3"

	"github.com/Baruhatal/tbot/internal/domain"
)

// Callback uniques shared between keyboard builders and handler
// registration.
const (
	cbProduct     = "product"
	cbAdd         = "add"
	cbIncrease    = "increase"
	cbDecrease    = "decrease"
	cbRemove      = "remove"
	cbQuantity    = "quantity"
	cbViewCart    = "view_cart"
	cbBrowse      = "browse_products"
	cbCategories  = "categories"
	cbCategory    = "category"
	cbBestSellers = "best_sellers"
	cbClearCart   = "clear_cart"
	cbCheckout    = "checkout"
	cbContact     = "contact"
	cbFAQ         = "faq"
	cbShipping    = "shipping_info"
)

// Main menu reply-keyboard labels. Handlers are registered against these
// exact strings.
const (
	labelProducts    = "🛍 Products"
	labelCategories  = "📂 Categories"
	labelCart        = "🛒 Cart"
	labelBestSellers = "💫 Best Sellers"
	labelAbout       = "ℹ️ About"
	labelContact     = "📞 Contact"
	labelShipping    = "📦 Shipping"
	labelFAQ         = "❓ FAQ"
)

func mainMenu() *tele.ReplyMarkup {
	m := &tele.ReplyMarkup{ResizeKeyboard: true}
	m.Reply(
		m.Row(m.Text(labelProducts), m.Text(labelCategories)),
		m.Row(m.Text(labelCart), m.Text(labelBestSellers)),
		m.Row(m.Text(labelAbout), m.Text(labelContact)),
		m.Row(m.Text(labelShipping), m.Text(labelFAQ)),
	)
	return m
}

func productListKeyboard(products []domain.Product) *tele.ReplyMarkup {
	m := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(products)+2)
	for _, p := range products {
		label := p.Name + " - " + domain.FormatCents(p.PriceCents)
		rows = append(rows, m.Row(m.Data(label, cbProduct, formatID(p.ID))))
	}
	rows = append(rows,
		m.Row(m.Data("📂 Categories", cbCategories), m.Data("🛒 Cart", cbViewCart)),
		m.Row(m.Data("❓ FAQ", cbFAQ), m.Data("📦 Shipping", cbShipping)),
	)
	m.Inline(rows...)
	return m
}

func categoryKeyboard(categories []string) *tele.ReplyMarkup {
	m := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(categories)+3)
	rows = append(rows, m.Row(m.Data("🌟 Best Sellers", cbBestSellers)))
	for _, tag := range categories {
		rows = append(rows, m.Row(m.Data(categoryLabel(tag), cbCategory, tag)))
	}
	rows = append(rows,
		m.Row(m.Data("🛍 View All Products", cbBrowse)),
		m.Row(m.Data("🛒 View Cart", cbViewCart)),
	)
	m.Inline(rows...)
	return m
}

func productDetailKeyboard(productID int64) *tele.ReplyMarkup {
	m := &tele.ReplyMarkup{}
	m.Inline(
		m.Row(m.Data("🛒 Add to Cart", cbAdd, formatID(productID))),
		m.Row(m.Data("« Back", cbBrowse), m.Data("🛒 Cart", cbViewCart)),
		m.Row(m.Data("❓ FAQ", cbFAQ), m.Data("📦 Shipping", cbShipping)),
	)
	return m
}

func addedToCartKeyboard() *tele.ReplyMarkup {
	m := &tele.ReplyMarkup{}
	m.Inline(
		m.Row(m.Data("🛒 View Cart", cbViewCart)),
		m.Row(m.Data("🛍 Continue Shopping", cbBrowse)),
	)
	return m
}

func cartKeyboard(items []domain.CartItem) *tele.ReplyMarkup {
	m := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(items)+3)
	for _, item := range items {
		id := formatID(item.ProductID)
		rows = append(rows, m.Row(
			m.Data("➖", cbDecrease, id),
			m.Data(strconv.Itoa(item.Quantity)+"x", cbQuantity, id),
			m.Data("➕", cbIncrease, id),
			m.Data("🗑️", cbRemove, id),
		))
	}
	rows = append(rows,
		m.Row(m.Data("🗑 Clear Cart", cbClearCart)),
		m.Row(m.Data("💳 Checkout", cbCheckout)),
		m.Row(m.Data("🛍 Continue Shopping", cbBrowse)),
	)
	m.Inline(rows...)
	return m
}

func infoKeyboard(leftLabel, leftUnique string) *tele.ReplyMarkup {
	m := &tele.ReplyMarkup{}
	m.Inline(
		m.Row(m.Data(leftLabel, leftUnique)),
		m.Row(m.Data("🛍 Browse Products", cbBrowse)),
	)
	return m
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func parseID(data string) (int64, bool) {
	id, err := strconv.ParseInt(data, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
