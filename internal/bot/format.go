package bot

import (
	"fmt"
	"strings"

	"github.com/Baruhatal/tbot/internal/domain"
)

func formatProduct(p domain.Product) string {
	return fmt.Sprintf(
		"🍃 %s\n\n💰 Price: %s\n\n📝 Description:\n%s",
		p.Name, domain.FormatCents(p.PriceCents), p.Description,
	)
}

func formatCart(items []domain.CartItem) string {
	if len(items) == 0 {
		return "Your cart is empty!"
	}
	var b strings.Builder
	b.WriteString("🛒 Your Cart:\n\n")
	for i, item := range items {
		fmt.Fprintf(&b, "%d. %s x%d\n   %s\n\n",
			i+1, item.Name, item.Quantity, domain.FormatCents(item.TotalCents()))
	}
	fmt.Fprintf(&b, "Total: %s", domain.FormatCents(domain.CartTotalCents(items)))
	return b.String()
}

func formatOrderConfirmation(o *domain.Order) string {
	return "🎉 Thank you for your order!\n\n" +
		"Order #: " + o.ID + "\n\n" +
		"Our team will contact you shortly to confirm your order and arrange payment.\n\n" +
		"📦 Track your order status with /order " + o.ID
}

func formatOrderStatus(o *domain.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📦 Order #%s\n\nStatus: %s\n\n", o.ID, o.Status)
	for i, item := range o.Items {
		fmt.Fprintf(&b, "%d. %s x%d\n", i+1, item.Name, item.Quantity)
	}
	fmt.Fprintf(&b, "\nTotal: %s", domain.FormatCents(o.TotalCents))
	return b.String()
}

func categoryLabel(tag string) string {
	switch tag {
	case "teas":
		return "🍃 Teas"
	case "accessories":
		return "🫖 Accessories"
	case "sets":
		return "🎁 Sets & Gifts"
	case "":
		return "Other"
	default:
		return strings.ToUpper(tag[:1]) + tag[1:]
	}
}
