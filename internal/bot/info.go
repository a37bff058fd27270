package bot

import tele "gopkg.in/telebot.v3"

func (b *Bot) handleAbout(c tele.Context) error {
	b.ack(c)
	return c.Send(
		"🍃 About the Hidden Leaf Tea Shop\n\n"+
			"We source small-batch teas directly from growers:\n"+
			"• Single-origin harvests\n"+
			"• Tasted and graded in-house\n"+
			"• Airtight, light-proof packaging\n"+
			"• Fast shipping\n"+
			"• Brewing advice from real humans\n\n"+
			"🏆 Trusted by thousands of tea drinkers",
		infoKeyboard("📞 Contact Us", cbContact),
	)
}

func (b *Bot) handleContact(c tele.Context) error {
	b.ack(c)
	return c.Send(
		"📞 Contact Us\n\n"+
			"🕐 Customer Service:\n"+
			"Mon-Fri: 9:00 - 18:00\n"+
			"Sat: 10:00 - 16:00\n\n"+
			"📧 Email: hello@hiddenleaf.tea\n"+
			"📱 Phone: +1-800-TEA-LEAF",
		infoKeyboard("📦 Shipping Info", cbShipping),
	)
}

func (b *Bot) handleFAQ(c tele.Context) error {
	b.ack(c)
	return c.Send(
		"❓ Frequently Asked Questions\n\n"+
			"1. How should I store my tea?\n"+
			"Cool, dark and airtight. Away from the spice rack.\n\n"+
			"2. How long does loose leaf keep?\n"+
			"Green teas 6-12 months, oxidized teas up to two years.\n\n"+
			"3. Shipping time?\n"+
			"Standard: 3-5 business days",
		infoKeyboard("📞 Contact Support", cbContact),
	)
}

func (b *Bot) handleShipping(c tele.Context) error {
	b.ack(c)
	return c.Send(
		"📦 Shipping Information\n\n"+
			"🚚 Options:\n"+
			"1. Standard (FREE)\n"+
			"   • 3-5 business days\n\n"+
			"2. Express ($15)\n"+
			"   • 1-2 business days\n\n"+
			"✈️ We ship to all 50 states\n"+
			"📋 Tracking provided on dispatch",
		infoKeyboard("❓ FAQ", cbFAQ),
	)
}
