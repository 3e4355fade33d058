package cart

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Defaults used when no enquiry settings have been saved yet. The enquiry
// flow must keep working without them.
const (
	DefaultWhatsAppNumber = "97430147881"
	DefaultPrefilledText  = "Hello AS PRODUCTION, I'd like to enquire about the following items:\n\n{{items}}\n\nTotal: {{total}}"

	itemsPlaceholder = "{{items}}"
	totalPlaceholder = "{{total}}"

	// Shown in place of the total when every item in the cart has its
	// price hidden.
	noTotal = "N/A"
)

// Settings mirrors the admin-managed enquiry configuration: a digits-only
// WhatsApp number and a message template containing the {{items}} and
// {{total}} placeholders.
type Settings struct {
	WhatsAppNumber string
	PrefilledText  string
}

// Enquiry is the composed cart-to-chat handoff: the final message text and
// the wa.me deep link that opens it in WhatsApp.
type Enquiry struct {
	Message     string `json:"message"`
	WhatsAppURL string `json:"whatsapp_url"`
}

var inr = message.NewPrinter(language.MustParse("en-IN"))

// FormatINR renders an amount as Indian Rupees with en-IN digit grouping,
// e.g. 1000 -> "₹1,000.00" and 100000 -> "₹1,00,000.00".
func FormatINR(amount decimal.Decimal) string {
	return inr.Sprintf("₹%v", number.Decimal(
		amount.InexactFloat64(),
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// Compose builds the enquiry message and deep link from the cart's line
// items and the stored settings. A nil or partially blank settings value
// falls back to the hardcoded defaults; composition itself never fails.
func Compose(items []LineItem, settings *Settings) Enquiry {
	lines := make([]string, 0, len(items))
	total := decimal.Zero
	for _, li := range items {
		line := fmt.Sprintf("%s (x%d)", li.Name, li.Quantity)
		if li.ShowPrice {
			line += " - " + FormatINR(li.LineTotal())
			total = total.Add(li.LineTotal())
		}
		lines = append(lines, line)
	}

	totalText := noTotal
	if total.IsPositive() {
		totalText = FormatINR(total)
	}

	template := DefaultPrefilledText
	phone := DefaultWhatsAppNumber
	if settings != nil {
		if strings.TrimSpace(settings.PrefilledText) != "" {
			template = settings.PrefilledText
		}
		if strings.TrimSpace(settings.WhatsAppNumber) != "" {
			phone = settings.WhatsAppNumber
		}
	}

	// The template contract is a single literal occurrence of each
	// placeholder, so only the first is replaced.
	msg := strings.Replace(template, itemsPlaceholder, strings.Join(lines, "\n"), 1)
	msg = strings.Replace(msg, totalPlaceholder, totalText, 1)

	return Enquiry{
		Message:     msg,
		WhatsAppURL: "https://wa.me/" + phone + "?text=" + url.QueryEscape(msg),
	}
}
