package cart

import (
	"net/url"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func enquiryItems() []LineItem {
	return []LineItem{
		{ProductID: "p1", Name: "Shirt", Price: decimal.NewFromInt(500), ShowPrice: true, Quantity: 2},
		{ProductID: "p2", Name: "Gift Card", Price: decimal.Zero, ShowPrice: false, Quantity: 1},
	}
}

func TestComposeItemsAndTotal(t *testing.T) {
	settings := &Settings{
		WhatsAppNumber: "919876543210",
		PrefilledText:  "Items:\n{{items}}\nTotal: {{total}}",
	}

	e := Compose(enquiryItems(), settings)

	want := "Items:\nShirt (x2) - ₹1,000.00\nGift Card (x1)\nTotal: ₹1,000.00"
	if e.Message != want {
		t.Errorf("message mismatch:\nwant %q\ngot  %q", want, e.Message)
	}
}

func TestComposeDeepLink(t *testing.T) {
	settings := &Settings{WhatsAppNumber: "919876543210", PrefilledText: "{{items}} / {{total}}"}
	e := Compose(enquiryItems(), settings)

	if !strings.HasPrefix(e.WhatsAppURL, "https://wa.me/919876543210?text=") {
		t.Fatalf("unexpected deep link prefix: %q", e.WhatsAppURL)
	}

	encoded := strings.TrimPrefix(e.WhatsAppURL, "https://wa.me/919876543210?text=")
	decoded, err := url.QueryUnescape(encoded)
	if err != nil {
		t.Fatalf("deep link text does not round-trip: %v", err)
	}
	if decoded != e.Message {
		t.Errorf("decoded link text differs from message:\nwant %q\ngot  %q", e.Message, decoded)
	}
}

func TestComposeNilSettingsFallsBack(t *testing.T) {
	e := Compose(enquiryItems(), nil)

	if !strings.HasPrefix(e.Message, "Hello AS PRODUCTION") {
		t.Errorf("expected default template, got %q", e.Message)
	}
	if !strings.HasPrefix(e.WhatsAppURL, "https://wa.me/"+DefaultWhatsAppNumber+"?text=") {
		t.Errorf("expected default number in deep link, got %q", e.WhatsAppURL)
	}
}

func TestComposeBlankSettingsFieldsFallBack(t *testing.T) {
	e := Compose(enquiryItems(), &Settings{WhatsAppNumber: "  ", PrefilledText: ""})

	if !strings.HasPrefix(e.Message, "Hello AS PRODUCTION") {
		t.Errorf("expected default template for blank text, got %q", e.Message)
	}
	if !strings.Contains(e.WhatsAppURL, DefaultWhatsAppNumber) {
		t.Errorf("expected default number for blank number, got %q", e.WhatsAppURL)
	}
}

func TestComposeAllPricesHidden(t *testing.T) {
	items := []LineItem{
		{ProductID: "p1", Name: "Gift Card", Price: decimal.NewFromInt(100), ShowPrice: false, Quantity: 2},
		{ProductID: "p2", Name: "Sample", Price: decimal.NewFromInt(50), ShowPrice: false, Quantity: 1},
	}
	e := Compose(items, &Settings{WhatsAppNumber: "1", PrefilledText: "T: {{total}} / {{items}}"})

	if !strings.Contains(e.Message, "T: N/A") {
		t.Errorf("expected N/A total, got %q", e.Message)
	}
	if strings.Contains(e.Message, "₹") {
		t.Errorf("no price should be rendered, got %q", e.Message)
	}
}

func TestComposeReplacesFirstOccurrenceOnly(t *testing.T) {
	e := Compose(enquiryItems(), &Settings{
		WhatsAppNumber: "1",
		PrefilledText:  "{{items}} again {{items}} and {{total}} again {{total}}",
	})

	if got := strings.Count(e.Message, "{{items}}"); got != 1 {
		t.Errorf("expected one literal {{items}} left, got %d in %q", got, e.Message)
	}
	if got := strings.Count(e.Message, "{{total}}"); got != 1 {
		t.Errorf("expected one literal {{total}} left, got %d in %q", got, e.Message)
	}
}

func TestComposeEmptyCart(t *testing.T) {
	e := Compose(nil, &Settings{WhatsAppNumber: "1", PrefilledText: "[{{items}}] {{total}}"})

	if !strings.HasPrefix(e.Message, "[] ") {
		t.Errorf("expected empty items block, got %q", e.Message)
	}
	if !strings.Contains(e.Message, "N/A") {
		t.Errorf("expected N/A total for empty cart, got %q", e.Message)
	}
}

func TestFormatINR(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "₹0.00"},
		{500, "₹500.00"},
		{1000, "₹1,000.00"},
		{1234.5, "₹1,234.50"},
		{100000, "₹1,00,000.00"},
		{12345678.9, "₹1,23,45,678.90"},
	}
	for _, tc := range cases {
		got := FormatINR(decimal.NewFromFloat(tc.amount))
		if got != tc.want {
			t.Errorf("FormatINR(%v) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}
