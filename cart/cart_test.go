package cart

import (
	"testing"

	"github.com/shopspring/decimal"
)

func shirt() Product {
	return Product{
		ID:        "p-shirt",
		Name:      "Shirt",
		Price:     decimal.NewFromInt(500),
		Category:  "Apparel",
		ImageURLs: []string{"https://example.com/shirt-front.jpg", "https://example.com/shirt-back.jpg"},
		ShowPrice: true,
	}
}

func giftCard() Product {
	return Product{
		ID:        "p-gift",
		Name:      "Gift Card",
		Price:     decimal.Zero,
		Category:  "Gifts",
		ShowPrice: false,
	}
}

func TestAddMergesByProductID(t *testing.T) {
	var c Cart
	for i := 0; i < 5; i++ {
		c.Add(shirt())
	}

	items := c.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 line item after repeated adds, got %d", len(items))
	}
	if items[0].Quantity != 5 {
		t.Errorf("expected quantity 5, got %d", items[0].Quantity)
	}
}

func TestAddUsesFirstImage(t *testing.T) {
	var c Cart
	c.Add(shirt())

	got := c.Items()[0].ImageURL
	if got != "https://example.com/shirt-front.jpg" {
		t.Errorf("expected first product image, got %q", got)
	}
}

func TestAddFallsBackToPlaceholderImage(t *testing.T) {
	var c Cart
	c.Add(giftCard())

	if got := c.Items()[0].ImageURL; got != PlaceholderImage {
		t.Errorf("expected placeholder image, got %q", got)
	}
}

func TestCountSumsAllQuantities(t *testing.T) {
	var c Cart
	c.Add(shirt())
	c.Add(shirt())
	c.Add(giftCard())

	if c.Count() != 3 {
		t.Errorf("expected count 3, got %d", c.Count())
	}

	c.SetQuantity("p-gift", 4)
	if c.Count() != 6 {
		t.Errorf("expected count 6 after update, got %d", c.Count())
	}

	c.Remove("p-shirt")
	if c.Count() != 4 {
		t.Errorf("expected count 4 after remove, got %d", c.Count())
	}
}

func TestTotalIgnoresHiddenPrices(t *testing.T) {
	var c Cart
	c.Add(shirt())
	c.Add(shirt())

	hidden := giftCard()
	hidden.Price = decimal.NewFromInt(250)
	c.Add(hidden)

	want := decimal.NewFromInt(1000)
	if !c.Total().Equal(want) {
		t.Errorf("expected total %s, got %s", want, c.Total())
	}
}

func TestSetQuantityDirect(t *testing.T) {
	var c Cart
	c.Add(shirt())
	c.SetQuantity("p-shirt", 7)

	if got := c.Items()[0].Quantity; got != 7 {
		t.Errorf("expected quantity set to 7, got %d", got)
	}
}

func TestSetQuantityZeroOrNegativeRemoves(t *testing.T) {
	for _, qty := range []int{0, -1} {
		var c Cart
		c.Add(shirt())
		c.SetQuantity("p-shirt", qty)

		if len(c.Items()) != 0 {
			t.Errorf("SetQuantity(%d) should remove the line item", qty)
		}
	}
}

func TestSetQuantityUnknownIDIsNoop(t *testing.T) {
	var c Cart
	c.Add(shirt())
	c.SetQuantity("p-missing", 3)

	items := c.Items()
	if len(items) != 1 || items[0].Quantity != 1 {
		t.Error("cart changed by SetQuantity on unknown id")
	}
}

func TestRemoveUnknownIDIsNoop(t *testing.T) {
	var c Cart
	c.Add(shirt())
	c.Add(giftCard())

	before := c.Items()
	c.Remove("p-missing")
	after := c.Items()

	if len(after) != len(before) {
		t.Fatalf("expected %d items, got %d", len(before), len(after))
	}
	for i := range before {
		if after[i].ProductID != before[i].ProductID || after[i].Quantity != before[i].Quantity {
			t.Errorf("item %d changed: %+v -> %+v", i, before[i], after[i])
		}
	}
}

func TestClear(t *testing.T) {
	var c Cart
	c.Add(shirt())
	c.Add(giftCard())
	c.Clear()

	if len(c.Items()) != 0 || c.Count() != 0 || !c.Total().IsZero() {
		t.Error("expected empty cart after Clear")
	}
}

func TestEmptyCart(t *testing.T) {
	var c Cart
	if c.Count() != 0 {
		t.Errorf("expected count 0, got %d", c.Count())
	}
	if !c.Total().IsZero() {
		t.Errorf("expected total 0, got %s", c.Total())
	}
	if len(c.Items()) != 0 {
		t.Errorf("expected no items, got %d", len(c.Items()))
	}
}
