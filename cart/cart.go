package cart

import (
	"github.com/shopspring/decimal"
)

// PlaceholderImage is used when a product reaches the cart without any
// uploaded image.
const PlaceholderImage = "https://placehold.co/600x600/EEE/31343C?text=Image+Not+Available"

// Product is the catalog record shape the cart consumes. The caller maps
// whatever it loaded from storage into this before adding.
type Product struct {
	ID        string
	Name      string
	Price     decimal.Decimal
	Category  string
	ImageURLs []string
	ShowPrice bool
}

// LineItem is one row of the cart: a single product plus its quantity.
// Only the first product image is kept for display.
type LineItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Category  string          `json:"category"`
	ImageURL  string          `json:"image_url"`
	ShowPrice bool            `json:"show_price"`
	Quantity  int             `json:"quantity"`
}

// LineTotal is price x quantity, regardless of ShowPrice.
func (li LineItem) LineTotal() decimal.Decimal {
	return li.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Cart holds the line items of one storefront session, in insertion order.
// At most one line item exists per product id. Cart itself is not safe for
// concurrent use; Store serializes access per session.
type Cart struct {
	items []LineItem
}

// Add merges the product into the cart: an existing line item gets its
// quantity incremented by one, otherwise a new line item with quantity 1
// is appended. Never fails.
func (c *Cart) Add(p Product) {
	for i := range c.items {
		if c.items[i].ProductID == p.ID {
			c.items[i].Quantity++
			return
		}
	}

	imageURL := PlaceholderImage
	if len(p.ImageURLs) > 0 && p.ImageURLs[0] != "" {
		imageURL = p.ImageURLs[0]
	}

	c.items = append(c.items, LineItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Category:  p.Category,
		ImageURL:  imageURL,
		ShowPrice: p.ShowPrice,
		Quantity:  1,
	})
}

// Remove deletes the line item with the given product id. Unknown ids are
// a no-op, not an error.
func (c *Cart) Remove(productID string) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// SetQuantity sets the line item's quantity directly. A quantity of zero
// or less removes the line item. Unknown ids are a no-op.
func (c *Cart) SetQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.items = nil
}

// Items returns a copy of the line items.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// Count is the badge value: the sum of all quantities, whether or not the
// item's price is shown.
func (c *Cart) Count() int {
	count := 0
	for _, li := range c.items {
		count += li.Quantity
	}
	return count
}

// Total sums price x quantity over the line items whose price is surfaced
// to the buyer. Hidden-price items appear in the listing but contribute
// nothing here.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, li := range c.items {
		if li.ShowPrice {
			total = total.Add(li.LineTotal())
		}
	}
	return total
}
