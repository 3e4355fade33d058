package cart

import (
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Snapshot is a read-only view of one session's cart along with its
// derived aggregates.
type Snapshot struct {
	Items []LineItem
	Count int
	Total decimal.Decimal
}

// Store keeps one Cart per storefront session token, entirely in process
// memory. Carts disappear on restart, matching the ephemeral semantics of
// the original client-side cart.
type Store struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewStore() *Store {
	return &Store{carts: map[string]*Cart{}}
}

// EnsureToken returns the given token, or issues a fresh one when it is
// empty. Unknown tokens are valid and simply name an empty cart.
func (s *Store) EnsureToken(token string) string {
	if token == "" {
		return uuid.NewString()
	}
	return token
}

func (s *Store) cart(token string) *Cart {
	c, ok := s.carts[token]
	if !ok {
		c = &Cart{}
		s.carts[token] = c
	}
	return c
}

// Add applies Cart.Add to the session's cart.
func (s *Store) Add(token string, p Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(token).Add(p)
}

// Remove applies Cart.Remove to the session's cart.
func (s *Store) Remove(token, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(token).Remove(productID)
}

// SetQuantity applies Cart.SetQuantity to the session's cart.
func (s *Store) SetQuantity(token, productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(token).SetQuantity(productID, quantity)
}

// Clear empties the session's cart and releases it.
func (s *Store) Clear(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, token)
}

// Snapshot returns the session's items and derived count/total.
func (s *Store) Snapshot(token string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[token]
	if !ok {
		return Snapshot{Items: []LineItem{}, Total: decimal.Zero}
	}
	return Snapshot{Items: c.Items(), Count: c.Count(), Total: c.Total()}
}
