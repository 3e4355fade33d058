package cart

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
)

func TestStoreEnsureToken(t *testing.T) {
	s := NewStore()

	issued := s.EnsureToken("")
	if issued == "" {
		t.Fatal("expected a token to be issued")
	}
	if got := s.EnsureToken(issued); got != issued {
		t.Errorf("existing token should be kept, got %q", got)
	}
}

func TestStoreSessionsAreIsolated(t *testing.T) {
	s := NewStore()
	s.Add("session-a", shirt())
	s.Add("session-a", shirt())
	s.Add("session-b", giftCard())

	a := s.Snapshot("session-a")
	b := s.Snapshot("session-b")

	if a.Count != 2 || b.Count != 1 {
		t.Errorf("expected counts 2 and 1, got %d and %d", a.Count, b.Count)
	}
	if !a.Total.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("expected session-a total 1000, got %s", a.Total)
	}
}

func TestStoreUnknownTokenIsEmptyCart(t *testing.T) {
	s := NewStore()
	snap := s.Snapshot("never-seen")

	if len(snap.Items) != 0 || snap.Count != 0 || !snap.Total.IsZero() {
		t.Errorf("expected empty snapshot, got %+v", snap)
	}
}

func TestStoreClear(t *testing.T) {
	s := NewStore()
	s.Add("session-a", shirt())
	s.Clear("session-a")

	if snap := s.Snapshot("session-a"); snap.Count != 0 {
		t.Errorf("expected cleared cart, got count %d", snap.Count)
	}
}

func TestStoreConcurrentAdds(t *testing.T) {
	s := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Add("session-a", shirt())
		}()
	}
	wg.Wait()

	snap := s.Snapshot("session-a")
	if len(snap.Items) != 1 {
		t.Fatalf("expected a single merged line item, got %d", len(snap.Items))
	}
	if snap.Count != 50 {
		t.Errorf("expected count 50, got %d", snap.Count)
	}
}
