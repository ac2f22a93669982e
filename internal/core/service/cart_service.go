package service

import (
	"sync"

	"github.com/faveomobile/helpdesk-client/internal/core/domain"
)

// CartService is the in-memory demo shopping cart. Nothing survives the
// process. Add is idempotent by product name — the store itself rejects a
// duplicate rather than relying on the UI to hide the button.
type CartService struct {
	mu    sync.Mutex
	lines []domain.CartLine
}

func NewCartService() *CartService {
	return &CartService{}
}

// Add inserts a line unless one with the same product name already exists.
func (s *CartService) Add(line domain.CartLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.lines {
		if l.ProductName == line.ProductName {
			return domain.ErrDuplicateProduct
		}
	}
	s.lines = append(s.lines, line)
	return nil
}

// Remove filters out the line with the given product name. Removing an
// absent product is a no-op.
func (s *CartService) Remove(productName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.lines[:0]
	for _, l := range s.lines {
		if l.ProductName != productName {
			kept = append(kept, l)
		}
	}
	s.lines = kept
}

// Lines returns a copy of the current cart contents in insertion order.
func (s *CartService) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// Total sums the price over all lines.
func (s *CartService) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	for _, l := range s.lines {
		total += l.Price
	}
	return total
}

// Count returns the number of lines, used for the cart badge.
func (s *CartService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}
