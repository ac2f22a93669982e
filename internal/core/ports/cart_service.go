package ports

import "github.com/faveomobile/helpdesk-client/internal/core/domain"

// CartService is the in-memory demo shopping cart. Add is idempotent by
// product name: a second add of the same product is rejected.
type CartService interface {
	Add(line domain.CartLine) error
	Remove(productName string)
	Lines() []domain.CartLine
	Total() float64
	Count() int
}
