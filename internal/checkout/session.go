package checkout

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/blueshop/storefront/internal/domain"
)

// OrderPlacer dispatches a finalized order to the order collaborator.
type OrderPlacer interface {
	Place(ctx context.Context, order domain.OrderRequest) (*domain.OrderResult, error)
}

// CheckoutSession is the exclusive owner of one storefront session's cart,
// customer form state and last order result. All mutations go through its
// methods; it is safe for concurrent use, with at most one order submission
// outstanding at a time.
type CheckoutSession struct {
	orders OrderPlacer

	mu         sync.Mutex
	lines      []domain.CartLine
	customer   domain.CustomerInfo
	lastOrder  *domain.OrderResult
	submitting bool
}

func NewCheckoutSession(orders OrderPlacer) *CheckoutSession {
	return &CheckoutSession{orders: orders}
}

// AddItem merges the product into the cart. An existing line keeps its
// first-seen price, title and image; only the quantity grows. New products
// are appended, so the cart stays in add order.
//
// Stock is not checked here: the purchase affordance is disabled at the
// presentation boundary instead (domain.Product.Purchasable).
func (s *CheckoutSession) AddItem(p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ProductID == p.ID {
			s.lines[i].Quantity++
			return
		}
	}
	s.lines = append(s.lines, domain.CartLine{
		ProductID: p.ID,
		Title:     p.Title,
		Price:     p.Price,
		Image:     p.Image,
		Quantity:  1,
	})
}

// UpdateQuantity sets a line's quantity exactly. Zero or negative removes the
// line; an unknown product id is a no-op.
func (s *CheckoutSession) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(productID)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem removes the matching line if present, no-op otherwise.
func (s *CheckoutSession) RemoveItem(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, l := range s.lines {
		if l.ProductID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return
		}
	}
}

// Lines returns a copy of the cart in add order.
func (s *CheckoutSession) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// Totals recomputes the derived totals from the current cart contents.
func (s *CheckoutSession) Totals() domain.Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ComputeTotals(s.lines)
}

func (s *CheckoutSession) SetCustomer(c domain.CustomerInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customer = c
}

func (s *CheckoutSession) Customer() domain.CustomerInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.customer
}

// LastOrder returns the most recent successfully placed order, or nil.
func (s *CheckoutSession) LastOrder() *domain.OrderResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastOrder == nil {
		return nil
	}
	res := *s.lastOrder
	return &res
}

// Submitting reports whether an order submission is outstanding.
func (s *CheckoutSession) Submitting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitting
}

// PlaceOrder validates the session, snapshots an OrderRequest and dispatches
// it to the order collaborator. The result is stored and the cart cleared
// only after a confirmed success; any failure leaves cart, customer and last
// result untouched. A second call while a submission is outstanding is
// rejected with ErrSubmissionInFlight, never queued.
func (s *CheckoutSession) PlaceOrder(ctx context.Context) (*domain.OrderResult, error) {
	s.mu.Lock()
	if s.submitting {
		s.mu.Unlock()
		return nil, ErrSubmissionInFlight
	}
	if !s.customer.Complete() {
		s.mu.Unlock()
		return nil, ErrMissingCustomerDetails
	}
	if len(s.lines) == 0 {
		s.mu.Unlock()
		return nil, ErrEmptyCart
	}
	order := buildOrderRequest(s.customer, s.lines)
	s.submitting = true
	s.mu.Unlock()

	attemptID := uuid.NewString()
	log.Printf("placing order attempt=%s items=%d total=%.2f", attemptID, len(order.Items), order.Total)

	result, err := s.orders.Place(ctx, order)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false
	if err != nil {
		log.Printf("order attempt=%s failed: %v", attemptID, err)
		return nil, err
	}

	s.lines = nil
	s.lastOrder = result
	log.Printf("order attempt=%s placed id=%s total=%.2f", attemptID, result.ID, result.Total)

	out := *result
	return &out, nil
}

func buildOrderRequest(c domain.CustomerInfo, lines []domain.CartLine) domain.OrderRequest {
	totals := ComputeTotals(lines)
	items := make([]domain.OrderItem, len(lines))
	for i, l := range lines {
		items[i] = domain.OrderItem{
			ProductID: l.ProductID,
			Title:     l.Title,
			Price:     l.Price,
			Quantity:  l.Quantity,
			Image:     l.Image,
		}
	}
	return domain.OrderRequest{
		CustomerName:    c.Name,
		CustomerEmail:   c.Email,
		CustomerAddress: c.Address,
		Items:           items,
		Subtotal:        totals.Subtotal,
		Shipping:        totals.Shipping,
		Total:           totals.Total,
		Status:          domain.OrderStatusProcessing,
	}
}
