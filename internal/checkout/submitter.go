package checkout

import (
	"context"
	"fmt"
	"github.com/nikolayk812/foodorder-demo/internal/domain"
	"github.com/nikolayk812/foodorder-demo/internal/port"
	"go.uber.org/zap"
	"strings"
	"sync"
	"time"
)

type State int

const (
	StateIdle State = iota
	StateValidating
	StateSubmitting
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

func (s State) inFlight() bool {
	return s == StateValidating || s == StateSubmitting
}

// Submitter turns a cart into a stored order. One submission may be in
// flight at a time; State may be read from any goroutine.
type Submitter struct {
	repo       port.OrderRepository
	promoCodes PromoCodes
	discount   DiscountFunc
	logger     *zap.Logger
	now        func() time.Time

	mu    sync.Mutex
	state State
}

type Option func(*Submitter)

func WithDiscount(fn DiscountFunc) Option {
	return func(s *Submitter) {
		s.discount = fn
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *Submitter) {
		s.logger = logger
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Submitter) {
		s.now = now
	}
}

func NewSubmitter(repo port.OrderRepository, promoCodes PromoCodes, opts ...Option) *Submitter {
	s := &Submitter{
		repo:       repo,
		promoCodes: promoCodes,
		discount:   NoDiscount,
		logger:     zap.NewNop(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Submitter) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Acknowledge returns a finished submission to idle. It has no effect while
// a submission is in flight.
func (s *Submitter) Acknowledge() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.state.inFlight() {
		s.state = StateIdle
	}
}

// CheckPromo reports ErrInvalidPromoCode for codes outside the allow-list.
func (s *Submitter) CheckPromo(code string) error {
	if !ValidatePromoCode(code, s.promoCodes) {
		return ErrInvalidPromoCode
	}
	return nil
}

// Submit validates the checkout, snapshots the cart and stores a pending
// order. An invalid promo code is dropped rather than failing the order.
// The cart is never modified; see SubmitAndClear.
func (s *Submitter) Submit(ctx context.Context, cart *domain.Cart, userID, promoCode string) (domain.Order, error) {
	if err := s.begin(); err != nil {
		return domain.Order{}, err
	}
	// A panic below must not leave the submitter in flight.
	defer s.settle()

	order, err := s.submit(ctx, cart, userID, promoCode)
	if err != nil {
		s.setState(StateFailed)
		s.logger.Warn("order submission failed",
			zap.String("user_id", userID),
			zap.Error(err))
		return domain.Order{}, err
	}

	s.setState(StateSucceeded)
	s.logger.Info("order placed",
		zap.String("order_id", order.OrderID),
		zap.String("user_id", order.UserID),
		zap.Int("lines", len(order.Lines)),
		zap.Stringer("total", order.Total),
		zap.String("promo_code", order.PromoCode))

	return order, nil
}

// SubmitAndClear empties the cart after a successful submission.
func (s *Submitter) SubmitAndClear(ctx context.Context, cart *domain.Cart, userID, promoCode string) (domain.Order, error) {
	order, err := s.Submit(ctx, cart, userID, promoCode)
	if err != nil {
		return domain.Order{}, err
	}
	cart.Clear()
	return order, nil
}

// History lists the user's previous orders, newest first.
func (s *Submitter) History(ctx context.Context, userID string) ([]domain.Order, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}

	orders, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("repo.ListByUser: %w", err)
	}
	return orders, nil
}

func (s *Submitter) submit(ctx context.Context, cart *domain.Cart, userID, promoCode string) (domain.Order, error) {
	if userID == "" {
		return domain.Order{}, ErrNotAuthenticated
	}
	if cart == nil || cart.Len() == 0 {
		return domain.Order{}, ErrEmptyCart
	}

	// Everything below reads this snapshot, never the live cart.
	snap := cart.Snapshot()

	code := strings.TrimSpace(promoCode)
	if code != "" && !s.promoCodes.Contains(code) {
		s.logger.Info("promo code not applied", zap.String("promo_code", code), zap.Error(ErrInvalidPromoCode))
		code = ""
	}

	subtotal, tax, total := snap.Subtotal, snap.Tax, snap.Total
	if code != "" {
		subtotal = s.discount(code, snap.Subtotal)
		tax = subtotal.Mul(snap.TaxRate)
		total = subtotal.Add(tax)
	}

	orderID, err := s.repo.NextID(ctx)
	if err != nil {
		return domain.Order{}, &PersistenceError{Op: "next id", Err: err}
	}

	order := domain.Order{
		OrderID:   orderID,
		UserID:    userID,
		Lines:     domain.LinesFromItems(snap.Items),
		Subtotal:  subtotal,
		Tax:       tax,
		Total:     total,
		PromoCode: code,
		CreatedAt: s.now().UTC(),
		Status:    domain.OrderStatusPending,
	}

	s.setState(StateSubmitting)

	if err := s.repo.Store(ctx, order); err != nil {
		return domain.Order{}, &PersistenceError{Op: "store", Err: err}
	}

	return order, nil
}

// begin moves to Validating. A finished, unacknowledged submission is
// acknowledged implicitly.
func (s *Submitter) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.inFlight() {
		return ErrSubmissionInProgress
	}
	s.state = StateValidating
	return nil
}

// settle marks a submission that is still in flight as failed.
func (s *Submitter) settle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.inFlight() {
		s.state = StateFailed
	}
}

func (s *Submitter) setState(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}
