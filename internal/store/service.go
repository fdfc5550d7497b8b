package store

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/fitplanner/internal/telemetry/metrics"
	"github.com/2beens/fitplanner/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=store_test

type cartStore interface {
	Add(ctx context.Context, userID, productID int) error
	Remove(ctx context.Context, userID, productID int) error
	ProductIDs(ctx context.Context, userID int) ([]int, error)
	Clear(ctx context.Context, userID int) error
	RemoveItems(ctx context.Context, userID int, productIDs []int) error
}

type ordersStore interface {
	Add(ctx context.Context, order *Order) error
	List(ctx context.Context, userID int) ([]Order, error)
}

type Service struct {
	cart           cartStore
	orders         ordersStore
	metricsManager *metrics.Manager
	checkoutDelay  time.Duration

	Now        func() time.Time
	NewOrderID func() string
}

func NewService(
	cart cartStore,
	orders ordersStore,
	metricsManager *metrics.Manager,
	checkoutDelay time.Duration,
) *Service {
	return &Service{
		cart:           cart,
		orders:         orders,
		metricsManager: metricsManager,
		checkoutDelay:  checkoutDelay,
		Now:            time.Now,
		NewOrderID:     uuid.NewString,
	}
}

func (s *Service) Cart(ctx context.Context, userID int) (*Cart, error) {
	ids, err := s.cart.ProductIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}
	return NewCart(ids), nil
}

func (s *Service) AddToCart(ctx context.Context, userID, productID int) (*Cart, error) {
	if _, ok := ProductByID(productID); !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownProduct, productID)
	}
	if err := s.cart.Add(ctx, userID, productID); err != nil {
		return nil, fmt.Errorf("add to cart: %w", err)
	}
	return s.Cart(ctx, userID)
}

func (s *Service) RemoveFromCart(ctx context.Context, userID, productID int) (*Cart, error) {
	if err := s.cart.Remove(ctx, userID, productID); err != nil {
		return nil, fmt.Errorf("remove from cart: %w", err)
	}
	return s.Cart(ctx, userID)
}

func (s *Service) ClearCart(ctx context.Context, userID int) error {
	if err := s.cart.Clear(ctx, userID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

// Checkout validates the payment details, simulates processing and stores the order.
// Processing always succeeds once the request is valid.
func (s *Service) Checkout(ctx context.Context, userID int, req CheckoutRequest) (_ *Order, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "storeService.checkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
		result := "ok"
		if err != nil {
			result = "error"
		}
		if s.metricsManager != nil {
			s.metricsManager.CounterCheckouts.WithLabelValues(result).Inc()
		}
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	req.Normalize()
	if err := req.Validate(s.Now()); err != nil {
		return nil, err
	}

	ids, err := s.cart.ProductIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}
	total := TotalCents(ids)
	if len(ids) == 0 || total == 0 {
		return nil, ErrEmptyCart
	}

	if s.checkoutDelay > 0 {
		timer := time.NewTimer(s.checkoutDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	order := &Order{
		ID:              s.NewOrderID(),
		UserID:          userID,
		ProductIDs:      ids,
		TotalCents:      total,
		Total:           FormatCents(total),
		ShippingName:    req.Name,
		ShippingEmail:   req.Email,
		ShippingAddress: req.Address,
		CardLast4:       MaskCard(req.CardNumber),
		Status:          OrderStatusPaid,
		CreatedAt:       s.Now(),
	}
	if err := s.orders.Add(ctx, order); err != nil {
		return nil, fmt.Errorf("save order: %w", err)
	}
	span.SetAttributes(attribute.String("order.id", order.ID))

	// the order is placed at this point, a stale cart is only an annoyance.
	// items added while the payment was processing stay in the cart
	if err := s.cart.RemoveItems(ctx, userID, ids); err != nil {
		log.Errorf("checkout [%d]: remove ordered items after order %s: %s", userID, order.ID, err)
	}

	log.Debugf("order %s placed by user %d, total %d cents", order.ID, userID, total)
	return order, nil
}

func (s *Service) Orders(ctx context.Context, userID int) ([]Order, error) {
	return s.orders.List(ctx, userID)
}
