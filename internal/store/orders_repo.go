package store

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/fitplanner/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const OrderStatusPaid = "paid"

type Order struct {
	ID              string    `json:"id"`
	UserID          int       `json:"userId"`
	ProductIDs      []int     `json:"productIds"`
	TotalCents      int64     `json:"totalCents"`
	Total           float64   `json:"total"`
	ShippingName    string    `json:"shippingName"`
	ShippingEmail   string    `json:"shippingEmail"`
	ShippingAddress string    `json:"shippingAddress"`
	CardLast4       string    `json:"cardLast4"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

type OrdersRepo struct {
	db *pgxpool.Pool
}

func NewOrdersRepo(db *pgxpool.Pool) *OrdersRepo {
	return &OrdersRepo{
		db: db,
	}
}

func (r *OrdersRepo) Add(ctx context.Context, order *Order) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.orders.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", order.UserID), attribute.String("order.id", order.ID))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO store_order (id, user_id, product_ids, total_cents, shipping_name, shipping_email,
				shipping_address, card_last4, status, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		order.ID, order.UserID, order.ProductIDs, order.TotalCents, order.ShippingName, order.ShippingEmail,
		order.ShippingAddress, order.CardLast4, order.Status, order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

func (r *OrdersRepo) List(ctx context.Context, userID int) (_ []Order, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.orders.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id::text, user_id, product_ids, total_cents, shipping_name, shipping_email,
				shipping_address, card_last4, status, created_at
			FROM store_order WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	orders := []Order{}
	for rows.Next() {
		var o Order
		if err := rows.Scan(
			&o.ID, &o.UserID, &o.ProductIDs, &o.TotalCents, &o.ShippingName, &o.ShippingEmail,
			&o.ShippingAddress, &o.CardLast4, &o.Status, &o.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		o.Total = FormatCents(o.TotalCents)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}

	return orders, nil
}
