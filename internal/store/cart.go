package store

import (
	"context"
	"fmt"
	"strconv"

	"github.com/2beens/fitplanner/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const cartKeyPrefix = "cart::"

type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

type Cart struct {
	ProductIDs []int      `json:"productIds"`
	Items      []CartItem `json:"items"`
	TotalCents int64      `json:"totalCents"`
	Total      float64    `json:"total"`
}

// NewCart groups ids into items in first-seen order.
func NewCart(ids []int) *Cart {
	cart := &Cart{
		ProductIDs: ids,
		Items:      []CartItem{},
		TotalCents: TotalCents(ids),
	}
	if cart.ProductIDs == nil {
		cart.ProductIDs = []int{}
	}
	cart.Total = FormatCents(cart.TotalCents)

	index := map[int]int{}
	for _, id := range ids {
		p, ok := ProductByID(id)
		if !ok {
			continue
		}
		if i, seen := index[id]; seen {
			cart.Items[i].Quantity++
			continue
		}
		index[id] = len(cart.Items)
		cart.Items = append(cart.Items, CartItem{Product: p, Quantity: 1})
	}
	return cart
}

// CartStore keeps each user's cart as a redis list of product ids.
type CartStore struct {
	redisClient *redis.Client
}

func NewCartStore(redisClient *redis.Client) *CartStore {
	return &CartStore{
		redisClient: redisClient,
	}
}

func cartKey(userID int) string {
	return fmt.Sprintf("%s%d", cartKeyPrefix, userID)
}

func (s *CartStore) Add(ctx context.Context, userID, productID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redis.cart.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.Int("product.id", productID))

	return s.redisClient.RPush(ctx, cartKey(userID), strconv.Itoa(productID)).Err()
}

// Remove drops the first occurrence of productID. Removing a missing id is a no-op.
func (s *CartStore) Remove(ctx context.Context, userID, productID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redis.cart.remove")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.Int("product.id", productID))

	return s.redisClient.LRem(ctx, cartKey(userID), 1, strconv.Itoa(productID)).Err()
}

func (s *CartStore) ProductIDs(ctx context.Context, userID int) (_ []int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redis.cart.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	raw, err := s.redisClient.LRange(ctx, cartKey(userID), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(raw))
	for _, r := range raw {
		id, err := strconv.Atoi(r)
		if err != nil {
			log.Warnf("cart [%d]: skipping bad product id [%s]", userID, r)
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *CartStore) Clear(ctx context.Context, userID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redis.cart.clear")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	return s.redisClient.Del(ctx, cartKey(userID)).Err()
}

// RemoveItems drops one occurrence of each id, leaving anything added meanwhile in the cart.
func (s *CartStore) RemoveItems(ctx context.Context, userID int, productIDs []int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redis.cart.removeItems")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.Int("items", len(productIDs)))

	if len(productIDs) == 0 {
		return nil
	}

	key := cartKey(userID)
	_, err = s.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, id := range productIDs {
			pipe.LRem(ctx, key, 1, strconv.Itoa(id))
		}
		return nil
	})
	return err
}
