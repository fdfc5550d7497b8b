package store

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/fitplanner/internal/auth"
	"github.com/2beens/fitplanner/internal/telemetry/tracing"
	"github.com/2beens/fitplanner/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=store_test

type storeService interface {
	Cart(ctx context.Context, userID int) (*Cart, error)
	AddToCart(ctx context.Context, userID, productID int) (*Cart, error)
	RemoveFromCart(ctx context.Context, userID, productID int) (*Cart, error)
	ClearCart(ctx context.Context, userID int) error
	Checkout(ctx context.Context, userID int, req CheckoutRequest) (*Order, error)
	Orders(ctx context.Context, userID int) ([]Order, error)
}

type AddItemRequest struct {
	ProductID int `json:"productId"`
}

type Handler struct {
	service storeService
}

func NewHandler(service storeService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) HandleProducts(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSON(w, Catalog, http.StatusOK)
}

func (h *Handler) HandleProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}
	product, ok := ProductByID(id)
	if !ok {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}
	pkg.WriteJSON(w, product, http.StatusOK)
}

func (h *Handler) HandleGetCart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.store.cart.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	cart, err := h.service.Cart(ctx, userID)
	if err != nil {
		log.Errorf("get cart [%d]: %s", userID, err)
		http.Error(w, "get cart failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSON(w, cart, http.StatusOK)
}

func (h *Handler) HandleAddItem(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.store.cart.add")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	cart, err := h.service.AddToCart(ctx, userID, req.ProductID)
	if err != nil {
		if errors.Is(err, ErrUnknownProduct) {
			http.Error(w, "unknown product", http.StatusBadRequest)
			return
		}
		log.Errorf("add to cart [%d]: %s", userID, err)
		http.Error(w, "add to cart failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSON(w, cart, http.StatusOK)
}

func (h *Handler) HandleRemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.store.cart.remove")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	productID, err := strconv.Atoi(mux.Vars(r)["productId"])
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	cart, err := h.service.RemoveFromCart(ctx, userID, productID)
	if err != nil {
		log.Errorf("remove from cart [%d]: %s", userID, err)
		http.Error(w, "remove from cart failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSON(w, cart, http.StatusOK)
}

func (h *Handler) HandleClearCart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.store.cart.clear")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.service.ClearCart(ctx, userID); err != nil {
		log.Errorf("clear cart [%d]: %s", userID, err)
		http.Error(w, "clear cart failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteTextResponseOK(w, "cleared")
}

func (h *Handler) HandleCheckout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.store.checkout")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	order, err := h.service.Checkout(ctx, userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCheckout):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrEmptyCart):
			http.Error(w, "cart is empty", http.StatusBadRequest)
		case errors.Is(err, context.Canceled):
			log.Debugf("checkout [%d] canceled", userID)
			http.Error(w, "checkout canceled", http.StatusRequestTimeout)
		default:
			log.Errorf("checkout [%d]: %s", userID, err)
			http.Error(w, "checkout failed", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteJSON(w, order, http.StatusCreated)
}

func (h *Handler) HandleOrders(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.store.orders")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	orders, err := h.service.Orders(ctx, userID)
	if err != nil {
		log.Errorf("list orders [%d]: %s", userID, err)
		http.Error(w, "list orders failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSON(w, orders, http.StatusOK)
}
