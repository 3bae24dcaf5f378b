package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/checkout/internal/entity"
	"github.com/samandr77/microservices/checkout/internal/navigation"
	"github.com/samandr77/microservices/checkout/internal/service"
	"github.com/samandr77/microservices/checkout/internal/surface"
)

// @title Checkout API
// @version 1.0
// @description Checkout and payment confirmation for the antique storefront
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/handler.go -package=mocks -typed

type Service interface {
	Checkout(ctx context.Context, req entity.CheckoutRequest) (service.CheckoutResult, error)
	RetryPayment(ctx context.Context, order entity.OrderRef, method entity.PaymentMethod) (entity.PaymentSession, error)
	CancelRun(ctx context.Context, orderID string) error
	Snapshot(ctx context.Context, orderID string) (service.Snapshot, error)
	SurfaceClosed(ctx context.Context, orderID string) error
	Flash(ctx context.Context, orderID string) (navigation.Flash, error)
	Cart(ctx context.Context) ([]entity.CartItem, error)
	AddToCart(ctx context.Context, productID int64, quantity int) (entity.CartItem, error)
	RemoveFromCart(ctx context.Context, itemID uuid.UUID) error
}

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{
		s: s,
	}
}

type CheckoutRequest struct {
	Shipping      entity.ShippingAddress `json:"shipping"`
	Notes         string                 `json:"notes"`
	PaymentMethod string                 `json:"paymentMethod"`
}

type OrderResponse struct {
	ID          string `json:"id"`
	Number      string `json:"number"`
	TotalAmount string `json:"totalAmount"`
}

type SessionResponse struct {
	OrderID        string           `json:"orderId"`
	Method         string           `json:"method"`
	Kind           string           `json:"kind"`
	RedirectURL    string           `json:"redirectUrl,omitempty"`
	QRImageURL     string           `json:"qrImageUrl,omitempty"`
	Bank           *entity.BankInfo `json:"bank,omitempty"`
	PaymentMessage string           `json:"paymentMessage,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
	ExpiresAt      time.Time        `json:"expiresAt"`
}

type CheckoutResponse struct {
	Order        OrderResponse    `json:"order"`
	Session      *SessionResponse `json:"session,omitempty"`
	SessionError string           `json:"sessionError,omitempty"`
}

// Checkout places an order from the cart
// @Summary Checkout
// @Description Places an order from the user's cart. Online methods also get a payment session whose status is polled in background.
// @Tags checkout
// @Accept json
// @Produce json
// @Param CheckoutRequest body CheckoutRequest true "Checkout request"
// @Success 201 {object} CheckoutResponse
// @Failure 400 {object} ErrorResponse "Invalid JSON"
// @Failure 401 {object} ErrorResponse "Not logged in"
// @Failure 422 {object} ErrorResponse "Empty cart or invalid shipping data"
// @Failure 502 {object} ErrorResponse "Order could not be created"
// @Failure 500 {object} ErrorResponse "Checkout failed"
// @Router /checkout [post]
// @Security BearerAuth
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CheckoutRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	res, err := h.s.Checkout(ctx, entity.CheckoutRequest{
		Shipping: req.Shipping,
		Notes:    req.Notes,
		Method:   entity.PaymentMethod(req.PaymentMethod),
	})
	if err != nil {
		sendServiceErr(w, r, err, "Checkout failed")
		return
	}

	resp := CheckoutResponse{
		Order: OrderResponse{
			ID:          res.Order.ID,
			Number:      res.Order.Number,
			TotalAmount: res.Order.TotalAmount.String(),
		},
	}

	if res.Session != nil {
		s := toSessionResponse(*res.Session)
		resp.Session = &s
	}

	if res.SessionErr != nil {
		resp.SessionError = serverMessage(res.SessionErr, entity.ErrSessionCreationFailed)
	}

	SendJSON(ctx, w, http.StatusCreated, resp)
}

type SnapshotResponse struct {
	OrderID     string        `json:"orderId"`
	OrderNumber string        `json:"orderNumber,omitempty"`
	Method      string        `json:"method"`
	Surface     string        `json:"surface"`
	Status      string        `json:"status"`
	State       string        `json:"state"`
	Attempts    int           `json:"attempts"`
	MaxAttempts int           `json:"maxAttempts"`
	StartedAt   time.Time     `json:"startedAt"`
	View        *surface.View `json:"view,omitempty"`
}

// Snapshot returns payment progress
// @Summary Payment progress
// @Description Returns the payment surface and status poll state of the order
// @Tags checkout
// @Produce json
// @Param orderID path string true "Order ID"
// @Success 200 {object} SnapshotResponse
// @Failure 401 {object} ErrorResponse "Not logged in"
// @Failure 404 {object} ErrorResponse "No payment for the order"
// @Router /checkout/{orderID} [get]
// @Security BearerAuth
func (h *Handler) Snapshot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	snap, err := h.s.Snapshot(ctx, chi.URLParam(r, "orderID"))
	if err != nil {
		sendServiceErr(w, r, err, "Failed to get payment progress")
		return
	}

	SendJSON(ctx, w, http.StatusOK, SnapshotResponse{
		OrderID:     snap.Order.ID,
		OrderNumber: snap.Order.Number,
		Method:      snap.Method.String(),
		Surface:     string(snap.Surface),
		Status:      snap.Status.String(),
		State:       snap.State,
		Attempts:    snap.Attempts,
		MaxAttempts: snap.MaxAttempts,
		StartedAt:   snap.StartedAt,
		View:        snap.View,
	})
}

// CancelRun stops the payment status poll
// @Summary Stop payment poll
// @Description Stops polling the payment status, e.g. when the user leaves the payment page
// @Tags checkout
// @Param orderID path string true "Order ID"
// @Success 204
// @Failure 401 {object} ErrorResponse "Not logged in"
// @Failure 404 {object} ErrorResponse "No payment for the order"
// @Router /checkout/{orderID} [delete]
// @Security BearerAuth
func (h *Handler) CancelRun(w http.ResponseWriter, r *http.Request) {
	err := h.s.CancelRun(r.Context(), chi.URLParam(r, "orderID"))
	if err != nil {
		sendServiceErr(w, r, err, "Failed to stop payment")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SurfaceClosed records that the user closed the payment window
// @Summary Payment window closed
// @Tags checkout
// @Param orderID path string true "Order ID"
// @Success 204
// @Failure 401 {object} ErrorResponse "Not logged in"
// @Failure 404 {object} ErrorResponse "No payment window for the order"
// @Router /checkout/{orderID}/surface/closed [post]
// @Security BearerAuth
func (h *Handler) SurfaceClosed(w http.ResponseWriter, r *http.Request) {
	err := h.s.SurfaceClosed(r.Context(), chi.URLParam(r, "orderID"))
	if err != nil {
		sendServiceErr(w, r, err, "Failed to close payment window")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type RetryPaymentRequest struct {
	PaymentMethod string `json:"paymentMethod"`
	OrderNumber   string `json:"orderNumber"`
}

// RetryPayment creates a new payment session for a placed order
// @Summary Retry payment
// @Description Creates a new payment session for the order. A running payment of the order is stopped.
// @Tags orders
// @Accept json
// @Produce json
// @Param orderID path string true "Order ID"
// @Param RetryPaymentRequest body RetryPaymentRequest false "Payment method, defaults to the one used before"
// @Success 201 {object} SessionResponse
// @Failure 401 {object} ErrorResponse "Not logged in"
// @Failure 409 {object} ErrorResponse "Payment already in progress"
// @Failure 422 {object} ErrorResponse "Invalid payment method or order already paid"
// @Failure 502 {object} ErrorResponse "Payment link could not be generated"
// @Router /orders/{orderID}/payment [post]
// @Security BearerAuth
func (h *Handler) RetryPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RetryPaymentRequest

	if r.ContentLength != 0 {
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
			return
		}
	}

	order := entity.OrderRef{
		ID:     chi.URLParam(r, "orderID"),
		Number: req.OrderNumber,
	}

	session, err := h.s.RetryPayment(ctx, order, entity.PaymentMethod(req.PaymentMethod))
	if err != nil {
		sendServiceErr(w, r, err, "Failed to retry payment")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, toSessionResponse(session))
}

// Flash returns the one-shot message for the order page
// @Summary Order page message
// @Description Returns the message left by checkout or payment once; later calls get 204
// @Tags orders
// @Produce json
// @Param orderID path string true "Order ID"
// @Success 200 {object} navigation.Flash
// @Success 204
// @Failure 401 {object} ErrorResponse "Not logged in"
// @Router /orders/{orderID}/flash [get]
// @Security BearerAuth
func (h *Handler) Flash(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	f, err := h.s.Flash(ctx, chi.URLParam(r, "orderID"))
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		sendServiceErr(w, r, err, "Failed to get order message")

		return
	}

	SendJSON(ctx, w, http.StatusOK, f)
}

type CartItemResponse struct {
	ID        uuid.UUID `json:"id"`
	ProductID int64     `json:"productId"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
}

type CartResponse struct {
	Items []CartItemResponse `json:"items"`
}

// Cart returns the user's cart
// @Summary Cart
// @Tags cart
// @Produce json
// @Success 200 {object} CartResponse
// @Failure 401 {object} ErrorResponse "Not logged in"
// @Failure 500 {object} ErrorResponse "Failed to get cart"
// @Router /cart [get]
// @Security BearerAuth
func (h *Handler) Cart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	items, err := h.s.Cart(ctx)
	if err != nil {
		sendServiceErr(w, r, err, "Failed to get cart")
		return
	}

	resp := CartResponse{Items: make([]CartItemResponse, 0, len(items))}
	for _, v := range items {
		resp.Items = append(resp.Items, toCartItemResponse(v))
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

type AddCartItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// AddCartItem puts a product into the cart
// @Summary Add to cart
// @Tags cart
// @Accept json
// @Produce json
// @Param AddCartItemRequest body AddCartItemRequest true "Product and quantity"
// @Success 201 {object} CartItemResponse
// @Failure 400 {object} ErrorResponse "Invalid JSON"
// @Failure 401 {object} ErrorResponse "Not logged in"
// @Failure 422 {object} ErrorResponse "Invalid product or quantity"
// @Router /cart/items [post]
// @Security BearerAuth
func (h *Handler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req AddCartItemRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	item, err := h.s.AddToCart(ctx, req.ProductID, req.Quantity)
	if err != nil {
		sendServiceErr(w, r, err, "Failed to add to cart")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, toCartItemResponse(item))
}

// RemoveCartItem removes a line from the cart
// @Summary Remove from cart
// @Tags cart
// @Param id path string true "Cart item ID"
// @Success 204
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 401 {object} ErrorResponse "Not logged in"
// @Failure 404 {object} ErrorResponse "Item not found"
// @Router /cart/items/{id} [delete]
// @Security BearerAuth
func (h *Handler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, fmt.Errorf("parse cart item id: %w", err), "Invalid ID")
		return
	}

	err = h.s.RemoveFromCart(ctx, id)
	if err != nil {
		sendServiceErr(w, r, err, "Failed to remove from cart")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HealthHandler - returns service health status.
// @Summary Health check
// @Description Health check
// @Tags health
// @Accept text/plain
// @Produce text/plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("OK\n"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Service is unavailable")
		return
	}
}

func toSessionResponse(s entity.PaymentSession) SessionResponse {
	resp := SessionResponse{
		OrderID:        s.OrderID,
		Method:         s.Method.String(),
		Kind:           string(s.Kind()),
		RedirectURL:    s.RedirectURL,
		QRImageURL:     s.QRImageURL,
		PaymentMessage: s.PaymentMessage,
		CreatedAt:      s.CreatedAt,
		ExpiresAt:      s.ExpiresAt,
	}

	if s.Bank != (entity.BankInfo{}) {
		bank := s.Bank
		resp.Bank = &bank
	}

	return resp
}

func toCartItemResponse(v entity.CartItem) CartItemResponse {
	return CartItemResponse{
		ID:        v.ID,
		ProductID: v.ProductID,
		Quantity:  v.Quantity,
		CreatedAt: v.CreatedAt,
	}
}
