package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/checkout/internal/api"
	"github.com/samandr77/microservices/checkout/internal/entity"
	"github.com/samandr77/microservices/checkout/internal/mocks"
	"github.com/samandr77/microservices/checkout/internal/navigation"
	"github.com/samandr77/microservices/checkout/internal/service"
	"github.com/samandr77/microservices/checkout/internal/surface"
)

type Tester struct {
	url         string
	authMock    *mocks.MockAuthService
	serviceMock *mocks.MockService
	user        entity.User
}

func NewTester(t *testing.T) Tester {
	t.Helper()

	ctrl := gomock.NewController(t)
	authMock := mocks.NewMockAuthService(ctrl)
	serviceMock := mocks.NewMockService(ctrl)

	router := api.NewRouter(api.NewHandler(serviceMock), api.NewMiddleware(authMock))

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return Tester{
		url:         server.URL,
		authMock:    authMock,
		serviceMock: serviceMock,
		user: entity.User{
			ID:        uuid.Must(uuid.NewV4()),
			FirstName: "Lan",
			Email:     "lan@example.com",
			Role:      entity.RoleCustomer,
		},
	}
}

func (c Tester) do(t *testing.T, method, path string, body any, token string) (*http.Response, []byte) {
	t.Helper()

	var r io.Reader

	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)

		r = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, c.url+path, r)
	require.NoError(t, err)

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, respBody
}

func (c Tester) login() {
	c.authMock.EXPECT().User(gomock.Any(), "dev").Return(c.user, nil)
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()

	c := NewTester(t)

	resp, body := c.do(t, http.MethodGet, "/api/health", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "OK\n", string(body))
}

func TestHandler_Checkout_NotLoggedIn(t *testing.T) {
	t.Parallel()

	c := NewTester(t)

	resp, body := c.do(t, http.MethodPost, "/api/checkout", api.CheckoutRequest{PaymentMethod: "cod"}, "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var got api.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &got))
	require.Equal(t, "/login?returnTo=%2Fcheckout", got.Redirect)
}

func TestHandler_NotLoggedIn_EscapesReturnTo(t *testing.T) {
	t.Parallel()

	c := NewTester(t)

	resp, body := c.do(t, http.MethodGet, "/api/orders/a&next=evil/flash", nil, "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var got api.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &got))
	require.Equal(t, "/login?returnTo=%2Forders%2Fa%26next%3Devil%2Fflash", got.Redirect)
}

func TestHandler_Checkout_InvalidToken(t *testing.T) {
	t.Parallel()

	c := NewTester(t)

	c.authMock.EXPECT().User(gomock.Any(), "expired").Return(entity.User{}, entity.ErrForbidden)

	resp, body := c.do(t, http.MethodPost, "/api/checkout", api.CheckoutRequest{PaymentMethod: "cod"}, "expired")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var got api.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &got))
	require.Equal(t, "/login?returnTo=%2Fcheckout", got.Redirect)
}

func TestHandler_Checkout(t *testing.T) {
	t.Parallel()

	c := NewTester(t)
	c.login()

	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	c.serviceMock.EXPECT().Checkout(gomock.Any(), entity.CheckoutRequest{
		Shipping: entity.ShippingAddress{FullName: "Lan", Address: "5 Hang Gai", City: "Hanoi"},
		Method:   entity.PaymentMethodMomo,
	}).Return(service.CheckoutResult{
		Order: entity.Order{ID: "31", Number: "ORD-31", TotalAmount: decimal.RequireFromString("1250000")},
		Session: &entity.PaymentSession{
			OrderID:        "31",
			Method:         entity.PaymentMethodMomo,
			QRImageURL:     "https://img.vietqr.io/image/31.png",
			Bank:           entity.BankInfo{BankName: "MB", AccountName: "ANTIQUE SHOP", AccountNumber: "0123456789"},
			PaymentMessage: "DH31",
			CreatedAt:      created,
			ExpiresAt:      created.Add(30 * time.Minute),
		},
	}, nil)

	resp, body := c.do(t, http.MethodPost, "/api/checkout", api.CheckoutRequest{
		Shipping:      entity.ShippingAddress{FullName: "Lan", Address: "5 Hang Gai", City: "Hanoi"},
		PaymentMethod: "momo",
	}, "dev")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var got api.CheckoutResponse
	require.NoError(t, json.Unmarshal(body, &got))

	want := api.CheckoutResponse{
		Order: api.OrderResponse{ID: "31", Number: "ORD-31", TotalAmount: "1250000"},
		Session: &api.SessionResponse{
			OrderID:        "31",
			Method:         "momo",
			Kind:           "qr",
			QRImageURL:     "https://img.vietqr.io/image/31.png",
			Bank:           &entity.BankInfo{BankName: "MB", AccountName: "ANTIQUE SHOP", AccountNumber: "0123456789"},
			PaymentMessage: "DH31",
			CreatedAt:      created,
			ExpiresAt:      created.Add(30 * time.Minute),
		},
	}
	require.Equal(t, want, got)
}

func TestHandler_Checkout_SessionError(t *testing.T) {
	t.Parallel()

	c := NewTester(t)
	c.login()

	c.serviceMock.EXPECT().Checkout(gomock.Any(), gomock.Any()).Return(service.CheckoutResult{
		Order:      entity.Order{ID: "32", Number: "ORD-32"},
		SessionErr: fmt.Errorf("%w: %s", entity.ErrSessionCreationFailed, "VNPay is under maintenance"),
	}, nil)

	resp, body := c.do(t, http.MethodPost, "/api/checkout", api.CheckoutRequest{PaymentMethod: "vnpay"}, "dev")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var got api.CheckoutResponse
	require.NoError(t, json.Unmarshal(body, &got))
	require.Nil(t, got.Session)
	require.Equal(t, "VNPay is under maintenance", got.SessionError)
}

func TestHandler_Checkout_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "empty cart",
			err:     entity.ErrEmptyCart,
			code:    http.StatusUnprocessableEntity,
			message: "Your cart is empty",
		},
		{
			name:    "invalid shipping",
			err:     fmt.Errorf("%w: shipping address is required", entity.ErrInvalidArgument),
			code:    http.StatusUnprocessableEntity,
			message: "Invalid request",
		},
		{
			name:    "order rejected",
			err:     fmt.Errorf("%w: %s", entity.ErrOrderCreationFailed, "Product 7 is out of stock"),
			code:    http.StatusBadGateway,
			message: "Product 7 is out of stock",
		},
		{
			name:    "backend session expired",
			err:     fmt.Errorf("create order: %w", entity.ErrUnauthenticated),
			code:    http.StatusUnauthorized,
			message: "Please log in to continue",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := NewTester(t)
			c.login()

			c.serviceMock.EXPECT().Checkout(gomock.Any(), gomock.Any()).Return(service.CheckoutResult{}, tt.err)

			resp, body := c.do(t, http.MethodPost, "/api/checkout", api.CheckoutRequest{PaymentMethod: "cod"}, "dev")
			require.Equal(t, tt.code, resp.StatusCode)

			var got api.ErrorResponse
			require.NoError(t, json.Unmarshal(body, &got))
			require.Equal(t, tt.message, got.Message)
		})
	}
}

func TestHandler_Snapshot(t *testing.T) {
	t.Parallel()

	c := NewTester(t)
	c.login()

	started := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	c.serviceMock.EXPECT().Snapshot(gomock.Any(), "31").Return(service.Snapshot{
		Order:       entity.OrderRef{ID: "31", Number: "ORD-31"},
		Method:      entity.PaymentMethodVNPay,
		Surface:     entity.SurfaceRedirect,
		Status:      entity.PaymentStatusProcessing,
		MaxAttempts: 120,
		State:       "polling",
		StartedAt:   started,
		View:        &surface.View{OrderID: "31", Kind: entity.SurfaceRedirect, RedirectURL: "https://pay.example/31"},
	}, nil)

	resp, body := c.do(t, http.MethodGet, "/api/checkout/31", nil, "dev")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got api.SnapshotResponse
	require.NoError(t, json.Unmarshal(body, &got))
	require.Equal(t, "processing", got.Status)
	require.Equal(t, "polling", got.State)
	require.Equal(t, 120, got.MaxAttempts)
	require.Equal(t, "https://pay.example/31", got.View.RedirectURL)
}

func TestHandler_Snapshot_NotFound(t *testing.T) {
	t.Parallel()

	c := NewTester(t)
	c.login()

	c.serviceMock.EXPECT().Snapshot(gomock.Any(), "99").Return(service.Snapshot{}, entity.ErrNotFound)

	resp, _ := c.do(t, http.MethodGet, "/api/checkout/99", nil, "dev")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandler_CancelRunAndSurfaceClosed(t *testing.T) {
	t.Parallel()

	c := NewTester(t)
	c.authMock.EXPECT().User(gomock.Any(), "dev").Return(c.user, nil).Times(2)

	c.serviceMock.EXPECT().SurfaceClosed(gomock.Any(), "31").Return(nil)
	c.serviceMock.EXPECT().CancelRun(gomock.Any(), "31").Return(nil)

	resp, _ := c.do(t, http.MethodPost, "/api/checkout/31/surface/closed", nil, "dev")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = c.do(t, http.MethodDelete, "/api/checkout/31", nil, "dev")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestHandler_RetryPayment(t *testing.T) {
	t.Parallel()

	c := NewTester(t)
	c.authMock.EXPECT().User(gomock.Any(), "dev").Return(c.user, nil).Times(2)

	c.serviceMock.EXPECT().RetryPayment(gomock.Any(), entity.OrderRef{ID: "31", Number: "ORD-31"}, entity.PaymentMethodVNPay).
		Return(entity.PaymentSession{OrderID: "31", Method: entity.PaymentMethodVNPay, RedirectURL: "https://pay.example/31b"}, nil)

	resp, body := c.do(t, http.MethodPost, "/api/orders/31/payment", api.RetryPaymentRequest{
		PaymentMethod: "vnpay",
		OrderNumber:   "ORD-31",
	}, "dev")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var got api.SessionResponse
	require.NoError(t, json.Unmarshal(body, &got))
	require.Equal(t, "redirect", got.Kind)
	require.Equal(t, "https://pay.example/31b", got.RedirectURL)
	require.Nil(t, got.Bank)

	// Without a body the previous method is reused.
	c.serviceMock.EXPECT().RetryPayment(gomock.Any(), entity.OrderRef{ID: "31"}, entity.PaymentMethod("")).
		Return(entity.PaymentSession{}, fmt.Errorf("order 31: %w", entity.ErrAlreadyPolling))

	resp, _ = c.do(t, http.MethodPost, "/api/orders/31/payment", nil, "dev")
	require.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestHandler_Flash(t *testing.T) {
	t.Parallel()

	c := NewTester(t)
	c.authMock.EXPECT().User(gomock.Any(), "dev").Return(c.user, nil).Times(2)

	flash := navigation.Flash{
		Route: "/orders/31",
		State: entity.NavigationState{Message: "Payment successful! Your order has been confirmed.", PaymentSuccess: true},
	}

	c.serviceMock.EXPECT().Flash(gomock.Any(), "31").Return(flash, nil)
	c.serviceMock.EXPECT().Flash(gomock.Any(), "31").Return(navigation.Flash{}, entity.ErrNotFound)

	resp, body := c.do(t, http.MethodGet, "/api/orders/31/flash", nil, "dev")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `{"route":"/orders/31","state":{"message":"Payment successful! Your order has been confirmed.","paymentSuccess":true}}`, string(body))

	resp, body = c.do(t, http.MethodGet, "/api/orders/31/flash", nil, "dev")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	require.Empty(t, body)
}

func TestHandler_Cart(t *testing.T) {
	t.Parallel()

	c := NewTester(t)
	c.authMock.EXPECT().User(gomock.Any(), "dev").Return(c.user, nil).Times(4)

	item := entity.CartItem{
		ID:        uuid.Must(uuid.NewV4()),
		UserID:    c.user.ID,
		ProductID: 7,
		Quantity:  2,
		CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}

	c.serviceMock.EXPECT().AddToCart(gomock.Any(), int64(7), 2).Return(item, nil)
	c.serviceMock.EXPECT().Cart(gomock.Any()).Return([]entity.CartItem{item}, nil)
	c.serviceMock.EXPECT().RemoveFromCart(gomock.Any(), item.ID).Return(nil)

	resp, _ := c.do(t, http.MethodPost, "/api/cart/items", api.AddCartItemRequest{ProductID: 7, Quantity: 2}, "dev")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := c.do(t, http.MethodGet, "/api/cart", nil, "dev")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var cart api.CartResponse
	require.NoError(t, json.Unmarshal(body, &cart))
	require.Len(t, cart.Items, 1)
	require.Equal(t, item.ID, cart.Items[0].ID)

	resp, _ = c.do(t, http.MethodDelete, "/api/cart/items/"+item.ID.String(), nil, "dev")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = c.do(t, http.MethodDelete, "/api/cart/items/not-a-uuid", nil, "dev")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
