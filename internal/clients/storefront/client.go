package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/checkout/internal/entity"
	"github.com/samandr77/microservices/checkout/pkg/transport"
)

// Client talks to the storefront backend REST API.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: transport.NewJWTRoundTripper(http.DefaultTransport),
		},
	}
}

// ID accepts both JSON numbers and strings, the backend is not consistent about it.
type ID string

func (i *ID) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*i = ""
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string

		err := json.Unmarshal(b, &s)
		if err != nil {
			return err
		}

		*i = ID(s)

		return nil
	}

	var n json.Number

	err := json.Unmarshal(b, &n)
	if err != nil {
		return err
	}

	*i = ID(n.String())

	return nil
}

type CartItem struct {
	ID        string `json:"id"`
	ProductID int64  `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type CreateOrderRequest struct {
	ShippingAddress string     `json:"shipping_address"`
	Notes           string     `json:"notes"`
	PaymentMethod   string     `json:"payment_method"`
	CartItems       []CartItem `json:"cart_items"`
}

type CreateOrderResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		Order struct {
			ID          ID              `json:"id"`
			OrderNumber string          `json:"order_number"`
			TotalAmount decimal.Decimal `json:"total_amount"`
		} `json:"order"`
	} `json:"data"`
}

// CreateOrder sends POST /orders. It is never retried: idempotency is the backend's job.
func (c *Client) CreateOrder(ctx context.Context, req entity.OrderRequest) (entity.Order, error) {
	items := make([]CartItem, 0, len(req.Items))
	for _, v := range req.Items {
		items = append(items, CartItem{
			ID:        v.ID.String(),
			ProductID: v.ProductID,
			Quantity:  v.Quantity,
		})
	}

	reqData := CreateOrderRequest{
		ShippingAddress: req.ShippingAddress,
		Notes:           req.Notes,
		PaymentMethod:   req.Method.String(),
		CartItems:       items,
	}

	var respData CreateOrderResponse

	code, err := c.doJSON(ctx, http.MethodPost, c.baseURL+"/orders", reqData, &respData)
	if err != nil {
		switch {
		case code == http.StatusUnauthorized:
			return entity.Order{}, fmt.Errorf("create order: %w", entity.ErrUnauthenticated)
		case code != 0:
			return entity.Order{}, fmt.Errorf("%w: %s", entity.ErrOrderCreationFailed, serverMessage(respData.Message, err))
		default:
			return entity.Order{}, fmt.Errorf("%w: %w", entity.ErrOrderCreationFailed, err)
		}
	}

	if !respData.Success || respData.Data.Order.ID == "" {
		return entity.Order{}, fmt.Errorf("%w: %s", entity.ErrOrderCreationFailed,
			serverMessage(respData.Message, errors.New("order missing in response")))
	}

	return entity.Order{
		ID:          string(respData.Data.Order.ID),
		Number:      respData.Data.Order.OrderNumber,
		TotalAmount: respData.Data.Order.TotalAmount,
	}, nil
}

type CreatePaymentSessionRequest struct {
	OrderID string `json:"order_id"`
}

type CreatePaymentSessionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		PaymentURL string `json:"payment_url"`
		QRCodeURL  string `json:"qr_code_url"`
		BankInfo   struct {
			BankName      string `json:"bank_name"`
			AccountName   string `json:"account_name"`
			AccountNumber string `json:"account_number"`
		} `json:"bank_info"`
		PaymentMessage string `json:"payment_message"`
	} `json:"data"`
}

// CreatePaymentSession sends exactly one POST /payments/{gateway}/create.
// Timestamps of the returned session are left for the caller to fill.
func (c *Client) CreatePaymentSession(
	ctx context.Context,
	method entity.PaymentMethod,
	orderID string,
) (entity.PaymentSession, error) {
	reqURL := fmt.Sprintf("%s/payments/%s/create", c.baseURL, url.PathEscape(method.Gateway()))

	var respData CreatePaymentSessionResponse

	_, err := c.doJSON(ctx, http.MethodPost, reqURL, CreatePaymentSessionRequest{OrderID: orderID}, &respData)
	if err != nil {
		return entity.PaymentSession{}, fmt.Errorf("%w: %s", entity.ErrSessionCreationFailed, serverMessage(respData.Message, err))
	}

	if !respData.Success || (respData.Data.PaymentURL == "" && respData.Data.QRCodeURL == "") {
		return entity.PaymentSession{}, fmt.Errorf("%w: %s", entity.ErrSessionCreationFailed,
			serverMessage(respData.Message, errors.New("no payment artifact in response")))
	}

	return entity.PaymentSession{
		OrderID:     orderID,
		Method:      method,
		RedirectURL: respData.Data.PaymentURL,
		QRImageURL:  respData.Data.QRCodeURL,
		Bank: entity.BankInfo{
			BankName:      respData.Data.BankInfo.BankName,
			AccountName:   respData.Data.BankInfo.AccountName,
			AccountNumber: respData.Data.BankInfo.AccountNumber,
		},
		PaymentMessage: respData.Data.PaymentMessage,
	}, nil
}

type PaymentStatusResponse struct {
	Data struct {
		Payment struct {
			PaymentStatus string `json:"payment_status"`
			TransactionID string `json:"transaction_id"`
		} `json:"payment"`
		Order *struct {
			PaymentStatus string `json:"payment_status"`
		} `json:"order,omitempty"`
	} `json:"data"`
}

// PaymentStatus sends GET /payments/status/{identifier}; identifier is an order number or id.
func (c *Client) PaymentStatus(ctx context.Context, identifier string) (entity.StatusReport, error) {
	reqURL := c.baseURL + "/payments/status/" + url.PathEscape(identifier)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return entity.StatusReport{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return entity.StatusReport{}, fmt.Errorf("%w: do request: %w", entity.ErrTransientQuery, err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return entity.StatusReport{}, fmt.Errorf("%w: read response: %w", entity.ErrTransientQuery, err)
	}

	if resp.StatusCode != http.StatusOK {
		return entity.StatusReport{}, fmt.Errorf("%w: unexpected status code: %d, body: %s",
			entity.ErrTransientQuery, resp.StatusCode, body)
	}

	var data PaymentStatusResponse

	err = json.Unmarshal(body, &data)
	if err != nil {
		return entity.StatusReport{}, fmt.Errorf("%w: decode response: %w", entity.ErrTransientQuery, err)
	}

	report := entity.StatusReport{
		Identifier:    identifier,
		PaymentStatus: entity.PaymentStatus(data.Data.Payment.PaymentStatus),
		TransactionID: data.Data.Payment.TransactionID,
		Raw:           body,
	}

	if data.Data.Order != nil {
		report.OrderStatus = entity.PaymentStatus(data.Data.Order.PaymentStatus)
	}

	report.Status = entity.ResolveStatus(report.PaymentStatus, report.OrderStatus)

	return report, nil
}

// doJSON returns the response status code when a response was received.
func (c *Client) doJSON(ctx context.Context, method, reqURL string, reqData, respData any) (int, error) {
	b, err := json.Marshal(reqData)
	if err != nil {
		return 0, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bytes.NewReader(b))
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("read response: %w", err)
	}

	// Error bodies carry the message too, decode them best effort.
	decodeErr := json.Unmarshal(body, respData)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return resp.StatusCode, fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, body)
	}

	if decodeErr != nil {
		return resp.StatusCode, fmt.Errorf("decode response: %w", decodeErr)
	}

	return resp.StatusCode, nil
}

func serverMessage(msg string, err error) string {
	if msg != "" {
		return msg
	}

	return err.Error()
}
