package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/samandr77/microservices/checkout/internal/entity"
)

type ErrorResponse struct {
	Message     string `json:"message"`
	Description string `json:"description,omitempty"`
	Redirect    string `json:"redirect,omitempty"`
}

func SendJSONErr(ctx context.Context, w http.ResponseWriter, code int, originErr error, msgToSend string) {
	if originErr == nil {
		originErr = errors.New(msgToSend)
	}

	slog.ErrorContext(ctx, "api error", "error", originErr.Error())
	SendJSON(ctx, w, code, ErrorResponse{Message: msgToSend, Description: originErr.Error()})
}

// SendUnauthorized answers 401 and tells the frontend where to log in and come back.
func SendUnauthorized(ctx context.Context, w http.ResponseWriter, r *http.Request, err error, msgToSend string) {
	slog.WarnContext(ctx, "unauthorized", "error", err)
	SendJSON(ctx, w, http.StatusUnauthorized, ErrorResponse{
		Message:     msgToSend,
		Description: err.Error(),
		Redirect:    loginRedirect(r),
	})
}

func SendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		code = http.StatusInternalServerError
		http.Error(w, http.StatusText(code), code)

		slog.ErrorContext(ctx, "encode response", "error", err)
	}
}

// sendServiceErr maps service errors to responses. fallback is sent for unknown errors.
func sendServiceErr(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	ctx := r.Context()

	switch {
	case errors.Is(err, entity.ErrUnauthenticated):
		SendUnauthorized(ctx, w, r, err, "Please log in to continue")
	case errors.Is(err, entity.ErrForbidden):
		SendJSONErr(ctx, w, http.StatusForbidden, err, "Action is forbidden")
	case errors.Is(err, entity.ErrNotFound):
		SendJSONErr(ctx, w, http.StatusNotFound, err, "Not found")
	case errors.Is(err, entity.ErrEmptyCart):
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Your cart is empty")
	case errors.Is(err, entity.ErrInvalidArgument):
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Invalid request")
	case errors.Is(err, entity.ErrAlreadyPolling):
		SendJSONErr(ctx, w, http.StatusConflict, err, "Payment is already in progress")
	case errors.Is(err, entity.ErrOrderCreationFailed):
		SendJSONErr(ctx, w, http.StatusBadGateway, err, serverMessage(err, entity.ErrOrderCreationFailed))
	case errors.Is(err, entity.ErrSessionCreationFailed):
		SendJSONErr(ctx, w, http.StatusBadGateway, err, serverMessage(err, entity.ErrSessionCreationFailed))
	default:
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, fallback)
	}
}

// serverMessage extracts the storefront's own message from an error wrapped as "<sentinel>: <message>".
func serverMessage(err, sentinel error) string {
	msg := err.Error()

	if i := strings.Index(msg, sentinel.Error()+": "); i >= 0 {
		return msg[i+len(sentinel.Error())+2:]
	}

	return sentinel.Error()
}

func loginRedirect(r *http.Request) string {
	return "/login?returnTo=" + url.QueryEscape(strings.TrimPrefix(r.URL.Path, "/api"))
}
