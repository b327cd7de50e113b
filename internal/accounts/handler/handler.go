package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"accounts/internal/accounts/models"
	cardsmodels "accounts/internal/cards/models"
	"accounts/pkg/platform/httputil"
	request "accounts/pkg/platform/middleware/request"
)

// Service defines the accounts operations exposed over HTTP.
type Service interface {
	GetAccount(ctx context.Context, lookup cardsmodels.Customer) (*models.Account, error)
	GetCustomerDetails(ctx context.Context, lookup cardsmodels.Customer) (*models.CustomerDetails, error)
	GetCards(ctx context.Context, customer cardsmodels.Customer) ([]cardsmodels.Card, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/myAccount", h.HandleMyAccount)
	r.Post("/myCustomerDetails", h.HandleMyCustomerDetails)
	r.Post("/myCards", h.HandleMyCards)
}

// HandleMyAccount returns the customer's primary account.
func (h *Handler) HandleMyAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := request.GetRequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[CustomerRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	account, err := h.service.GetAccount(ctx, req.ToCustomer())
	if err != nil {
		h.logger.InfoContext(ctx, "get account failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, account)
}

// HandleMyCustomerDetails returns the customer with their accounts and cards.
func (h *Handler) HandleMyCustomerDetails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := request.GetRequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[CustomerRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	details, err := h.service.GetCustomerDetails(ctx, req.ToCustomer())
	if err != nil {
		h.logger.ErrorContext(ctx, "get customer details failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, details)
}

// HandleMyCards proxies the lookup to the cards service.
func (h *Handler) HandleMyCards(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := request.GetRequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[CustomerRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	cards, err := h.service.GetCards(ctx, req.ToCustomer())
	if err != nil {
		h.logger.ErrorContext(ctx, "get cards failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, cards)
}
