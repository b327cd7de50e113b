package main

import (
	"encoding/json"
	"hash/fnv"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	cardsmodels "accounts/internal/cards/models"
	"accounts/internal/platform/health"
	"accounts/pkg/platform/httputil"
	request "accounts/pkg/platform/middleware/request"
)

const (
	mobileEmpty     = "0000000000"
	mobileNotFound  = "4040404040"
	mobileError     = "5000000000"
	mobileMalformed = "1111111111"
	mobileSlow      = "2222222222"
)

var cardTypes = []string{"Credit", "Debit", "Prepaid"}

func newRouter(latency time.Duration, log *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(request.Recovery(log))
	r.Use(request.RequestID)
	r.Use(request.Logger(log))

	health.New("mock").Register(r)
	r.Post("/myCards", handleMyCards(latency))
	return r
}

func handleMyCards(latency time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var customer cardsmodels.Customer
		if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
			httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{Error: "bad_request"})
			return
		}

		switch customer.MobileNumber {
		case mobileEmpty:
			httputil.WriteJSON(w, http.StatusOK, []cardsmodels.Card{})
		case mobileNotFound:
			httputil.WriteJSON(w, http.StatusNotFound, httputil.ErrorResponse{Error: "not_found", ErrorDescription: "customer has no cards profile"})
		case mobileError:
			httputil.WriteJSON(w, http.StatusInternalServerError, httputil.ErrorResponse{Error: "internal_error"})
		case mobileMalformed:
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`[{"cardNumber":`))
		case mobileSlow:
			select {
			case <-r.Context().Done():
				return
			case <-time.After(latency):
			}
			httputil.WriteJSON(w, http.StatusOK, cardsFor(customer))
		default:
			httputil.WriteJSON(w, http.StatusOK, cardsFor(customer))
		}
	}
}

// cardsFor derives one to three cards from the customer so repeated calls agree.
func cardsFor(customer cardsmodels.Customer) []cardsmodels.Card {
	h := fnv.New32a()
	_, _ = h.Write([]byte(customer.MobileNumber))
	seed := int64(h.Sum32())
	if customer.CustomerID > 0 {
		seed = customer.CustomerID
	}

	n := int(seed%3) + 1
	cards := make([]cardsmodels.Card, 0, n)
	for i := 0; i < n; i++ {
		limit := int64(10000 * (i + 1))
		used := (seed * int64(i+7)) % limit
		cards = append(cards, cardsmodels.Card{
			CardID:          seed*10 + int64(i),
			CustomerID:      customer.CustomerID,
			CardNumber:      cardNumber(seed, i),
			CardType:        cardTypes[i%len(cardTypes)],
			TotalLimit:      limit,
			AmountUsed:      used,
			AvailableAmount: limit - used,
			CreateDt:        time.Date(2024, time.Month(i+1), 1, 0, 0, 0, 0, time.UTC).Format(time.DateOnly),
		})
	}
	return cards
}

func cardNumber(seed int64, i int) string {
	n := (seed*7919 + int64(i)*104729) % 100_000_000_000
	if n < 0 {
		n = -n
	}
	return "4" + padLeft(n, 11)
}

func padLeft(n int64, width int) string {
	b := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		b[i] = byte('0' + n%10)
		n /= 10
	}
	return string(b)
}
