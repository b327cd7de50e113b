package service

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"accounts/internal/accounts/models"
	cardsclient "accounts/internal/cards/client"
	cardsmodels "accounts/internal/cards/models"
	dErrors "accounts/pkg/domain-errors"
	request "accounts/pkg/platform/middleware/request"
	"accounts/pkg/platform/sentinel"
	"accounts/pkg/platform/tracer"
)

type Store interface {
	FindCustomerByID(ctx context.Context, customerID int64) (*cardsmodels.Customer, error)
	FindCustomerByMobile(ctx context.Context, mobileNumber string) (*cardsmodels.Customer, error)
	ListAccounts(ctx context.Context, customerID int64) ([]models.Account, error)
}

// CardsClient is implemented by *cardsclient.Client. Failures are *cardsclient.Error.
type CardsClient interface {
	GetCardsDetails(ctx context.Context, customer cardsmodels.Customer) ([]cardsmodels.Card, error)
}

// Service serves account lookups and joins them with cards held remotely.
type Service struct {
	store  Store
	cards  CardsClient
	logger *slog.Logger
	tracer tracer.Tracer
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(t tracer.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

func New(store Store, cards CardsClient, opts ...Option) *Service {
	s := &Service{
		store:  store,
		cards:  cards,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		tracer: tracer.NewNoop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetAccount returns the customer's primary account (lowest account number).
func (s *Service) GetAccount(ctx context.Context, lookup cardsmodels.Customer) (*models.Account, error) {
	customer, err := s.findCustomer(ctx, lookup)
	if err != nil {
		return nil, err
	}

	accounts, err := s.store.ListAccounts(ctx, customer.CustomerID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list accounts")
	}
	if len(accounts) == 0 {
		return nil, dErrors.New(dErrors.CodeNotFound, "account not found")
	}
	return &accounts[0], nil
}

// GetCustomerDetails returns the stored customer, their accounts and their cards.
// Accounts and cards are fetched concurrently; either failure fails the request.
func (s *Service) GetCustomerDetails(ctx context.Context, lookup cardsmodels.Customer) (details *models.CustomerDetails, err error) {
	ctx, span := s.tracer.Start(ctx, tracer.SpanAccountsDetails,
		tracer.String(tracer.AttrCustomerHash, tracer.HashIdentifier(lookup.MobileNumber)),
	)
	defer func() { span.End(err) }()

	customer, err := s.findCustomer(ctx, lookup)
	if err != nil {
		return nil, err
	}

	var (
		accounts []models.Account
		cards    []cardsmodels.Card
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		accounts, err = s.store.ListAccounts(gctx, customer.CustomerID)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to list accounts")
		}
		return nil
	})
	g.Go(func() error {
		var err error
		cards, err = s.fetchCards(gctx, *customer)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	span.SetAttributes(tracer.Int(tracer.AttrCardCount, len(cards)))
	return &models.CustomerDetails{
		Customer: *customer,
		Accounts: accounts,
		Cards:    cards,
	}, nil
}

// GetCards forwards the customer to the cards service unchanged.
func (s *Service) GetCards(ctx context.Context, customer cardsmodels.Customer) ([]cardsmodels.Card, error) {
	return s.fetchCards(ctx, customer)
}

func (s *Service) fetchCards(ctx context.Context, customer cardsmodels.Customer) ([]cardsmodels.Card, error) {
	cards, err := s.cards.GetCardsDetails(ctx, customer)
	if err != nil {
		s.logCardsFailure(ctx, err)
		return nil, translateCardsError(err)
	}
	return cards, nil
}

func (s *Service) findCustomer(ctx context.Context, lookup cardsmodels.Customer) (*cardsmodels.Customer, error) {
	var (
		customer *cardsmodels.Customer
		err      error
	)
	if lookup.CustomerID > 0 {
		customer, err = s.store.FindCustomerByID(ctx, lookup.CustomerID)
	} else {
		customer, err = s.store.FindCustomerByMobile(ctx, lookup.MobileNumber)
	}
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "customer not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to find customer")
	}
	return customer, nil
}

func (s *Service) logCardsFailure(ctx context.Context, err error) {
	attrs := []any{
		"error", err,
		"kind", cardsclient.KindOf(err),
		"request_id", request.GetRequestID(ctx),
	}
	var ce *cardsclient.Error
	if errors.As(err, &ce) && ce.StatusCode != 0 {
		attrs = append(attrs, "status_code", ce.StatusCode)
	}
	s.logger.WarnContext(ctx, "cards lookup failed", attrs...)
}

// translateCardsError maps cards client failures to domain errors exactly once.
// A deadline takes precedence because it also surfaces as RemoteUnavailable.
func translateCardsError(err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return dErrors.Wrap(err, dErrors.CodeTimeout, "cards service timed out")
	case errors.Is(err, cardsclient.ErrRemoteUnavailable):
		return dErrors.Wrap(err, dErrors.CodeDependencyUnavailable, "cards service unavailable")
	case errors.Is(err, cardsclient.ErrRemoteError):
		return dErrors.Wrap(err, dErrors.CodeDependencyFailure, "cards service returned an error")
	case errors.Is(err, cardsclient.ErrDeserialization):
		return dErrors.Wrap(err, dErrors.CodeContractMismatch, "cards service returned an unexpected response")
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, "cards lookup failed")
	}
}
