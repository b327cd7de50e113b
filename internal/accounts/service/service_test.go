package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Store,CardsClient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"accounts/internal/accounts/models"
	"accounts/internal/accounts/service/mocks"
	cardsclient "accounts/internal/cards/client"
	cardsmodels "accounts/internal/cards/models"
	dErrors "accounts/pkg/domain-errors"
	"accounts/pkg/platform/sentinel"
	"accounts/pkg/testutil"
)

type ServiceSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockStore *mocks.MockStore
	mockCards *mocks.MockCardsClient
	service   *Service
	customer  cardsmodels.Customer
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockStore = mocks.NewMockStore(s.ctrl)
	s.mockCards = mocks.NewMockCardsClient(s.ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.service = New(s.mockStore, s.mockCards, WithLogger(logger))
	s.customer = testutil.NewCustomerBuilder().WithID(1).Build()
}

func (s *ServiceSuite) TestGetAccount() {
	ctx := context.Background()

	s.Run("looks up by customer id", func() {
		s.mockStore.EXPECT().FindCustomerByID(gomock.Any(), int64(1)).Return(&s.customer, nil)
		s.mockStore.EXPECT().ListAccounts(gomock.Any(), int64(1)).Return([]models.Account{
			testutil.SavingsAccount(1, 100),
			testutil.SavingsAccount(1, 200),
		}, nil)

		account, err := s.service.GetAccount(ctx, cardsmodels.Customer{CustomerID: 1})
		s.Require().NoError(err)
		s.Equal(int64(100), account.AccountNumber)
	})

	s.Run("looks up by mobile number when id is absent", func() {
		s.mockStore.EXPECT().FindCustomerByMobile(gomock.Any(), "9876543210").Return(&s.customer, nil)
		s.mockStore.EXPECT().ListAccounts(gomock.Any(), int64(1)).Return([]models.Account{testutil.SavingsAccount(1, 100)}, nil)

		_, err := s.service.GetAccount(ctx, cardsmodels.Customer{MobileNumber: "9876543210"})
		s.NoError(err)
	})

	s.Run("unknown customer is not found", func() {
		s.mockStore.EXPECT().FindCustomerByID(gomock.Any(), int64(9)).Return(nil, sentinel.ErrNotFound)

		_, err := s.service.GetAccount(ctx, cardsmodels.Customer{CustomerID: 9})
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("customer without accounts is not found", func() {
		s.mockStore.EXPECT().FindCustomerByID(gomock.Any(), int64(1)).Return(&s.customer, nil)
		s.mockStore.EXPECT().ListAccounts(gomock.Any(), int64(1)).Return([]models.Account{}, nil)

		_, err := s.service.GetAccount(ctx, cardsmodels.Customer{CustomerID: 1})
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("store failure is internal", func() {
		s.mockStore.EXPECT().FindCustomerByID(gomock.Any(), int64(1)).Return(nil, errors.New("connection reset"))

		_, err := s.service.GetAccount(ctx, cardsmodels.Customer{CustomerID: 1})
		s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	})
}

func (s *ServiceSuite) TestGetCustomerDetails() {
	ctx := context.Background()

	s.Run("joins accounts and cards", func() {
		cards := testutil.Cards(1, 2)
		s.mockStore.EXPECT().FindCustomerByID(gomock.Any(), int64(1)).Return(&s.customer, nil)
		s.mockStore.EXPECT().ListAccounts(gomock.Any(), int64(1)).Return([]models.Account{testutil.SavingsAccount(1, 100)}, nil)
		s.mockCards.EXPECT().GetCardsDetails(gomock.Any(), s.customer).Return(cards, nil).Times(1)

		details, err := s.service.GetCustomerDetails(ctx, cardsmodels.Customer{CustomerID: 1})
		s.Require().NoError(err)
		s.Equal(s.customer, details.Customer)
		s.Len(details.Accounts, 1)
		s.Equal(cards, details.Cards)
	})

	s.Run("cards are requested with the stored customer record", func() {
		s.mockStore.EXPECT().FindCustomerByMobile(gomock.Any(), s.customer.MobileNumber).Return(&s.customer, nil)
		s.mockStore.EXPECT().ListAccounts(gomock.Any(), int64(1)).Return([]models.Account{}, nil)
		s.mockCards.EXPECT().
			GetCardsDetails(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c cardsmodels.Customer) ([]cardsmodels.Card, error) {
				s.Equal(s.customer, c)
				return []cardsmodels.Card{}, nil
			})

		details, err := s.service.GetCustomerDetails(ctx, cardsmodels.Customer{MobileNumber: s.customer.MobileNumber})
		s.Require().NoError(err)
		s.Empty(details.Cards)
	})

	s.Run("unknown customer skips the cards call", func() {
		s.mockStore.EXPECT().FindCustomerByID(gomock.Any(), int64(5)).Return(nil, sentinel.ErrNotFound)

		_, err := s.service.GetCustomerDetails(ctx, cardsmodels.Customer{CustomerID: 5})
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("cards failure fails the request", func() {
		s.mockStore.EXPECT().FindCustomerByID(gomock.Any(), int64(1)).Return(&s.customer, nil)
		s.mockStore.EXPECT().ListAccounts(gomock.Any(), int64(1)).Return([]models.Account{}, nil)
		s.mockCards.EXPECT().GetCardsDetails(gomock.Any(), gomock.Any()).
			Return(nil, &cardsclient.Error{Kind: cardsclient.KindRemoteError, Service: "cards", StatusCode: 500})

		details, err := s.service.GetCustomerDetails(ctx, cardsmodels.Customer{CustomerID: 1})
		s.Nil(details)
		s.True(dErrors.HasCode(err, dErrors.CodeDependencyFailure))
		s.ErrorIs(err, cardsclient.ErrRemoteError)
	})
}

func (s *ServiceSuite) TestGetCardsForwardsCustomerUnchanged() {
	lookup := cardsmodels.Customer{MobileNumber: "5551234567"}
	s.mockCards.EXPECT().GetCardsDetails(gomock.Any(), lookup).Return(testutil.Cards(0, 1), nil)

	cards, err := s.service.GetCards(context.Background(), lookup)
	s.Require().NoError(err)
	s.Len(cards, 1)
}

func TestTranslateCardsError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want dErrors.Code
	}{
		{"unavailable", &cardsclient.Error{Kind: cardsclient.KindRemoteUnavailable}, dErrors.CodeDependencyUnavailable},
		{"remote error", &cardsclient.Error{Kind: cardsclient.KindRemoteError, StatusCode: 404}, dErrors.CodeDependencyFailure},
		{"deserialization", &cardsclient.Error{Kind: cardsclient.KindDeserialization}, dErrors.CodeContractMismatch},
		{"deadline", &cardsclient.Error{Kind: cardsclient.KindRemoteUnavailable, Err: context.DeadlineExceeded}, dErrors.CodeTimeout},
		{"wrapped deadline", fmt.Errorf("call: %w", &cardsclient.Error{Kind: cardsclient.KindRemoteUnavailable, Err: fmt.Errorf("dial: %w", context.DeadlineExceeded)}), dErrors.CodeTimeout},
		{"unknown", errors.New("boom"), dErrors.CodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := translateCardsError(tt.err)
			if !dErrors.HasCode(err, tt.want) {
				t.Fatalf("expected code %s, got %v", tt.want, err)
			}
		})
	}
}
