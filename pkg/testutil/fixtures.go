package testutil

import (
	"fmt"

	"accounts/internal/accounts/models"
	cardsmodels "accounts/internal/cards/models"
)

// CustomerBuilder provides a fluent interface for building test customers.
type CustomerBuilder struct {
	customer cardsmodels.Customer
}

func NewCustomerBuilder() *CustomerBuilder {
	return &CustomerBuilder{
		customer: cardsmodels.Customer{
			CustomerID:   1,
			Name:         "Test Customer",
			Email:        "customer@example.com",
			MobileNumber: "9876543210",
			CreateDt:     "2024-01-15",
		},
	}
}

func (b *CustomerBuilder) WithID(customerID int64) *CustomerBuilder {
	b.customer.CustomerID = customerID
	return b
}

func (b *CustomerBuilder) WithMobile(mobileNumber string) *CustomerBuilder {
	b.customer.MobileNumber = mobileNumber
	return b
}

func (b *CustomerBuilder) WithName(name string) *CustomerBuilder {
	b.customer.Name = name
	return b
}

func (b *CustomerBuilder) Build() cardsmodels.Customer {
	return b.customer
}

// CardBuilder provides a fluent interface for building test cards.
type CardBuilder struct {
	card cardsmodels.Card
}

func NewCardBuilder() *CardBuilder {
	return &CardBuilder{
		card: cardsmodels.Card{
			CardID:          1,
			CustomerID:      1,
			CardNumber:      "4565773342",
			CardType:        "Credit",
			TotalLimit:      10000,
			AmountUsed:      500,
			AvailableAmount: 9500,
			CreateDt:        "2024-01-15",
		},
	}
}

func (b *CardBuilder) WithID(cardID int64) *CardBuilder {
	b.card.CardID = cardID
	b.card.CardNumber = fmt.Sprintf("45657733%02d", cardID)
	return b
}

func (b *CardBuilder) ForCustomer(customerID int64) *CardBuilder {
	b.card.CustomerID = customerID
	return b
}

func (b *CardBuilder) WithType(cardType string) *CardBuilder {
	b.card.CardType = cardType
	return b
}

func (b *CardBuilder) Build() cardsmodels.Card {
	return b.card
}

// Cards builds n cards for a customer with sequential ids.
func Cards(customerID int64, n int) []cardsmodels.Card {
	cards := make([]cardsmodels.Card, 0, n)
	for i := 1; i <= n; i++ {
		cards = append(cards, NewCardBuilder().WithID(int64(i)).ForCustomer(customerID).Build())
	}
	return cards
}

// SavingsAccount returns an account fixture for a customer.
func SavingsAccount(customerID, accountNumber int64) models.Account {
	return models.Account{
		AccountNumber: accountNumber,
		CustomerID:    customerID,
		AccountType:   models.AccountTypeSavings,
		BranchAddress: "1 Test Street",
		CreateDt:      "2024-01-15",
	}
}
