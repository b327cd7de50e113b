package models

import (
	"time"

	cardsmodels "accounts/internal/cards/models"
)

// DateLayout is the wire format of createDt fields.
const DateLayout = time.DateOnly

// Account types.
const (
	AccountTypeSavings = "Savings"
	AccountTypeCurrent = "Current"
)

// Account is a bank account held by a customer.
type Account struct {
	AccountNumber int64  `json:"accountNumber"`
	CustomerID    int64  `json:"customerId"`
	AccountType   string `json:"accountType"`
	BranchAddress string `json:"branchAddress"`
	CreateDt      string `json:"createDt"`
}

// CustomerDetails aggregates a customer's local accounts with the cards held by
// the cards service.
type CustomerDetails struct {
	Customer cardsmodels.Customer `json:"customer"`
	Accounts []Account            `json:"accounts"`
	Cards    []cardsmodels.Card   `json:"cards"`
}
