package store

import (
	"context"
	"errors"
	"fmt"

	"accounts/internal/accounts/models"
	cardsmodels "accounts/internal/cards/models"
	"accounts/pkg/platform/sentinel"
)

// Writer is the write side shared by the memory and Postgres stores.
type Writer interface {
	CreateCustomer(ctx context.Context, c cardsmodels.Customer) error
	CreateAccount(ctx context.Context, a models.Account) error
}

// DemoCustomers and DemoAccounts are loaded by Seed for local runs.
var (
	DemoCustomers = []cardsmodels.Customer{
		{CustomerID: 1, Name: "Ana Pereira", Email: "ana@example.com", MobileNumber: "9876543210", CreateDt: "2023-04-12"},
		{CustomerID: 2, Name: "Tomas Novak", Email: "tomas@example.com", MobileNumber: "9123456780", CreateDt: "2024-01-30"},
	}
	DemoAccounts = []models.Account{
		{AccountNumber: 186576453, CustomerID: 1, AccountType: models.AccountTypeSavings, BranchAddress: "123 Main Street, New York", CreateDt: "2023-04-12"},
		{AccountNumber: 186576454, CustomerID: 1, AccountType: models.AccountTypeCurrent, BranchAddress: "123 Main Street, New York", CreateDt: "2023-09-01"},
		{AccountNumber: 195432101, CustomerID: 2, AccountType: models.AccountTypeSavings, BranchAddress: "8 Harbour Road, Boston", CreateDt: "2024-01-30"},
	}
)

// Seed inserts the demo data. Records that already exist are skipped, so Seed
// can run on every start.
func Seed(ctx context.Context, w Writer) error {
	for _, c := range DemoCustomers {
		if err := w.CreateCustomer(ctx, c); err != nil && !errors.Is(err, sentinel.ErrAlreadyUsed) {
			return fmt.Errorf("seed customer %d: %w", c.CustomerID, err)
		}
	}
	for _, a := range DemoAccounts {
		if err := w.CreateAccount(ctx, a); err != nil && !errors.Is(err, sentinel.ErrAlreadyUsed) {
			return fmt.Errorf("seed account %d: %w", a.AccountNumber, err)
		}
	}
	return nil
}
