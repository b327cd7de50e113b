// Package store persists customers and their accounts.
package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"accounts/internal/accounts/models"
	cardsmodels "accounts/internal/cards/models"
	"accounts/pkg/platform/sentinel"
)

// ErrNotFound is returned when a customer is not found.
var ErrNotFound = sentinel.ErrNotFound

// InMemory stores customers and accounts for local runs and tests.
type InMemory struct {
	mu        sync.RWMutex
	customers map[int64]cardsmodels.Customer
	mobileIdx map[string]int64
	accounts  map[int64][]models.Account
	accountNo map[int64]struct{}
}

func NewInMemory() *InMemory {
	return &InMemory{
		customers: make(map[int64]cardsmodels.Customer),
		mobileIdx: make(map[string]int64),
		accounts:  make(map[int64][]models.Account),
		accountNo: make(map[int64]struct{}),
	}
}

// CreateCustomer inserts a customer. Ids and mobile numbers are unique.
func (s *InMemory) CreateCustomer(_ context.Context, c cardsmodels.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.customers[c.CustomerID]; exists {
		return fmt.Errorf("customer %d: %w", c.CustomerID, sentinel.ErrAlreadyUsed)
	}
	if _, exists := s.mobileIdx[c.MobileNumber]; exists {
		return fmt.Errorf("mobile number must be unique: %w", sentinel.ErrAlreadyUsed)
	}
	s.customers[c.CustomerID] = c
	s.mobileIdx[c.MobileNumber] = c.CustomerID
	return nil
}

// CreateAccount inserts an account for an existing customer.
func (s *InMemory) CreateAccount(_ context.Context, a models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.customers[a.CustomerID]; !ok {
		return fmt.Errorf("customer %d: %w", a.CustomerID, ErrNotFound)
	}
	if _, exists := s.accountNo[a.AccountNumber]; exists {
		return fmt.Errorf("account %d: %w", a.AccountNumber, sentinel.ErrAlreadyUsed)
	}
	s.accountNo[a.AccountNumber] = struct{}{}
	s.accounts[a.CustomerID] = append(s.accounts[a.CustomerID], a)
	return nil
}

func (s *InMemory) FindCustomerByID(_ context.Context, customerID int64) (*cardsmodels.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c, ok := s.customers[customerID]; ok {
		return &c, nil
	}
	return nil, ErrNotFound
}

func (s *InMemory) FindCustomerByMobile(_ context.Context, mobileNumber string) (*cardsmodels.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if customerID, ok := s.mobileIdx[mobileNumber]; ok {
		c := s.customers[customerID]
		return &c, nil
	}
	return nil, ErrNotFound
}

// ListAccounts returns the customer's accounts ordered by account number.
func (s *InMemory) ListAccounts(_ context.Context, customerID int64) ([]models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	accounts := make([]models.Account, len(s.accounts[customerID]))
	copy(accounts, s.accounts[customerID])
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].AccountNumber < accounts[j].AccountNumber
	})
	return accounts, nil
}
