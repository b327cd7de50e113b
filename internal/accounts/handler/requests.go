package handler

import (
	"strings"

	cardsmodels "accounts/internal/cards/models"
	dErrors "accounts/pkg/domain-errors"
	"accounts/pkg/validation"
)

// CustomerRequest is the body of every accounts endpoint. A customer is
// identified by customerId or, when that is absent, by mobileNumber.
type CustomerRequest struct {
	CustomerID   int64  `json:"customerId" validate:"required_without=MobileNumber,omitempty,gt=0"`
	Name         string `json:"name" validate:"max=100"`
	Email        string `json:"email" validate:"omitempty,email"`
	MobileNumber string `json:"mobileNumber" validate:"required_without=CustomerID,omitempty,mobile"`
	CreateDt     string `json:"createDt" validate:"omitempty,datetime=2006-01-02"`
}

func (r *CustomerRequest) Normalize() {
	if r == nil {
		return
	}
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.MobileNumber = strings.TrimSpace(r.MobileNumber)
	r.CreateDt = strings.TrimSpace(r.CreateDt)
}

func (r *CustomerRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	return validation.Validate(r)
}

func (r *CustomerRequest) ToCustomer() cardsmodels.Customer {
	return cardsmodels.Customer{
		CustomerID:   r.CustomerID,
		Name:         r.Name,
		Email:        r.Email,
		MobileNumber: r.MobileNumber,
		CreateDt:     r.CreateDt,
	}
}
