package models

// Customer identifies a bank customer. It is sent as the request body of the
// cards lookup, so every field is always serialized.
type Customer struct {
	CustomerID   int64  `json:"customerId"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	MobileNumber string `json:"mobileNumber"`
	CreateDt     string `json:"createDt"`
}

// Card is a card record owned by the cards service.
type Card struct {
	CardID          int64  `json:"cardId"`
	CustomerID      int64  `json:"customerId"`
	CardNumber      string `json:"cardNumber"`
	CardType        string `json:"cardType"`
	TotalLimit      int64  `json:"totalLimit"`
	AmountUsed      int64  `json:"amountUsed"`
	AvailableAmount int64  `json:"availableAmount"`
	CreateDt        string `json:"createDt"`
}
