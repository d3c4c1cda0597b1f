package model

import "time"

// CustomerDetails is a freeform note attached to a customer; a customer
// may carry any number of them.
type CustomerDetails struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customerId"`
	Note       string    `json:"note"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type CustomerDetailsRequest struct {
	Note string `json:"note" mapstructure:"note"`
}
