package domain

import "time"

// Customer is a directory record for a registered client. The id is
// immutable; contact fields may change. Deleting a customer removes the
// directory record only and never touches historical sales.
type Customer struct {
	CustomerID string    `json:"customerID"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email"`   // optional
	Address    string    `json:"address"` // optional
	CreatedAt  time.Time `json:"createdAt"`
}
