package models

import "time"

// Customer is the customers table row.
type Customer struct {
	CustomerID string    `db:"customer_id"`
	Name       string    `db:"name"`
	Phone      string    `db:"phone"`
	Email      string    `db:"email"`
	Address    string    `db:"address"`
	CreatedAt  time.Time `db:"created_at"`
}
