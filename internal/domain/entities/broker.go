package entities

import "time"

// Broker is an intermediary under a TPA that brings employers into the
// portal. Employers and quotes reference brokers by ID.
type Broker struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	TPAID     string    `json:"tpaId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
