package entities

import "time"

// User is a portal account managed by admins. Role and the organizational
// identifiers mirror the claims carried by the identity token at runtime.
type User struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	TPAID      string    `json:"tpaId"`
	BrokerID   string    `json:"brokerId,omitempty"`
	EmployerID string    `json:"employerId,omitempty"`
	Enabled    bool      `json:"enabled"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
