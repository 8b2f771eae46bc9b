package entities

import "time"

type EmployerStatus string

const (
	EmployerStatusActive   EmployerStatus = "active"
	EmployerStatusPending  EmployerStatus = "pending"
	EmployerStatusInactive EmployerStatus = "inactive"
)

func (s EmployerStatus) Valid() bool {
	switch s {
	case EmployerStatusActive, EmployerStatusPending, EmployerStatusInactive:
		return true
	}
	return false
}

// Employer is the entity a quote is requested for. It sits under a TPA
// (optionally via a broker) and owns zero or more Quotes and Documents.
type Employer struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	ContactPerson string         `json:"contactPerson"`
	Email         string         `json:"email"`
	Phone         string         `json:"phone"`
	Address       string         `json:"address"`
	EmployeeCount int            `json:"employeeCount"`
	Status        EmployerStatus `json:"status"`
	TPAID         string         `json:"tpaId"`
	BrokerID      string         `json:"brokerId,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}
