package response

import (
	"time"

	"kyndly_ichra/internal/domain/entities"
)

type EmployerResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contactPerson"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	EmployeeCount int       `json:"employeeCount"`
	Status        string    `json:"status"`
	TPAID         string    `json:"tpaId"`
	BrokerID      string    `json:"brokerId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func FromEmployer(e entities.Employer) EmployerResponse {
	return EmployerResponse{
		ID:            e.ID,
		Name:          e.Name,
		ContactPerson: e.ContactPerson,
		Email:         e.Email,
		Phone:         e.Phone,
		Address:       e.Address,
		EmployeeCount: e.EmployeeCount,
		Status:        string(e.Status),
		TPAID:         e.TPAID,
		BrokerID:      e.BrokerID,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func FromEmployers(employers []entities.Employer) []EmployerResponse {
	out := make([]EmployerResponse, 0, len(employers))
	for _, e := range employers {
		out = append(out, FromEmployer(e))
	}
	return out
}
