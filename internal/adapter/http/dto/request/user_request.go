package request

import "kyndly_ichra/internal/usecase"

type UserRequest struct {
	Username   string `json:"username" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Name       string `json:"name"`
	Role       string `json:"role" binding:"required"`
	TPAID      string `json:"tpaId"`
	BrokerID   string `json:"brokerId"`
	EmployerID string `json:"employerId"`
	Enabled    *bool  `json:"enabled"`
}

func (r UserRequest) ToInput() usecase.UserInput {
	return usecase.UserInput{
		Username:   r.Username,
		Email:      r.Email,
		Name:       r.Name,
		Role:       r.Role,
		TPAID:      r.TPAID,
		BrokerID:   r.BrokerID,
		EmployerID: r.EmployerID,
		Enabled:    r.Enabled,
	}
}

// UserUpdateRequest allows partial updates; the usecase ignores empty
// fields. Username and tenant are immutable.
type UserUpdateRequest struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Enabled *bool  `json:"enabled"`
}

func (r UserUpdateRequest) ToInput() usecase.UserInput {
	return usecase.UserInput{
		Email:   r.Email,
		Name:    r.Name,
		Role:    r.Role,
		Enabled: r.Enabled,
	}
}
