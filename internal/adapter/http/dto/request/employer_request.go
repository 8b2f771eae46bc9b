package request

import "kyndly_ichra/internal/usecase"

type EmployerRequest struct {
	Name          string `json:"name" binding:"required"`
	ContactPerson string `json:"contactPerson" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone" binding:"required"`
	Address       string `json:"address" binding:"required"`
	EmployeeCount int    `json:"employeeCount" binding:"required,min=1"`
	Status        string `json:"status"`
	TPAID         string `json:"tpaId"`
	BrokerID      string `json:"brokerId"`
}

func (r EmployerRequest) ToInput() usecase.EmployerInput {
	return usecase.EmployerInput{
		Name:          r.Name,
		ContactPerson: r.ContactPerson,
		Email:         r.Email,
		Phone:         r.Phone,
		Address:       r.Address,
		EmployeeCount: r.EmployeeCount,
		Status:        r.Status,
		TPAID:         r.TPAID,
		BrokerID:      r.BrokerID,
	}
}
