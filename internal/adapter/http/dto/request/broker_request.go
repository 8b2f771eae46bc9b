package request

import "kyndly_ichra/internal/usecase"

type BrokerRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	TPAID string `json:"tpaId"`
}

func (r BrokerRequest) ToInput() usecase.BrokerInput {
	return usecase.BrokerInput{
		Name:  r.Name,
		Email: r.Email,
		Phone: r.Phone,
		TPAID: r.TPAID,
	}
}
