package response

import (
	"time"

	"kyndly_ichra/internal/domain/entities"
)

type BrokerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	TPAID     string    `json:"tpaId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromBroker(b entities.Broker) BrokerResponse {
	return BrokerResponse{
		ID:        b.ID,
		Name:      b.Name,
		Email:     b.Email,
		Phone:     b.Phone,
		TPAID:     b.TPAID,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func FromBrokers(brokers []entities.Broker) []BrokerResponse {
	out := make([]BrokerResponse, 0, len(brokers))
	for _, b := range brokers {
		out = append(out, FromBroker(b))
	}
	return out
}
