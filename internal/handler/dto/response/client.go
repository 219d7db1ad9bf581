package response

import (
	"stayledger/internal/usecase/queries"

	"github.com/google/uuid"
)

type ClientResponse struct {
	ID             uuid.UUID `json:"id"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	PassportNumber string    `json:"passportNumber"`
	Phone          string    `json:"phone,omitempty"`
	Email          string    `json:"email,omitempty"`
}

func FromClientView(v queries.ClientView) *ClientResponse {
	return &ClientResponse{
		ID:             v.ID,
		FirstName:      v.FirstName,
		LastName:       v.LastName,
		PassportNumber: v.PassportNumber,
		Phone:          v.Phone,
		Email:          v.Email,
	}
}

func FromClientViews(vs []queries.ClientView) []*ClientResponse {
	out := make([]*ClientResponse, len(vs))
	for i, v := range vs {
		out[i] = FromClientView(v)
	}
	return out
}
