package response

import (
	"time"

	"stayledger/internal/domain/booking"
	"stayledger/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID         uuid.UUID `json:"id"`
	ClientID   uuid.UUID `json:"clientId"`
	ClientName string    `json:"clientName,omitempty"`
	RoomID     uuid.UUID `json:"roomId"`
	RoomNumber string    `json:"roomNumber,omitempty"`
	CheckIn    string    `json:"checkIn"`
	CheckOut   string    `json:"checkOut"`
	Nights     int       `json:"nights"`
	TotalCents int64     `json:"totalCents"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:         v.ID,
		ClientID:   v.ClientID,
		ClientName: v.ClientName,
		RoomID:     v.RoomID,
		RoomNumber: v.RoomNumber,
		CheckIn:    v.CheckIn.Format(time.DateOnly),
		CheckOut:   v.CheckOut.Format(time.DateOnly),
		Nights:     v.Nights,
		TotalCents: v.TotalCents,
		Status:     v.Status,
		CreatedAt:  v.CreatedAt,
	}
}

func FromBookingEntity(b *booking.Booking) *BookingResponse {
	return &BookingResponse{
		ID:         b.ID(),
		ClientID:   b.ClientID(),
		RoomID:     b.RoomID(),
		CheckIn:    b.Stay().CheckIn().Format(time.DateOnly),
		CheckOut:   b.Stay().CheckOut().Format(time.DateOnly),
		Nights:     b.Stay().Nights(),
		TotalCents: b.TotalPrice().Cents(),
		Status:     string(b.Status()),
		CreatedAt:  b.CreatedAt(),
	}
}
