package queries

import (
	"time"

	"stayledger/internal/domain/booking"
	"stayledger/internal/domain/client"
	"stayledger/internal/domain/room"

	"github.com/google/uuid"
)

type RoomView struct {
	ID               uuid.UUID `json:"id"`
	Number           string    `json:"number"`
	RoomType         string    `json:"room_type"`
	NightlyRateCents int64     `json:"nightly_rate_cents"`
	Capacity         int       `json:"capacity"`
	Description      string    `json:"description"`
	Lettable         bool      `json:"lettable"`
}

type ClientView struct {
	ID             uuid.UUID `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	PassportNumber string    `json:"passport_number"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email"`
}

type BookingView struct {
	ID         uuid.UUID `json:"id"`
	ClientID   uuid.UUID `json:"client_id"`
	ClientName string    `json:"client_name"`
	RoomID     uuid.UUID `json:"room_id"`
	RoomNumber string    `json:"room_number"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	Nights     int       `json:"nights"`
	TotalCents int64     `json:"total_cents"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

func toRoomView(r *room.Room) RoomView {
	return RoomView{
		ID:               r.ID(),
		Number:           r.Number(),
		RoomType:         r.RoomType(),
		NightlyRateCents: r.NightlyRateCents(),
		Capacity:         r.Capacity(),
		Description:      r.Description(),
		Lettable:         r.Lettable(),
	}
}

func toClientView(c *client.Client) ClientView {
	return ClientView{
		ID:             c.ID(),
		FirstName:      c.FirstName(),
		LastName:       c.LastName(),
		PassportNumber: c.PassportNumber(),
		Phone:          c.Phone(),
		Email:          c.Email(),
	}
}

func toBookingView(b *booking.Booking, clientName, roomNumber string) BookingView {
	return BookingView{
		ID:         b.ID(),
		ClientID:   b.ClientID(),
		ClientName: clientName,
		RoomID:     b.RoomID(),
		RoomNumber: roomNumber,
		CheckIn:    b.Stay().CheckIn(),
		CheckOut:   b.Stay().CheckOut(),
		Nights:     b.Stay().Nights(),
		TotalCents: b.TotalPrice().Cents(),
		Status:     string(b.Status()),
		CreatedAt:  b.CreatedAt(),
	}
}
