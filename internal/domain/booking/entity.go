package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNegativePrice   = errors.New("price cannot be negative")
	ErrAlreadyTerminal = errors.New("booking is already cancelled or completed")
	ErrInvalidStatus   = errors.New("invalid booking status")
)

type Booking struct {
	id         uuid.UUID
	clientID   uuid.UUID
	roomID     uuid.UUID
	stay       StayRange
	totalPrice Money
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

// NewBooking allocates a Confirmed booking and prices it from the room's
// nightly rate. Availability against other bookings is not decided here;
// that is the allocation engine's job, under its lock.
func NewBooking(clientID, roomID uuid.UUID, stay StayRange, nightlyRateCents int64) (*Booking, error) {
	if nightlyRateCents < 0 {
		return nil, ErrNegativePrice
	}

	total := NewMoney(nightlyRateCents).Times(stay.Nights())

	return &Booking{
		id:         uuid.New(),
		clientID:   clientID,
		roomID:     roomID,
		stay:       stay,
		totalPrice: total,
		status:     StatusConfirmed,
	}, nil
}

func ReconstructBooking(
	id, clientID, roomID uuid.UUID,
	stay StayRange,
	totalPrice Money,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		clientID:   clientID,
		roomID:     roomID,
		stay:       stay,
		totalPrice: totalPrice,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Cancel transitions Confirmed -> Cancelled. Cancelling a booking that is
// already terminal fails so that double-cancel attempts are detectable.
func (b *Booking) Cancel() error {
	if b.status.IsTerminal() {
		return ErrAlreadyTerminal
	}
	b.status = StatusCancelled
	return nil
}

// Complete transitions Confirmed -> Completed. Triggered externally by stay
// completion; no scheduling policy lives here.
func (b *Booking) Complete() error {
	if b.status.IsTerminal() {
		return ErrAlreadyTerminal
	}
	b.status = StatusCompleted
	return nil
}

func (b *Booking) IsConfirmed() bool {
	return b.status == StatusConfirmed
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) ClientID() uuid.UUID  { return b.clientID }
func (b *Booking) RoomID() uuid.UUID    { return b.roomID }
func (b *Booking) Stay() StayRange      { return b.stay }
func (b *Booking) TotalPrice() Money    { return b.totalPrice }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }
