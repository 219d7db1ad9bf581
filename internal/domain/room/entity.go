package room

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyNumber     = errors.New("room number must not be empty")
	ErrNegativeRate    = errors.New("nightly rate cannot be negative")
	ErrInvalidCapacity = errors.New("capacity must be positive")
)

// Room is the lettable unit. The lettable flag marks rooms withdrawn from
// service; whether a room is free for a given date range is derived from the
// confirmed booking set, not stored here.
type Room struct {
	id               uuid.UUID
	number           string
	roomType         string
	nightlyRateCents int64
	capacity         int
	description      string
	lettable         bool
	createdAt        time.Time
	updatedAt        time.Time
}

func NewRoom(number, roomType string, nightlyRateCents int64, capacity int, description string) (*Room, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, ErrEmptyNumber
	}
	if nightlyRateCents < 0 {
		return nil, ErrNegativeRate
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	return &Room{
		id:               uuid.New(),
		number:           number,
		roomType:         roomType,
		nightlyRateCents: nightlyRateCents,
		capacity:         capacity,
		description:      description,
		lettable:         true,
	}, nil
}

func ReconstructRoom(
	id uuid.UUID,
	number, roomType string,
	nightlyRateCents int64,
	capacity int,
	description string,
	lettable bool,
	createdAt, updatedAt time.Time,
) *Room {
	return &Room{
		id:               id,
		number:           number,
		roomType:         roomType,
		nightlyRateCents: nightlyRateCents,
		capacity:         capacity,
		description:      description,
		lettable:         lettable,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// Withdraw takes the room out of service; it stops appearing in availability
// results regardless of its booking set.
func (r *Room) Withdraw() {
	r.lettable = false
}

func (r *Room) Restore() {
	r.lettable = true
}

func (r *Room) ID() uuid.UUID           { return r.id }
func (r *Room) Number() string          { return r.number }
func (r *Room) RoomType() string        { return r.roomType }
func (r *Room) NightlyRateCents() int64 { return r.nightlyRateCents }
func (r *Room) Capacity() int           { return r.capacity }
func (r *Room) Description() string     { return r.description }
func (r *Room) Lettable() bool          { return r.lettable }
func (r *Room) CreatedAt() time.Time    { return r.createdAt }
func (r *Room) UpdatedAt() time.Time    { return r.updatedAt }
