package commands

import (
	"context"

	"stayledger/internal/domain/booking"
	"stayledger/internal/domain/client"
	"stayledger/internal/domain/room"

	"github.com/google/uuid"
)

// Repository ports consumed by the write side. Implemented by both storage
// backends (internal/infra/postgres, internal/infra/flatfile); failures carry
// infra.RepositoryError kinds.

type RoomRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error)
	Create(ctx context.Context, entity *room.Room) (uuid.UUID, error)
	SetLettable(ctx context.Context, id uuid.UUID, lettable bool) error
}

type ClientRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*client.Client, error)
	Create(ctx context.Context, entity *client.Client) (uuid.UUID, error)
}

type BookingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	ListConfirmedByRoom(ctx context.Context, roomID uuid.UUID) ([]*booking.Booking, error)
	Insert(ctx context.Context, entity *booking.Booking) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error
}

// AvailabilityCache is the display cache's write-side face: every booking or
// room mutation invalidates it so rendered availability cannot drift from the
// booking set.
type AvailabilityCache interface {
	Invalidate(ctx context.Context) error
}
