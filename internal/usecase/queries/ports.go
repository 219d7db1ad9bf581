package queries

import (
	"context"

	"stayledger/internal/domain/booking"
	"stayledger/internal/domain/client"
	"stayledger/internal/domain/room"

	"github.com/google/uuid"
)

type RoomReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error)
	List(ctx context.Context) ([]*room.Room, error)
}

type ClientReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*client.Client, error)
	List(ctx context.Context) ([]*client.Client, error)
}

type BookingReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	List(ctx context.Context) ([]*booking.Booking, error)
	ListConfirmed(ctx context.Context) ([]*booking.Booking, error)
}

// SearchCache is a read-through cache for availability searches. Generation
// is bumped by the command side on every mutation; stale entries are left to
// expire rather than deleted.
type SearchCache interface {
	Generation(ctx context.Context) (int64, error)
	GetSearch(ctx context.Context, gen int64, stay booking.StayRange, dst any) (bool, error)
	SetSearch(ctx context.Context, gen int64, stay booking.StayRange, v any) error
}
