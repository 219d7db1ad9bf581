package commands

import (
	"context"
	"log/slog"
	"time"

	"stayledger/internal/domain/booking"
	"stayledger/internal/infra"
	"stayledger/internal/pkg/errs"
	"stayledger/internal/pkg/keylock"

	"github.com/google/uuid"
)

type CreateBookingInput struct {
	ClientID uuid.UUID
	RoomID   uuid.UUID
	CheckIn  time.Time
	CheckOut time.Time
}

type BookingCommands interface {
	Create(ctx context.Context, input CreateBookingInput) (*booking.Booking, error)
	Cancel(ctx context.Context, bookingID uuid.UUID) error
	Complete(ctx context.Context, bookingID uuid.UUID) error
}

type bookingCommandsImpl struct {
	bookings BookingRepository
	rooms    RoomRepository
	clients  ClientRepository
	cache    AvailabilityCache
	roomLock *keylock.KeyLock
}

func NewBookingCommands(
	bookings BookingRepository,
	rooms RoomRepository,
	clients ClientRepository,
	cache AvailabilityCache,
) BookingCommands {
	return &bookingCommandsImpl{
		bookings: bookings,
		rooms:    rooms,
		clients:  clients,
		cache:    cache,
		roomLock: keylock.New(),
	}
}

// Create allocates a Confirmed booking. The availability check runs against
// the confirmed set read while holding the room's lock, and the insert
// happens under that same lock, so concurrent requests for one room cannot
// both observe "free" and both commit.
func (c *bookingCommandsImpl) Create(ctx context.Context, input CreateBookingInput) (*booking.Booking, error) {
	stay, err := booking.NewStayRange(input.CheckIn, input.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidRange)
	}

	roomEntity, err := c.rooms.FindByID(ctx, input.RoomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrRoomNotFound)
		}
		return nil, errs.Mark(err, errs.ErrRepositoryFailure)
	}

	clientEntity, err := c.clients.FindByID(ctx, input.ClientID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrClientNotFound)
		}
		return nil, errs.Mark(err, errs.ErrRepositoryFailure)
	}

	if !roomEntity.Lettable() {
		return nil, errs.ErrRoomUnavailable
	}

	c.roomLock.Lock(roomEntity.ID())
	defer c.roomLock.Unlock(roomEntity.ID())

	// Last look before commit: the snapshot must be current, not one captured
	// earlier in the interaction.
	confirmed, err := c.bookings.ListConfirmedByRoom(ctx, roomEntity.ID())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrRepositoryFailure)
	}
	if !booking.RoomIsFree(roomEntity.ID(), confirmed, stay) {
		return nil, errs.ErrRoomUnavailable
	}

	entity, err := booking.NewBooking(clientEntity.ID(), roomEntity.ID(), stay, roomEntity.NightlyRateCents())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidRange)
	}

	if _, err := c.bookings.Insert(ctx, entity); err != nil {
		// The storage-level exclusion constraint is the backstop for writers
		// outside this process; report its violation as plain unavailability.
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Mark(err, errs.ErrRoomUnavailable)
		}
		return nil, errs.Mark(err, errs.ErrRepositoryFailure)
	}

	c.invalidateCache(ctx)

	return entity, nil
}

func (c *bookingCommandsImpl) Cancel(ctx context.Context, bookingID uuid.UUID) error {
	return c.transition(ctx, bookingID, (*booking.Booking).Cancel, booking.StatusCancelled)
}

func (c *bookingCommandsImpl) Complete(ctx context.Context, bookingID uuid.UUID) error {
	return c.transition(ctx, bookingID, (*booking.Booking).Complete, booking.StatusCompleted)
}

func (c *bookingCommandsImpl) transition(
	ctx context.Context,
	bookingID uuid.UUID,
	move func(*booking.Booking) error,
	target booking.Status,
) error {
	entity, err := c.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrBookingNotFound)
		}
		return errs.Mark(err, errs.ErrRepositoryFailure)
	}

	c.roomLock.Lock(entity.RoomID())
	defer c.roomLock.Unlock(entity.RoomID())

	if err := move(entity); err != nil {
		return errs.Mark(err, errs.ErrBookingAlreadyTerminal)
	}

	if err := c.bookings.UpdateStatus(ctx, bookingID, target); err != nil {
		switch {
		case infra.IsKind(err, infra.KindConflict):
			return errs.Mark(err, errs.ErrBookingAlreadyTerminal)
		case infra.IsKind(err, infra.KindNotFound):
			return errs.Mark(err, errs.ErrBookingNotFound)
		default:
			return errs.Mark(err, errs.ErrRepositoryFailure)
		}
	}

	// The room's availability signal is derived, never patched: dropping the
	// cache forces the next read to recompute from the remaining confirmed
	// bookings.
	c.invalidateCache(ctx)

	return nil
}

func (c *bookingCommandsImpl) invalidateCache(ctx context.Context) {
	if err := c.cache.Invalidate(ctx); err != nil {
		slog.Warn("failed to invalidate availability cache", "error", err)
	}
}
