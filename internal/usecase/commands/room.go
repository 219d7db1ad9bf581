package commands

import (
	"context"
	"log/slog"

	"stayledger/internal/domain/room"
	"stayledger/internal/infra"
	"stayledger/internal/pkg/errs"

	"github.com/google/uuid"
)

type AddRoomInput struct {
	Number           string
	RoomType         string
	NightlyRateCents int64
	Capacity         int
	Description      string
}

type RoomCommands interface {
	Add(ctx context.Context, input AddRoomInput) (*room.Room, error)
	Withdraw(ctx context.Context, roomID uuid.UUID) error
	Restore(ctx context.Context, roomID uuid.UUID) error
}

type roomCommandsImpl struct {
	rooms RoomRepository
	cache AvailabilityCache
}

func NewRoomCommands(rooms RoomRepository, cache AvailabilityCache) RoomCommands {
	return &roomCommandsImpl{rooms: rooms, cache: cache}
}

func (c *roomCommandsImpl) Add(ctx context.Context, input AddRoomInput) (*room.Room, error) {
	entity, err := room.NewRoom(input.Number, input.RoomType, input.NightlyRateCents, input.Capacity, input.Description)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidationFailed)
	}

	if _, err := c.rooms.Create(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrDuplicateRoomNumber)
		}
		return nil, errs.Mark(err, errs.ErrRepositoryFailure)
	}

	c.invalidate(ctx)
	return entity, nil
}

func (c *roomCommandsImpl) Withdraw(ctx context.Context, roomID uuid.UUID) error {
	return c.setLettable(ctx, roomID, false)
}

func (c *roomCommandsImpl) Restore(ctx context.Context, roomID uuid.UUID) error {
	return c.setLettable(ctx, roomID, true)
}

func (c *roomCommandsImpl) setLettable(ctx context.Context, roomID uuid.UUID, lettable bool) error {
	if err := c.rooms.SetLettable(ctx, roomID, lettable); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrRoomNotFound)
		}
		return errs.Mark(err, errs.ErrRepositoryFailure)
	}

	c.invalidate(ctx)
	return nil
}

func (c *roomCommandsImpl) invalidate(ctx context.Context) {
	if err := c.cache.Invalidate(ctx); err != nil {
		slog.Warn("failed to invalidate availability cache", "error", err)
	}
}
