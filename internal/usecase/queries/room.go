package queries

import (
	"context"
	"log/slog"
	"time"

	"stayledger/internal/domain/booking"
	"stayledger/internal/infra"
	"stayledger/internal/pkg/errs"

	"github.com/google/uuid"
)

type RoomQueries interface {
	List(ctx context.Context) ([]RoomView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	Available(ctx context.Context, checkIn, checkOut time.Time) ([]RoomView, error)
}

type roomQueriesImpl struct {
	rooms    RoomReader
	bookings BookingReader
	cache    SearchCache
}

func NewRoomQueries(rooms RoomReader, bookings BookingReader, cache SearchCache) RoomQueries {
	return &roomQueriesImpl{rooms: rooms, bookings: bookings, cache: cache}
}

func (q *roomQueriesImpl) List(ctx context.Context) ([]RoomView, error) {
	entities, err := q.rooms.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrRepositoryFailure)
	}
	views := make([]RoomView, 0, len(entities))
	for _, r := range entities {
		views = append(views, toRoomView(r))
	}
	return views, nil
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	entity, err := q.rooms.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrRoomNotFound)
		}
		return nil, errs.Mark(err, errs.ErrRepositoryFailure)
	}
	view := toRoomView(entity)
	return &view, nil
}

// Available resolves the rooms free over the requested range. Results are
// always derived from the confirmed booking set; the cache only short-cuts
// repeated identical searches within one generation.
func (q *roomQueriesImpl) Available(ctx context.Context, checkIn, checkOut time.Time) ([]RoomView, error) {
	stay, err := booking.NewStayRange(checkIn, checkOut)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidRange)
	}

	gen, err := q.cache.Generation(ctx)
	if err != nil {
		slog.Warn("availability cache generation lookup failed", "error", err)
		gen = -1
	}
	if gen >= 0 {
		var cached []RoomView
		hit, err := q.cache.GetSearch(ctx, gen, stay, &cached)
		if err != nil {
			slog.Warn("availability cache read failed", "error", err)
		} else if hit {
			return cached, nil
		}
	}

	rooms, err := q.rooms.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrRepositoryFailure)
	}
	confirmed, err := q.bookings.ListConfirmed(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrRepositoryFailure)
	}

	free := booking.AvailableRooms(rooms, confirmed, stay)
	views := make([]RoomView, 0, len(free))
	for _, r := range free {
		views = append(views, toRoomView(r))
	}

	if gen >= 0 {
		if err := q.cache.SetSearch(ctx, gen, stay, views); err != nil {
			slog.Warn("availability cache write failed", "error", err)
		}
	}
	return views, nil
}
