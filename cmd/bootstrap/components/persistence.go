package components

import (
	"context"
	"fmt"

	"stayledger/internal/infra/db"
	"stayledger/internal/infra/flatfile"
	"stayledger/internal/infra/postgres"
	"stayledger/internal/pkg/clock"
	"stayledger/internal/pkg/config"
	"stayledger/internal/usecase/commands"
	"stayledger/internal/usecase/queries"

	"go.uber.org/fx"
)

// Each backend's repositories serve both the command ports and the query
// readers, so the stores are typed as the union of the two.
type RoomStore interface {
	commands.RoomRepository
	queries.RoomReader
}

type ClientStore interface {
	commands.ClientRepository
	queries.ClientReader
}

type BookingStore interface {
	commands.BookingRepository
	queries.BookingReader
}

type Persistence struct {
	Rooms    RoomStore
	Clients  ClientStore
	Bookings BookingStore
}

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewPersistence,
		func(p *Persistence) commands.RoomRepository { return p.Rooms },
		func(p *Persistence) commands.ClientRepository { return p.Clients },
		func(p *Persistence) commands.BookingRepository { return p.Bookings },
		func(p *Persistence) queries.RoomReader { return p.Rooms },
		func(p *Persistence) queries.ClientReader { return p.Clients },
		func(p *Persistence) queries.BookingReader { return p.Bookings },
	),
)

func NewPersistence(lc fx.Lifecycle, cfg config.Config, clk clock.Clock) (*Persistence, error) {
	switch cfg.Store.Backend {
	case "postgres":
		pool, cleanup, err := db.Connect(cfg.DB)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				if cleanup != nil {
					cleanup()
				}
				return nil
			},
		})
		return &Persistence{
			Rooms:    postgres.NewRoomRepository(pool),
			Clients:  postgres.NewClientRepository(pool),
			Bookings: postgres.NewBookingRepository(pool),
		}, nil

	case "flatfile":
		store, err := flatfile.NewStoreWithClock(cfg.Store.DataDir, clk)
		if err != nil {
			return nil, err
		}
		return &Persistence{
			Rooms:    flatfile.NewRoomRepository(store),
			Clients:  flatfile.NewClientRepository(store),
			Bookings: flatfile.NewBookingRepository(store),
		}, nil

	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
