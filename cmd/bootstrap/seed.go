package bootstrap

import (
	"context"
	"log/slog"

	"stayledger/internal/pkg/config"
	"stayledger/internal/pkg/errs"
	"stayledger/internal/usecase/commands"

	"go.uber.org/fx"
)

var SeedModule = fx.Module("seed",
	fx.Invoke(seedDemoData),
)

// seedDemoData loads a small demo inventory when STORE_SEED is set. Duplicate
// errors are ignored so repeated startups converge on the same state.
func seedDemoData(cfg config.Config, roomCmds commands.RoomCommands, clientCmds commands.ClientCommands) error {
	if !cfg.Store.Seed {
		return nil
	}

	ctx := context.Background()

	rooms := []commands.AddRoomInput{
		{Number: "101", RoomType: "standard", NightlyRateCents: 2500, Capacity: 2, Description: "Standard double on the first floor"},
		{Number: "201", RoomType: "suite", NightlyRateCents: 5000, Capacity: 4, Description: "Suite with a balcony"},
	}
	for _, in := range rooms {
		if _, err := roomCmds.Add(ctx, in); err != nil {
			if errs.Is(err, errs.ErrDuplicateRoomNumber) {
				continue
			}
			return err
		}
		slog.Info("seeded room", "number", in.Number)
	}

	clients := []commands.RegisterClientInput{
		{FirstName: "Ivan", LastName: "Ivanov", PassportNumber: "1234567890", Email: "ivan@example.com"},
		{FirstName: "Anna", LastName: "Petrova", PassportNumber: "4455667788", Email: "anna@example.com"},
	}
	for _, in := range clients {
		if _, err := clientCmds.Register(ctx, in); err != nil {
			if errs.Is(err, errs.ErrDuplicatePassport) {
				continue
			}
			return err
		}
		slog.Info("seeded client", "passport", in.PassportNumber)
	}

	return nil
}
