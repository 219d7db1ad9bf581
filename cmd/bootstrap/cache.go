package bootstrap

import (
	"stayledger/internal/infra/rediscache"
	"stayledger/internal/pkg/config"
	"stayledger/internal/usecase/commands"
	"stayledger/internal/usecase/queries"

	"go.uber.org/fx"
)

// availabilityCache is what both cache implementations satisfy: the command
// side only invalidates, the query side reads through generations.
type availabilityCache interface {
	commands.AvailabilityCache
	queries.SearchCache
}

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewAvailabilityCache,
		func(c availabilityCache) commands.AvailabilityCache { return c },
		func(c availabilityCache) queries.SearchCache { return c },
	),
)

// NewAvailabilityCache returns a no-op cache when no Redis address is
// configured; availability is then computed fresh on every search.
func NewAvailabilityCache(cfg config.Config) availabilityCache {
	if cfg.Redis.Addr == "" {
		return rediscache.NewNoop()
	}
	return rediscache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.TTL)
}
