package fx

import (
	"context"
	"time"

	"league-tracker/internal/aggregator"
	"league-tracker/internal/cache"
	"league-tracker/internal/config"
	"league-tracker/internal/constants"
	"league-tracker/internal/domain"
	"league-tracker/internal/fallback"
	"league-tracker/internal/logger"
	"league-tracker/internal/riot"
	"league-tracker/internal/server"
	"league-tracker/internal/service"

	"go.uber.org/fx"
)

var Module = fx.Options(
	logger.Module,
	config.Module,
	// upstream client
	fx.Provide(riot.NewClient),
	fx.Provide(func(c *riot.Client) aggregator.MatchSource { return c }),
	fx.Provide(func(c *riot.Client) service.MatchFetcher { return c }),
	// aggregation core
	fx.Provide(cache.NewResponseCache[*domain.AggregateResult]),
	fx.Provide(aggregator.New),
	// services
	fx.Provide(service.NewStatsService),
	fx.Provide(service.NewMatchDetailService),
	// fallback layer
	fx.Provide(fallback.NewProvider),
	fx.Provide(func(p *fallback.Provider) server.DataProvider { return p }),
	// http surface
	fx.Provide(server.NewProxyServer),
	fx.Invoke(sweepCache),
)

// sweepCache drops expired aggregates periodically so the store does not
// grow with every distinct player looked up.
func sweepCache(lc fx.Lifecycle, store *cache.Store[*domain.AggregateResult]) {
	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ticker := time.NewTicker(constants.ResponseCacheTTL)
			go func() {
				defer ticker.Stop()
				for {
					select {
					case <-ticker.C:
						store.Sweep()
					case <-done:
						return
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(done)
			return nil
		},
	})
}
