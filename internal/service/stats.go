package service

import (
	"context"
	"errors"
	"fmt"

	"league-tracker/internal/aggregator"
	"league-tracker/internal/cache"
	"league-tracker/internal/constants"
	"league-tracker/internal/domain"
	"league-tracker/internal/fixture"
	"league-tracker/internal/stats"

	"github.com/rs/zerolog"
)

// ErrPlayerNotFound marks an aggregation whose root identity lookup came
// back empty. Distinct from transport failures: the upstream answered, the
// player just does not exist.
var ErrPlayerNotFound = errors.New("player not found")

// StatsService orchestrates one aggregation cycle per request: cache
// lookup, upstream aggregation, then a pure statistics pass. The cache
// protects the rate-limited upstream from redundant fetches of the same
// (riot id, region, sample size) window.
type StatsService struct {
	agg    *aggregator.Aggregator
	cache  *cache.Store[*domain.AggregateResult]
	logger zerolog.Logger
}

func NewStatsService(agg *aggregator.Aggregator, store *cache.Store[*domain.AggregateResult], logger zerolog.Logger) *StatsService {
	return &StatsService{agg: agg, cache: store, logger: logger}
}

func (s *StatsService) Dashboard(ctx context.Context, riotID, region string) (*domain.DashboardSummary, error) {
	agg, err := s.coreData(ctx, riotID, region, constants.DashboardSampleSize)
	if err != nil {
		return nil, err
	}
	return stats.Dashboard(agg, region), nil
}

func (s *StatsService) History(ctx context.Context, riotID, region string) ([]domain.MatchSummary, error) {
	agg, err := s.coreData(ctx, riotID, region, constants.HistorySampleSize)
	if err != nil {
		return nil, err
	}
	return stats.History(agg), nil
}

func (s *StatsService) Analysis(ctx context.Context, riotID, region string) (*domain.AnalysisSummary, error) {
	agg, err := s.coreData(ctx, riotID, region, constants.AnalysisSampleSize)
	if err != nil {
		return nil, err
	}
	return stats.Analysis(agg), nil
}

func (s *StatsService) Champions(ctx context.Context, riotID, region string) ([]domain.ChampionCard, error) {
	agg, err := s.coreData(ctx, riotID, region, constants.ChampionsSampleSize)
	if err != nil {
		return nil, err
	}
	return stats.Champions(agg), nil
}

// News serves the static feed. It has no live path and never fails.
func (s *StatsService) News(ctx context.Context) []domain.NewsItem {
	_ = ctx
	return fixture.News()
}

// coreData returns the aggregate for one cache window, fetching it from
// the upstream at most once per TTL. Concurrent callers inside a valid
// window all see the same cached payload.
func (s *StatsService) coreData(ctx context.Context, riotID, region string, sampleSize int) (*domain.AggregateResult, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	key := cache.Key(riotID, region, sampleSize)
	if agg, ok := s.cache.Get(key); ok {
		s.logger.Debug().Str("key", key).Msg("returning cached aggregate")
		return agg, nil
	}

	agg, err := s.agg.Aggregate(ctx, riotID, region, sampleSize)
	if err != nil {
		s.logger.Error().Err(err).Str("riot_id", riotID).Str("region", region).Msg("aggregation failed")
		return nil, fmt.Errorf("aggregating %s: %w", riotID, err)
	}
	if agg == nil {
		return nil, fmt.Errorf("%w: %s (%s)", ErrPlayerNotFound, riotID, region)
	}

	s.cache.Put(key, agg)
	s.logger.Info().
		Str("riot_id", riotID).
		Str("region", region).
		Int("matches", len(agg.Matches)).
		Msg("aggregate fetched")
	return agg, nil
}
