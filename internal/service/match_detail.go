package service

import (
	"context"
	"errors"
	"fmt"

	"league-tracker/internal/aggregator"
	"league-tracker/internal/constants"
	"league-tracker/internal/domain"
	"league-tracker/internal/riot"
	"league-tracker/internal/stats"

	"github.com/rs/zerolog"
)

var ErrMatchNotFound = errors.New("match not found")

// MatchFetcher is the single-match slice of the Riot client.
type MatchFetcher interface {
	Match(ctx context.Context, cluster, matchID string) (*riot.MatchDTO, error)
}

// MatchDetailService resolves one match by id and renders the detail view
// for a named subject. Detail fetches are not cached: a single match is
// cheap and the ids requested rarely repeat within a TTL window.
type MatchDetailService struct {
	source MatchFetcher
	logger zerolog.Logger
}

func NewMatchDetailService(source MatchFetcher, logger zerolog.Logger) *MatchDetailService {
	return &MatchDetailService{source: source, logger: logger}
}

func (s *MatchDetailService) MatchDetail(ctx context.Context, matchID, region, riotID string) (*domain.MatchDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	cluster := riot.ClusterFor(region)
	dto, err := s.source.Match(ctx, cluster, matchID)
	if err != nil {
		s.logger.Error().Err(err).Str("match_id", matchID).Msg("match fetch failed")
		return nil, fmt.Errorf("fetching match %s: %w", matchID, err)
	}

	record, ok := aggregator.ToMatchRecord(dto)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMatchNotFound, matchID)
	}

	return stats.MatchDetail(record, riotID), nil
}
