package aggregator

import (
	"context"
	"strings"

	"league-tracker/internal/constants"
	"league-tracker/internal/domain"
	"league-tracker/internal/riot"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// MatchSource is the slice of the Riot client the aggregator consumes.
type MatchSource interface {
	AccountByRiotID(ctx context.Context, cluster, name, tag string) (*riot.AccountDTO, error)
	SummonerByPUUID(ctx context.Context, region, puuid string) (*riot.SummonerDTO, error)
	MatchIDs(ctx context.Context, cluster, puuid string, count int) ([]string, error)
	Match(ctx context.Context, cluster, matchID string) (*riot.MatchDTO, error)
}

type Aggregator struct {
	source MatchSource
	logger zerolog.Logger
}

func New(source MatchSource, logger zerolog.Logger) *Aggregator {
	return &Aggregator{source: source, logger: logger}
}

// Aggregate resolves a player's identity, profile and most recent matches
// as one cohesive fetch. An unresolvable identity yields (nil, nil): the
// one soft hard-failure propagation point. Transport errors anywhere in the
// pipeline propagate as errors for the fallback layer to catch. Individual
// matches that come back absent or malformed are silently dropped.
func (a *Aggregator) Aggregate(ctx context.Context, riotID, region string, sampleSize int) (*domain.AggregateResult, error) {
	name, tag := splitRiotID(riotID)
	cluster := riot.ClusterFor(region)

	account, err := a.source.AccountByRiotID(ctx, cluster, name, tag)
	if err != nil {
		return nil, err
	}
	if account == nil || account.PUUID == "" {
		a.logger.Info().Str("riot_id", riotID).Str("region", region).Msg("account not found")
		return nil, nil
	}

	identity := domain.PlayerIdentity{
		PUUID:    account.PUUID,
		GameName: account.GameName,
		TagLine:  account.TagLine,
	}

	summoner, err := a.source.SummonerByPUUID(ctx, region, identity.PUUID)
	if err != nil {
		return nil, err
	}
	profile := domain.ProfileRecord{}
	if summoner != nil {
		profile = domain.ProfileRecord{ID: summoner.ID, Level: summoner.SummonerLevel}
	}

	ids, err := a.source.MatchIDs(ctx, cluster, identity.PUUID, sampleSize)
	if err != nil {
		return nil, err
	}

	matches, err := a.fetchMatches(ctx, cluster, ids)
	if err != nil {
		return nil, err
	}

	a.logger.Debug().
		Str("puuid", identity.PUUID).
		Int("requested", sampleSize).
		Int("retrieved", len(matches)).
		Msg("aggregation complete")

	return &domain.AggregateResult{
		Identity: identity,
		Profile:  profile,
		Matches:  matches,
	}, nil
}

// fetchMatches fans out one fetch per id and waits for all of them to
// settle before filtering, preserving the most-recent-first id order.
func (a *Aggregator) fetchMatches(ctx context.Context, cluster string, ids []string) ([]domain.MatchRecord, error) {
	fetched := make([]*riot.MatchDTO, len(ids))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(constants.MaxConcurrentMatchFetches)
	for i, id := range ids {
		g.Go(func() error {
			dto, err := a.source.Match(gCtx, cluster, id)
			if err != nil {
				return err
			}
			fetched[i] = dto
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	matches := make([]domain.MatchRecord, 0, len(ids))
	for _, dto := range fetched {
		record, ok := ToMatchRecord(dto)
		if !ok {
			continue
		}
		matches = append(matches, record)
	}
	return matches, nil
}

// ToMatchRecord validates one upstream payload into the typed record. A
// match with no info block or no participants is corrupted or removed and
// gets dropped.
func ToMatchRecord(dto *riot.MatchDTO) (domain.MatchRecord, bool) {
	if dto == nil || dto.Info == nil || len(dto.Info.Participants) == 0 {
		return domain.MatchRecord{}, false
	}

	participants := make([]domain.ParticipantRecord, 0, len(dto.Info.Participants))
	for _, p := range dto.Info.Participants {
		participants = append(participants, domain.ParticipantRecord{
			PUUID:          p.PUUID,
			GameName:       p.RiotIDGameName,
			TagLine:        p.RiotIDTagline,
			SummonerName:   p.SummonerName,
			ChampionName:   p.ChampionName,
			TeamID:         p.TeamID,
			TeamPosition:   p.TeamPosition,
			Kills:          p.Kills,
			Deaths:         p.Deaths,
			Assists:        p.Assists,
			GoldEarned:     p.GoldEarned,
			MinionsKilled:  p.TotalMinionsKilled,
			NeutralMinions: p.NeutralMinionsKilled,
			DamageToChamps: p.TotalDamageDealtToChampions,
			VisionScore:    p.VisionScore,
			Win:            p.Win,
		})
	}

	return domain.MatchRecord{
		ID:              dto.Metadata.MatchID,
		DurationSeconds: dto.Info.GameDuration,
		CreationMillis:  dto.Info.GameCreation,
		Participants:    participants,
	}, true
}

// splitRiotID breaks "name#tag" apart. A missing tag leaves it empty so
// the account lookup fails softly downstream.
func splitRiotID(riotID string) (name, tag string) {
	parts := strings.SplitN(riotID, "#", 2)
	name = parts[0]
	if len(parts) == 2 {
		tag = parts[1]
	}
	return name, tag
}
