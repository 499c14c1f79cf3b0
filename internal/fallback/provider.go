package fallback

import (
	"context"

	"league-tracker/internal/config"
	"league-tracker/internal/domain"
	"league-tracker/internal/fixture"
	"league-tracker/internal/service"

	"github.com/rs/zerolog"
)

// Provider wraps the live statistics services with per-resource fixture
// substitution. With fallback disallowed it runs fail-closed and re-raises
// the live errors unchanged.
type Provider struct {
	live   *service.StatsService
	detail *service.MatchDetailService
	allow  bool
	logger zerolog.Logger
}

func NewProvider(live *service.StatsService, detail *service.MatchDetailService, cfg *config.Config, logger zerolog.Logger) *Provider {
	return &Provider{
		live:   live,
		detail: detail,
		allow:  cfg.AllowFallback,
		logger: logger,
	}
}

func (p *Provider) Dashboard(ctx context.Context, riotID, region string) (Result[*domain.DashboardSummary], error) {
	res, err := With(
		func() (*domain.DashboardSummary, error) { return p.live.Dashboard(ctx, riotID, region) },
		func() (*domain.DashboardSummary, error) { return fixture.Dashboard(), nil },
		p.allow,
	)
	p.note("dashboard", res.UsedFallback)
	return res, err
}

func (p *Provider) History(ctx context.Context, riotID, region string) (Result[[]domain.MatchSummary], error) {
	res, err := With(
		func() ([]domain.MatchSummary, error) { return p.live.History(ctx, riotID, region) },
		func() ([]domain.MatchSummary, error) { return fixture.History(), nil },
		p.allow,
	)
	p.note("historial", res.UsedFallback)
	return res, err
}

func (p *Provider) Analysis(ctx context.Context, riotID, region string) (Result[*domain.AnalysisSummary], error) {
	res, err := With(
		func() (*domain.AnalysisSummary, error) { return p.live.Analysis(ctx, riotID, region) },
		func() (*domain.AnalysisSummary, error) { return fixture.Analysis(), nil },
		p.allow,
	)
	p.note("analisis", res.UsedFallback)
	return res, err
}

func (p *Provider) Champions(ctx context.Context, riotID, region string) (Result[[]domain.ChampionCard], error) {
	res, err := With(
		func() ([]domain.ChampionCard, error) { return p.live.Champions(ctx, riotID, region) },
		func() ([]domain.ChampionCard, error) { return fixture.Champions(), nil },
		p.allow,
	)
	p.note("campeones", res.UsedFallback)
	return res, err
}

func (p *Provider) MatchDetail(ctx context.Context, matchID, region, riotID string) (Result[*domain.MatchDetail], error) {
	res, err := With(
		func() (*domain.MatchDetail, error) { return p.detail.MatchDetail(ctx, matchID, region, riotID) },
		func() (*domain.MatchDetail, error) { return fixture.MatchDetail(matchID), nil },
		p.allow,
	)
	p.note("detalle", res.UsedFallback)
	return res, err
}

func (p *Provider) News(ctx context.Context) []domain.NewsItem {
	return p.live.News(ctx)
}

// LoadAll fetches the five independent resources of the composite load.
// One UsedFallback flag covers the whole composite: the logical OR of the
// five sub-results, so a single degraded sub-resource marks the entire
// load degraded.
func (p *Provider) LoadAll(ctx context.Context, riotID, region string) (Result[domain.CompleteData], error) {
	dashboard, err := p.Dashboard(ctx, riotID, region)
	if err != nil {
		return Result[domain.CompleteData]{}, err
	}
	history, err := p.History(ctx, riotID, region)
	if err != nil {
		return Result[domain.CompleteData]{}, err
	}
	analysis, err := p.Analysis(ctx, riotID, region)
	if err != nil {
		return Result[domain.CompleteData]{}, err
	}
	champions, err := p.Champions(ctx, riotID, region)
	if err != nil {
		return Result[domain.CompleteData]{}, err
	}
	news := p.News(ctx)

	return Result[domain.CompleteData]{
		Payload: domain.CompleteData{
			Dashboard: dashboard.Payload,
			Historial: history.Payload,
			Analisis:  analysis.Payload,
			Campeones: champions.Payload,
			Noticias:  news,
		},
		UsedFallback: dashboard.UsedFallback ||
			history.UsedFallback ||
			analysis.UsedFallback ||
			champions.UsedFallback,
	}, nil
}

// LoadAllWithRetry is the state-holder boundary: a failed composite load
// gets exactly one automatic retry of the whole composite before the hard
// error surfaces. The retry is layered on top of, and distinct from, the
// per-resource fixture substitution.
func (p *Provider) LoadAllWithRetry(ctx context.Context, riotID, region string) (Result[domain.CompleteData], error) {
	res, err := p.LoadAll(ctx, riotID, region)
	if err == nil {
		return res, nil
	}
	p.logger.Warn().Err(err).Str("riot_id", riotID).Msg("composite load failed, retrying once")
	return p.LoadAll(ctx, riotID, region)
}

func (p *Provider) note(resource string, degraded bool) {
	if degraded {
		p.logger.Warn().Str("resource", resource).Msg("serving fallback data")
	}
}
