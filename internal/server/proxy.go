package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"league-tracker/internal/constants"
	"league-tracker/internal/domain"
	"league-tracker/internal/fallback"
	"league-tracker/internal/service"
	"league-tracker/internal/stats"

	"github.com/rs/zerolog"
)

// FallbackHeader reports degraded-mode provenance to the client. Present
// and "true" whenever any part of the response came from fixtures.
const FallbackHeader = "X-Fallback-Data"

// DataProvider is what the proxy needs from the fallback layer.
type DataProvider interface {
	Dashboard(ctx context.Context, riotID, region string) (fallback.Result[*domain.DashboardSummary], error)
	History(ctx context.Context, riotID, region string) (fallback.Result[[]domain.MatchSummary], error)
	Analysis(ctx context.Context, riotID, region string) (fallback.Result[*domain.AnalysisSummary], error)
	Champions(ctx context.Context, riotID, region string) (fallback.Result[[]domain.ChampionCard], error)
	MatchDetail(ctx context.Context, matchID, region, riotID string) (fallback.Result[*domain.MatchDetail], error)
	News(ctx context.Context) []domain.NewsItem
}

// ProxyServer exposes the plain-GET JSON surface the mobile client
// consumes. Error propagation is deliberately asymmetric per endpoint:
// list-shaped endpoints fail open to empty payloads, single-object
// endpoints fail closed with an error status.
type ProxyServer struct {
	provider DataProvider
	logger   zerolog.Logger
}

func NewProxyServer(provider DataProvider, logger zerolog.Logger) *ProxyServer {
	return &ProxyServer{provider: provider, logger: logger}
}

// Handler mounts every route twice: bare and under /api/, for
// compatibility with both client generations.
func (s *ProxyServer) Handler() http.Handler {
	mux := http.NewServeMux()
	for _, prefix := range []string{"", "/api"} {
		mux.HandleFunc("GET "+prefix+"/dashboard", s.handleDashboard)
		mux.HandleFunc("GET "+prefix+"/historial", s.handleHistory)
		mux.HandleFunc("GET "+prefix+"/analisis", s.handleAnalysis)
		mux.HandleFunc("GET "+prefix+"/campeones", s.handleChampions)
		mux.HandleFunc("GET "+prefix+"/detalle", s.handleMatchDetail)
		mux.HandleFunc("GET "+prefix+"/noticias", s.handleNews)
	}
	return mux
}

// handleDashboard fails closed: 404 for an unknown player, 500 otherwise.
func (s *ProxyServer) handleDashboard(w http.ResponseWriter, r *http.Request) {
	riotID, region, ok := s.playerParams(w, r)
	if !ok {
		return
	}

	res, err := s.provider.Dashboard(r.Context(), riotID, region)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeResult(w, res.UsedFallback, res.Payload)
}

// handleHistory fails open: any failure degrades to an empty list.
func (s *ProxyServer) handleHistory(w http.ResponseWriter, r *http.Request) {
	riotID, region, ok := s.playerParams(w, r)
	if !ok {
		return
	}

	res, err := s.provider.History(r.Context(), riotID, region)
	if err != nil {
		s.logger.Warn().Err(err).Msg("historial degraded to empty list")
		s.writeResult(w, false, []domain.MatchSummary{})
		return
	}
	s.writeResult(w, res.UsedFallback, res.Payload)
}

// handleAnalysis fails open to an empty-shaped object.
func (s *ProxyServer) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	riotID, region, ok := s.playerParams(w, r)
	if !ok {
		return
	}

	res, err := s.provider.Analysis(r.Context(), riotID, region)
	if err != nil {
		s.logger.Warn().Err(err).Msg("analisis degraded to empty payload")
		s.writeResult(w, false, stats.EmptyAnalysis())
		return
	}
	s.writeResult(w, res.UsedFallback, res.Payload)
}

// handleChampions fails open: any failure degrades to an empty list.
func (s *ProxyServer) handleChampions(w http.ResponseWriter, r *http.Request) {
	riotID, region, ok := s.playerParams(w, r)
	if !ok {
		return
	}

	res, err := s.provider.Champions(r.Context(), riotID, region)
	if err != nil {
		s.logger.Warn().Err(err).Msg("campeones degraded to empty list")
		s.writeResult(w, false, []domain.ChampionCard{})
		return
	}
	s.writeResult(w, res.UsedFallback, res.Payload)
}

// handleMatchDetail fails closed like the dashboard.
func (s *ProxyServer) handleMatchDetail(w http.ResponseWriter, r *http.Request) {
	matchID := r.URL.Query().Get("partidaId")
	if matchID == "" {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Falta partidaId"})
		return
	}
	riotID := r.URL.Query().Get("invocador")
	region := s.regionParam(r)

	res, err := s.provider.MatchDetail(r.Context(), matchID, region, riotID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeResult(w, res.UsedFallback, res.Payload)
}

// handleNews serves static content and never fails.
func (s *ProxyServer) handleNews(w http.ResponseWriter, r *http.Request) {
	s.writeResult(w, false, s.provider.News(r.Context()))
}

func (s *ProxyServer) playerParams(w http.ResponseWriter, r *http.Request) (riotID, region string, ok bool) {
	riotID = r.URL.Query().Get("invocador")
	if riotID == "" {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Falta invocador"})
		return "", "", false
	}
	return riotID, s.regionParam(r), true
}

func (s *ProxyServer) regionParam(r *http.Request) string {
	if region := r.URL.Query().Get("region"); region != "" {
		return region
	}
	return constants.DefaultRegion
}

func (s *ProxyServer) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrPlayerNotFound):
		s.writeJSON(w, http.StatusNotFound, map[string]string{"error": "No encontrado"})
	case errors.Is(err, service.ErrMatchNotFound):
		s.writeJSON(w, http.StatusNotFound, map[string]string{"error": "No encontrada"})
	default:
		s.logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		s.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

func (s *ProxyServer) writeResult(w http.ResponseWriter, usedFallback bool, payload any) {
	if usedFallback {
		w.Header().Set(FallbackHeader, "true")
	}
	s.writeJSON(w, http.StatusOK, payload)
}

func (s *ProxyServer) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error().Err(err).Msg("encoding response failed")
	}
}
