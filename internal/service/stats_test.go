package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"league-tracker/internal/aggregator"
	"league-tracker/internal/cache"
	"league-tracker/internal/domain"
	"league-tracker/internal/riot"

	"github.com/rs/zerolog"
)

type fakeSource struct {
	mu sync.Mutex

	account    *riot.AccountDTO
	accountErr error
	matchIDs   []string
	matches    map[string]*riot.MatchDTO

	accountCalls int
}

func (f *fakeSource) AccountByRiotID(ctx context.Context, cluster, name, tag string) (*riot.AccountDTO, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.accountCalls++
	return f.account, f.accountErr
}

func (f *fakeSource) SummonerByPUUID(ctx context.Context, region, puuid string) (*riot.SummonerDTO, error) {
	return &riot.SummonerDTO{ID: "s1", SummonerLevel: 42}, nil
}

func (f *fakeSource) MatchIDs(ctx context.Context, cluster, puuid string, count int) ([]string, error) {
	return f.matchIDs, nil
}

func (f *fakeSource) Match(ctx context.Context, cluster, matchID string) (*riot.MatchDTO, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.matches[matchID], nil
}

func playedMatch(id string) *riot.MatchDTO {
	return &riot.MatchDTO{
		Metadata: riot.MatchMetadataDTO{MatchID: id},
		Info: &riot.MatchInfoDTO{
			GameDuration: 1500,
			Participants: []riot.ParticipantDTO{
				{PUUID: "p1", ChampionName: "Lux", TeamID: 100, Kills: 3, Deaths: 1, Assists: 6, Win: true},
			},
		},
	}
}

func newTestService(src *fakeSource) (*StatsService, func(time.Duration)) {
	log := zerolog.Nop()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	store := cache.New[*domain.AggregateResult](5*time.Minute, clock)
	svc := NewStatsService(aggregator.New(src, log), store, log)
	return svc, func(d time.Duration) { now = now.Add(d) }
}

func TestDashboardCachesTheAggregationWindow(t *testing.T) {
	src := &fakeSource{
		account:  &riot.AccountDTO{PUUID: "p1", GameName: "Jugador", TagLine: "EUW"},
		matchIDs: []string{"m1"},
		matches:  map[string]*riot.MatchDTO{"m1": playedMatch("m1")},
	}
	svc, _ := newTestService(src)

	for i := 0; i < 3; i++ {
		d, err := svc.Dashboard(context.Background(), "Jugador#EUW", "euw1")
		if err != nil {
			t.Fatalf("call %d failed: %v", i, err)
		}
		if d.Invocador.NombreInvocador != "Jugador#EUW" {
			t.Fatalf("payload = %+v", d.Invocador)
		}
	}

	if src.accountCalls != 1 {
		t.Fatalf("upstream fetched %d times inside one TTL window, want 1", src.accountCalls)
	}
}

func TestSampleSizesDoNotShareCacheWindows(t *testing.T) {
	src := &fakeSource{
		account:  &riot.AccountDTO{PUUID: "p1", GameName: "Jugador", TagLine: "EUW"},
		matchIDs: []string{"m1"},
		matches:  map[string]*riot.MatchDTO{"m1": playedMatch("m1")},
	}
	svc, _ := newTestService(src)

	ctx := context.Background()
	if _, err := svc.Dashboard(ctx, "Jugador#EUW", "euw1"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.History(ctx, "Jugador#EUW", "euw1"); err != nil {
		t.Fatal(err)
	}
	// analysis shares the dashboard's ten-match window
	if _, err := svc.Analysis(ctx, "Jugador#EUW", "euw1"); err != nil {
		t.Fatal(err)
	}

	if src.accountCalls != 2 {
		t.Fatalf("upstream fetched %d times, want 2", src.accountCalls)
	}
}

func TestExpiredWindowRefetches(t *testing.T) {
	src := &fakeSource{
		account:  &riot.AccountDTO{PUUID: "p1", GameName: "Jugador", TagLine: "EUW"},
		matchIDs: []string{"m1"},
		matches:  map[string]*riot.MatchDTO{"m1": playedMatch("m1")},
	}
	svc, advance := newTestService(src)

	ctx := context.Background()
	if _, err := svc.Dashboard(ctx, "Jugador#EUW", "euw1"); err != nil {
		t.Fatal(err)
	}
	advance(6 * time.Minute)
	if _, err := svc.Dashboard(ctx, "Jugador#EUW", "euw1"); err != nil {
		t.Fatal(err)
	}

	if src.accountCalls != 2 {
		t.Fatalf("upstream fetched %d times across two windows, want 2", src.accountCalls)
	}
}

func TestUnknownPlayerMapsToNotFound(t *testing.T) {
	svc, _ := newTestService(&fakeSource{account: nil})

	_, err := svc.Dashboard(context.Background(), "Nadie#EUW", "euw1")
	if !errors.Is(err, ErrPlayerNotFound) {
		t.Fatalf("err = %v, want ErrPlayerNotFound", err)
	}
}

func TestNotFoundIsNotCached(t *testing.T) {
	src := &fakeSource{account: nil}
	svc, _ := newTestService(src)

	ctx := context.Background()
	if _, err := svc.Dashboard(ctx, "Nadie#EUW", "euw1"); !errors.Is(err, ErrPlayerNotFound) {
		t.Fatalf("err = %v", err)
	}

	// the player registers between the two requests
	src.mu.Lock()
	src.account = &riot.AccountDTO{PUUID: "p1", GameName: "Nadie", TagLine: "EUW"}
	src.matchIDs = nil
	src.mu.Unlock()

	if _, err := svc.Dashboard(ctx, "Nadie#EUW", "euw1"); err != nil {
		t.Fatalf("second lookup should hit the upstream again: %v", err)
	}
}

func TestTransportErrorIsWrapped(t *testing.T) {
	boom := errors.New("connection reset")
	svc, _ := newTestService(&fakeSource{accountErr: boom})

	_, err := svc.Dashboard(context.Background(), "Jugador#EUW", "euw1")
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped %v", err, boom)
	}
	if errors.Is(err, ErrPlayerNotFound) {
		t.Fatal("transport failure must not read as not-found")
	}
}

func TestNewsNeverFails(t *testing.T) {
	svc, _ := newTestService(&fakeSource{})

	items := svc.News(context.Background())
	if len(items) == 0 {
		t.Fatal("news feed is empty")
	}
	for _, it := range items {
		if it.Titulo == "" || it.Descripcion == "" || it.URL == "" {
			t.Fatalf("incomplete news item: %+v", it)
		}
	}
}
