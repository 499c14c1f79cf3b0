package service

import (
	"context"
	"errors"
	"testing"

	"league-tracker/internal/domain"
	"league-tracker/internal/riot"

	"github.com/rs/zerolog"
)

type fakeFetcher struct {
	match       *riot.MatchDTO
	err         error
	seenCluster string
}

func (f *fakeFetcher) Match(ctx context.Context, cluster, matchID string) (*riot.MatchDTO, error) {
	f.seenCluster = cluster
	return f.match, f.err
}

func detailMatch() *riot.MatchDTO {
	return &riot.MatchDTO{
		Metadata: riot.MatchMetadataDTO{MatchID: "EUW1_77"},
		Info: &riot.MatchInfoDTO{
			GameDuration: 2100,
			Participants: []riot.ParticipantDTO{
				{PUUID: "p1", RiotIDGameName: "Jugador", RiotIDTagline: "EUW", ChampionName: "Ahri", TeamID: 100, Kills: 8, Deaths: 3, Assists: 11, Win: true},
				{PUUID: "p2", RiotIDGameName: "Rival", RiotIDTagline: "EUW", ChampionName: "Zed", TeamID: 200, Kills: 4, Deaths: 8, Assists: 2},
			},
		},
	}
}

func TestMatchDetailResolvesSubject(t *testing.T) {
	f := &fakeFetcher{match: detailMatch()}
	svc := NewMatchDetailService(f, zerolog.Nop())

	d, err := svc.MatchDetail(context.Background(), "EUW1_77", "na1", "jugador#euw")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.ID != "EUW1_77" || d.CampeonPrincipal != "Ahri" || d.Resultado != domain.ResultWin {
		t.Fatalf("detail = %+v", d)
	}
	if f.seenCluster != "americas" {
		t.Fatalf("cluster = %q, want americas", f.seenCluster)
	}
}

func TestMatchDetailMissingMatch(t *testing.T) {
	svc := NewMatchDetailService(&fakeFetcher{match: nil}, zerolog.Nop())

	_, err := svc.MatchDetail(context.Background(), "EUW1_NOPE", "euw1", "Jugador#EUW")
	if !errors.Is(err, ErrMatchNotFound) {
		t.Fatalf("err = %v, want ErrMatchNotFound", err)
	}
}

func TestMatchDetailTransportErrorPropagates(t *testing.T) {
	boom := errors.New("timeout")
	svc := NewMatchDetailService(&fakeFetcher{err: boom}, zerolog.Nop())

	_, err := svc.MatchDetail(context.Background(), "EUW1_77", "euw1", "Jugador#EUW")
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped %v", err, boom)
	}
	if errors.Is(err, ErrMatchNotFound) {
		t.Fatal("transport failure must not read as not-found")
	}
}
