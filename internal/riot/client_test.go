package riot

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"league-tracker/internal/config"
)

func newTestClient() *Client {
	return NewClient(&config.Config{RiotAPIKey: "test-key"})
}

func TestGetJSONDecodesSuccess(t *testing.T) {
	var gotToken string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("X-Riot-Token")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"puuid":"p1","gameName":"Jugador","tagLine":"EUW"}`))
	}))
	defer srv.Close()

	account, err := getJSON[AccountDTO](context.Background(), newTestClient(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account == nil || account.PUUID != "p1" || account.GameName != "Jugador" {
		t.Fatalf("account = %+v", account)
	}
	if gotToken != "test-key" {
		t.Fatalf("token header = %q, want test-key", gotToken)
	}
}

func TestGetJSONNotFoundIsAbsence(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"status":{"status_code":404}}`, http.StatusNotFound)
	}))
	defer srv.Close()

	account, err := getJSON[AccountDTO](context.Background(), newTestClient(), srv.URL)
	if err != nil {
		t.Fatalf("404 must not be an error, got %v", err)
	}
	if account != nil {
		t.Fatalf("404 must yield nil, got %+v", account)
	}
}

func TestGetJSONRejectedKey(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		_, err := getJSON[AccountDTO](context.Background(), newTestClient(), srv.URL)
		srv.Close()
		if !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("status %d: err = %v, want ErrUnauthorized", status, err)
		}
	}
}

func TestGetJSONRateLimitedIsAbsence(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	m, err := getJSON[MatchDTO](context.Background(), newTestClient(), srv.URL)
	if err != nil || m != nil {
		t.Fatalf("429 must degrade to absence, got %+v, %v", m, err)
	}
}

func TestGetJSONMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"puuid":`))
	}))
	defer srv.Close()

	_, err := getJSON[AccountDTO](context.Background(), newTestClient(), srv.URL)
	if err == nil {
		t.Fatal("expected a decode error")
	}
}

func TestMatchDecodesParticipants(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"metadata": {"matchId": "EUW1_1"},
			"info": {
				"gameCreation": 1700000000000,
				"gameDuration": 1845,
				"participants": [{
					"puuid": "p1",
					"riotIdGameName": "Jugador",
					"riotIdTagline": "EUW",
					"championName": "Ahri",
					"teamId": 100,
					"teamPosition": "MIDDLE",
					"kills": 7, "deaths": 2, "assists": 9,
					"goldEarned": 12500,
					"totalMinionsKilled": 180,
					"neutralMinionsKilled": 12,
					"totalDamageDealtToChampions": 21000,
					"visionScore": 18,
					"win": true
				}]
			}
		}`))
	}))
	defer srv.Close()

	m, err := getJSON[MatchDTO](context.Background(), newTestClient(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Metadata.MatchID != "EUW1_1" || m.Info == nil || m.Info.GameDuration != 1845 {
		t.Fatalf("match = %+v", m)
	}
	p := m.Info.Participants[0]
	if p.RiotIDGameName != "Jugador" || p.TotalMinionsKilled != 180 || !p.Win {
		t.Fatalf("participant = %+v", p)
	}
}
