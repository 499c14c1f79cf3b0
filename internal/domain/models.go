package domain

import "strings"

// PlayerIdentity is the account-level identity resolved from a Riot ID
// ("name#tag") triple. Immutable once resolved; looked up once per
// aggregation cycle.
type PlayerIdentity struct {
	PUUID    string
	GameName string
	TagLine  string
}

// RiotID reassembles the composite "name#tag" form.
func (p PlayerIdentity) RiotID() string {
	return p.GameName + "#" + p.TagLine
}

// ProfileRecord is the per-region summoner profile, 1:1 with a
// PlayerIdentity and refreshed on every aggregation.
type ProfileRecord struct {
	ID    string
	Level int
}

// ParticipantRecord holds one player's facts for one match.
type ParticipantRecord struct {
	PUUID          string
	GameName       string
	TagLine        string
	SummonerName   string
	ChampionName   string
	TeamID         int
	TeamPosition   string
	Kills          int
	Deaths         int
	Assists        int
	GoldEarned     int
	MinionsKilled  int
	NeutralMinions int
	DamageToChamps int
	VisionScore    int
	Win            bool
}

// CS is the participant's creep score: lane minions plus jungle monsters.
func (p ParticipantRecord) CS() int {
	return p.MinionsKilled + p.NeutralMinions
}

// DisplayName prefers the modern riot id, falling back to the legacy
// summoner name for older match records.
func (p ParticipantRecord) DisplayName() string {
	if p.GameName != "" {
		return p.GameName + "#" + p.TagLine
	}
	return p.SummonerName
}

// MatchRecord is an immutable record of one completed game.
type MatchRecord struct {
	ID              string
	DurationSeconds int64
	CreationMillis  int64
	Participants    []ParticipantRecord
}

// Subject returns the participant line belonging to the given puuid.
// Exactly one participant per match is expected to carry it; callers skip
// the match when none does.
func (m MatchRecord) Subject(puuid string) (ParticipantRecord, bool) {
	for _, p := range m.Participants {
		if p.PUUID == puuid {
			return p, true
		}
	}
	return ParticipantRecord{}, false
}

// SubjectByRiotID matches case-insensitively on the composite "name#tag"
// string. Used by match detail, where the caller knows the riot id but not
// the puuid.
func (m MatchRecord) SubjectByRiotID(riotID string) (ParticipantRecord, bool) {
	for _, p := range m.Participants {
		if strings.EqualFold(p.GameName+"#"+p.TagLine, riotID) {
			return p, true
		}
	}
	return ParticipantRecord{}, false
}

// AggregateResult is one cohesive in-memory fetch: the resolved identity,
// the profile, and the filtered most-recent-first match sample. It lives
// only for the duration of a request (or until cache expiry).
type AggregateResult struct {
	Identity PlayerIdentity
	Profile  ProfileRecord
	Matches  []MatchRecord
}
