package riot

// Upstream payload shapes. Only the fields the aggregation consumes are
// declared; everything else in the Riot responses is ignored on decode.

type AccountDTO struct {
	PUUID    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

type SummonerDTO struct {
	ID            string `json:"id"`
	PUUID         string `json:"puuid"`
	SummonerLevel int    `json:"summonerLevel"`
}

type MatchDTO struct {
	Metadata MatchMetadataDTO `json:"metadata"`
	Info     *MatchInfoDTO    `json:"info"`
}

type MatchMetadataDTO struct {
	MatchID string `json:"matchId"`
}

type MatchInfoDTO struct {
	GameCreation int64            `json:"gameCreation"`
	GameDuration int64            `json:"gameDuration"`
	Participants []ParticipantDTO `json:"participants"`
}

type ParticipantDTO struct {
	PUUID                       string `json:"puuid"`
	RiotIDGameName              string `json:"riotIdGameName"`
	RiotIDTagline               string `json:"riotIdTagline"`
	SummonerName                string `json:"summonerName"`
	ChampionName                string `json:"championName"`
	TeamID                      int    `json:"teamId"`
	TeamPosition                string `json:"teamPosition"`
	Kills                       int    `json:"kills"`
	Deaths                      int    `json:"deaths"`
	Assists                     int    `json:"assists"`
	GoldEarned                  int    `json:"goldEarned"`
	TotalMinionsKilled          int    `json:"totalMinionsKilled"`
	NeutralMinionsKilled        int    `json:"neutralMinionsKilled"`
	TotalDamageDealtToChampions int    `json:"totalDamageDealtToChampions"`
	VisionScore                 int    `json:"visionScore"`
	Win                         bool   `json:"win"`
}
