// Package stats derives response payloads from an aggregated match sample.
// Every builder is a pure function of its input: the same sample always
// produces byte-identical numbers. Divisions guard their denominator with
// max(1, d) so an empty sample or a deathless streak never divides by zero.
package stats

import (
	"fmt"
	"math"
	"sort"

	"league-tracker/internal/constants"
	"league-tracker/internal/domain"
)

const dashboardMatchLimit = 5

// Insight thresholds. Fixed by contract with the client.
const (
	lowWinRateThreshold = 50
	lowFarmThreshold    = 6.0
	goodKDAThreshold    = 3.0
)

// Dashboard computes the aggregate performance summary over the sample.
// The returned match list is capped to the five most recent games no
// matter how large the sample was.
func Dashboard(agg *domain.AggregateResult, region string) *domain.DashboardSummary {
	puuid := agg.Identity.PUUID

	var kills, deaths, assists, wins, gold, cs int
	var duration int64
	bestRatio := -1.0
	bestKDA := "0/0/0"
	streakDone := false
	streak := 0

	champIndex := map[string]int{}
	champs := []domain.ChampionCard{}
	champWins := []int{}

	summaries := make([]domain.MatchSummary, 0, dashboardMatchLimit)

	for _, m := range agg.Matches {
		p, ok := m.Subject(puuid)
		if !ok {
			streakDone = true
			continue
		}

		kills += p.Kills
		deaths += p.Deaths
		assists += p.Assists
		gold += p.GoldEarned
		cs += p.CS()
		duration += m.DurationSeconds
		if p.Win {
			wins++
		}

		// Matches iterate most-recent-first; the current streak stops at
		// the first loss.
		if !streakDone {
			if p.Win {
				streak++
			} else {
				streakDone = true
			}
		}

		if r := ratio(p.Kills, p.Deaths, p.Assists); r > bestRatio {
			bestRatio = r
			bestKDA = kdaString(p)
		}

		if i, seen := champIndex[p.ChampionName]; seen {
			champs[i].Partidas++
			if p.Win {
				champWins[i]++
			}
		} else {
			champIndex[p.ChampionName] = len(champs)
			champs = append(champs, domain.ChampionCard{
				Nombre:   p.ChampionName,
				Partidas: 1,
				Imagen:   splashURL(p.ChampionName),
			})
			w := 0
			if p.Win {
				w = 1
			}
			champWins = append(champWins, w)
		}

		if len(summaries) < dashboardMatchLimit {
			summaries = append(summaries, matchSummary(m, p))
		}
	}

	for i := range champs {
		champs[i].WinRate = int(math.Round(100 * float64(champWins[i]) / float64(champs[i].Partidas)))
	}
	sort.SliceStable(champs, func(i, j int) bool {
		return champs[i].Partidas > champs[j].Partidas
	})

	count := max(1, len(agg.Matches))

	return &domain.DashboardSummary{
		Invocador: domain.SummonerInfo{
			ID:              agg.Profile.ID,
			NombreInvocador: agg.Identity.RiotID(),
			Region:          region,
		},
		Estadisticas: domain.AdvancedStats{
			KDAPromedio:      round2(float64(kills+assists) / float64(max(1, deaths))),
			CSPorMin:         round1(float64(cs) / math.Max(1, float64(duration)/60)),
			OroPromedio:      int(math.Round(float64(gold) / float64(count))),
			DuracionPromedio: durationLabel(duration / int64(count)),
			RachaVictorias:   streak,
			MejorKDA:         bestKDA,
			TasaVictorias:    int(math.Round(100 * float64(wins) / float64(count))),
			Nivel:            agg.Profile.Level,
		},
		Campeones: champs,
		Partidas:  summaries,
	}
}

// Analysis computes the per-match KDA sequence in chronological order
// (oldest sampled match first) plus headline metrics and rule-based
// insights. Insight order is fixed: win-rate check, farm check, KDA check.
func Analysis(agg *domain.AggregateResult) *domain.AnalysisSummary {
	puuid := agg.Identity.PUUID

	var kills, deaths, assists, wins, cs, damage int
	var duration int64

	kdas := make([]float64, 0, len(agg.Matches))
	for _, m := range agg.Matches {
		p, ok := m.Subject(puuid)
		if !ok {
			kdas = append(kdas, 0)
			continue
		}
		kills += p.Kills
		deaths += p.Deaths
		assists += p.Assists
		cs += p.CS()
		damage += p.DamageToChamps
		duration += m.DurationSeconds
		if p.Win {
			wins++
		}
		kdas = append(kdas, round2(ratio(p.Kills, p.Deaths, p.Assists)))
	}

	// Retrieval order is most-recent-first; the chart wants oldest first.
	for i, j := 0, len(kdas)-1; i < j; i, j = i+1, j-1 {
		kdas[i], kdas[j] = kdas[j], kdas[i]
	}

	count := max(1, len(agg.Matches))
	winRate := int(math.Round(100 * float64(wins) / float64(count)))
	avgCS := round1(float64(cs) / math.Max(1, float64(duration)/60))
	avgKDA := round2(float64(kills+assists) / float64(max(1, deaths)))

	insights := []domain.Insight{}
	if winRate < lowWinRateThreshold {
		insights = append(insights, domain.Insight{
			Titulo:      "Racha Baja",
			Descripcion: "Analiza tus repeticiones para ver fallos tácticos.",
			Tipo:        "NEGATIVE",
		})
	} else {
		insights = append(insights, domain.Insight{
			Titulo:      "Buen Ritmo",
			Descripcion: "Mantienes un winrate positivo, sigue así.",
			Tipo:        "POSITIVE",
		})
	}
	if avgCS < lowFarmThreshold {
		insights = append(insights, domain.Insight{
			Titulo:      "Mejorar Farm",
			Descripcion: "Tu media de CS/Min es baja. Prioriza súbditos.",
			Tipo:        "NEUTRAL",
		})
	}
	if avgKDA > goodKDAThreshold {
		insights = append(insights, domain.Insight{
			Titulo:      "Supervivencia",
			Descripcion: "Tienes un KDA excelente, buena toma de decisiones.",
			Tipo:        "POSITIVE",
		})
	}

	return &domain.AnalysisSummary{
		KDAPorPartida: kdas,
		Metricas: []domain.KeyMetric{
			{Titulo: "Tasa de Victoria", Valor: fmt.Sprintf("%d%%", winRate)},
			{Titulo: "KDA Medio", Valor: formatNumber(avgKDA)},
			{Titulo: "CS/Min", Valor: formatNumber(avgCS)},
			{Titulo: "Daño Medio", Valor: formatThousands(int(math.Round(float64(damage) / float64(count))))},
		},
		Insights: insights,
	}
}

// EmptyAnalysis is the well-formed zero payload the analysis endpoint
// degrades to when it fails open.
func EmptyAnalysis() *domain.AnalysisSummary {
	return &domain.AnalysisSummary{
		KDAPorPartida: []float64{},
		Metricas:      []domain.KeyMetric{},
		Insights:      []domain.Insight{},
	}
}

// Champions breaks the sample down per distinct champion played, sorted by
// descending play count with first-seen order breaking ties.
func Champions(agg *domain.AggregateResult) []domain.ChampionCard {
	puuid := agg.Identity.PUUID

	type champAgg struct {
		name                   string
		plays, wins            int
		kills, deaths, assists int
	}

	index := map[string]int{}
	var totals []*champAgg

	for _, m := range agg.Matches {
		p, ok := m.Subject(puuid)
		if !ok {
			continue
		}
		i, seen := index[p.ChampionName]
		if !seen {
			i = len(totals)
			index[p.ChampionName] = i
			totals = append(totals, &champAgg{name: p.ChampionName})
		}
		totals[i].plays++
		if p.Win {
			totals[i].wins++
		}
		totals[i].kills += p.Kills
		totals[i].deaths += p.Deaths
		totals[i].assists += p.Assists
	}

	cards := make([]domain.ChampionCard, 0, len(totals))
	for _, t := range totals {
		plays := float64(t.plays)
		cards = append(cards, domain.ChampionCard{
			Nombre:   t.name,
			Partidas: t.plays,
			WinRate:  int(math.Round(100 * float64(t.wins) / plays)),
			KDA: fmt.Sprintf("%s/%s/%s",
				formatAvg(float64(t.kills)/plays),
				formatAvg(float64(t.deaths)/plays),
				formatAvg(float64(t.assists)/plays)),
			Imagen: splashURL(t.name),
		})
	}
	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].Partidas > cards[j].Partidas
	})
	return cards
}

// History renders the full sampled match list, most-recent-first. Matches
// where the subject participant is missing are skipped.
func History(agg *domain.AggregateResult) []domain.MatchSummary {
	puuid := agg.Identity.PUUID

	summaries := make([]domain.MatchSummary, 0, len(agg.Matches))
	for _, m := range agg.Matches {
		p, ok := m.Subject(puuid)
		if !ok {
			continue
		}
		summaries = append(summaries, matchSummary(m, p))
	}
	return summaries
}

// MatchDetail builds the single-match view for a named subject. When the
// riot id is not among the participants the first participant becomes the
// subject; lookup failures are therefore masked rather than surfaced.
func MatchDetail(m domain.MatchRecord, riotID string) *domain.MatchDetail {
	subject, ok := m.SubjectByRiotID(riotID)
	if !ok {
		subject = m.Participants[0]
	}

	var allies, enemies []domain.MatchPlayer
	var killsBlue, killsRed, totalGold int
	for _, p := range m.Participants {
		row := domain.MatchPlayer{
			Nombre:  p.DisplayName(),
			Rol:     roleLabel(p.TeamPosition),
			Campeon: p.ChampionName,
			KDA:     kdaString(p),
			Dano:    formatKilos(p.DamageToChamps),
		}
		if p.TeamID == subject.TeamID {
			allies = append(allies, row)
		} else {
			enemies = append(enemies, row)
		}

		switch p.TeamID {
		case constants.TeamBlue:
			killsBlue += p.Kills
		case constants.TeamRed:
			killsRed += p.Kills
		}
		totalGold += p.GoldEarned
	}

	return &domain.MatchDetail{
		ID:               m.ID,
		CampeonPrincipal: subject.ChampionName,
		Resultado:        resultLabel(subject.Win),
		KDA:              kdaString(subject),
		Duracion:         durationLabel(m.DurationSeconds),
		Icono:            iconURL(subject.ChampionName),
		Aliados:          allies,
		Enemigos:         enemies,
		MetricasGlobales: []domain.KeyMetric{
			{Titulo: "Kills Totales", Valor: fmt.Sprintf("%d - %d", killsBlue, killsRed)},
			{Titulo: "Oro de Partida", Valor: formatKilos(totalGold)},
		},
	}
}

func matchSummary(m domain.MatchRecord, p domain.ParticipantRecord) domain.MatchSummary {
	return domain.MatchSummary{
		ID:        m.ID,
		Campeon:   p.ChampionName,
		Resultado: resultLabel(p.Win),
		KDA:       kdaString(p),
		Duracion:  durationLabel(m.DurationSeconds),
		Hace:      "Reciente",
		Icono:     iconURL(p.ChampionName),
	}
}

func roleLabel(teamPosition string) string {
	if teamPosition == "" {
		return "N/D"
	}
	return teamPosition
}
