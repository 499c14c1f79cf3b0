package stats

import (
	"fmt"
	"math"
	"strconv"

	"league-tracker/internal/domain"
)

const (
	splashURLFormat = "https://ddragon.leagueoflegends.com/cdn/img/champion/splash/%s_0.jpg"
	iconURLFormat   = "https://ddragon.leagueoflegends.com/cdn/14.1.1/img/champion/%s.png"
)

// round2 rounds half away from zero to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// round1 rounds half away from zero to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// formatNumber renders a float the way the client expects: no trailing
// zeros ("2.45", "3", "6.8").
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatAvg forces exactly one decimal place ("4.2", "3.0").
func formatAvg(v float64) string {
	return strconv.FormatFloat(round1(v), 'f', 1, 64)
}

// formatThousands renders an integer with comma separators ("25,300").
func formatThousands(n int) string {
	s := strconv.Itoa(n)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		return "-" + s
	}
	return s
}

// formatKilos renders a raw amount as "<x.x>K".
func formatKilos(n int) string {
	return strconv.FormatFloat(round1(float64(n)/1000), 'f', 1, 64) + "K"
}

func kdaString(p domain.ParticipantRecord) string {
	return fmt.Sprintf("%d/%d/%d", p.Kills, p.Deaths, p.Assists)
}

// durationLabel renders whole minutes, truncated ("28m").
func durationLabel(seconds int64) string {
	return fmt.Sprintf("%dm", seconds/60)
}

func resultLabel(win bool) string {
	if win {
		return domain.ResultWin
	}
	return domain.ResultLoss
}

func splashURL(champion string) string {
	return fmt.Sprintf(splashURLFormat, champion)
}

func iconURL(champion string) string {
	return fmt.Sprintf(iconURLFormat, champion)
}

// ratio computes (kills+assists)/deaths with the deliberate max(1, deaths)
// guard: a deathless game divides by one, never by zero.
func ratio(kills, deaths, assists int) float64 {
	return float64(kills+assists) / float64(max(1, deaths))
}
