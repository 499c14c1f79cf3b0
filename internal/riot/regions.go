package riot

// ClusterFor maps a gameplay region to the broader routing cluster used by
// the match-v5 endpoints. Summoner lookups keep using the region directly.
// Unrecognized regions route to europe.
func ClusterFor(region string) string {
	if c, ok := matchCluster[region]; ok {
		return c
	}
	return "europe"
}

var matchCluster = map[string]string{
	"br1":  "americas",
	"la1":  "americas",
	"la2":  "americas",
	"na1":  "americas",
	"oc1":  "sea",
	"eun1": "europe",
	"euw1": "europe",
	"ru":   "europe",
	"tr1":  "europe",
	"kr":   "asia",
	"jp1":  "asia",
}
