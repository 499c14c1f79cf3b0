package domain

// Wire payloads for the proxy surface. Field names follow the contract the
// mobile client already consumes, so the JSON tags are Spanish.

const (
	ResultWin  = "VICTORIA"
	ResultLoss = "DERROTA"
)

type SummonerInfo struct {
	ID              string `json:"id"`
	NombreInvocador string `json:"nombreInvocador"`
	Region          string `json:"region"`
}

type AdvancedStats struct {
	KDAPromedio      float64 `json:"kdaPromedio"`
	CSPorMin         float64 `json:"csPorMin"`
	OroPromedio      int     `json:"oroPromedio"`
	DuracionPromedio string  `json:"duracionPromedio"`
	RachaVictorias   int     `json:"rachaVictorias"`
	MejorKDA         string  `json:"mejorKda"`
	TasaVictorias    int     `json:"tasaVictorias"`
	Nivel            int     `json:"nivel"`
}

type ChampionCard struct {
	Nombre   string `json:"nombre"`
	Partidas int    `json:"partidas"`
	WinRate  int    `json:"winRate"`
	KDA      string `json:"kda,omitempty"`
	Imagen   string `json:"imagen"`
}

type MatchSummary struct {
	ID        string `json:"id"`
	Campeon   string `json:"campeon"`
	Resultado string `json:"resultado"`
	KDA       string `json:"kda"`
	Duracion  string `json:"duracion"`
	Hace      string `json:"hace"`
	Icono     string `json:"icono"`
}

type DashboardSummary struct {
	Invocador    SummonerInfo   `json:"invocador"`
	Estadisticas AdvancedStats  `json:"estadisticas"`
	Campeones    []ChampionCard `json:"campeones"`
	Partidas     []MatchSummary `json:"partidas"`
}

type KeyMetric struct {
	Titulo string `json:"titulo"`
	Valor  string `json:"valor"`
}

type Insight struct {
	Titulo      string `json:"titulo"`
	Descripcion string `json:"descripcion"`
	Tipo        string `json:"tipo"`
}

type AnalysisSummary struct {
	KDAPorPartida []float64   `json:"kdaPorPartida"`
	Metricas      []KeyMetric `json:"metricas"`
	Insights      []Insight   `json:"insights"`
}

type MatchPlayer struct {
	Nombre  string `json:"nombre"`
	Rol     string `json:"rol"`
	Campeon string `json:"campeon"`
	KDA     string `json:"kda"`
	Dano    string `json:"dano"`
}

type MatchDetail struct {
	ID               string        `json:"id"`
	CampeonPrincipal string        `json:"campeonPrincipal"`
	Resultado        string        `json:"resultado"`
	KDA              string        `json:"kda"`
	Duracion         string        `json:"duracion"`
	Icono            string        `json:"icono"`
	Aliados          []MatchPlayer `json:"aliados"`
	Enemigos         []MatchPlayer `json:"enemigos"`
	MetricasGlobales []KeyMetric   `json:"metricasGlobales"`
}

type NewsItem struct {
	ID          string `json:"id"`
	Titulo      string `json:"titulo"`
	Descripcion string `json:"descripcion"`
	Imagen      string `json:"imagen"`
	URL         string `json:"url"`
}

// CompleteData groups the five independent resources the client loads in
// one shot.
type CompleteData struct {
	Dashboard *DashboardSummary `json:"dashboard"`
	Historial []MatchSummary    `json:"historial"`
	Analisis  *AnalysisSummary  `json:"analisis"`
	Campeones []ChampionCard    `json:"campeones"`
	Noticias  []NewsItem        `json:"noticias"`
}
