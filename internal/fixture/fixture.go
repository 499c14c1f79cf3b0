// Package fixture holds the static substitute data served when live
// retrieval fails, plus the always-static news feed. Deterministic by
// construction so degraded mode is testable.
package fixture

import "league-tracker/internal/domain"

func Dashboard() *domain.DashboardSummary {
	return &domain.DashboardSummary{
		Invocador: domain.SummonerInfo{
			ID:              "demo",
			NombreInvocador: "InvocadorMaestro#EUW",
			Region:          "euw1",
		},
		Estadisticas: domain.AdvancedStats{
			KDAPromedio:      3.5,
			CSPorMin:         6.8,
			OroPromedio:      14500,
			DuracionPromedio: "32m",
			RachaVictorias:   5,
			MejorKDA:         "18/2/12",
			TasaVictorias:    58,
			Nivel:            345,
		},
		Campeones: Champions()[:4],
		Partidas:  History()[:4],
	}
}

func History() []domain.MatchSummary {
	return []domain.MatchSummary{
		{ID: "1", Campeon: "Kaisa", Resultado: domain.ResultWin, KDA: "12/3/8", Duracion: "35m", Hace: "hace 2h", Icono: "https://ddragon.leagueoflegends.com/cdn/14.1.1/img/champion/Kaisa.png"},
		{ID: "2", Campeon: "Sett", Resultado: domain.ResultLoss, KDA: "5/7/10", Duracion: "28m", Hace: "hace 5h", Icono: "https://ddragon.leagueoflegends.com/cdn/14.1.1/img/champion/Sett.png"},
		{ID: "3", Campeon: "Lux", Resultado: domain.ResultWin, KDA: "8/2/15", Duracion: "40m", Hace: "ayer", Icono: "https://ddragon.leagueoflegends.com/cdn/14.1.1/img/champion/Lux.png"},
		{ID: "4", Campeon: "Ezreal", Resultado: domain.ResultWin, KDA: "10/1/9", Duracion: "30m", Hace: "hace 2 dias", Icono: "https://ddragon.leagueoflegends.com/cdn/14.1.1/img/champion/Ezreal.png"},
	}
}

func Analysis() *domain.AnalysisSummary {
	return &domain.AnalysisSummary{
		KDAPorPartida: []float64{3.5, 4.1, 2.3, 4.8, 5.5, 3.9, 4.2, 2.8, 5.7, 4.6},
		Metricas: []domain.KeyMetric{
			{Titulo: "Tasa de Victoria", Valor: "58%"},
			{Titulo: "KDA Medio", Valor: "3.9"},
			{Titulo: "CS/Min", Valor: "6.7"},
			{Titulo: "Daño Medio", Valor: "25,300"},
		},
		Insights: []domain.Insight{
			{Titulo: "Buen Ritmo", Descripcion: "Mantienes un winrate positivo, sigue así.", Tipo: "POSITIVE"},
			{Titulo: "Supervivencia", Descripcion: "Tienes un KDA excelente, buena toma de decisiones.", Tipo: "POSITIVE"},
		},
	}
}

func Champions() []domain.ChampionCard {
	return []domain.ChampionCard{
		{Nombre: "Ahri", Partidas: 120, WinRate: 65, KDA: "4.2/2.1/7.8", Imagen: "https://ddragon.leagueoflegends.com/cdn/img/champion/splash/Ahri_0.jpg"},
		{Nombre: "Ezreal", Partidas: 110, WinRate: 60, KDA: "4.9/3.1/8.4", Imagen: "https://ddragon.leagueoflegends.com/cdn/img/champion/splash/Ezreal_0.jpg"},
		{Nombre: "LeeSin", Partidas: 98, WinRate: 59, KDA: "3.8/3.5/9.2", Imagen: "https://ddragon.leagueoflegends.com/cdn/img/champion/splash/LeeSin_0.jpg"},
		{Nombre: "Jinx", Partidas: 86, WinRate: 62, KDA: "5.1/2.9/9.1", Imagen: "https://ddragon.leagueoflegends.com/cdn/img/champion/splash/Jinx_0.jpg"},
	}
}

// MatchDetail echoes the requested id so the client can correlate the
// degraded payload with the row it tapped.
func MatchDetail(matchID string) *domain.MatchDetail {
	detail := &domain.MatchDetail{
		ID:               matchID,
		CampeonPrincipal: "Kaisa",
		Resultado:        domain.ResultWin,
		KDA:              "12/3/8",
		Duracion:         "35m",
		Icono:            "https://ddragon.leagueoflegends.com/cdn/14.1.1/img/champion/Kaisa.png",
		Aliados: []domain.MatchPlayer{
			{Nombre: "Jugador00", Rol: "TOP", Campeon: "Ornn", KDA: "5/2/7", Dano: "12.3K"},
			{Nombre: "Jugador01", Rol: "JUNGLE", Campeon: "Vi", KDA: "4/5/9", Dano: "11.1K"},
			{Nombre: "Jugador02", Rol: "MIDDLE", Campeon: "Ahri", KDA: "9/3/10", Dano: "18.2K"},
			{Nombre: "Jugador03", Rol: "BOTTOM", Campeon: "Xayah", KDA: "12/2/6", Dano: "22.4K"},
			{Nombre: "Jugador04", Rol: "UTILITY", Campeon: "Thresh", KDA: "1/4/18", Dano: "8.3K"},
		},
		Enemigos: []domain.MatchPlayer{
			{Nombre: "Jugador10", Rol: "TOP", Campeon: "Garen", KDA: "2/6/4", Dano: "9.7K"},
			{Nombre: "Jugador11", Rol: "JUNGLE", Campeon: "LeeSin", KDA: "3/8/6", Dano: "10.2K"},
			{Nombre: "Jugador12", Rol: "MIDDLE", Campeon: "Zed", KDA: "7/5/7", Dano: "15.5K"},
			{Nombre: "Jugador13", Rol: "BOTTOM", Campeon: "Ashe", KDA: "6/4/5", Dano: "14.8K"},
			{Nombre: "Jugador14", Rol: "UTILITY", Campeon: "Lulu", KDA: "0/7/12", Dano: "6.1K"},
		},
		MetricasGlobales: []domain.KeyMetric{
			{Titulo: "Kills Totales", Valor: "31 - 18"},
			{Titulo: "Oro de Partida", Valor: "72.4K"},
		},
	}
	return detail
}

// News is static content, not fallback data: the live path serves the same
// list.
func News() []domain.NewsItem {
	return []domain.NewsItem{
		{
			ID:          "1",
			Titulo:      "Temporada 2024",
			Descripcion: "Nuevos cambios en el mapa y objetos míticos eliminados.",
			Imagen:      "https://ddragon.leagueoflegends.com/cdn/img/champion/splash/Aatrox_0.jpg",
			URL:         "https://lolesports.com",
		},
		{
			ID:          "2",
			Titulo:      "LEC Invierno",
			Descripcion: "G2 Esports domina la fase regular con una racha increíble.",
			Imagen:      "https://ddragon.leagueoflegends.com/cdn/img/champion/splash/Yone_0.jpg",
			URL:         "https://lolesports.com",
		},
		{
			ID:          "3",
			Titulo:      "Notas del Parche 14.3",
			Descripcion: "Ajustes a campeones de la jungla y mejoras a tiradores.",
			Imagen:      "https://ddragon.leagueoflegends.com/cdn/img/champion/splash/Jinx_0.jpg",
			URL:         "https://lolesports.com",
		},
	}
}
