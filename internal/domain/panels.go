package domain

// ChartPanels são os dados dos nove painéis do dashboard, na ordem de exibição
type ChartPanels struct {
	ImpressionsOverTime []SeriesPoint
	AverageEngagement   []GroupValue // média de Likes, Comments, Shares e Saves
	EngagementHistogram []HistogramBin
	TrafficSources      SourceBreakdown
	LikesVsImpressions  []ScatterPoint // X = impressões, Y = curtidas
	ImpressionsByDay    []GroupValue
	VisitsVsFollows     []ScatterPoint // X = visitas ao perfil, Y = seguidores
	TopByImpressions    []Post
	Correlation         CorrelationMatrix
}

// PanelOptions controlam o tamanho dos painéis
type PanelOptions struct {
	HistogramBins int
	TopN          int
}
