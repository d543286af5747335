package reporting

import (
	"github.com/vfg2006/engagement-insights/internal/domain"
	"github.com/vfg2006/engagement-insights/internal/usecases/aggregating"
)

// BuildPanels calcula os dados dos nove painéis do dashboard
func BuildPanels(ds domain.Dataset, opts domain.PanelOptions) domain.ChartPanels {
	panels := domain.ChartPanels{
		ImpressionsOverTime: aggregating.Series(ds, domain.ColumnImpressions),
		EngagementHistogram: aggregating.Histogram(ds, domain.ColumnEngagementRate, opts.HistogramBins),
		TrafficSources:      aggregating.SourceBreakdown(ds),
		LikesVsImpressions:  aggregating.Scatter(ds, domain.ColumnImpressions, domain.ColumnLikes),
		ImpressionsByDay:    aggregating.GroupMean(ds, domain.GroupByDayOfWeek, domain.ColumnImpressions),
		VisitsVsFollows:     aggregating.Scatter(ds, domain.ColumnProfileVisits, domain.ColumnFollows),
		TopByImpressions:    aggregating.TopN(ds, domain.ColumnImpressions, opts.TopN, true),
		Correlation:         aggregating.CorrelationMatrix(ds, domain.CorrelationColumns),
	}

	panels.AverageEngagement = make([]domain.GroupValue, 0, len(domain.EngagementColumns))
	for _, column := range domain.EngagementColumns {
		stats := aggregating.SummaryStats(ds, column)
		panels.AverageEngagement = append(panels.AverageEngagement, domain.GroupValue{
			Key:   column.Header(),
			Value: stats.Mean,
			Count: stats.Count,
		})
	}

	return panels
}

// PanelOptions converte as opções do relatório para os painéis
func (o Options) PanelOptions() domain.PanelOptions {
	return domain.PanelOptions{HistogramBins: o.HistogramBins, TopN: o.DashboardTopN}
}
