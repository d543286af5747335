package insighting

import (
	"math"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/engagement-insights/infrastructure/loader"
	"github.com/vfg2006/engagement-insights/internal/config"
	"github.com/vfg2006/engagement-insights/internal/domain"
	"github.com/vfg2006/engagement-insights/internal/usecases/aggregating"
	"github.com/vfg2006/engagement-insights/internal/usecases/deriving"
	"github.com/vfg2006/engagement-insights/internal/usecases/filtering"
	"github.com/vfg2006/engagement-insights/internal/usecases/reporting"
)

// Service implementa Insighter sobre o dataset carregado pelo loader
type Service struct {
	cfg      *config.Config
	datasets loader.DatasetLoader
}

// NewService cria uma nova instância do serviço de insights
func NewService(cfg *config.Config, datasets loader.DatasetLoader) Insighter {
	return &Service{
		cfg:      cfg,
		datasets: datasets,
	}
}

// base carrega o dataset completo e garante que as colunas derivadas existem
func (s *Service) base() (domain.Dataset, error) {
	ds, err := s.datasets.Load(s.cfg.Dataset.InputPath)
	if err != nil {
		return domain.Dataset{}, errors.Wrap(err, "erro ao carregar dataset")
	}

	for i := range ds.Posts {
		if !ds.Posts[i].Derived {
			derived, _ := deriving.Derive(ds)
			return derived, nil
		}
	}

	return ds, nil
}

// view aplica os filtros sobre o dataset base. Nunca parte de um resultado filtrado anterior.
func (s *Service) view(filters *domain.InsightFilters) (domain.Dataset, domain.Dataset, error) {
	if err := validateFilters(filters); err != nil {
		return domain.Dataset{}, domain.Dataset{}, err
	}

	ds, err := s.base()
	if err != nil {
		return domain.Dataset{}, domain.Dataset{}, err
	}

	if filters == nil {
		return ds, ds, nil
	}
	return ds, filtering.Apply(ds, *filters), nil
}

func validateFilters(filters *domain.InsightFilters) error {
	if filters == nil {
		return nil
	}
	if math.IsNaN(filters.MinEngagementRate) || filters.MinEngagementRate < 0 {
		return errors.Wrap(domain.ErrInvalidFilter, "taxa mínima de engajamento deve ser maior ou igual a zero")
	}
	return nil
}

func (s *Service) GetDatasetInfo() (*domain.DatasetInfoResponse, error) {
	ds, err := s.base()
	if err != nil {
		return nil, err
	}

	info := &domain.DatasetInfoResponse{
		Source:            ds.Source,
		Rows:              ds.Len(),
		MaxEngagementRate: optional(filtering.MaxEngagementRate(ds)),
		Columns:           reporting.SourceColumns(),
	}

	if start, end, ok := ds.DateRange(); ok {
		info.StartDate = start.Format(time.DateOnly)
		info.EndDate = end.Format(time.DateOnly)
	}

	return info, nil
}

func (s *Service) GetDashboard(filters *domain.InsightFilters) (*domain.DashboardResponse, error) {
	ds, filtered, err := s.view(filters)
	if err != nil {
		return nil, err
	}

	panels := reporting.BuildPanels(filtered, domain.PanelOptions{
		HistogramBins: s.cfg.Report.HistogramBins,
		TopN:          s.cfg.Report.DashboardTopN,
	})
	topPosts := aggregating.TopN(filtered, domain.ColumnEngagementRate, s.cfg.Report.DashboardTopN, true)

	impressions := aggregating.SummaryStats(filtered, domain.ColumnImpressions)
	likes := aggregating.SummaryStats(filtered, domain.ColumnLikes)
	engagement := aggregating.SummaryStats(filtered, domain.ColumnEngagementRate)

	response := &domain.DashboardResponse{
		Filters:      toFiltersResponse(filters),
		ShowingPosts: filtered.Len(),
		TotalPosts:   ds.Len(),
		KPIs: domain.KPIResponse{
			TotalPosts:        filtered.Len(),
			TotalImpressions:  impressions.Sum,
			AvgImpressions:    optional(impressions.Mean),
			TotalLikes:        likes.Sum,
			AvgLikes:          optional(likes.Mean),
			AvgEngagementRate: optional(engagement.Mean),
		},
		ImpressionsOverTime: toSeriesResponse(panels.ImpressionsOverTime),
		EngagementHistogram: toHistogramResponse(panels.EngagementHistogram),
		TrafficSources:      toSourceBreakdownResponse(panels.TrafficSources),
		ImpressionsByDay:    toGroupValuesResponse(panels.ImpressionsByDay),
		LikesVsImpressions:  toScatterResponse(panels.LikesVsImpressions),
		VisitsVsFollows:     toScatterResponse(panels.VisitsVsFollows),
		AverageEngagement:   toGroupValuesResponse(panels.AverageEngagement),
		TopPosts:            toPostsResponse(topPosts),
		Correlation:         toCorrelationResponse(panels.Correlation, filters),
	}

	for _, p := range filtered.Posts {
		if math.IsNaN(p.EngagementRate) {
			response.UndefinedMetricsCount++
		}
	}

	logrus.WithFields(logrus.Fields{
		"showing": response.ShowingPosts,
		"total":   response.TotalPosts,
	}).Debug("Dashboard calculado")

	return response, nil
}

func (s *Service) GetTopPosts(filters *domain.InsightFilters, column domain.Column, n int, descending bool) (*domain.TopPostsResponse, error) {
	if n <= 0 {
		return nil, errors.Wrap(domain.ErrInvalidFilter, "n deve ser maior que zero")
	}

	_, filtered, err := s.view(filters)
	if err != nil {
		return nil, err
	}

	return &domain.TopPostsResponse{
		Column:     string(column),
		Descending: descending,
		Posts:      toPostsResponse(aggregating.TopN(filtered, column, n, descending)),
		Filters:    toFiltersResponse(filters),
	}, nil
}

func (s *Service) GetStats(filters *domain.InsightFilters, column domain.Column) (*domain.StatsResponse, error) {
	_, filtered, err := s.view(filters)
	if err != nil {
		return nil, err
	}

	return &domain.StatsResponse{
		Stats:   toSummaryStatsResponse(aggregating.SummaryStats(filtered, column)),
		Filters: toFiltersResponse(filters),
	}, nil
}

func (s *Service) GetOutliers(filters *domain.InsightFilters, column domain.Column, k float64) (*domain.OutlierResponse, error) {
	if math.IsNaN(k) || k <= 0 {
		return nil, errors.Wrap(domain.ErrInvalidFilter, "k deve ser maior que zero")
	}

	_, filtered, err := s.view(filters)
	if err != nil {
		return nil, err
	}

	report := aggregating.Outliers(filtered, column, k)

	return &domain.OutlierResponse{
		Column:  string(column),
		K:       k,
		Mean:    optional(report.Bounds.Mean),
		StdDev:  optional(report.Bounds.StdDev),
		Lower:   optional(report.Bounds.Lower),
		Upper:   optional(report.Bounds.Upper),
		High:    toPostsResponse(report.High),
		Low:     toPostsResponse(report.Low),
		Filters: toFiltersResponse(filters),
	}, nil
}

func (s *Service) GetCorrelation(filters *domain.InsightFilters, columns []domain.Column) (*domain.CorrelationResponse, error) {
	if len(columns) == 0 {
		columns = domain.CorrelationColumns
	}

	_, filtered, err := s.view(filters)
	if err != nil {
		return nil, err
	}

	response := toCorrelationResponse(aggregating.CorrelationMatrix(filtered, columns), filters)
	return &response, nil
}

func (s *Service) GetReport() (string, error) {
	ds, err := s.base()
	if err != nil {
		return "", err
	}

	report := reporting.Build(ds, reporting.NewOptions(s.cfg.Report))

	return reporting.Markdown(report), nil
}
