package insighting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/engagement-insights/infrastructure/loader/mocks"
	"github.com/vfg2006/engagement-insights/internal/config"
	"github.com/vfg2006/engagement-insights/internal/domain"
	"go.uber.org/mock/gomock"
)

const inputPath = "data/Instagram-data.csv"

func testConfig() *config.Config {
	return &config.Config{
		Dataset: config.Dataset{InputPath: inputPath},
		Report: config.Report{
			TopN:          5,
			DashboardTopN: 10,
			TopDays:       10,
			OutlierK:      2,
			HistogramBins: 30,
		},
	}
}

func date(value string) *time.Time {
	d, _ := time.Parse(time.DateOnly, value)
	return &d
}

func newPost(row int, day string, impressions, likes, comments, shares, saves int64) domain.Post {
	return domain.Post{
		Row:           row,
		Date:          *date(day),
		Impressions:   domain.NewCount(impressions),
		Likes:         domain.NewCount(likes),
		Comments:      domain.NewCount(comments),
		Shares:        domain.NewCount(shares),
		Saves:         domain.NewCount(saves),
		ProfileVisits: domain.NewCount(likes / 2),
		Follows:       domain.NewCount(likes / 5),
		FromHome:      domain.NewCount(impressions / 2),
		FromHashtags:  domain.NewCount(impressions / 4),
		FromExplore:   domain.NewCount(impressions / 10),
		FromOther:     domain.NewCount(0),
	}
}

// rawDataset retorna posts sem colunas derivadas, como o loader sem cache entrega
func rawDataset() domain.Dataset {
	return domain.Dataset{Source: inputPath, Posts: []domain.Post{
		newPost(0, "2024-01-01", 100, 10, 5, 2, 3),
		newPost(1, "2024-01-08", 200, 20, 0, 0, 0),
		newPost(2, "2024-01-10", 0, 0, 0, 0, 0),
		newPost(3, "2024-02-01", 400, 80, 4, 4, 12),
	}}
}

func newService(t *testing.T, times int) Insighter {
	ctrl := gomock.NewController(t)
	datasets := mocks.NewMockDatasetLoader(ctrl)
	datasets.EXPECT().Load(inputPath).Return(rawDataset(), nil).Times(times)
	return NewService(testConfig(), datasets)
}

func TestGetDatasetInfo(t *testing.T) {
	service := newService(t, 1)

	info, err := service.GetDatasetInfo()

	require.NoError(t, err)
	assert.Equal(t, inputPath, info.Source)
	assert.Equal(t, 4, info.Rows)
	assert.Equal(t, "2024-01-01", info.StartDate)
	assert.Equal(t, "2024-02-01", info.EndDate)
	require.NotNil(t, info.MaxEngagementRate)
	assert.Equal(t, 25.0, *info.MaxEngagementRate)
	assert.Len(t, info.Columns, 14)
}

func TestGetDashboard(t *testing.T) {
	tests := []struct {
		name            string
		filters         *domain.InsightFilters
		wantShowing     int
		wantTopRows     []int
		wantUndefined   int
		wantImpressions float64
	}{
		{
			name:            "Sem filtros",
			filters:         nil,
			wantShowing:     4,
			wantTopRows:     []int{3, 0, 1, 2},
			wantUndefined:   1,
			wantImpressions: 700,
		},
		{
			name:            "Intervalo de janeiro",
			filters:         &domain.InsightFilters{StartDate: date("2024-01-01"), EndDate: date("2024-01-31")},
			wantShowing:     3,
			wantTopRows:     []int{0, 1, 2},
			wantUndefined:   1,
			wantImpressions: 300,
		},
		{
			name:            "Taxa mínima",
			filters:         &domain.InsightFilters{MinEngagementRate: 15},
			wantShowing:     2,
			wantTopRows:     []int{3, 0},
			wantUndefined:   0,
			wantImpressions: 500,
		},
		{
			name:            "Sem resultados",
			filters:         &domain.InsightFilters{MinEngagementRate: 99},
			wantShowing:     0,
			wantTopRows:     []int{},
			wantUndefined:   0,
			wantImpressions: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newService(t, 1)

			dashboard, err := service.GetDashboard(tt.filters)

			require.NoError(t, err)
			assert.Equal(t, tt.wantShowing, dashboard.ShowingPosts)
			assert.Equal(t, 4, dashboard.TotalPosts)
			assert.Equal(t, tt.wantShowing, dashboard.KPIs.TotalPosts)
			assert.Equal(t, tt.wantImpressions, dashboard.KPIs.TotalImpressions)
			assert.Equal(t, tt.wantUndefined, dashboard.UndefinedMetricsCount)

			rows := make([]int, 0, len(dashboard.TopPosts))
			for _, p := range dashboard.TopPosts {
				rows = append(rows, p.Row)
			}
			assert.Equal(t, tt.wantTopRows, rows)

			assert.Len(t, dashboard.Correlation.Columns, len(domain.CorrelationColumns))
			assert.Len(t, dashboard.AverageEngagement, 4)
			assert.Len(t, dashboard.TrafficSources.Sources, 4)
		})
	}
}

func TestGetDashboard_KPIsSemDados(t *testing.T) {
	service := newService(t, 1)

	dashboard, err := service.GetDashboard(&domain.InsightFilters{MinEngagementRate: 99})

	require.NoError(t, err)
	assert.Nil(t, dashboard.KPIs.AvgImpressions)
	assert.Nil(t, dashboard.KPIs.AvgEngagementRate)
	assert.Empty(t, dashboard.ImpressionsOverTime)
	assert.Equal(t, "", dashboard.Filters.StartDate)
	assert.Equal(t, 99.0, dashboard.Filters.MinEngagementRate)
}

func TestGetDashboard_FiltroInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)
	datasets := mocks.NewMockDatasetLoader(ctrl)
	service := NewService(testConfig(), datasets)

	_, err := service.GetDashboard(&domain.InsightFilters{MinEngagementRate: -1})

	assert.ErrorIs(t, err, domain.ErrInvalidFilter)
}

func TestGetDashboard_ErroAoCarregar(t *testing.T) {
	ctrl := gomock.NewController(t)
	datasets := mocks.NewMockDatasetLoader(ctrl)
	schemaErr := domain.NewSchemaError(inputPath, []string{domain.HeaderLikes})
	datasets.EXPECT().Load(inputPath).Return(domain.Dataset{}, schemaErr)

	service := NewService(testConfig(), datasets)

	_, err := service.GetDashboard(nil)

	assert.True(t, domain.IsSchemaError(err))
}

func TestGetTopPosts(t *testing.T) {
	service := newService(t, 2)

	top, err := service.GetTopPosts(nil, domain.ColumnImpressions, 2, true)
	require.NoError(t, err)
	require.Len(t, top.Posts, 2)
	assert.Equal(t, 3, top.Posts[0].Row)
	assert.Equal(t, 1, top.Posts[1].Row)
	assert.Equal(t, "impressions", top.Column)

	bottom, err := service.GetTopPosts(nil, domain.ColumnEngagementRate, 10, false)
	require.NoError(t, err)
	require.Len(t, bottom.Posts, 4)
	assert.Equal(t, 1, bottom.Posts[0].Row)
	assert.Nil(t, bottom.Posts[3].EngagementRate)
	require.NotNil(t, bottom.Posts[3].Impressions)
	assert.Equal(t, int64(0), *bottom.Posts[3].Impressions)

	_, err = service.GetTopPosts(nil, domain.ColumnLikes, 0, true)
	assert.ErrorIs(t, err, domain.ErrInvalidFilter)
}

func TestGetStats(t *testing.T) {
	service := newService(t, 1)

	stats, err := service.GetStats(&domain.InsightFilters{EndDate: date("2024-01-08")}, domain.ColumnImpressions)

	require.NoError(t, err)
	assert.Equal(t, "impressions", stats.Stats.Column)
	assert.Equal(t, 2, stats.Stats.Count)
	require.NotNil(t, stats.Stats.Mean)
	assert.Equal(t, 150.0, *stats.Stats.Mean)
	assert.Equal(t, "2024-01-08", stats.Filters.EndDate)
}

func TestGetOutliers(t *testing.T) {
	service := newService(t, 1)

	outliers, err := service.GetOutliers(nil, domain.ColumnImpressions, 1)

	require.NoError(t, err)
	assert.Equal(t, 1.0, outliers.K)
	require.Len(t, outliers.High, 1)
	assert.Equal(t, 3, outliers.High[0].Row)
	require.Len(t, outliers.Low, 1)
	assert.Equal(t, 2, outliers.Low[0].Row)
	require.NotNil(t, outliers.Mean)
	assert.Equal(t, 175.0, *outliers.Mean)

	_, err = service.GetOutliers(nil, domain.ColumnImpressions, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidFilter)
}

func TestGetCorrelation(t *testing.T) {
	service := newService(t, 2)

	matrix, err := service.GetCorrelation(nil, []domain.Column{domain.ColumnImpressions, domain.ColumnLikes})
	require.NoError(t, err)
	assert.Equal(t, []string{"Impressions", "Likes"}, matrix.Columns)
	require.NotNil(t, matrix.Values[0][0])
	assert.Equal(t, 1.0, *matrix.Values[0][0])
	assert.Equal(t, matrix.Values[0][1], matrix.Values[1][0])

	defaults, err := service.GetCorrelation(nil, nil)
	require.NoError(t, err)
	assert.Len(t, defaults.Columns, 7)
}

func TestGetReport(t *testing.T) {
	service := newService(t, 1)

	markdown, err := service.GetReport()

	require.NoError(t, err)
	assert.Contains(t, markdown, "# Análise de desempenho do Instagram")
	assert.Contains(t, markdown, "4 linhas")
}
