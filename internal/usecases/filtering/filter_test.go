package filtering

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/engagement-insights/internal/domain"
	"github.com/vfg2006/engagement-insights/internal/usecases/deriving"
)

func date(value string) *time.Time {
	d, _ := time.Parse(time.DateOnly, value)
	return &d
}

func newPost(row int, day string, impressions, likes int64) domain.Post {
	return domain.Post{
		Row:         row,
		Date:        *date(day),
		Impressions: domain.NewCount(impressions),
		Likes:       domain.NewCount(likes),
		Comments:    domain.NewCount(0),
		Shares:      domain.NewCount(0),
		Saves:       domain.NewCount(0),
	}
}

func dataset() domain.Dataset {
	ds, _ := deriving.Derive(domain.Dataset{Source: "posts.csv", Posts: []domain.Post{
		newPost(0, "2024-01-03", 100, 5),
		newPost(1, "2024-01-01", 100, 20),
		newPost(2, "2024-01-10", 100, 12),
		newPost(3, "2024-01-05", 100, 8),
	}})
	return ds
}

func rows(ds domain.Dataset) []int {
	out := make([]int, 0, ds.Len())
	for _, p := range ds.Posts {
		out = append(out, p.Row)
	}
	return out
}

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		filters  domain.InsightFilters
		wantRows []int
	}{
		{
			name:     "Sem filtros",
			filters:  domain.InsightFilters{},
			wantRows: []int{0, 1, 2, 3},
		},
		{
			name:     "Intervalo inclusivo",
			filters:  domain.InsightFilters{StartDate: date("2024-01-03"), EndDate: date("2024-01-05")},
			wantRows: []int{0, 3},
		},
		{
			name:     "Apenas data inicial",
			filters:  domain.InsightFilters{StartDate: date("2024-01-05")},
			wantRows: []int{2, 3},
		},
		{
			name:     "Taxa mínima",
			filters:  domain.InsightFilters{MinEngagementRate: 10},
			wantRows: []int{1, 2},
		},
		{
			name:     "Taxa mínima igual ao valor",
			filters:  domain.InsightFilters{MinEngagementRate: 12},
			wantRows: []int{1, 2},
		},
		{
			name:     "Taxa acima de todas",
			filters:  domain.InsightFilters{MinEngagementRate: 50},
			wantRows: []int{},
		},
		{
			name:     "Início depois do fim",
			filters:  domain.InsightFilters{StartDate: date("2024-01-10"), EndDate: date("2024-01-01")},
			wantRows: []int{},
		},
		{
			name:     "Intervalo fora dos dados",
			filters:  domain.InsightFilters{StartDate: date("2025-01-01"), EndDate: date("2025-12-31")},
			wantRows: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := dataset()

			filtered := Apply(ds, tt.filters)

			assert.Equal(t, tt.wantRows, rows(filtered))
			assert.Equal(t, ds.Source, filtered.Source)
		})
	}
}

func TestApply_IntervaloCompletoDevolveDataset(t *testing.T) {
	ds := dataset()

	filtered := Apply(ds, DefaultFilters(ds))

	assert.Equal(t, ds, filtered)
}

func TestApply_MantemTaxasIndefinidasSemMinimo(t *testing.T) {
	ds, warnings := deriving.Derive(domain.Dataset{Posts: []domain.Post{
		newPost(0, "2024-01-01", 100, 5),
		newPost(1, "2024-01-02", 0, 0),
	}})
	require.Len(t, warnings, 1)

	assert.Equal(t, []int{0, 1}, rows(Apply(ds, DefaultFilters(ds))))
	assert.Equal(t, []int{0}, rows(Apply(ds, domain.InsightFilters{MinEngagementRate: 1})))
}

func TestApply_IgnoraHorario(t *testing.T) {
	ds := dataset()
	end := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	ds.Posts[3].Date = time.Date(2024, 1, 5, 18, 30, 0, 0, time.UTC)

	filtered := Apply(ds, domain.InsightFilters{EndDate: &end})

	assert.Equal(t, []int{0, 1, 3}, rows(filtered))

	// Limites com horário valem pelo dia inteiro
	start := time.Date(2024, 1, 5, 23, 59, 0, 0, time.UTC)
	end = time.Date(2024, 1, 10, 0, 1, 0, 0, time.UTC)
	filtered = Apply(dataset(), domain.InsightFilters{StartDate: &start, EndDate: &end})

	assert.Equal(t, []int{2, 3}, rows(filtered))
}

func TestApply_NaoAlteraOrigem(t *testing.T) {
	ds := dataset()

	filtered := Apply(ds, domain.InsightFilters{MinEngagementRate: 10})
	filtered.Posts[0].Likes = domain.NewCount(999)

	assert.Equal(t, int64(20), ds.Posts[1].Likes.Int64)
	assert.Len(t, ds.Posts, 4)
}

func TestDefaultFiltersEMaxEngagementRate(t *testing.T) {
	ds := dataset()

	filters := DefaultFilters(ds)
	require.NotNil(t, filters.StartDate)
	require.NotNil(t, filters.EndDate)
	assert.Equal(t, "2024-01-01", filters.StartDate.Format(time.DateOnly))
	assert.Equal(t, "2024-01-10", filters.EndDate.Format(time.DateOnly))
	assert.Equal(t, 0.0, filters.MinEngagementRate)

	assert.InDelta(t, 20.0, MaxEngagementRate(ds), 1e-9)

	empty := DefaultFilters(domain.Dataset{})
	assert.Nil(t, empty.StartDate)
	assert.Equal(t, 0.0, MaxEngagementRate(domain.Dataset{}))
}
