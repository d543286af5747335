package reporting

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/engagement-insights/internal/domain"
	"github.com/vfg2006/engagement-insights/internal/usecases/deriving"
)

func newPost(date string, impressions, likes, saves int64) domain.Post {
	d, _ := time.Parse(time.DateOnly, date)
	return domain.Post{
		Date:          d,
		Impressions:   domain.NewCount(impressions),
		Likes:         domain.NewCount(likes),
		Comments:      domain.NewCount(1),
		Shares:        domain.NewCount(1),
		Saves:         domain.NewCount(saves),
		ProfileVisits: domain.NewCount(likes / 2),
		Follows:       domain.NewCount(likes / 10),
		FromHome:      domain.NewCount(impressions / 2),
		FromHashtags:  domain.NewCount(impressions / 4),
		FromExplore:   domain.NewCount(impressions / 8),
		FromOther:     domain.NewCount(0),
	}
}

func dataset(t *testing.T) domain.Dataset {
	t.Helper()

	posts := []domain.Post{
		newPost("2024-01-01", 1000, 50, 10),  // segunda
		newPost("2024-01-02", 1200, 60, 12),  // terça
		newPost("2024-01-02", 800, 40, 8),   // terça
		newPost("2024-01-08", 1100, 80, 20),  // segunda
		newPost("2024-01-09", 900, 30, 5),   // terça
		newPost("2024-01-10", 1000, 45, 9),  // quarta
		newPost("2024-01-11", 950, 44, 9),   // quinta
		newPost("2024-01-12", 1050, 52, 11),  // sexta
		newPost("2024-01-13", 1000, 48, 10),  // sábado
		newPost("2024-01-14", 9000, 400, 90), // domingo
		newPost("2024-01-15", 0, 0, 0),      // segunda, sem impressões
	}
	for i := range posts {
		posts[i].Row = i
	}

	ds, warnings := deriving.Derive(domain.Dataset{Source: "data/posts.csv", Posts: posts})
	require.Len(t, warnings, 1)
	return ds
}

func TestBuild(t *testing.T) {
	ds := dataset(t)

	report := Build(ds, DefaultOptions())

	assert.Equal(t, 11, report.Rows)
	assert.Len(t, report.Columns, 14)
	assert.Equal(t, domain.HeaderDate, report.Columns[0])
	assert.True(t, report.HasDates)
	assert.Equal(t, "2024-01-15", report.EndDate.Format(time.DateOnly))

	assert.InDelta(t, 18000.0, report.Impressions.Sum, 1e-9)
	assert.InDelta(t, 0.0, report.Impressions.Min, 1e-9)
	assert.InDelta(t, 9000.0, report.Impressions.Max, 1e-9)
	assert.Len(t, report.Averages, 5)

	assert.Equal(t, 10, report.EngagementRate.Count)
	assert.Equal(t, 1, report.UndefinedMetrics)

	require.Len(t, report.TopPosts, 5)
	for i := 1; i < len(report.TopPosts); i++ {
		assert.GreaterOrEqual(t, report.TopPosts[i-1].EngagementRate, report.TopPosts[i].EngagementRate)
	}
	assert.Equal(t, 3, report.TopPosts[0].Row)

	require.Len(t, report.PerHundred, 4)
	assert.Equal(t, "likes", report.PerHundred[0].Label)
	assert.InDelta(t, report.LikeRate.Mean, report.PerHundred[0].Value, 1e-9)

	require.Len(t, report.TopDays, 10)
	assert.Equal(t, "2024-01-14", report.TopDays[0].Date)
	assert.InDelta(t, 9000.0, report.TopDays[0].Impressions, 1e-9)
	assert.InDelta(t, 400.0, report.TopDays[0].Likes, 1e-9)
	assert.Equal(t, "2024-01-02", report.TopDays[1].Date)
	assert.InDelta(t, 2000.0, report.TopDays[1].Impressions, 1e-9)

	require.Len(t, report.DayOfWeek, 7)
	assert.Equal(t, "Monday", report.DayOfWeek[0].Day)
	assert.InDelta(t, 700.0, report.DayOfWeek[0].Impressions, 1e-9)

	require.True(t, report.HasBestDay)
	assert.Equal(t, "Sunday", report.BestDay.Key)

	require.Len(t, report.Outliers.High, 1)
	assert.Equal(t, 9, report.Outliers.High[0].Row)
	require.Len(t, report.HighPerformers, 1)

	require.Len(t, report.Sources.Sources, 4)
	assert.InDelta(t, 50.0, report.Sources.Sources[0].Share, 0.1)
}

func TestBuild_DatasetVazio(t *testing.T) {
	report := Build(domain.Dataset{}, DefaultOptions())

	assert.Equal(t, 0, report.Rows)
	assert.False(t, report.HasDates)
	assert.False(t, report.HasBestDay)
	assert.Empty(t, report.TopPosts)
	assert.Empty(t, report.TopDays)
	assert.True(t, math.IsNaN(report.Impressions.Mean))

	md := Markdown(report)
	assert.Contains(t, md, "0 linhas")
	assert.Contains(t, md, "n/d")
}

func TestMarkdown(t *testing.T) {
	ds := dataset(t)
	report := Build(ds, DefaultOptions())
	report.RunID = "abc12345"

	md := Markdown(report)

	assert.Contains(t, md, "# Análise de desempenho do Instagram")
	assert.Contains(t, md, "`abc12345`")
	assert.Contains(t, md, "11 linhas × 14 colunas")
	assert.Contains(t, md, "| Total | 18,000 |")
	assert.Contains(t, md, "Melhor dia para postar: **Sunday**")
	assert.Contains(t, md, "Posts com taxa indefinida (sem impressões): 1")
	assert.Contains(t, md, "| From Home |")
	assert.Contains(t, md, "Nenhum valor ausente encontrado.")
	assert.Contains(t, md, "| 2024-01-14 | 9,000 | 400 |")
}

func TestMarkdown_ValoresAusentes(t *testing.T) {
	ds := dataset(t)
	ds.Posts[2].Follows = domain.Count{}

	md := Markdown(Build(ds, DefaultOptions()))

	assert.Contains(t, md, "| Follows | 1 | 9.09 |")
	assert.Contains(t, md, "Linhas afetadas: 1")
}

func TestBuildPanels(t *testing.T) {
	ds := dataset(t)
	opts := DefaultOptions()

	panels := BuildPanels(ds, opts.PanelOptions())

	assert.Len(t, panels.ImpressionsOverTime, 11)
	require.Len(t, panels.AverageEngagement, 4)
	assert.Equal(t, domain.HeaderLikes, panels.AverageEngagement[0].Key)
	assert.Len(t, panels.EngagementHistogram, 30)
	assert.Len(t, panels.TrafficSources.Sources, 4)
	assert.Len(t, panels.LikesVsImpressions, 11)
	assert.Len(t, panels.ImpressionsByDay, 7)
	assert.Len(t, panels.VisitsVsFollows, 11)
	require.Len(t, panels.TopByImpressions, 10)
	assert.Equal(t, 9, panels.TopByImpressions[0].Row)
	assert.Len(t, panels.Correlation.Values, len(domain.CorrelationColumns))

	total := 0
	for _, bin := range panels.EngagementHistogram {
		total += bin.Count
	}
	assert.Equal(t, 10, total)
}
