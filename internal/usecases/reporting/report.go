// Package reporting monta o relatório de análise exploratória a partir do dataset derivado
package reporting

import (
	"math"
	"time"

	"github.com/vfg2006/engagement-insights/internal/config"
	"github.com/vfg2006/engagement-insights/internal/domain"
	"github.com/vfg2006/engagement-insights/internal/usecases/aggregating"
)

// Options controlam os cortes do relatório
type Options struct {
	TopN          int     // posts por taxa de engajamento
	TopDays       int     // datas por soma de impressões
	OutlierK      float64 // desvios padrão dos limites de outliers
	HighPerformer int     // outliers altos listados
	HistogramBins int
	DashboardTopN int
}

// DefaultOptions são os cortes usados quando nada é configurado
func DefaultOptions() Options {
	return Options{
		TopN:          5,
		TopDays:       10,
		OutlierK:      aggregating.DefaultOutlierK,
		HighPerformer: 5,
		HistogramBins: 30,
		DashboardTopN: 10,
	}
}

// NewOptions lê os cortes da configuração
func NewOptions(cfg config.Report) Options {
	return Options{
		TopN:          cfg.TopN,
		TopDays:       cfg.TopDays,
		OutlierK:      cfg.OutlierK,
		HighPerformer: cfg.TopN,
		HistogramBins: cfg.HistogramBins,
		DashboardTopN: cfg.DashboardTopN,
	}
}

// DayTotals são as somas de um dia de publicação
type DayTotals struct {
	Date        string
	Impressions float64
	Likes       float64
}

// DayMeans são as médias de um dia da semana
type DayMeans struct {
	Day         string
	Impressions float64
	Likes       float64
}

// Ratio é a quantidade média de uma ação a cada 100 impressões
type Ratio struct {
	Label string
	Value float64
}

// Report é o resultado completo da análise
type Report struct {
	RunID       string
	GeneratedAt time.Time
	Source      string

	Rows      int
	Columns   []string
	StartDate time.Time
	EndDate   time.Time
	HasDates  bool

	Impressions domain.SummaryStats
	Likes       domain.SummaryStats
	Averages    []domain.SummaryStats

	Missing domain.MissingValuesReport

	EngagementRate domain.SummaryStats
	LikeRate       domain.SummaryStats
	SaveRate       domain.SummaryStats
	TopPosts       []domain.Post
	PerHundred     []Ratio

	TopDays    []DayTotals
	DayOfWeek  []DayMeans
	BestDay    domain.GroupValue
	HasBestDay bool

	Outliers       domain.OutlierReport
	HighPerformers []domain.Post

	Sources domain.SourceBreakdown

	UndefinedMetrics int
}

// sourceColumns são as colunas do arquivo de origem, na ordem original
var sourceColumns = func() []string {
	columns := []string{domain.HeaderDate}
	for _, c := range domain.CountColumns {
		columns = append(columns, c.Header())
	}
	return append(columns, domain.HeaderCaption, domain.HeaderHashtags)
}()

var averagedColumns = []domain.Column{
	domain.ColumnComments,
	domain.ColumnShares,
	domain.ColumnSaves,
	domain.ColumnProfileVisits,
	domain.ColumnFollows,
}

var perHundredColumns = []domain.Column{
	domain.ColumnLikeRate,
	domain.ColumnSaveRate,
	domain.ColumnCommentRate,
	domain.ColumnShareRate,
}

// Build calcula todas as seções do relatório sobre o dataset completo
func Build(ds domain.Dataset, opts Options) Report {
	report := Report{
		GeneratedAt: time.Now(),
		Source:      ds.Source,
		Rows:        ds.Len(),
		Columns:     sourceColumns,
	}

	report.StartDate, report.EndDate, report.HasDates = ds.DateRange()

	report.Impressions = aggregating.SummaryStats(ds, domain.ColumnImpressions)
	report.Likes = aggregating.SummaryStats(ds, domain.ColumnLikes)
	for _, column := range averagedColumns {
		report.Averages = append(report.Averages, aggregating.SummaryStats(ds, column))
	}

	report.Missing = aggregating.MissingValues(ds)

	report.EngagementRate = aggregating.SummaryStats(ds, domain.ColumnEngagementRate)
	report.LikeRate = aggregating.SummaryStats(ds, domain.ColumnLikeRate)
	report.SaveRate = aggregating.SummaryStats(ds, domain.ColumnSaveRate)
	report.TopPosts = aggregating.TopN(ds, domain.ColumnEngagementRate, opts.TopN, true)

	for _, column := range perHundredColumns {
		report.PerHundred = append(report.PerHundred, Ratio{
			Label: perHundredLabel(column),
			Value: aggregating.Mean(ds, column),
		})
	}

	report.TopDays = topDays(ds, opts.TopDays)
	report.DayOfWeek = dayOfWeek(ds)

	byDay := aggregating.GroupMean(ds, domain.GroupByDayOfWeek, domain.ColumnImpressions)
	report.BestDay, report.HasBestDay = aggregating.BestGroup(byDay)

	report.Outliers = aggregating.Outliers(ds, domain.ColumnImpressions, opts.OutlierK)
	report.HighPerformers = aggregating.TopN(
		domain.Dataset{Posts: report.Outliers.High},
		domain.ColumnImpressions,
		opts.HighPerformer,
		true,
	)

	report.Sources = aggregating.SourceBreakdown(ds)

	for _, p := range ds.Posts {
		if math.IsNaN(p.EngagementRate) {
			report.UndefinedMetrics++
		}
	}

	return report
}

func perHundredLabel(column domain.Column) string {
	switch column {
	case domain.ColumnLikeRate:
		return "likes"
	case domain.ColumnSaveRate:
		return "saves"
	case domain.ColumnCommentRate:
		return "comments"
	default:
		return "shares"
	}
}

// topDays soma impressões e curtidas por data e mantém as n datas com mais impressões
func topDays(ds domain.Dataset, n int) []DayTotals {
	impressions := aggregating.GroupSum(ds, domain.GroupByDate, domain.ColumnImpressions)
	likes := aggregating.GroupSum(ds, domain.GroupByDate, domain.ColumnLikes)

	likesByDate := make(map[string]float64, len(likes))
	for _, g := range likes {
		likesByDate[g.Key] = g.Value
	}

	top := aggregating.TopGroups(impressions, n)
	days := make([]DayTotals, 0, len(top))
	for _, g := range top {
		days = append(days, DayTotals{Date: g.Key, Impressions: g.Value, Likes: likesByDate[g.Key]})
	}
	return days
}

func dayOfWeek(ds domain.Dataset) []DayMeans {
	impressions := aggregating.GroupMean(ds, domain.GroupByDayOfWeek, domain.ColumnImpressions)
	likes := aggregating.GroupMean(ds, domain.GroupByDayOfWeek, domain.ColumnLikes)

	days := make([]DayMeans, 0, len(impressions))
	for i, g := range impressions {
		days = append(days, DayMeans{Day: g.Key, Impressions: g.Value, Likes: likes[i].Value})
	}
	return days
}

// SourceColumns retorna as colunas do arquivo de origem, na ordem original
func SourceColumns() []string {
	return append([]string(nil), sourceColumns...)
}
