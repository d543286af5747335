// Package filtering seleciona subconjuntos do dataset para o painel interativo
package filtering

import (
	"math"
	"time"

	"github.com/vfg2006/engagement-insights/internal/domain"
)

// Apply retorna os posts cuja data está em [StartDate, EndDate] (inclusivo, por dia)
// e cuja taxa de engajamento é maior ou igual ao mínimo.
//
// Limites nulos ficam abertos. Com mínimo menor ou igual a zero, posts com taxa
// indefinida são mantidos, de forma que o intervalo completo sem mínimo devolve
// o dataset inteiro. O resultado é sempre uma cópia; o dataset de origem não é alterado.
func Apply(ds domain.Dataset, filters domain.InsightFilters) domain.Dataset {
	result := domain.Dataset{
		Source: ds.Source,
		Posts:  make([]domain.Post, 0, ds.Len()),
	}

	var start, end time.Time
	if filters.StartDate != nil {
		start = domain.TruncateToDate(*filters.StartDate)
	}
	if filters.EndDate != nil {
		end = domain.TruncateToDate(*filters.EndDate)
	}

	// Intervalo vazio
	if filters.StartDate != nil && filters.EndDate != nil && start.After(end) {
		return result
	}

	for _, p := range ds.Posts {
		date := domain.TruncateToDate(p.Date)
		if filters.StartDate != nil && date.Before(start) {
			continue
		}
		if filters.EndDate != nil && date.After(end) {
			continue
		}
		if !meetsThreshold(p.EngagementRate, filters.MinEngagementRate) {
			continue
		}
		result.Posts = append(result.Posts, p)
	}

	return result
}

func meetsThreshold(rate, minimum float64) bool {
	if math.IsNaN(rate) {
		return minimum <= 0
	}
	return rate >= minimum
}

// DefaultFilters são os filtros iniciais do painel: todo o intervalo do dataset e mínimo zero
func DefaultFilters(ds domain.Dataset) domain.InsightFilters {
	filters := domain.InsightFilters{}

	start, end, ok := ds.DateRange()
	if ok {
		filters.StartDate = &start
		filters.EndDate = &end
	}

	return filters
}

// MaxEngagementRate é o maior valor aceito pelo controle de taxa mínima.
// Retorna zero quando nenhuma taxa está definida.
func MaxEngagementRate(ds domain.Dataset) float64 {
	maximum := 0.0
	for _, p := range ds.Posts {
		if !math.IsNaN(p.EngagementRate) && p.EngagementRate > maximum {
			maximum = p.EngagementRate
		}
	}
	return maximum
}
