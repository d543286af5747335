// Package aggregating reúne as consultas de agregação sobre um dataset derivado.
//
// Todas as funções são puras: não alteram o dataset e podem ser chamadas
// concorrentemente sobre o mesmo dataset imutável. Valores indefinidos (NaN)
// são excluídos da contagem e da aritmética; consultas sobre zero linhas
// retornam resultados vazios ou NaN, nunca erro.
package aggregating

import (
	"math"

	"github.com/vfg2006/engagement-insights/internal/domain"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// values extrai os valores definidos da coluna, na ordem das linhas
func values(ds domain.Dataset, column domain.Column) []float64 {
	out := make([]float64, 0, ds.Len())
	for i := range ds.Posts {
		v := column.Value(&ds.Posts[i])
		if math.IsNaN(v) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// SummaryStats calcula contagem, soma, média, mínimo, máximo e desvio padrão amostral
func SummaryStats(ds domain.Dataset, column domain.Column) domain.SummaryStats {
	return summarize(column, values(ds, column))
}

func summarize(column domain.Column, vals []float64) domain.SummaryStats {
	stats := domain.SummaryStats{
		Column: column,
		Count:  len(vals),
		Mean:   math.NaN(),
		Min:    math.NaN(),
		Max:    math.NaN(),
		StdDev: math.NaN(),
	}

	if len(vals) == 0 {
		return stats
	}

	stats.Sum = floats.Sum(vals)
	stats.Min = floats.Min(vals)
	stats.Max = floats.Max(vals)

	if len(vals) == 1 {
		stats.Mean = vals[0]
		return stats
	}

	// Desvio padrão amostral, denominador N-1
	stats.Mean, stats.StdDev = stat.MeanStdDev(vals, nil)

	return stats
}

// Mean é um atalho para a média de uma coluna
func Mean(ds domain.Dataset, column domain.Column) float64 {
	return SummaryStats(ds, column).Mean
}

// Sum é um atalho para a soma de uma coluna
func Sum(ds domain.Dataset, column domain.Column) float64 {
	return SummaryStats(ds, column).Sum
}
