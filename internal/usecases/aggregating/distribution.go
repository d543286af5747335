package aggregating

import (
	"math"
	"sort"

	"github.com/vfg2006/engagement-insights/internal/domain"
	"gonum.org/v1/gonum/stat"
)

// Histogram divide os valores definidos da coluna em faixas de mesma largura
// entre o mínimo e o máximo. A última faixa é fechada à direita.
func Histogram(ds domain.Dataset, column domain.Column, bins int) []domain.HistogramBin {
	vals := values(ds, column)
	if bins <= 0 || len(vals) == 0 {
		return []domain.HistogramBin{}
	}

	stats := summarize(column, vals)
	lower, upper := stats.Min, stats.Max
	if lower == upper {
		// Valor único: uma faixa de largura 1 centrada nele
		lower -= 0.5
		upper += 0.5
	}

	width := (upper - lower) / float64(bins)
	dividers := make([]float64, bins+1)
	for i := range dividers {
		dividers[i] = lower + float64(i)*width
	}
	// stat.Histogram usa faixas [a, b); o máximo precisa cair dentro da última
	dividers[bins] = math.Nextafter(upper, math.Inf(1))

	sort.Float64s(vals)
	counts := stat.Histogram(nil, dividers, vals, nil)

	result := make([]domain.HistogramBin, bins)
	for i := range result {
		result[i] = domain.HistogramBin{
			Lower: dividers[i],
			Upper: dividers[i+1],
			Count: int(counts[i]),
		}
	}
	result[bins-1].Upper = upper

	return result
}

// Series retorna os pontos (data, valor) ordenados por data.
// Linhas da mesma data mantêm a ordem original.
func Series(ds domain.Dataset, column domain.Column) []domain.SeriesPoint {
	points := make([]domain.SeriesPoint, 0, ds.Len())
	for i := range ds.Posts {
		points = append(points, domain.SeriesPoint{
			Date:  ds.Posts[i].Date,
			Value: column.Value(&ds.Posts[i]),
		})
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})

	return points
}

// Scatter retorna os pares (x, y) das linhas em que as duas colunas estão definidas
func Scatter(ds domain.Dataset, x, y domain.Column) []domain.ScatterPoint {
	points := make([]domain.ScatterPoint, 0, ds.Len())
	for i := range ds.Posts {
		xv := x.Value(&ds.Posts[i])
		yv := y.Value(&ds.Posts[i])
		if math.IsNaN(xv) || math.IsNaN(yv) {
			continue
		}
		points = append(points, domain.ScatterPoint{Row: ds.Posts[i].Row, X: xv, Y: yv})
	}
	return points
}
