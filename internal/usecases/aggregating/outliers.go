package aggregating

import (
	"github.com/vfg2006/engagement-insights/internal/domain"
)

// DefaultOutlierK é o número de desvios padrão usado por padrão
const DefaultOutlierK = 2.0

// Bounds calcula média ± k·desvio padrão sobre todo o dataset
func Bounds(ds domain.Dataset, column domain.Column, k float64) domain.OutlierBounds {
	stats := SummaryStats(ds, column)

	return domain.OutlierBounds{
		Column: column,
		K:      k,
		Mean:   stats.Mean,
		StdDev: stats.StdDev,
		Lower:  stats.Mean - k*stats.StdDev,
		Upper:  stats.Mean + k*stats.StdDev,
	}
}

// Outliers retorna os limites e as linhas estritamente acima ou abaixo deles.
// Com limites indefinidos (menos de dois valores) nenhuma linha é marcada.
func Outliers(ds domain.Dataset, column domain.Column, k float64) domain.OutlierReport {
	bounds := Bounds(ds, column, k)
	report := domain.OutlierReport{
		Bounds: bounds,
		High:   []domain.Post{},
		Low:    []domain.Post{},
	}

	for i := range ds.Posts {
		v := column.Value(&ds.Posts[i])
		// Comparações com NaN são sempre falsas
		if v > bounds.Upper {
			report.High = append(report.High, ds.Posts[i])
		} else if v < bounds.Lower {
			report.Low = append(report.Low, ds.Posts[i])
		}
	}

	return report
}
