package aggregating

import (
	"math"

	"github.com/vfg2006/engagement-insights/internal/domain"
)

// SourceBreakdown soma as impressões de cada origem de tráfego e calcula sua
// participação no total de impressões. O restante não é atribuído a nenhuma origem.
func SourceBreakdown(ds domain.Dataset) domain.SourceBreakdown {
	breakdown := domain.SourceBreakdown{
		TotalImpressions: sumCounts(ds, domain.ColumnImpressions),
		Sources:          make([]domain.SourceShare, 0, len(domain.TrafficSources)),
	}

	for _, source := range domain.TrafficSources {
		total := sumCounts(ds, source)
		share := math.NaN()
		if breakdown.TotalImpressions > 0 {
			share = 100 * float64(total) / float64(breakdown.TotalImpressions)
		}

		breakdown.Sources = append(breakdown.Sources, domain.SourceShare{
			Source: source,
			Total:  total,
			Share:  share,
		})
	}

	return breakdown
}

func sumCounts(ds domain.Dataset, column domain.Column) int64 {
	var total int64
	for i := range ds.Posts {
		count, ok := column.Count(&ds.Posts[i])
		if ok && count.Valid {
			total += count.Int64
		}
	}
	return total
}
