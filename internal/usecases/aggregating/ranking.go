package aggregating

import (
	"math"
	"sort"

	"github.com/vfg2006/engagement-insights/internal/domain"
)

// TopN retorna os n posts com maior (ou menor) valor da coluna.
// A ordenação é estável: empates mantêm a ordem original das linhas.
// Posts com valor indefinido ficam no fim, em ordem original.
// Com menos de n posts, todos são retornados.
func TopN(ds domain.Dataset, column domain.Column, n int, descending bool) []domain.Post {
	if n <= 0 || ds.IsEmpty() {
		return []domain.Post{}
	}

	ranked := make([]domain.Post, ds.Len())
	copy(ranked, ds.Posts)

	sort.SliceStable(ranked, func(i, j int) bool {
		a := column.Value(&ranked[i])
		b := column.Value(&ranked[j])

		if math.IsNaN(a) || math.IsNaN(b) {
			return !math.IsNaN(a) && math.IsNaN(b)
		}
		if descending {
			return a > b
		}
		return a < b
	})

	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
