package aggregating

import (
	"math"
	"sort"
	"time"

	"github.com/vfg2006/engagement-insights/internal/domain"
)

// DayOrder é a ordem canônica dos dias da semana
var DayOrder = []string{
	time.Monday.String(),
	time.Tuesday.String(),
	time.Wednesday.String(),
	time.Thursday.String(),
	time.Friday.String(),
	time.Saturday.String(),
	time.Sunday.String(),
}

// MonthOrder é a ordem canônica dos meses
var MonthOrder = func() []string {
	months := make([]string, 0, 12)
	for m := time.January; m <= time.December; m++ {
		months = append(months, m.String())
	}
	return months
}()

type groupAccumulator struct {
	sum   float64
	count int
	rows  int
}

// groupKeyOf retorna a chave de agrupamento do post
func groupKeyOf(p *domain.Post, by domain.GroupKey) string {
	switch by {
	case domain.GroupByDayOfWeek:
		if p.DayOfWeek != "" {
			return p.DayOfWeek
		}
		return p.Date.Weekday().String()
	case domain.GroupByMonth:
		if p.Month != "" {
			return p.Month
		}
		return p.Date.Month().String()
	default:
		return p.Date.Format(time.DateOnly)
	}
}

func accumulate(ds domain.Dataset, by domain.GroupKey, column domain.Column) map[string]*groupAccumulator {
	groups := make(map[string]*groupAccumulator)
	for i := range ds.Posts {
		p := &ds.Posts[i]
		key := groupKeyOf(p, by)

		acc, ok := groups[key]
		if !ok {
			acc = &groupAccumulator{}
			groups[key] = acc
		}
		acc.rows++

		v := column.Value(p)
		if math.IsNaN(v) {
			continue
		}
		acc.sum += v
		acc.count++
	}
	return groups
}

// orderedKeys devolve as chaves presentes na ordem canônica da dimensão.
// Grupos ausentes nos dados são omitidos.
func orderedKeys(groups map[string]*groupAccumulator, by domain.GroupKey) []string {
	var canonical []string
	switch by {
	case domain.GroupByDayOfWeek:
		canonical = DayOrder
	case domain.GroupByMonth:
		canonical = MonthOrder
	}

	keys := make([]string, 0, len(groups))
	if canonical != nil {
		for _, key := range canonical {
			if _, ok := groups[key]; ok {
				keys = append(keys, key)
			}
		}
		return keys
	}

	// Datas em yyyy-mm-dd ordenam corretamente como texto
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// GroupMean calcula a média da coluna para cada valor distinto da dimensão
func GroupMean(ds domain.Dataset, by domain.GroupKey, column domain.Column) []domain.GroupValue {
	groups := accumulate(ds, by, column)

	result := make([]domain.GroupValue, 0, len(groups))
	for _, key := range orderedKeys(groups, by) {
		acc := groups[key]
		mean := math.NaN()
		if acc.count > 0 {
			mean = acc.sum / float64(acc.count)
		}
		result = append(result, domain.GroupValue{Key: key, Value: mean, Count: acc.rows})
	}

	return result
}

// GroupSum calcula a soma da coluna para cada valor distinto da dimensão
func GroupSum(ds domain.Dataset, by domain.GroupKey, column domain.Column) []domain.GroupValue {
	groups := accumulate(ds, by, column)

	result := make([]domain.GroupValue, 0, len(groups))
	for _, key := range orderedKeys(groups, by) {
		acc := groups[key]
		result = append(result, domain.GroupValue{Key: key, Value: acc.sum, Count: acc.rows})
	}

	return result
}

// TopGroups ordena os grupos pelo valor, do maior para o menor, e mantém os n primeiros.
// Empates preservam a ordem de entrada.
func TopGroups(groups []domain.GroupValue, n int) []domain.GroupValue {
	sorted := make([]domain.GroupValue, len(groups))
	copy(sorted, groups)

	sort.SliceStable(sorted, func(i, j int) bool {
		return greater(sorted[i].Value, sorted[j].Value)
	})

	if n >= 0 && n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// BestGroup retorna o grupo de maior valor. ok é falso sem grupos definidos.
func BestGroup(groups []domain.GroupValue) (domain.GroupValue, bool) {
	var best domain.GroupValue
	found := false
	for _, g := range groups {
		if math.IsNaN(g.Value) {
			continue
		}
		if !found || g.Value > best.Value {
			best = g
			found = true
		}
	}
	return best, found
}

// greater compara valores colocando NaN sempre por último
func greater(a, b float64) bool {
	if math.IsNaN(a) {
		return false
	}
	if math.IsNaN(b) {
		return true
	}
	return a > b
}
