package aggregating

import (
	"github.com/vfg2006/engagement-insights/internal/domain"
	"github.com/vfg2006/engagement-insights/pkg/utils"
)

// MissingValues conta as células ausentes de cada contador e as linhas afetadas.
// Apenas colunas com pelo menos uma ausência entram no relatório.
func MissingValues(ds domain.Dataset) domain.MissingValuesReport {
	report := domain.MissingValuesReport{Columns: []domain.MissingValue{}}
	if ds.IsEmpty() {
		return report
	}

	affected := make(map[int]bool)
	for _, column := range domain.CountColumns {
		missing := 0
		for i := range ds.Posts {
			count, _ := column.Count(&ds.Posts[i])
			if !count.Valid {
				missing++
				affected[i] = true
			}
		}

		if missing == 0 {
			continue
		}

		report.Columns = append(report.Columns, domain.MissingValue{
			Column:     column.Header(),
			Count:      missing,
			Percentage: utils.RoundWithTwoDecimalPlace(100 * float64(missing) / float64(ds.Len())),
		})
	}

	report.RowsAffected = len(affected)
	return report
}
