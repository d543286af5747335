package domain

import (
	"time"
)

// InsightFilters são os filtros aplicados pelo painel interativo
type InsightFilters struct {
	StartDate         *time.Time
	EndDate           *time.Time
	MinEngagementRate float64
}

// IsZero indica se nenhum filtro foi informado
func (f *InsightFilters) IsZero() bool {
	return f == nil || (f.StartDate == nil && f.EndDate == nil && f.MinEngagementRate <= 0)
}

// SummaryStats são as estatísticas descritivas de uma coluna.
// Valores NaN são excluídos da contagem e da aritmética.
type SummaryStats struct {
	Column Column
	Count  int
	Sum    float64
	Mean   float64
	Min    float64
	Max    float64
	StdDev float64 // amostral, denominador N-1
}

// GroupKey define a dimensão de agrupamento
type GroupKey string

const (
	GroupByDayOfWeek GroupKey = "day_of_week"
	GroupByMonth     GroupKey = "month"
	GroupByDate      GroupKey = "date"
)

// GroupValue é o agregado de uma coluna para um grupo
type GroupValue struct {
	Key   string
	Value float64
	Count int
}

// OutlierBounds são os limites média ± k·desvio padrão
type OutlierBounds struct {
	Column Column
	K      float64
	Mean   float64
	StdDev float64
	Lower  float64
	Upper  float64
}

// OutlierReport reúne os limites e as linhas fora deles
type OutlierReport struct {
	Bounds OutlierBounds
	High   []Post
	Low    []Post
}

// CorrelationMatrix é a matriz simétrica de correlação de Pearson
type CorrelationMatrix struct {
	Columns []Column
	Values  [][]float64
}

// Get retorna a correlação entre duas colunas da matriz
func (m CorrelationMatrix) Get(a, b Column) (float64, bool) {
	i, j := -1, -1
	for idx, c := range m.Columns {
		if c == a {
			i = idx
		}
		if c == b {
			j = idx
		}
	}
	if i < 0 || j < 0 {
		return 0, false
	}
	return m.Values[i][j], true
}

// SourceShare é o total de impressões de uma origem de tráfego
type SourceShare struct {
	Source Column
	Total  int64
	Share  float64 // porcentagem do total de impressões, NaN se o total for zero
}

// SourceBreakdown é a divisão das impressões por origem.
// As somas das origens não precisam fechar com o total de impressões.
type SourceBreakdown struct {
	TotalImpressions int64
	Sources          []SourceShare
}

// HistogramBin é uma faixa do histograma
type HistogramBin struct {
	Lower float64
	Upper float64
	Count int
}

// SeriesPoint é um ponto da série temporal
type SeriesPoint struct {
	Date  time.Time
	Value float64
}

// ScatterPoint é um par de valores definidos de uma mesma linha
type ScatterPoint struct {
	Row int
	X   float64
	Y   float64
}

// MissingValue é a contagem de células ausentes por coluna
type MissingValue struct {
	Column     string
	Count      int
	Percentage float64
}

// MissingValuesReport resume as células ausentes do dataset
type MissingValuesReport struct {
	Columns      []MissingValue
	RowsAffected int
}
