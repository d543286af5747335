package insighting

import (
	"github.com/vfg2006/engagement-insights/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_insighter.go -package=mocks

// Insighter define as consultas do painel interativo. Cada chamada parte do dataset
// base em cache e aplica apenas os filtros recebidos.
type Insighter interface {
	// GetDatasetInfo retorna o tamanho do dataset e os valores iniciais dos filtros
	GetDatasetInfo() (*domain.DatasetInfoResponse, error)

	// GetDashboard calcula todos os painéis para os filtros informados
	GetDashboard(filters *domain.InsightFilters) (*domain.DashboardResponse, error)

	// GetTopPosts retorna os n posts com maior (ou menor) valor da coluna
	GetTopPosts(filters *domain.InsightFilters, column domain.Column, n int, descending bool) (*domain.TopPostsResponse, error)

	// GetStats retorna as estatísticas descritivas da coluna
	GetStats(filters *domain.InsightFilters, column domain.Column) (*domain.StatsResponse, error)

	// GetOutliers retorna os limites média ± k·desvio e as linhas fora deles
	GetOutliers(filters *domain.InsightFilters, column domain.Column, k float64) (*domain.OutlierResponse, error)

	// GetCorrelation retorna a matriz de correlação das colunas
	GetCorrelation(filters *domain.InsightFilters, columns []domain.Column) (*domain.CorrelationResponse, error)

	// GetReport retorna o relatório completo, sem filtros, em markdown
	GetReport() (string, error)
}
