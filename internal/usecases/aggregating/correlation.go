package aggregating

import (
	"math"

	"github.com/vfg2006/engagement-insights/internal/domain"
	"gonum.org/v1/gonum/stat"
)

// CorrelationMatrix calcula a correlação de Pearson entre todos os pares de colunas.
// Cada par usa apenas as linhas em que as duas colunas estão definidas.
// A diagonal é sempre 1; pares com variância zero ou menos de duas linhas ficam NaN.
func CorrelationMatrix(ds domain.Dataset, columns []domain.Column) domain.CorrelationMatrix {
	size := len(columns)
	matrix := domain.CorrelationMatrix{
		Columns: append([]domain.Column(nil), columns...),
		Values:  make([][]float64, size),
	}
	for i := range matrix.Values {
		matrix.Values[i] = make([]float64, size)
	}

	for i := 0; i < size; i++ {
		matrix.Values[i][i] = 1
		for j := i + 1; j < size; j++ {
			r := Pearson(ds, columns[i], columns[j])
			matrix.Values[i][j] = r
			matrix.Values[j][i] = r
		}
	}

	return matrix
}

// Pearson calcula a correlação entre duas colunas sobre as linhas em que ambas estão definidas
func Pearson(ds domain.Dataset, a, b domain.Column) float64 {
	xs := make([]float64, 0, ds.Len())
	ys := make([]float64, 0, ds.Len())
	for i := range ds.Posts {
		x := a.Value(&ds.Posts[i])
		y := b.Value(&ds.Posts[i])
		if math.IsNaN(x) || math.IsNaN(y) {
			continue
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}

	if len(xs) < 2 {
		return math.NaN()
	}

	if stat.Variance(xs, nil) == 0 || stat.Variance(ys, nil) == 0 {
		return math.NaN()
	}

	r := stat.Correlation(xs, ys, nil)
	// Limita erros de arredondamento ao intervalo [-1, 1]
	return math.Max(-1, math.Min(1, r))
}
