package exporter

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/engagement-insights/internal/domain"
	"github.com/vfg2006/engagement-insights/pkg/utils"
	"github.com/xuri/excelize/v2"
)

const (
	DashboardSheet = "Dashboard"
	DataSheet      = "Dados"

	// Célula do canto superior esquerdo da tabela de correlação
	correlationCol = 19 // S
	correlationRow = 33
)

var palette = []string{"2E86AB", "A23B72", "F18F01", "C73E1D", "6A994E"}

// Posições dos oito gráficos, em grade 3x3; a nona posição é a tabela de correlação
var chartCells = []string{"A1", "J1", "S1", "A17", "J17", "S17", "A33", "J33"}

// block é uma faixa de duas colunas da planilha de dados
type block struct {
	categories string
	values     string
	name       string
	rows       int
}

// WriteDashboard grava o dashboard com os nove painéis em uma pasta de trabalho XLSX.
// Os dados de cada gráfico ficam na planilha Dados.
func WriteDashboard(path string, panels domain.ChartPanels) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "erro ao criar diretório de saída")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", DashboardSheet); err != nil {
		return errors.Wrap(err, "erro ao renomear planilha")
	}
	if _, err := f.NewSheet(DataSheet); err != nil {
		return errors.Wrap(err, "erro ao criar planilha de dados")
	}

	charts, err := writeChartData(f, panels)
	if err != nil {
		return err
	}

	for i, chart := range charts {
		if chart == nil {
			continue
		}
		if err := f.AddChart(DashboardSheet, chartCells[i], chart); err != nil {
			return errors.Wrapf(err, "erro ao adicionar gráfico %d", i+1)
		}
	}

	if err := writeCorrelation(f, panels.Correlation); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	if err := f.SaveAs(path); err != nil {
		return errors.Wrap(err, "erro ao salvar dashboard")
	}

	logrus.WithFields(logrus.Fields{
		"path":   path,
		"charts": countCharts(charts),
	}).Info("Dashboard gravado")

	return nil
}

// writeChartData escreve os dados de cada painel e monta os gráficos correspondentes.
// Painéis sem dados ficam sem gráfico (nil).
func writeChartData(f *excelize.File, panels domain.ChartPanels) ([]*excelize.Chart, error) {
	charts := make([]*excelize.Chart, len(chartCells))

	series := make([][2]interface{}, 0, len(panels.ImpressionsOverTime))
	for _, p := range panels.ImpressionsOverTime {
		series = append(series, [2]interface{}{p.Date.Format(time.DateOnly), cellValue(p.Value)})
	}
	b, err := writeBlock(f, 1, [2]string{domain.HeaderDate, domain.HeaderImpressions}, series)
	if err != nil {
		return nil, err
	}
	charts[0] = lineChart("Impressions Over Time", b)

	averages := make([][2]interface{}, 0, len(panels.AverageEngagement))
	for _, g := range panels.AverageEngagement {
		averages = append(averages, [2]interface{}{g.Key, cellValue(utils.RoundWithTwoDecimalPlace(g.Value))})
	}
	if b, err = writeBlock(f, 4, [2]string{"Metric", "Average"}, averages); err != nil {
		return nil, err
	}
	charts[1] = barChart(excelize.Col, "Average Engagement Metrics", b, palette[1])

	bins := make([][2]interface{}, 0, len(panels.EngagementHistogram))
	for _, bin := range panels.EngagementHistogram {
		label := fmt.Sprintf("%s-%s", utils.FormatDecimal(bin.Lower, 2), utils.FormatDecimal(bin.Upper, 2))
		bins = append(bins, [2]interface{}{label, bin.Count})
	}
	if b, err = writeBlock(f, 7, [2]string{"Engagement Rate (%)", "Frequency"}, bins); err != nil {
		return nil, err
	}
	charts[2] = barChart(excelize.Col, "Engagement Rate Distribution", b, palette[0])

	sources := make([][2]interface{}, 0, len(panels.TrafficSources.Sources))
	for _, s := range panels.TrafficSources.Sources {
		sources = append(sources, [2]interface{}{s.Source.Header(), s.Total})
	}
	if b, err = writeBlock(f, 10, [2]string{"Source", domain.HeaderImpressions}, sources); err != nil {
		return nil, err
	}
	if panels.TrafficSources.TotalImpressions > 0 {
		charts[3] = pieChart("Impressions by Source", b)
	}

	if b, err = writeBlock(f, 13, [2]string{domain.HeaderImpressions, domain.HeaderLikes}, scatterRows(panels.LikesVsImpressions)); err != nil {
		return nil, err
	}
	charts[4] = scatterChart("Likes vs Impressions", b, palette[0])

	days := make([][2]interface{}, 0, len(panels.ImpressionsByDay))
	for _, g := range panels.ImpressionsByDay {
		days = append(days, [2]interface{}{g.Key, cellValue(utils.RoundWithTwoDecimalPlace(g.Value))})
	}
	if b, err = writeBlock(f, 16, [2]string{"Day", "Avg Impressions"}, days); err != nil {
		return nil, err
	}
	charts[5] = barChart(excelize.Col, "Avg Impressions by Day", b, palette[1])

	if b, err = writeBlock(f, 19, [2]string{domain.HeaderProfileVisits, domain.HeaderFollows}, scatterRows(panels.VisitsVsFollows)); err != nil {
		return nil, err
	}
	charts[6] = scatterChart("Profile Visits vs Follows", b, palette[2])

	top := make([][2]interface{}, 0, len(panels.TopByImpressions))
	for _, p := range panels.TopByImpressions {
		label := fmt.Sprintf("%s (#%d)", p.Date.Format(time.DateOnly), p.Row+1)
		top = append(top, [2]interface{}{label, cellValue(p.Impressions.Float())})
	}
	if b, err = writeBlock(f, 22, [2]string{"Post", domain.HeaderImpressions}, top); err != nil {
		return nil, err
	}
	charts[7] = barChart(excelize.Bar, fmt.Sprintf("Top %d Posts", b.rows), b, palette[4])

	return charts, nil
}

// writeBlock escreve um cabeçalho e as linhas em duas colunas a partir de col
func writeBlock(f *excelize.File, col int, header [2]string, rows [][2]interface{}) (block, error) {
	start, err := excelize.CoordinatesToCellName(col, 1)
	if err != nil {
		return block{}, errors.Wrap(err, "erro ao calcular célula")
	}
	if err := f.SetSheetRow(DataSheet, start, &[]interface{}{header[0], header[1]}); err != nil {
		return block{}, errors.Wrap(err, "erro ao escrever cabeçalho")
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(col, i+2)
		if err != nil {
			return block{}, errors.Wrap(err, "erro ao calcular célula")
		}
		if err := f.SetSheetRow(DataSheet, cell, &[]interface{}{row[0], row[1]}); err != nil {
			return block{}, errors.Wrapf(err, "erro ao escrever linha %d", i+1)
		}
	}

	catCol, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return block{}, errors.Wrap(err, "erro ao calcular coluna")
	}
	valCol, err := excelize.ColumnNumberToName(col + 1)
	if err != nil {
		return block{}, errors.Wrap(err, "erro ao calcular coluna")
	}

	last := len(rows) + 1
	return block{
		categories: fmt.Sprintf("%s!$%s$2:$%s$%d", DataSheet, catCol, catCol, last),
		values:     fmt.Sprintf("%s!$%s$2:$%s$%d", DataSheet, valCol, valCol, last),
		name:       fmt.Sprintf("%s!$%s$1", DataSheet, valCol),
		rows:       len(rows),
	}, nil
}

func scatterRows(points []domain.ScatterPoint) [][2]interface{} {
	rows := make([][2]interface{}, 0, len(points))
	for _, p := range points {
		rows = append(rows, [2]interface{}{p.X, p.Y})
	}
	return rows
}

// cellValue converte valores indefinidos em célula vazia
func cellValue(v float64) interface{} {
	if !utils.IsDefined(v) {
		return nil
	}
	return v
}

func title(text string) []excelize.RichTextRun {
	return []excelize.RichTextRun{{Text: text, Font: &excelize.Font{Bold: true}}}
}

var panelDimension = excelize.ChartDimension{Width: 520, Height: 300}

func lineChart(name string, b block) *excelize.Chart {
	if b.rows == 0 {
		return nil
	}
	return &excelize.Chart{
		Type: excelize.Line,
		Series: []excelize.ChartSeries{{
			Name:       b.name,
			Categories: b.categories,
			Values:     b.values,
			Fill:       excelize.Fill{Type: "pattern", Color: []string{palette[0]}, Pattern: 1},
			Line:       excelize.ChartLine{Width: 2},
		}},
		Title:     title(name),
		Legend:    excelize.ChartLegend{Position: "none"},
		Dimension: panelDimension,
	}
}

func barChart(chartType excelize.ChartType, name string, b block, color string) *excelize.Chart {
	if b.rows == 0 {
		return nil
	}
	return &excelize.Chart{
		Type: chartType,
		Series: []excelize.ChartSeries{{
			Name:       b.name,
			Categories: b.categories,
			Values:     b.values,
			Fill:       excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
		}},
		Title:     title(name),
		Legend:    excelize.ChartLegend{Position: "none"},
		Dimension: panelDimension,
	}
}

func pieChart(name string, b block) *excelize.Chart {
	if b.rows == 0 {
		return nil
	}
	return &excelize.Chart{
		Type: excelize.Pie,
		Series: []excelize.ChartSeries{{
			Name:       b.name,
			Categories: b.categories,
			Values:     b.values,
		}},
		Title:     title(name),
		Legend:    excelize.ChartLegend{Position: "right"},
		PlotArea:  excelize.ChartPlotArea{ShowPercent: true},
		Dimension: panelDimension,
	}
}

func scatterChart(name string, b block, color string) *excelize.Chart {
	if b.rows == 0 {
		return nil
	}
	return &excelize.Chart{
		Type: excelize.Scatter,
		Series: []excelize.ChartSeries{{
			Name:       b.name,
			Categories: b.categories,
			Values:     b.values,
			Fill:       excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
			Line:       excelize.ChartLine{Type: excelize.ChartLineNone},
			Marker:     excelize.ChartMarker{Symbol: "circle", Size: 5},
		}},
		Title:     title(name),
		Legend:    excelize.ChartLegend{Position: "none"},
		Dimension: panelDimension,
	}
}

// writeCorrelation escreve a matriz como tabela com escala de três cores (-1 azul, 0 branco, 1 vermelho)
func writeCorrelation(f *excelize.File, matrix domain.CorrelationMatrix) error {
	titleCell, _ := excelize.CoordinatesToCellName(correlationCol, correlationRow-1)
	if err := f.SetCellValue(DashboardSheet, titleCell, "Correlation Matrix"); err != nil {
		return errors.Wrap(err, "erro ao escrever título da correlação")
	}

	size := len(matrix.Columns)
	if size == 0 {
		return nil
	}

	for i, column := range matrix.Columns {
		header, _ := excelize.CoordinatesToCellName(correlationCol+1+i, correlationRow)
		if err := f.SetCellValue(DashboardSheet, header, column.Header()); err != nil {
			return errors.Wrap(err, "erro ao escrever cabeçalho da correlação")
		}

		label, _ := excelize.CoordinatesToCellName(correlationCol, correlationRow+1+i)
		if err := f.SetCellValue(DashboardSheet, label, column.Header()); err != nil {
			return errors.Wrap(err, "erro ao escrever rótulo da correlação")
		}

		for j := range matrix.Columns {
			cell, _ := excelize.CoordinatesToCellName(correlationCol+1+j, correlationRow+1+i)
			value := cellValue(utils.RoundWithTwoDecimalPlace(matrix.Values[i][j]))
			if err := f.SetCellValue(DashboardSheet, cell, value); err != nil {
				return errors.Wrap(err, "erro ao escrever valor da correlação")
			}
		}
	}

	first, _ := excelize.CoordinatesToCellName(correlationCol+1, correlationRow+1)
	last, _ := excelize.CoordinatesToCellName(correlationCol+size, correlationRow+size)
	rangeRef := first + ":" + last

	err := f.SetConditionalFormat(DashboardSheet, rangeRef, []excelize.ConditionalFormatOptions{{
		Type:     "3_color_scale",
		Criteria: "=",
		MinType:  "num",
		MidType:  "num",
		MaxType:  "num",
		MinValue: "-1",
		MidValue: "0",
		MaxValue: "1",
		MinColor: "#3B4CC0",
		MidColor: "#F7F7F7",
		MaxColor: "#B40426",
	}})
	if err != nil {
		return errors.Wrap(err, "erro ao aplicar escala de cores")
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return errors.Wrap(err, "erro ao criar estilo")
	}
	headerStart, _ := excelize.CoordinatesToCellName(correlationCol, correlationRow)
	headerEnd, _ := excelize.CoordinatesToCellName(correlationCol+size, correlationRow)
	if err := f.SetCellStyle(DashboardSheet, headerStart, headerEnd, style); err != nil {
		return errors.Wrap(err, "erro ao aplicar estilo")
	}

	return nil
}

func countCharts(charts []*excelize.Chart) int {
	n := 0
	for _, c := range charts {
		if c != nil {
			n++
		}
	}
	return n
}
