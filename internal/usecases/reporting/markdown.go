package reporting

import (
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/engagement-insights/internal/domain"
	"github.com/vfg2006/engagement-insights/pkg/utils"
)

// Markdown renderiza o relatório como markdown
func Markdown(r Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Análise de desempenho do Instagram\n\n")
	if r.RunID != "" {
		fmt.Fprintf(&b, "Execução `%s` em %s, arquivo `%s`.\n\n", r.RunID, r.GeneratedAt.Format(time.RFC3339), r.Source)
	}

	writeStructure(&b, r)
	writeBasicStats(&b, r)
	writeMissing(&b, r)
	writeEngagement(&b, r)
	writeRatios(&b, r)
	writeTemporal(&b, r)
	writeOutliers(&b, r)
	writeSources(&b, r)

	return b.String()
}

func writeStructure(b *strings.Builder, r Report) {
	fmt.Fprintf(b, "## Estrutura do dataset\n\n")
	fmt.Fprintf(b, "- Formato: %d linhas × %d colunas\n", r.Rows, len(r.Columns))
	if r.HasDates {
		fmt.Fprintf(b, "- Período: %s a %s\n", r.StartDate.Format(time.DateOnly), r.EndDate.Format(time.DateOnly))
	}
	fmt.Fprintf(b, "\nColunas:\n\n")
	for i, column := range r.Columns {
		fmt.Fprintf(b, "%d. %s\n", i+1, column)
	}
	b.WriteString("\n")
}

func writeBasicStats(b *strings.Builder, r Report) {
	fmt.Fprintf(b, "## Estatísticas básicas\n\n")
	fmt.Fprintf(b, "Total de posts: %d\n\n", r.Rows)

	fmt.Fprintf(b, "| Impressões | Valor |\n|---|---:|\n")
	fmt.Fprintf(b, "| Média | %s |\n", utils.FormatDecimal(r.Impressions.Mean, 2))
	fmt.Fprintf(b, "| Total | %s |\n", utils.FormatDecimal(r.Impressions.Sum, 0))
	fmt.Fprintf(b, "| Máximo | %s |\n", utils.FormatDecimal(r.Impressions.Max, 0))
	fmt.Fprintf(b, "| Mínimo | %s |\n\n", utils.FormatDecimal(r.Impressions.Min, 0))

	fmt.Fprintf(b, "| Curtidas | Valor |\n|---|---:|\n")
	fmt.Fprintf(b, "| Máximo | %s |\n", utils.FormatDecimal(r.Likes.Max, 0))
	fmt.Fprintf(b, "| Mínimo | %s |\n", utils.FormatDecimal(r.Likes.Min, 0))
	fmt.Fprintf(b, "| Média | %s |\n\n", utils.FormatDecimal(r.Likes.Mean, 2))

	fmt.Fprintf(b, "| Média por post | Valor |\n|---|---:|\n")
	for _, stats := range r.Averages {
		fmt.Fprintf(b, "| %s | %s |\n", stats.Column.Header(), utils.FormatDecimal(stats.Mean, 2))
	}
	b.WriteString("\n")
}

func writeMissing(b *strings.Builder, r Report) {
	fmt.Fprintf(b, "## Valores ausentes\n\n")
	if len(r.Missing.Columns) == 0 {
		fmt.Fprintf(b, "Nenhum valor ausente encontrado.\n\n")
		return
	}

	fmt.Fprintf(b, "| Coluna | Ausentes | %% |\n|---|---:|---:|\n")
	for _, m := range r.Missing.Columns {
		fmt.Fprintf(b, "| %s | %d | %s |\n", m.Column, m.Count, utils.FormatDecimal(m.Percentage, 2))
	}
	fmt.Fprintf(b, "\nLinhas afetadas: %d\n\n", r.Missing.RowsAffected)
}

func writeEngagement(b *strings.Builder, r Report) {
	fmt.Fprintf(b, "## Engajamento\n\n")
	fmt.Fprintf(b, "- Taxa média de engajamento: %s%%\n", utils.FormatDecimal(r.EngagementRate.Mean, 2))
	fmt.Fprintf(b, "- Taxa média de curtidas: %s%%\n", utils.FormatDecimal(r.LikeRate.Mean, 2))
	fmt.Fprintf(b, "- Taxa média de salvamentos: %s%%\n", utils.FormatDecimal(r.SaveRate.Mean, 2))
	if r.UndefinedMetrics > 0 {
		fmt.Fprintf(b, "- Posts com taxa indefinida (sem impressões): %d\n", r.UndefinedMetrics)
	}

	fmt.Fprintf(b, "\n### Top %d posts por taxa de engajamento\n\n", len(r.TopPosts))
	writePostTable(b, r.TopPosts, domain.ColumnLikes, domain.ColumnEngagementRate)
}

func writeRatios(b *strings.Builder, r Report) {
	fmt.Fprintf(b, "## Proporções por impressão\n\n")
	fmt.Fprintf(b, "- Curtidas por impressão: %s%%\n", utils.FormatDecimal(r.LikeRate.Mean, 2))
	fmt.Fprintf(b, "- Salvamentos por impressão: %s%%\n\n", utils.FormatDecimal(r.SaveRate.Mean, 2))

	fmt.Fprintf(b, "A cada 100 impressões:\n\n")
	for _, ratio := range r.PerHundred {
		fmt.Fprintf(b, "- %s %s\n", utils.FormatDecimal(ratio.Value, 1), ratio.Label)
	}
	b.WriteString("\n")
}

func writeTemporal(b *strings.Builder, r Report) {
	fmt.Fprintf(b, "## Desempenho por data\n\n")

	fmt.Fprintf(b, "### Top %d dias por impressões\n\n", len(r.TopDays))
	fmt.Fprintf(b, "| Data | Impressões | Curtidas |\n|---|---:|---:|\n")
	for _, d := range r.TopDays {
		fmt.Fprintf(b, "| %s | %s | %s |\n", d.Date, utils.FormatDecimal(d.Impressions, 0), utils.FormatDecimal(d.Likes, 0))
	}

	fmt.Fprintf(b, "\n### Por dia da semana\n\n")
	fmt.Fprintf(b, "| Dia | Impressões (média) | Curtidas (média) |\n|---|---:|---:|\n")
	for _, d := range r.DayOfWeek {
		fmt.Fprintf(b, "| %s | %s | %s |\n", d.Day, utils.FormatDecimal(d.Impressions, 2), utils.FormatDecimal(d.Likes, 2))
	}

	if r.HasBestDay {
		fmt.Fprintf(b, "\nMelhor dia para postar: **%s** (%s impressões em média)\n", r.BestDay.Key, utils.FormatDecimal(r.BestDay.Value, 0))
	}
	b.WriteString("\n")
}

func writeOutliers(b *strings.Builder, r Report) {
	bounds := r.Outliers.Bounds

	fmt.Fprintf(b, "## Outliers de impressões\n\n")
	fmt.Fprintf(b, "- Média: %s\n", utils.FormatDecimal(bounds.Mean, 2))
	fmt.Fprintf(b, "- Desvio padrão: %s\n", utils.FormatDecimal(bounds.StdDev, 2))
	fmt.Fprintf(b, "- Acima de %s: %d posts\n", utils.FormatDecimal(bounds.Upper, 0), len(r.Outliers.High))
	fmt.Fprintf(b, "- Abaixo de %s: %d posts\n\n", utils.FormatDecimal(bounds.Lower, 0), len(r.Outliers.Low))

	if len(r.HighPerformers) > 0 {
		fmt.Fprintf(b, "### Top %d posts de alto desempenho\n\n", len(r.HighPerformers))
		writePostTable(b, r.HighPerformers, domain.ColumnLikes, domain.ColumnSaves)
	}
}

func writeSources(b *strings.Builder, r Report) {
	fmt.Fprintf(b, "## Origens de tráfego\n\n")
	fmt.Fprintf(b, "| Origem | Impressões | %% |\n|---|---:|---:|\n")
	for _, s := range r.Sources.Sources {
		fmt.Fprintf(b, "| %s | %s | %s |\n", s.Source.Header(), utils.FormatThousands(s.Total), utils.FormatDecimal(s.Share, 1))
	}
	b.WriteString("\n")
}

// writePostTable escreve data, impressões e as colunas extras de cada post
func writePostTable(b *strings.Builder, posts []domain.Post, extra ...domain.Column) {
	b.WriteString("| Data | Impressions")
	for _, c := range extra {
		fmt.Fprintf(b, " | %s", c.Header())
	}
	b.WriteString(" |\n|---|---:")
	for range extra {
		b.WriteString("|---:")
	}
	b.WriteString("|\n")

	for _, p := range posts {
		fmt.Fprintf(b, "| %s | %s", p.Date.Format(time.DateOnly), formatColumn(&p, domain.ColumnImpressions))
		for _, c := range extra {
			fmt.Fprintf(b, " | %s", formatColumn(&p, c))
		}
		b.WriteString(" |\n")
	}
	b.WriteString("\n")
}

func formatColumn(p *domain.Post, column domain.Column) string {
	if column.IsRate() {
		return utils.FormatDecimal(column.Value(p), 2)
	}
	return utils.FormatDecimal(column.Value(p), 0)
}
