// Package exporter grava os artefatos do relatório: o CSV processado e o dashboard em XLSX
package exporter

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/engagement-insights/internal/domain"
	"github.com/vfg2006/engagement-insights/pkg/utils"
)

// Colunas derivadas acrescentadas ao final do arquivo processado
const (
	HeaderDayOfWeek = "Day_of_Week"
	HeaderMonth     = "Month"
)

// ProcessedHeader é o cabeçalho do CSV processado: colunas originais seguidas das derivadas
func ProcessedHeader() []string {
	header := []string{domain.HeaderDate}
	for _, c := range domain.CountColumns {
		header = append(header, c.Header())
	}
	header = append(header, domain.HeaderCaption, domain.HeaderHashtags)
	for _, c := range domain.RateColumns {
		header = append(header, c.Header())
	}
	return append(header, HeaderDayOfWeek, HeaderMonth)
}

// WriteProcessedCSV grava o dataset derivado no mesmo formato tabular da entrada.
// Contadores ausentes e taxas indefinidas ficam vazios.
func WriteProcessedCSV(path string, ds domain.Dataset) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "erro ao criar diretório de saída")
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "erro ao criar arquivo CSV")
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write(ProcessedHeader()); err != nil {
		return errors.Wrap(err, "erro ao escrever cabeçalho do CSV")
	}

	for i := range ds.Posts {
		if err := writer.Write(processedRow(&ds.Posts[i])); err != nil {
			return errors.Wrapf(err, "erro ao escrever linha %d do CSV", ds.Posts[i].Row)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.Wrap(err, "erro ao gravar CSV")
	}

	logrus.WithFields(logrus.Fields{
		"path": path,
		"rows": ds.Len(),
	}).Info("CSV processado gravado")

	return nil
}

func processedRow(p *domain.Post) []string {
	row := make([]string, 0, 3+len(domain.CountColumns)+len(domain.RateColumns)+2)
	row = append(row, p.Date.Format(time.DateOnly))

	for _, c := range domain.CountColumns {
		count, _ := c.Count(p)
		row = append(row, formatCount(count))
	}

	row = append(row, p.Caption, p.Hashtags)

	for _, c := range domain.RateColumns {
		row = append(row, utils.FormatFloat(c.Value(p)))
	}

	return append(row, p.DayOfWeek, p.Month)
}

func formatCount(c domain.Count) string {
	if !c.Valid {
		return ""
	}
	return strconv.FormatInt(c.Int64, 10)
}
