// Package loader lê o arquivo tabular de posts e o converte em um Dataset tipado.
package loader

import (
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/engagement-insights/internal/domain"
	"github.com/vfg2006/engagement-insights/pkg/utils"
)

const utf8BOM = "\ufeff"

//go:generate mockgen -source=loader.go -destination=mocks/mock_loader.go -package=mocks

// DatasetLoader carrega um arquivo de posts
type DatasetLoader interface {
	Load(path string) (domain.Dataset, error)
}

// Loader lê arquivos .csv e .xlsx sem qualquer cache
type Loader struct{}

func New() *Loader {
	return &Loader{}
}

// Load lê o arquivo e retorna os posts na ordem das linhas.
// Falha na primeira célula inválida (ErrParse) ou em colunas ausentes (ErrSchema).
func (l *Loader) Load(path string) (domain.Dataset, error) {
	var (
		records [][]string
		err     error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		records, err = readCSV(path)
	case ".xlsx", ".xlsm":
		records, err = readXLSX(path)
	default:
		return domain.Dataset{}, &domain.LoadError{
			Err:     domain.ErrUnsupportedFormat,
			Code:    domain.CodeUnsupportedFormat,
			Path:    path,
			Details: filepath.Ext(path),
		}
	}
	if err != nil {
		return domain.Dataset{}, err
	}

	ds, err := parseRecords(path, records)
	if err != nil {
		return domain.Dataset{}, err
	}

	logrus.WithFields(logrus.Fields{
		"path": path,
		"rows": ds.Len(),
	}).Info("Dataset carregado")

	return ds, nil
}

// header mapeia cada coluna conhecida para sua posição no arquivo
type header struct {
	date     int
	caption  int
	hashtags int
	counts   map[domain.Column]int
}

func parseHeader(path string, row []string) (*header, error) {
	positions := make(map[string]int, len(row))
	for i, name := range row {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		if _, exists := positions[name]; !exists {
			positions[name] = i
		}
	}

	h := &header{
		date:     -1,
		caption:  -1,
		hashtags: -1,
		counts:   make(map[domain.Column]int, len(domain.CountColumns)),
	}

	missing := make([]string, 0)
	if idx, ok := positions[domain.HeaderDate]; ok {
		h.date = idx
	} else {
		missing = append(missing, domain.HeaderDate)
	}

	for _, column := range domain.CountColumns {
		idx, ok := positions[column.Header()]
		if !ok {
			missing = append(missing, column.Header())
			continue
		}
		h.counts[column] = idx
	}

	if len(missing) > 0 {
		return nil, domain.NewSchemaError(path, missing)
	}

	if idx, ok := positions[domain.HeaderCaption]; ok {
		h.caption = idx
	}
	if idx, ok := positions[domain.HeaderHashtags]; ok {
		h.hashtags = idx
	}

	return h, nil
}

func parseRecords(path string, records [][]string) (domain.Dataset, error) {
	if len(records) == 0 {
		return domain.Dataset{}, domain.NewSchemaError(path, append([]string{domain.HeaderDate}, countHeaders()...))
	}

	h, err := parseHeader(path, records[0])
	if err != nil {
		return domain.Dataset{}, err
	}

	ds := domain.Dataset{
		Source: path,
		Posts:  make([]domain.Post, 0, len(records)-1),
	}

	for i, record := range records[1:] {
		if isBlank(record) {
			continue
		}

		// Linha de dados começando em 1, sem contar o cabeçalho
		line := i + 1
		post, err := parsePost(path, line, h, record)
		if err != nil {
			return domain.Dataset{}, err
		}

		post.Row = ds.Len()
		ds.Posts = append(ds.Posts, post)
	}

	return ds, nil
}

func parsePost(path string, line int, h *header, record []string) (domain.Post, error) {
	post := domain.Post{}

	rawDate := cell(record, h.date)
	date, err := utils.ParseFlexibleDate(rawDate)
	if err != nil {
		return post, domain.NewParseError(path, line, domain.HeaderDate, rawDate)
	}
	post.Date = date

	for _, column := range domain.CountColumns {
		raw := cell(record, h.counts[column])
		count, err := ParseCount(raw)
		if err != nil {
			return post, domain.NewParseError(path, line, column.Header(), raw)
		}
		setCount(&post, column, count)
	}

	post.Caption = cell(record, h.caption)
	post.Hashtags = cell(record, h.hashtags)

	return post, nil
}

// cell retorna a célula da posição, ou vazio quando a linha é mais curta
func cell(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return record[idx]
}

func isBlank(record []string) bool {
	for _, c := range record {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func countHeaders() []string {
	headers := make([]string, 0, len(domain.CountColumns))
	for _, column := range domain.CountColumns {
		headers = append(headers, column.Header())
	}
	return headers
}

var missingMarkers = map[string]bool{
	"":     true,
	"nan":  true,
	"na":   true,
	"n/a":  true,
	"null": true,
	"none": true,
}

// ParseCount converte uma célula em contador.
// Marcadores de ausência viram um contador inválido; aceita separador de milhar
// e números decimais inteiros ("3920.0"). Negativos e frações são rejeitados.
func ParseCount(raw string) (domain.Count, error) {
	value := strings.TrimSpace(raw)
	if missingMarkers[strings.ToLower(value)] {
		return domain.Count{}, nil
	}

	value = strings.ReplaceAll(value, ",", "")

	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(value, 64)
		if ferr != nil {
			return domain.Count{}, errors.Wrapf(domain.ErrParse, "contador %q", raw)
		}
		if math.IsNaN(f) {
			return domain.Count{}, nil
		}
		if math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) > math.MaxInt64 {
			return domain.Count{}, errors.Wrapf(domain.ErrParse, "contador %q", raw)
		}
		n = int64(f)
	}

	if n < 0 {
		return domain.Count{}, errors.Wrapf(domain.ErrParse, "contador negativo %q", raw)
	}

	return domain.NewCount(n), nil
}

func setCount(p *domain.Post, column domain.Column, count domain.Count) {
	switch column {
	case domain.ColumnImpressions:
		p.Impressions = count
	case domain.ColumnLikes:
		p.Likes = count
	case domain.ColumnComments:
		p.Comments = count
	case domain.ColumnShares:
		p.Shares = count
	case domain.ColumnSaves:
		p.Saves = count
	case domain.ColumnProfileVisits:
		p.ProfileVisits = count
	case domain.ColumnFollows:
		p.Follows = count
	case domain.ColumnFromHome:
		p.FromHome = count
	case domain.ColumnFromHashtags:
		p.FromHashtags = count
	case domain.ColumnFromExplore:
		p.FromExplore = count
	case domain.ColumnFromOther:
		p.FromOther = count
	}
}
