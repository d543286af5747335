package loader

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/vfg2006/engagement-insights/internal/domain"
	"golang.org/x/text/encoding/charmap"
)

func readCSV(path string) ([][]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, ioError(path, err)
	}

	var reader io.Reader = bytes.NewReader(content)
	// Exportações antigas do Instagram vêm em Windows-1252
	if !utf8.Valid(content) {
		reader = charmap.Windows1252.NewDecoder().Reader(reader)
	}

	r := csv.NewReader(reader)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return nil, &domain.LoadError{
				Err:     domain.ErrParse,
				Code:    domain.CodeParse,
				Path:    path,
				Row:     parseErr.Line,
				Details: parseErr.Err.Error(),
			}
		}
		return nil, ioError(path, err)
	}

	return records, nil
}

func ioError(path string, err error) error {
	return &domain.LoadError{
		Err:  errors.Wrap(err, "erro ao ler arquivo"),
		Code: domain.CodeIO,
		Path: path,
	}
}
