package loader

import (
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// readXLSX lê a primeira planilha da pasta de trabalho
func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, ioError(path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ioError(path, errors.New("pasta de trabalho sem planilhas"))
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, ioError(path, errors.Wrapf(err, "erro ao ler planilha %s", sheets[0]))
	}

	return rows, nil
}
