package exporter

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// WriteReport grava o relatório em markdown, criando o diretório se necessário
func WriteReport(path string, markdown string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "erro ao criar diretório de saída")
	}

	if err := os.WriteFile(path, []byte(markdown), 0o644); err != nil {
		return errors.Wrap(err, "erro ao gravar relatório")
	}

	logrus.WithFields(logrus.Fields{
		"path":  path,
		"bytes": len(markdown),
	}).Info("Relatório gravado")

	return nil
}
