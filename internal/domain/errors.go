package domain

import (
	"errors"
	"fmt"
)

// Erros específicos do carregamento e da análise do dataset
var (
	ErrSchema            = errors.New("coluna obrigatória ausente")
	ErrParse             = errors.New("valor inválido")
	ErrUnsupportedFormat = errors.New("formato de arquivo não suportado")
	ErrUnknownColumn     = errors.New("coluna desconhecida")
	ErrInvalidFilter     = errors.New("filtro inválido")
)

// Códigos de erro do carregamento
const (
	CodeSchema            = "DATA_001"
	CodeParse             = "DATA_002"
	CodeUnsupportedFormat = "DATA_003"
	CodeIO                = "DATA_004"
)

// LoadError é um erro com contexto adicional sobre a origem do problema
type LoadError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Path    string // Arquivo de origem
	Column  string // Coluna envolvida (quando aplicável)
	Row     int    // Linha de dados, começando em 1 (0 quando não se aplica)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *LoadError) Error() string {
	msg := e.Err.Error()
	if e.Row > 0 {
		msg = fmt.Sprintf("%s (linha %d)", msg, e.Row)
	}
	if e.Column != "" {
		msg = fmt.Sprintf("%s [coluna %q]", msg, e.Column)
	}
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}
	return msg
}

// Unwrap retorna o erro subjacente
func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewSchemaError cria um erro de esquema para as colunas ausentes
func NewSchemaError(path string, missing []string) *LoadError {
	return &LoadError{
		Err:     ErrSchema,
		Code:    CodeSchema,
		Path:    path,
		Details: fmt.Sprintf("%v", missing),
	}
}

// NewParseError cria um erro de conversão de célula
func NewParseError(path string, row int, column string, value string) *LoadError {
	return &LoadError{
		Err:     ErrParse,
		Code:    CodeParse,
		Path:    path,
		Row:     row,
		Column:  column,
		Details: fmt.Sprintf("%q", value),
	}
}

// IsSchemaError verifica se o erro é de coluna ausente
func IsSchemaError(err error) bool {
	return errors.Is(err, ErrSchema)
}

// IsParseError verifica se o erro é de valor inválido
func IsParseError(err error) bool {
	return errors.Is(err, ErrParse)
}

// Warning é um sinal de qualidade de dados não fatal
type Warning struct {
	Kind   string `json:"kind"`
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// UndefinedMetricWarning identifica taxas calculadas sem impressões
const UndefinedMetricWarning = "undefined_metric"
