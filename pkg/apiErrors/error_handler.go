package apiErrors

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/engagement-insights/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrUnknownColumn       = "VAL_004" // Coluna desconhecida
	ErrInvalidFilter       = "VAL_005" // Filtro inválido
	ErrRouteNotFound       = "VAL_006" // Rota inexistente
	ErrMethodNotAllowed    = "VAL_007" // Método não suportado pela rota

	// Erros do dataset, mesmos códigos do loader
	ErrDatasetSchema      = domain.CodeSchema
	ErrDatasetParse       = domain.CodeParse
	ErrDatasetFormat      = domain.CodeUnsupportedFormat
	ErrDatasetUnavailable = domain.CodeIO

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrServiceDisabled   = "SRV_003" // Serviço não disponível
)

var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrUnknownColumn:       http.StatusBadRequest,
	ErrInvalidFilter:       http.StatusBadRequest,
	ErrRouteNotFound:       http.StatusNotFound,
	ErrMethodNotAllowed:    http.StatusMethodNotAllowed,
	ErrDatasetSchema:       http.StatusUnprocessableEntity,
	ErrDatasetParse:        http.StatusUnprocessableEntity,
	ErrDatasetFormat:       http.StatusUnprocessableEntity,
	ErrDatasetUnavailable:  http.StatusServiceUnavailable,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
	ErrServiceDisabled:     http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// Status retorna o status HTTP do código
func Status(code string) int {
	if status, ok := httpStatusMap[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(Status(code))
	_ = json.NewEncoder(w).Encode(apiErr)
}

// FromError converte erros do domínio no erro de API correspondente
func FromError(err error) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	var loadErr *domain.LoadError
	if errors.As(err, &loadErr) {
		details := map[string]any{"path": loadErr.Path}
		if loadErr.Row > 0 {
			details["row"] = loadErr.Row
		}
		if loadErr.Column != "" {
			details["column"] = loadErr.Column
		}
		return APIError{Code: loadErr.Code, Message: err.Error(), Details: details}
	}

	code := ErrInternalServer
	switch {
	case errors.Is(err, domain.ErrUnknownColumn):
		code = ErrUnknownColumn
	case errors.Is(err, domain.ErrInvalidFilter):
		code = ErrInvalidFilter
	}

	return APIError{Code: code, Message: err.Error()}
}

// WriteFromError escreve o erro de API correspondente a err
func WriteFromError(w http.ResponseWriter, err error) {
	apiErr := FromError(err)
	WriteError(w, apiErr.Code, apiErr.Message, apiErr.Details)
}
