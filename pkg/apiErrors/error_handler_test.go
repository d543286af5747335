package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/engagement-insights/internal/domain"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{
			name:       "Coluna ausente no arquivo",
			err:        errors.Wrap(domain.NewSchemaError("posts.csv", []string{"Likes"}), "erro ao carregar dataset"),
			wantCode:   ErrDatasetSchema,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "Valor inválido",
			err:        domain.NewParseError("posts.csv", 3, "Likes", "abc"),
			wantCode:   ErrDatasetParse,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "Coluna desconhecida",
			err:        errors.Wrap(domain.ErrUnknownColumn, "metric"),
			wantCode:   ErrUnknownColumn,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Filtro inválido",
			err:        errors.Wrap(domain.ErrInvalidFilter, "n deve ser maior que zero"),
			wantCode:   ErrInvalidFilter,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Erro genérico",
			err:        errors.New("falha"),
			wantCode:   ErrInternalServer,
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "Erro nulo",
			err:        nil,
			wantCode:   ErrInternalServer,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := FromError(tt.err)

			assert.Equal(t, tt.wantCode, apiErr.Code)
			assert.Equal(t, tt.wantStatus, Status(apiErr.Code))
		})
	}
}

func TestFromError_DetalhesDoLoader(t *testing.T) {
	apiErr := FromError(domain.NewParseError("posts.csv", 3, "Likes", "abc"))

	details, ok := apiErr.Details.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "posts.csv", details["path"])
	assert.Equal(t, 3, details["row"])
	assert.Equal(t, "Likes", details["column"])
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, ErrInvalidFilter, "k deve ser maior que zero", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"code":"VAL_005","message":"k deve ser maior que zero"}`, rec.Body.String())
}
