package handler

import (
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/engagement-insights/internal/domain"
	"github.com/vfg2006/engagement-insights/pkg/apiErrors"
	"github.com/vfg2006/engagement-insights/pkg/log"
	"github.com/vfg2006/engagement-insights/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Usa o nome do parâmetro da query nas mensagens de erro
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

type filterParams struct {
	StartDate         string `query:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate           string `query:"end_date" validate:"omitempty,datetime=2006-01-02"`
	MinEngagementRate string `query:"min_engagement_rate" validate:"omitempty,numeric"`
}

type topPostsParams struct {
	filterParams
	Metric string `query:"metric"`
	N      string `query:"n" validate:"omitempty,number"`
	Order  string `query:"order" validate:"omitempty,oneof=asc desc"`
}

type statsParams struct {
	filterParams
	Metric string `query:"metric" validate:"required"`
}

type outliersParams struct {
	filterParams
	Metric string `query:"metric"`
	K      string `query:"k" validate:"omitempty,numeric"`
}

type correlationParams struct {
	filterParams
	Columns string `query:"columns"`
}

// validationError é o detalhe de um parâmetro rejeitado
type validationError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

func readFilterParams(r *http.Request) filterParams {
	query := r.URL.Query()
	return filterParams{
		StartDate:         query.Get("start_date"),
		EndDate:           query.Get("end_date"),
		MinEngagementRate: query.Get("min_engagement_rate"),
	}
}

// validateParams valida a struct e escreve a resposta de erro. Retorna false se inválida.
func validateParams(w http.ResponseWriter, r *http.Request, params any) bool {
	err := validate.Struct(params)
	if err == nil {
		return true
	}

	details := make([]validationError, 0)
	if errs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range errs {
			details = append(details, validationError{
				Field: fe.Field(),
				Rule:  fe.Tag(),
				Param: fe.Param(),
			})
		}
	}

	log.ForContext(r.Context()).WithFields(log.Fields{
		"path":  r.URL.Path,
		"query": r.URL.RawQuery,
		"error": err.Error(),
	}).Warn("insights: parâmetros inválidos")

	apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetros inválidos", details)
	return false
}

// toFilters converte parâmetros já validados. Sem nenhum filtro retorna nil.
func (p filterParams) toFilters() (*domain.InsightFilters, error) {
	if p.StartDate == "" && p.EndDate == "" && p.MinEngagementRate == "" {
		return nil, nil
	}

	startDate, err := utils.ParseDate(p.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := utils.ParseDate(p.EndDate)
	if err != nil {
		return nil, err
	}

	filters := &domain.InsightFilters{
		StartDate: startDate,
		EndDate:   endDate,
	}

	if p.MinEngagementRate != "" {
		filters.MinEngagementRate, err = strconv.ParseFloat(p.MinEngagementRate, 64)
		if err != nil {
			return nil, err
		}
	}

	return filters, nil
}

func parseColumnOrDefault(name string, fallback domain.Column) (domain.Column, error) {
	if name == "" {
		return fallback, nil
	}
	return domain.ParseColumn(name)
}

func parseColumns(raw string) ([]domain.Column, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	columns := make([]domain.Column, 0)
	for _, name := range strings.Split(raw, ",") {
		column, err := domain.ParseColumn(name)
		if err != nil {
			return nil, err
		}
		columns = append(columns, column)
	}
	return columns, nil
}

// writeJSON serializa a resposta com status 200
func writeJSON(w http.ResponseWriter, r *http.Request, response any) {
	writeJSONStatus(w, r, http.StatusOK, response)
}

func writeJSONStatus(w http.ResponseWriter, r *http.Request, status int, response any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.ForContext(r.Context()).WithFields(log.Fields{
			"path":  r.URL.Path,
			"error": err.Error(),
		}).Error("insights: falha ao serializar resposta")
	}
}

// writeServiceError registra e responde um erro vindo do serviço
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	apiErr := apiErrors.FromError(err)

	logger := log.ForContext(r.Context()).WithFields(log.Fields{
		"path":  r.URL.Path,
		"code":  apiErr.Code,
		"error": err.Error(),
	})
	if apiErrors.Status(apiErr.Code) >= http.StatusInternalServerError {
		logger.Error("insights: falha ao processar requisição")
	} else {
		logger.Warn("insights: requisição rejeitada")
	}

	apiErrors.WriteError(w, apiErr.Code, apiErr.Message, apiErr.Details)
}
