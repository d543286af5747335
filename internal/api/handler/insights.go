package handler

import (
	"net/http"
	"strconv"

	"github.com/russross/blackfriday/v2"
	"github.com/vfg2006/engagement-insights/internal/domain"
	"github.com/vfg2006/engagement-insights/internal/usecases/aggregating"
	"github.com/vfg2006/engagement-insights/internal/usecases/insighting"
	"github.com/vfg2006/engagement-insights/pkg/apiErrors"
	"github.com/vfg2006/engagement-insights/pkg/log"
)

const defaultTopN = 10

func GetDatasetInfo(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info, err := service.GetDatasetInfo()
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, info)
	})
}

func GetDashboard(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params := readFilterParams(r)
		if !validateParams(w, r, params) {
			return
		}

		filters, err := params.toFilters()
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		dashboard, err := service.GetDashboard(filters)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		logger.WithFields(log.Fields{
			"showing": dashboard.ShowingPosts,
			"rows":    dashboard.TotalPosts,
		}).Info("insights: dashboard calculado")

		writeJSON(w, r, dashboard)
	})
}

func GetTopPosts(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		params := topPostsParams{
			filterParams: readFilterParams(r),
			Metric:       query.Get("metric"),
			N:            query.Get("n"),
			Order:        query.Get("order"),
		}
		if !validateParams(w, r, params) {
			return
		}

		filters, err := params.toFilters()
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		column, err := parseColumnOrDefault(params.Metric, domain.ColumnEngagementRate)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		n := defaultTopN
		if params.N != "" {
			if n, err = strconv.Atoi(params.N); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
				return
			}
		}

		top, err := service.GetTopPosts(filters, column, n, params.Order != "asc")
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, top)
	})
}

func GetStats(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := statsParams{
			filterParams: readFilterParams(r),
			Metric:       r.URL.Query().Get("metric"),
		}
		if !validateParams(w, r, params) {
			return
		}

		filters, err := params.toFilters()
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		column, err := domain.ParseColumn(params.Metric)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		stats, err := service.GetStats(filters, column)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, stats)
	})
}

func GetOutliers(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		params := outliersParams{
			filterParams: readFilterParams(r),
			Metric:       query.Get("metric"),
			K:            query.Get("k"),
		}
		if !validateParams(w, r, params) {
			return
		}

		filters, err := params.toFilters()
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		column, err := parseColumnOrDefault(params.Metric, domain.ColumnImpressions)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		k := aggregating.DefaultOutlierK
		if params.K != "" {
			if k, err = strconv.ParseFloat(params.K, 64); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
				return
			}
		}

		outliers, err := service.GetOutliers(filters, column, k)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, outliers)
	})
}

func GetCorrelation(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := correlationParams{
			filterParams: readFilterParams(r),
			Columns:      r.URL.Query().Get("columns"),
		}
		if !validateParams(w, r, params) {
			return
		}

		filters, err := params.toFilters()
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		columns, err := parseColumns(params.Columns)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		matrix, err := service.GetCorrelation(filters, columns)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, matrix)
	})
}

// GetReport retorna o relatório completo em HTML, ou em markdown com format=markdown
func GetReport(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		markdown, err := service.GetReport()
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		if r.URL.Query().Get("format") == "markdown" {
			w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
			_, _ = w.Write([]byte(markdown))
			return
		}

		extensions := blackfriday.CommonExtensions | blackfriday.AutoHeadingIDs
		renderer := blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
			Flags: blackfriday.CommonHTMLFlags | blackfriday.CompletePage,
			Title: "Análise de desempenho do Instagram",
		})
		html := blackfriday.Run([]byte(markdown), blackfriday.WithRenderer(renderer), blackfriday.WithExtensions(extensions))

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := w.Write(html); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("insights: falha ao escrever relatório")
		}
	})
}
