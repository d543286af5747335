package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "engagement_insights",
		Name:      "http_requests_total",
		Help:      "Total de requisições HTTP por rota, método e status.",
	}, []string{"route", "method", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "engagement_insights",
		Name:      "http_request_duration_seconds",
		Help:      "Duração das requisições HTTP por rota e método.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})
)

// Metrics instrumenta uma rota. route é o padrão registrado no router, não o caminho
// da requisição, para manter a cardinalidade dos rótulos fixa.
func Metrics(route string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			recorder := newStatusRecorder(w)
			startTime := time.Now()

			next.ServeHTTP(recorder, r)

			requestDuration.WithLabelValues(route, r.Method).Observe(time.Since(startTime).Seconds())
			requestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(recorder.statusCode)).Inc()
		})
	}
}
