// Package metrics defines the Prometheus metrics exported by the service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var durationBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	CountriesCreated   prometheus.Counter
	PersonsCreated     prometheus.Counter
	PersonsUpdated     prometheus.Counter
	PersonsDeleted     prometheus.Counter
	ValidationFailures *prometheus.CounterVec
	QueryDuration      *prometheus.HistogramVec
	HTTPRequests       *prometheus.CounterVec
	HTTPDuration       *prometheus.HistogramVec
}

// New creates the metrics and registers them with reg.
// Passing prometheus.DefaultRegisterer exposes them on the default handler;
// tests pass a fresh prometheus.NewRegistry() to avoid duplicate registration.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		CountriesCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "persons_api_countries_created_total",
			Help: "Total number of countries created",
		}),
		PersonsCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "persons_api_persons_created_total",
			Help: "Total number of persons created",
		}),
		PersonsUpdated: f.NewCounter(prometheus.CounterOpts{
			Name: "persons_api_persons_updated_total",
			Help: "Total number of persons updated",
		}),
		PersonsDeleted: f.NewCounter(prometheus.CounterOpts{
			Name: "persons_api_persons_deleted_total",
			Help: "Total number of persons deleted",
		}),
		ValidationFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "persons_api_validation_failures_total",
			Help: "Requests rejected by service validation, by operation",
		}, []string{"operation"}),
		QueryDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "persons_api_person_query_duration_seconds",
			Help:    "Duration of person list queries (filter, sort, export)",
			Buckets: durationBuckets,
		}, []string{"operation"}),
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "persons_api_http_requests_total",
			Help: "HTTP requests by route pattern, method and status code",
		}, []string{"route", "method", "status"}),
		HTTPDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "persons_api_http_request_duration_seconds",
			Help:    "HTTP request latency by route pattern and method",
			Buckets: durationBuckets,
		}, []string{"route", "method"}),
	}
}

// IncrementCountriesCreated records a successful country creation.
func (m *Metrics) IncrementCountriesCreated() {
	if m == nil {
		return
	}
	m.CountriesCreated.Inc()
}

// IncrementPersonsCreated records a successful person creation.
func (m *Metrics) IncrementPersonsCreated() {
	if m == nil {
		return
	}
	m.PersonsCreated.Inc()
}

// IncrementPersonsUpdated records a successful person update.
func (m *Metrics) IncrementPersonsUpdated() {
	if m == nil {
		return
	}
	m.PersonsUpdated.Inc()
}

// IncrementPersonsDeleted records a person removal.
func (m *Metrics) IncrementPersonsDeleted() {
	if m == nil {
		return
	}
	m.PersonsDeleted.Inc()
}

// IncrementValidationFailure records a rejected request for operation.
func (m *Metrics) IncrementValidationFailure(operation string) {
	if m == nil {
		return
	}
	m.ValidationFailures.WithLabelValues(operation).Inc()
}

// ObserveQuery records the duration of a person list operation.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveQuery(operation string, start time.Time) {
	if m == nil {
		return
	}
	m.QueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// ObserveHTTPRequest records one served HTTP request.
func (m *Metrics) ObserveHTTPRequest(route, method, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(route, method, status).Inc()
	m.HTTPDuration.WithLabelValues(route, method).Observe(duration.Seconds())
}
