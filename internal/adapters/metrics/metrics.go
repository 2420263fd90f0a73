package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vncsmyrnk/ballotbox/internal/core/domain"
)

/*
Metrics are registered on the registry passed to New, never on the
default registerer.

  - VotesRecorded / VotesRejected: CounterVec labelled by choice or by
    rejection reason.
  - RequestDuration: HistogramVec of handler latency per route and status.
*/
type Metrics struct {
	registry        *prometheus.Registry
	UsersRegistered prometheus.Counter
	VotesRecorded   *prometheus.CounterVec
	VotesRejected   *prometheus.CounterVec
	PublishErrors   prometheus.Counter
	RequestDuration *prometheus.HistogramVec
}

func New(namespace string, reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,
		UsersRegistered: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "users_registered_total",
			Help:      "Total number of registered users",
		}),
		VotesRecorded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "votes_total",
				Help:      "Total number of stored votes",
			},
			[]string{"choice"},
		),
		VotesRejected: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "votes_rejected_total",
				Help:      "Total number of votes rejected by validation",
			},
			[]string{"reason"},
		),
		PublishErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "vote_events_failed_total",
			Help:      "Total number of vote events that could not be published",
		}),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Histogram of HTTP handler latency",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
	}
}

func (m *Metrics) UserRegistered() {
	m.UsersRegistered.Inc()
}

func (m *Metrics) VoteRecorded(choice domain.Choice) {
	m.VotesRecorded.WithLabelValues(string(choice)).Inc()
}

func (m *Metrics) VoteRejected(reason string) {
	m.VotesRejected.WithLabelValues(reason).Inc()
}

func (m *Metrics) PublishFailed() {
	m.PublishErrors.Inc()
}

// ObserveRequest records the latency of one handled request.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.RequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
