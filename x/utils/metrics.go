package utils

import (
	"strconv"
	"time"

	"github.com/iov-one/bridge"
	"github.com/iov-one/bridge/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics is a decorator that counts invocations per path and result code
// and observes how long they take.
type Metrics struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

var _ bridge.Decorator = (*Metrics)(nil)

// NewMetrics creates a Metrics decorator and registers its collectors.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bridge",
			Name:      "invocations_total",
			Help:      "Number of processed invocations by method, path and result code.",
		}, []string{"method", "path", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "bridge",
			Name:      "invocation_duration_seconds",
			Help:      "Time spent processing an invocation.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}
	for _, c := range []prometheus.Collector{m.calls, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, errors.Wrapf(errors.ErrInvalidConfiguration, "cannot register metrics: %s", err)
		}
	}
	return m, nil
}

// Check counts the invocation.
func (m *Metrics) Check(ctx bridge.Context, store bridge.KVStore, tx bridge.Tx, next bridge.Checker) (*bridge.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, store, tx)
	m.observe("check", tx, start, err)
	return res, err
}

// Deliver counts the invocation.
func (m *Metrics) Deliver(ctx bridge.Context, store bridge.KVStore, tx bridge.Tx, next bridge.Deliverer) (*bridge.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, store, tx)
	m.observe("deliver", tx, start, err)
	return res, err
}

func (m *Metrics) observe(method string, tx bridge.Tx, start time.Time, err error) {
	path := txPath(tx)
	code, _ := errors.ABCIInfo(err, false)
	m.calls.WithLabelValues(method, path, strconv.FormatUint(uint64(code), 10)).Inc()
	m.duration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
}
