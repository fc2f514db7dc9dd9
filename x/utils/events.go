package utils

import (
	"strconv"

	"github.com/iov-one/bridge"
	"github.com/iov-one/bridge/coin"
	"github.com/iov-one/bridge/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// EventCounter is an observer exporting dispatched events as metrics.
//
// Every event is counted by kind. Events that carry a "nonce" attribute set
// the last nonce gauge of their kind, and events that carry an "amount"
// attribute add it to the amount gauge of their kind.
type EventCounter struct {
	events    *prometheus.CounterVec
	lastNonce *prometheus.GaugeVec
	amounts   *prometheus.GaugeVec
}

var _ bridge.Observer = (*EventCounter)(nil)

// NewEventCounter creates an EventCounter and registers its collectors.
func NewEventCounter(reg prometheus.Registerer) (*EventCounter, error) {
	c := &EventCounter{
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bridge",
			Name:      "events_total",
			Help:      "Number of dispatched events by kind.",
		}, []string{"kind"}),
		lastNonce: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "bridge",
			Name:      "event_last_nonce",
			Help:      "Nonce carried by the most recent event of a kind.",
		}, []string{"kind"}),
		amounts: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "bridge",
			Name:      "event_amount_total",
			Help:      "Sum of the amounts carried by events of a kind.",
		}, []string{"kind"}),
	}
	for _, col := range []prometheus.Collector{c.events, c.lastNonce, c.amounts} {
		if err := reg.Register(col); err != nil {
			return nil, errors.Wrapf(errors.ErrInvalidConfiguration, "cannot register metrics: %s", err)
		}
	}
	return c, nil
}

// Observe implements bridge.Observer.
func (c *EventCounter) Observe(ctx bridge.Context, ev bridge.Event) {
	kind := ev.Kind()
	c.events.WithLabelValues(kind).Inc()

	for _, attr := range ev.Attributes() {
		switch string(attr.Key) {
		case "nonce":
			n, err := strconv.ParseUint(string(attr.Value), 10, 64)
			if err != nil {
				bridge.GetLogger(ctx).Error("invalid event nonce", "kind", kind, "nonce", string(attr.Value))
				continue
			}
			c.lastNonce.WithLabelValues(kind).Set(float64(n))
		case "amount":
			amount, err := coin.ParseAmount(string(attr.Value))
			if err != nil {
				bridge.GetLogger(ctx).Error("invalid event amount", "kind", kind, "amount", string(attr.Value))
				continue
			}
			c.amounts.WithLabelValues(kind).Add(amount.Float64())
		}
	}
}
