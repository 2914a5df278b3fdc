// Package metered wraps a driver.Driver with Prometheus metrics.
package metered

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/unkn0wn-root/readthrough/driver"
)

var _ driver.Driver = (*Driver)(nil)

var (
	hitLabels      = prometheus.Labels{"result": "hit"}
	missLabels     = prometheus.Labels{"result": "miss"}
	getErrorLabels = prometheus.Labels{"result": "error"}
	setOKLabels    = prometheus.Labels{"result": "ok"}
	setErrorLabels = prometheus.Labels{"result": "error"}
)

type metrics struct {
	getCount *prometheus.CounterVec
	getTime  *prometheus.HistogramVec
	setCount *prometheus.CounterVec
	setTime  *prometheus.HistogramVec
}

func newMetrics(namespace string, reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		getCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "get_count",
			Help:      "number of GetItem calls by result",
		}, []string{"result"}),
		getTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "get_seconds",
			Help:      "GetItem latency by result",
			Buckets:   prometheus.DefBuckets,
		}, []string{"result"}),
		setCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "set_count",
			Help:      "number of SetItem calls by result",
		}, []string{"result"}),
		setTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "set_seconds",
			Help:      "SetItem latency by result",
			Buckets:   prometheus.DefBuckets,
		}, []string{"result"}),
	}
	for _, c := range []prometheus.Collector{m.getCount, m.getTime, m.setCount, m.setTime} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Driver records counts and latencies of the wrapped driver's calls.
// Results and errors are passed through unchanged.
type Driver struct {
	driver.Driver
	metrics *metrics
}

// New creates a metered driver wrapper registered on reg.
func New(namespace string, reg prometheus.Registerer, d driver.Driver) (*Driver, error) {
	m, err := newMetrics(namespace, reg)
	if err != nil {
		return nil, err
	}
	return &Driver{Driver: d, metrics: m}, nil
}

func (d *Driver) GetItem(ctx context.Context, key string) (string, bool, error) {
	start := time.Now()
	v, ok, err := d.Driver.GetItem(ctx, key)
	took := time.Since(start).Seconds()

	labels := missLabels
	switch {
	case err != nil:
		labels = getErrorLabels
	case ok:
		labels = hitLabels
	}
	d.metrics.getCount.With(labels).Inc()
	d.metrics.getTime.With(labels).Observe(took)
	return v, ok, err
}

func (d *Driver) SetItem(ctx context.Context, key, value string) error {
	start := time.Now()
	err := d.Driver.SetItem(ctx, key, value)
	took := time.Since(start).Seconds()

	labels := setOKLabels
	if err != nil {
		labels = setErrorLabels
	}
	d.metrics.setCount.With(labels).Inc()
	d.metrics.setTime.With(labels).Observe(took)
	return err
}
