package store

import (
	"github.com/VictoriaMetrics/metrics"
)

type storeMetrics struct {
	puts       *metrics.Counter
	gets       *metrics.Counter
	scans      *metrics.Counter
	deletes    *metrics.Counter
	batchRows  *metrics.Counter
	evictions  *metrics.Counter
	putLatency *metrics.Histogram
}

func newStoreMetrics(set *metrics.Set, rows func() float64) *storeMetrics {
	set.NewGauge("colstore_rows", rows)

	return &storeMetrics{
		puts:       set.NewCounter("colstore_puts_total"),
		gets:       set.NewCounter("colstore_gets_total"),
		scans:      set.NewCounter("colstore_scans_total"),
		deletes:    set.NewCounter("colstore_deletes_total"),
		batchRows:  set.NewCounter("colstore_batch_rows_total"),
		evictions:  set.NewCounter("colstore_evicted_versions_total"),
		putLatency: set.NewHistogram("colstore_put_duration_seconds"),
	}
}
