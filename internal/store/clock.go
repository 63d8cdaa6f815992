package store

import (
	"sync/atomic"
	"time"
)

// clock hands out millisecond write timestamps that never go backwards, even if the wall clock
// does. Two writes may share a timestamp.
type clock struct {
	now  func() time.Time
	last atomic.Int64
}

func (c *clock) next() int64 {
	ts := c.now().UnixMilli()
	for {
		last := c.last.Load()
		if ts <= last {
			return last
		}
		if c.last.CompareAndSwap(last, ts) {
			return ts
		}
	}
}
