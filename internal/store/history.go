package store

import (
	"github.com/colstore/colstore/internal/table"
)

// history is a newest-first list of row versions bounded by the store's version limit.
// push is its only mutation, so the bound holds after every write.
type history struct {
	versions []table.RowVersion
}

func newHistory(limit int) *history {
	return &history{
		versions: make([]table.RowVersion, 0, limit),
	}
}

// push prepends v and returns how many of the oldest versions were dropped to stay within limit.
func (h *history) push(v table.RowVersion, limit int) int {
	dropped := 0
	if len(h.versions) >= limit {
		dropped = len(h.versions) - limit + 1
		h.versions = h.versions[:limit-1]
	}

	h.versions = append(h.versions, table.RowVersion{})
	copy(h.versions[1:], h.versions[:len(h.versions)-1])
	h.versions[0] = v

	return dropped
}

// latest returns the newest version.
func (h *history) latest() (table.RowVersion, bool) {
	if len(h.versions) == 0 {
		return table.RowVersion{}, false
	}
	return h.versions[0], true
}

// asOf returns the newest version written at or before ts.
func (h *history) asOf(ts int64) (table.RowVersion, bool) {
	for _, v := range h.versions {
		if v.WriteTimestamp <= ts {
			return v, true
		}
	}
	return table.RowVersion{}, false
}

// snapshot returns deep copies of every retained version, newest first.
func (h *history) snapshot() []table.RowVersion {
	out := make([]table.RowVersion, len(h.versions))
	for i, v := range h.versions {
		out[i] = v.Clone()
	}
	return out
}
