package store

import (
	"github.com/colstore/colstore/internal/table"
	"github.com/rs/zerolog/log"
	"sort"
	"strings"
)

// Get returns the newest version of a row. The boolean is false when the row key is unknown.
func (s *Store) Get(rowKey string) (table.RowVersion, bool) {
	s.metrics.gets.Inc()

	sh := s.shardFor(rowKey)
	sh.mutex.RLock()
	defer sh.mutex.RUnlock()

	h, exists := sh.rows[rowKey]
	if !exists {
		log.Debug().Str("rowKey", rowKey).Msg("get: not found")
		return table.RowVersion{}, false
	}

	v, ok := h.latest()
	if !ok {
		return table.RowVersion{}, false
	}
	return v.Clone(), true
}

// GetVersions returns every retained version of a row, newest first. Unknown row keys return an
// empty slice.
func (s *Store) GetVersions(rowKey string) []table.RowVersion {
	s.metrics.gets.Inc()

	sh := s.shardFor(rowKey)
	sh.mutex.RLock()
	defer sh.mutex.RUnlock()

	h, exists := sh.rows[rowKey]
	if !exists {
		return []table.RowVersion{}
	}

	versions := h.snapshot()
	log.Debug().Str("rowKey", rowKey).Int("versions", len(versions)).Msg("get versions")
	return versions
}

// GetAsOf returns the row as it was at ts (milliseconds since the epoch): the newest retained
// version written at or before ts. The boolean is false when no retained version is that old.
func (s *Store) GetAsOf(rowKey string, ts int64) (table.RowVersion, bool) {
	s.metrics.gets.Inc()

	sh := s.shardFor(rowKey)
	sh.mutex.RLock()
	defer sh.mutex.RUnlock()

	h, exists := sh.rows[rowKey]
	if !exists {
		return table.RowVersion{}, false
	}

	v, ok := h.asOf(ts)
	if !ok {
		return table.RowVersion{}, false
	}
	return v.Clone(), true
}

// Scan returns the newest version of every row, ordered by row key.
func (s *Store) Scan() []table.RowVersion {
	return s.scan(func(string) bool {
		return true
	})
}

// ScanPrefix returns the newest version of every row whose key starts with prefix, ordered by
// row key.
func (s *Store) ScanPrefix(prefix string) []table.RowVersion {
	return s.scan(func(rowKey string) bool {
		return strings.HasPrefix(rowKey, prefix)
	})
}

// scan visits the shards one at a time, holding only that shard's read lock.
func (s *Store) scan(match func(rowKey string) bool) []table.RowVersion {
	s.metrics.scans.Inc()

	results := make([]table.RowVersion, 0)
	for _, sh := range s.shards {
		sh.mutex.RLock()
		for rowKey, h := range sh.rows {
			if !match(rowKey) {
				continue
			}
			if v, ok := h.latest(); ok {
				results = append(results, v.Clone())
			}
		}
		sh.mutex.RUnlock()
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].RowKey < results[j].RowKey
	})

	log.Debug().Int("rows", len(results)).Msg("scan")
	return results
}
