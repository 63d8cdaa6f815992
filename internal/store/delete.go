package store

import (
	"github.com/colstore/colstore/internal/table"
	"github.com/rs/zerolog/log"
)

// Delete removes a row and its whole version history. It reports whether the row existed;
// deleting an unknown row is not an error.
func (s *Store) Delete(rowKey string) bool {
	_, existed := s.Remove(rowKey)
	return existed
}

// Remove deletes a row like Delete and returns the newest version it held.
func (s *Store) Remove(rowKey string) (table.RowVersion, bool) {
	sh := s.shardFor(rowKey)
	sh.mutex.Lock()
	h, existed := sh.rows[rowKey]
	var removed table.RowVersion
	if existed {
		removed, _ = h.latest()
		delete(sh.rows, rowKey)
		s.emit(table.OperationDelete, table.RowVersion{RowKey: rowKey, WriteTimestamp: s.clock.next()})
	}
	sh.mutex.Unlock()

	s.metrics.deletes.Inc()
	log.Debug().Str("rowKey", rowKey).Bool("existed", existed).Msg("delete")

	return removed.Clone(), existed
}

// ClearAll removes every row. The store stays usable afterwards.
func (s *Store) ClearAll() {
	for _, sh := range s.shards {
		sh.mutex.Lock()
		sh.rows = make(map[string]*history)
		sh.mutex.Unlock()
	}
	log.Info().Msg("store cleared")
}
