package store

import (
	"errors"
	"github.com/colstore/colstore/internal/cdc_emitter"
	"github.com/colstore/colstore/internal/table"
	"github.com/rs/zerolog/log"
	"time"
)

// Put writes a new version of a row. The columns are a full replacement snapshot: families or
// qualifiers present in the previous version but missing here are not carried over.
//
// The only failure is an empty row key.
func (s *Store) Put(rowKey string, columns table.ColumnFamilyData) (table.RowVersion, error) {
	if rowKey == "" {
		return table.RowVersion{}, newError(ErrInvalidArgument, "row key is required")
	}
	return s.put(rowKey, columns), nil
}

// BatchPut writes each row in order and returns one version per row, in input order.
//
// Every row key is checked before anything is written, so a batch containing an empty row key
// is rejected as a whole. Once writing starts the rows are independent puts: readers may observe
// part of a batch.
func (s *Store) BatchPut(rows []table.RowInput) ([]table.RowVersion, error) {
	var errGrp []error
	for i, row := range rows {
		if row.RowKey == "" {
			errGrp = append(errGrp, newError(ErrInvalidArgument, "row %d: row key is required", i))
		}
	}
	if err := errors.Join(errGrp...); err != nil {
		return nil, err
	}

	results := make([]table.RowVersion, 0, len(rows))
	for _, row := range rows {
		results = append(results, s.put(row.RowKey, row.Columns))
	}

	s.metrics.batchRows.Add(len(rows))
	log.Debug().Int("rows", len(results)).Msg("batch put")
	return results, nil
}

func (s *Store) put(rowKey string, columns table.ColumnFamilyData) table.RowVersion {
	start := time.Now()
	version := table.RowVersion{
		RowKey:  rowKey,
		Columns: columns.Clone(),
	}

	sh := s.shardFor(rowKey)
	sh.mutex.Lock()
	// the timestamp is taken under the row lock so a row's history is ordered by write time
	version.WriteTimestamp = s.clock.next()
	h, exists := sh.rows[rowKey]
	if !exists {
		h = newHistory(s.maxVersions)
		sh.rows[rowKey] = h
	}
	dropped := h.push(version, s.maxVersions)
	// emitting under the row lock keeps a row's changes in write order; Emit never blocks
	s.emit(table.OperationWrite, version)
	sh.mutex.Unlock()

	s.metrics.puts.Inc()
	s.metrics.evictions.Add(dropped)
	s.metrics.putLatency.UpdateDuration(start)

	log.Debug().
		Str("rowKey", rowKey).
		Int64("timestamp", version.WriteTimestamp).
		Int("evicted", dropped).
		Msg("put")

	return version.Clone()
}

func (s *Store) emit(op table.Operation, version table.RowVersion) {
	if s.cdc == nil {
		return
	}
	params := &cdc_emitter.CDCParams{
		Operation: op,
		RowKey:    version.RowKey,
		Timestamp: version.WriteTimestamp,
	}
	if op == table.OperationWrite {
		emitted := version.Clone()
		params.Version = &emitted
	}
	s.cdc.Emit(params)
}
