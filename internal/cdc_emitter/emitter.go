package cdc_emitter

import (
	"github.com/colstore/colstore/internal/table"
	"github.com/google/uuid"
	v1 "github.com/litetable/litetable-cdc/go/v1"
	"github.com/rs/zerolog/log"
	"sort"
	"time"
)

// CDCParams describes one change to a row.
type CDCParams struct {
	Operation table.Operation
	RowKey    string
	// Timestamp of the change in milliseconds since the epoch.
	Timestamp int64
	// Version is the written version. It is nil for deletes.
	Version *table.RowVersion
}

// Emit queues a change for every subscriber without blocking. The change is dropped when the
// queue is full or the emitter has stopped. Changes are dispatched in the order Emit is called.
func (m *Manager) Emit(params *CDCParams) {
	if m.procCtx.Err() != nil {
		return
	}
	select {
	case m.emitChan <- params:
	default:
		dropped := m.dropped.Add(1)
		log.Warn().Str("rowKey", params.RowKey).Uint64("dropped", dropped).
			Msg("CDC queue full, dropping change")
	}
}

func (m *Manager) dispatchLoop() {
	for {
		select {
		case <-m.procCtx.Done():
			return
		case p := <-m.emitChan:
			m.raiseCDCEvent(p)
		}
	}
}

// raiseCDCEvent queues the events for one change on every subscriber. A subscriber without room
// for all of them is disconnected rather than sent a partial change.
func (m *Manager) raiseCDCEvent(params *CDCParams) {
	events := toEvents(params)
	if len(events) == 0 {
		return
	}

	m.subscribers.Range(func(id string, sub *subscriber) bool {
		if cap(sub.events)-len(sub.events) < len(events) {
			log.Warn().Str("client", id).Msg("CDC subscriber queue full")
			m.removeSubscriber(sub)
			return true
		}
		for _, evt := range events {
			sub.events <- evt
		}
		return true
	})
}

// toEvents converts a change into CDC events: one per qualifier for a write, a single tombstone
// for a row delete. Events of a write are ordered by family, then qualifier.
func toEvents(p *CDCParams) []*v1.CDCEvent {
	ts := time.UnixMilli(p.Timestamp).UnixNano()

	switch p.Operation {
	case table.OperationWrite:
		if p.Version == nil {
			return nil
		}

		families := make([]string, 0, len(p.Version.Columns))
		for family := range p.Version.Columns {
			families = append(families, family)
		}
		sort.Strings(families)

		var events []*v1.CDCEvent
		for _, family := range families {
			qualifiers := p.Version.Columns[family]
			names := make([]string, 0, len(qualifiers))
			for name := range qualifiers {
				names = append(names, name)
			}
			sort.Strings(names)

			for _, name := range names {
				events = append(events, &v1.CDCEvent{
					Operation:     v1.LitetableOperation_WRITE,
					RowKey:        p.RowKey,
					Family:        family,
					Qualifier:     name,
					Value:         []byte(qualifiers[name]),
					TimestampUnix: ts,
				})
			}
		}
		return events
	case table.OperationDelete:
		return []*v1.CDCEvent{
			{
				Operation:     v1.LitetableOperation_DELETE,
				RowKey:        p.RowKey,
				TimestampUnix: ts,
				Tombstone:     true,
			},
		}
	}

	return nil
}

func subscriberID(clientID string) string {
	if clientID != "" {
		return clientID
	}
	return uuid.NewString()
}
