package cdc_emitter

import (
	"context"
	"github.com/colstore/colstore/internal/table"
	v1 "github.com/litetable/litetable-cdc/go/v1"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"sync"
	"testing"
	"time"
)

type fakeStream struct {
	grpc.ServerStream

	ctx     context.Context
	sendErr error
	// block, when set, holds every Send until it is closed
	block chan struct{}

	mu     sync.Mutex
	events []*v1.CDCEvent
}

func (f *fakeStream) Send(evt *v1.CDCEvent) error {
	if f.block != nil {
		<-f.block
	}
	if f.sendErr != nil {
		return f.sendErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, evt)
	return nil
}

func (f *fakeStream) Context() context.Context {
	return f.ctx
}

func (f *fakeStream) received() []*v1.CDCEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*v1.CDCEvent(nil), f.events...)
}

func TestToEvents(t *testing.T) {
	t.Parallel()

	ts := int64(1_700_000_000_000)
	tests := map[string]struct {
		params *CDCParams
		expect []*v1.CDCEvent
	}{
		"write produces one event per qualifier in family then qualifier order": {
			params: &CDCParams{
				Operation: table.OperationWrite,
				RowKey:    "u1",
				Timestamp: ts,
				Version: &table.RowVersion{
					RowKey: "u1",
					Columns: table.ColumnFamilyData{
						"info":    {"name": "Alice", "age": "30"},
						"contact": {"email": "a@x"},
					},
					WriteTimestamp: ts,
				},
			},
			expect: []*v1.CDCEvent{
				{Operation: v1.LitetableOperation_WRITE, RowKey: "u1", Family: "contact", Qualifier: "email", Value: []byte("a@x"), TimestampUnix: ts * int64(time.Millisecond)},
				{Operation: v1.LitetableOperation_WRITE, RowKey: "u1", Family: "info", Qualifier: "age", Value: []byte("30"), TimestampUnix: ts * int64(time.Millisecond)},
				{Operation: v1.LitetableOperation_WRITE, RowKey: "u1", Family: "info", Qualifier: "name", Value: []byte("Alice"), TimestampUnix: ts * int64(time.Millisecond)},
			},
		},
		"write without a version produces nothing": {
			params: &CDCParams{Operation: table.OperationWrite, RowKey: "u1", Timestamp: ts},
		},
		"delete produces a single tombstone": {
			params: &CDCParams{Operation: table.OperationDelete, RowKey: "u1", Timestamp: ts},
			expect: []*v1.CDCEvent{
				{Operation: v1.LitetableOperation_DELETE, RowKey: "u1", TimestampUnix: ts * int64(time.Millisecond), Tombstone: true},
			},
		},
		"other operations are ignored": {
			params: &CDCParams{Operation: table.OperationRead, RowKey: "u1", Timestamp: ts},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			req := require.New(t)

			got := toEvents(tc.params)
			req.Len(got, len(tc.expect))
			for i := range tc.expect {
				req.Equal(tc.expect[i].GetOperation(), got[i].GetOperation())
				req.Equal(tc.expect[i].GetRowKey(), got[i].GetRowKey())
				req.Equal(tc.expect[i].GetFamily(), got[i].GetFamily())
				req.Equal(tc.expect[i].GetQualifier(), got[i].GetQualifier())
				req.Equal(tc.expect[i].GetValue(), got[i].GetValue())
				req.Equal(tc.expect[i].GetTimestampUnix(), got[i].GetTimestampUnix())
				req.Equal(tc.expect[i].GetTombstone(), got[i].GetTombstone())
			}
		})
	}
}

func TestManager_raiseCDCEvent(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	m := newManager(10)
	roomy := &subscriber{id: "roomy", events: make(chan *v1.CDCEvent, 4), done: make(chan struct{})}
	full := &subscriber{id: "full", events: make(chan *v1.CDCEvent, 2), done: make(chan struct{})}
	m.subscribers.Store("roomy", roomy)
	m.subscribers.Store("full", full)

	// three qualifiers do not fit the two free slots of "full"
	m.raiseCDCEvent(&CDCParams{
		Operation: table.OperationWrite,
		RowKey:    "u1",
		Timestamp: 1,
		Version: &table.RowVersion{
			RowKey:  "u1",
			Columns: table.ColumnFamilyData{"info": {"a": "1", "b": "2", "c": "3"}},
		},
	})

	req.Len(roomy.events, 3)
	req.Empty(full.events)
	req.Equal(1, m.Subscribers())
	_, ok := m.subscribers.Load("full")
	req.False(ok)

	select {
	case <-full.done:
	default:
		t.Fatal("subscriber without room was not released")
	}
}

func TestManager_Emit(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	m := newManager(10)
	defer func() {
		_ = m.Stop()
	}()
	go m.dispatchLoop()

	stream := &fakeStream{ctx: context.Background()}
	go func() {
		_ = m.CDCStream(&v1.CDCSubscriptionRequest{ClientId: "c1"}, stream)
	}()
	req.Eventually(func() bool {
		return m.Subscribers() == 1
	}, time.Second, 5*time.Millisecond)

	m.Emit(&CDCParams{
		Operation: table.OperationWrite,
		RowKey:    "u1",
		Timestamp: 1,
		Version: &table.RowVersion{
			RowKey:  "u1",
			Columns: table.ColumnFamilyData{"info": {"name": "Alice"}},
		},
	})

	req.Eventually(func() bool {
		return len(stream.received()) == 1
	}, time.Second, 5*time.Millisecond)

	evt := stream.received()[0]
	req.Equal("info", evt.GetFamily())
	req.Equal("name", evt.GetQualifier())
	req.Equal([]byte("Alice"), evt.GetValue())
}

func TestManager_EmitPreservesOrder(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	m := newManager(100)
	defer func() {
		_ = m.Stop()
	}()
	go m.dispatchLoop()

	stream := &fakeStream{ctx: context.Background()}
	go func() {
		_ = m.CDCStream(&v1.CDCSubscriptionRequest{ClientId: "c1"}, stream)
	}()
	req.Eventually(func() bool {
		return m.Subscribers() == 1
	}, time.Second, 5*time.Millisecond)

	for i := int64(1); i <= 50; i++ {
		m.Emit(&CDCParams{Operation: table.OperationDelete, RowKey: "k", Timestamp: i})
	}

	req.Eventually(func() bool {
		return len(stream.received()) == 50
	}, time.Second, 5*time.Millisecond)
	for i, evt := range stream.received() {
		req.Equal(time.UnixMilli(int64(i+1)).UnixNano(), evt.GetTimestampUnix())
	}
}

func TestManager_StalledSubscriber(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	m := newManager(2)
	m.subscriberBuffer = 4
	go m.dispatchLoop()

	stalled := &fakeStream{ctx: context.Background(), block: make(chan struct{})}
	defer close(stalled.block)
	healthy := &fakeStream{ctx: context.Background()}
	go func() {
		_ = m.CDCStream(&v1.CDCSubscriptionRequest{ClientId: "stalled"}, stalled)
	}()
	go func() {
		_ = m.CDCStream(&v1.CDCSubscriptionRequest{ClientId: "healthy"}, healthy)
	}()
	req.Eventually(func() bool {
		return m.Subscribers() == 2
	}, time.Second, 5*time.Millisecond)

	done := make(chan struct{})
	go func() {
		for i := int64(1); i <= 20; i++ {
			m.Emit(&CDCParams{Operation: table.OperationDelete, RowKey: "k", Timestamp: i})
			time.Sleep(time.Millisecond)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Emit blocked behind a stalled subscriber")
	}

	// the stalled client is disconnected, the healthy one keeps receiving
	req.Eventually(func() bool {
		_, ok := m.subscribers.Load("stalled")
		return !ok
	}, time.Second, 5*time.Millisecond)
	req.Eventually(func() bool {
		return len(healthy.received()) > 4
	}, time.Second, 5*time.Millisecond)

	_ = m.Stop()
}

func TestManager_EmitDropsWhenQueueFull(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	// no dispatch loop, so the queue is never drained
	m := newManager(2)
	defer func() {
		_ = m.Stop()
	}()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 5; i++ {
			m.Emit(&CDCParams{Operation: table.OperationDelete, RowKey: "k"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Emit blocked on a full queue")
	}
	req.Len(m.emitChan, 2)
	req.Equal(uint64(3), m.Dropped())
}

func TestManager_EmitAfterStop(t *testing.T) {
	t.Parallel()

	m := newManager(0)
	require.NoError(t, m.Stop())

	done := make(chan struct{})
	go func() {
		m.Emit(&CDCParams{Operation: table.OperationDelete, RowKey: "u1"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Emit blocked after Stop")
	}
	require.Zero(t, m.Dropped())
}
