// Package cdc_emitter streams change-data-capture events for every row written to or deleted
// from the store.
//
// Writers call Emit, which never blocks: when the change queue is full the change is dropped and
// counted. A single dispatch goroutine turns each change into litetable-cdc events and copies
// them, in emit order, into the bounded queue of every subscriber connected through the
// CDCStream RPC. Each subscriber's own CDCStream goroutine sends from its queue, so a slow client
// only stalls itself. A subscriber whose queue overflows or whose stream fails is disconnected;
// it can reconnect at any time but missed events are not replayed.
package cdc_emitter

import (
	"context"
	"errors"
	"fmt"
	v1 "github.com/litetable/litetable-cdc/go/v1"
	"github.com/puzpuzpuz/xsync/v3"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"net"
	"sync"
	"sync/atomic"
	"time"
)

const (
	defaultBufferSize           = 100000
	defaultSubscriberBufferSize = 4096
	gracefulStopTimeout         = 5 * time.Second
)

type Config struct {
	Port    int
	Address string
	// BufferSize is the number of changes queued for dispatch. Emit drops changes beyond it.
	BufferSize int
	// SubscriberBufferSize is the number of events queued per subscriber. A subscriber that
	// falls further behind is disconnected.
	SubscriberBufferSize int
}

func (c *Config) validate() error {
	var errGrp []error
	if c.Port <= 0 {
		errGrp = append(errGrp, fmt.Errorf("invalid port: %d", c.Port))
	}
	if c.Address == "" {
		errGrp = append(errGrp, fmt.Errorf("invalid address: %s", c.Address))
	}
	if c.BufferSize < 0 {
		errGrp = append(errGrp, fmt.Errorf("invalid buffer size: %d", c.BufferSize))
	}
	if c.SubscriberBufferSize < 0 {
		errGrp = append(errGrp, fmt.Errorf("invalid subscriber buffer size: %d", c.SubscriberBufferSize))
	}
	return errors.Join(errGrp...)
}

// Manager implements the app.Dependency interface and the litetable-cdc CDCService.
type Manager struct {
	v1.UnimplementedCDCServiceServer

	port     int
	address  string
	listener net.Listener
	server   *grpc.Server

	emitChan   chan *CDCParams
	procCtx    context.Context
	procCancel context.CancelFunc

	subscribers      *xsync.MapOf[string, *subscriber]
	subscriberBuffer int

	// dropped counts changes Emit discarded because the queue was full.
	dropped atomic.Uint64
}

type subscriber struct {
	id     string
	stream v1.CDCService_CDCStreamServer
	events chan *v1.CDCEvent
	done   chan struct{}
	once   sync.Once
}

// close ends the CDCStream call serving this subscriber.
func (s *subscriber) close() {
	s.once.Do(func() {
		close(s.done)
	})
}

func New(cfg *Config) (*Manager, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	addrString := fmt.Sprintf("%s:%d", cfg.Address, cfg.Port)
	listener, err := net.Listen("tcp", addrString)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addrString, err)
	}

	bufferSize := cfg.BufferSize
	if bufferSize == 0 {
		bufferSize = defaultBufferSize
	}

	m := newManager(bufferSize)
	if cfg.SubscriberBufferSize > 0 {
		m.subscriberBuffer = cfg.SubscriberBufferSize
	}
	m.port = cfg.Port
	m.address = cfg.Address
	m.listener = listener
	m.server = grpc.NewServer()
	v1.RegisterCDCServiceServer(m.server, m)

	return m, nil
}

func newManager(bufferSize int) *Manager {
	ctx, cancel := context.WithCancel(context.Background())
	return &Manager{
		emitChan:         make(chan *CDCParams, bufferSize),
		procCtx:          ctx,
		procCancel:       cancel,
		subscribers:      xsync.NewMapOf[string, *subscriber](),
		subscriberBuffer: defaultSubscriberBufferSize,
	}
}

func (m *Manager) Start() error {
	go m.dispatchLoop()

	log.Info().Msgf("CDC gRPC server listening at %s:%d", m.address, m.port)
	if err := m.server.Serve(m.listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("CDC gRPC server failed: %w", err)
	}
	return nil
}

func (m *Manager) Stop() error {
	if m.procCancel != nil {
		m.procCancel()
	}
	if m.server != nil {
		// a client that stopped reading can hold GracefulStop forever
		stopped := make(chan struct{})
		go func() {
			m.server.GracefulStop()
			close(stopped)
		}()
		select {
		case <-stopped:
		case <-time.After(gracefulStopTimeout):
			log.Warn().Msg("CDC gRPC server did not stop gracefully, closing remaining streams")
			m.server.Stop()
		}
	}
	if m.listener != nil {
		_ = m.listener.Close()
	}
	return nil
}

func (m *Manager) Name() string {
	return "CDC Emitter"
}

// Subscribers returns the number of connected subscribers.
func (m *Manager) Subscribers() int {
	return m.subscribers.Size()
}

// Dropped returns the number of changes discarded because the dispatch queue was full.
func (m *Manager) Dropped() uint64 {
	return m.dropped.Load()
}

// CDCStream registers the caller as a subscriber and sends it every queued event until the
// client goes away, a send fails, the subscriber falls too far behind or the emitter stops.
func (m *Manager) CDCStream(req *v1.CDCSubscriptionRequest, stream v1.CDCService_CDCStreamServer) error {
	sub := &subscriber{
		id:     subscriberID(req.GetClientId()),
		stream: stream,
		events: make(chan *v1.CDCEvent, m.subscriberBuffer),
		done:   make(chan struct{}),
	}

	if _, loaded := m.subscribers.LoadOrStore(sub.id, sub); loaded {
		return fmt.Errorf("client %s is already subscribed", sub.id)
	}
	defer m.removeSubscriber(sub)

	if req.GetReplay() {
		log.Warn().Str("client", sub.id).Msg("replay requested but not supported, streaming live events only")
	}
	log.Info().Str("client", sub.id).Msg("CDC subscriber connected")

	for {
		select {
		case <-stream.Context().Done():
			log.Info().Str("client", sub.id).Msg("CDC subscriber disconnected")
			return nil
		case <-sub.done:
			log.Warn().Str("client", sub.id).Msg("CDC subscriber fell behind, disconnecting")
			return status.Error(codes.ResourceExhausted, "subscriber fell behind")
		case <-m.procCtx.Done():
			return nil
		case evt := <-sub.events:
			if err := stream.Send(evt); err != nil {
				log.Warn().Err(err).Str("client", sub.id).Msg("removing CDC subscriber due to send error")
				return err
			}
		}
	}
}

// removeSubscriber deletes sub from the registry unless the id was already taken over by a newer
// subscriber.
func (m *Manager) removeSubscriber(sub *subscriber) {
	m.subscribers.Compute(sub.id, func(old *subscriber, loaded bool) (*subscriber, bool) {
		if loaded && old != sub {
			return old, false
		}
		return nil, true
	})
	sub.close()
}
