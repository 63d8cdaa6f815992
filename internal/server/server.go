// Package server accepts TCP connections, optionally over TLS, and hands each one to a handler.
package server

import (
	"crypto/tls"
	"errors"
	"fmt"
	"github.com/rs/zerolog/log"
	"net"
	"sync"
	"sync/atomic"
)

const (
	serverName            = "Colstore TCP Server"
	defaultMaxConnections = 100
)

type handler interface {
	Handle(conn net.Conn)
}

type Server struct {
	listener net.Listener
	address  string
	port     int
	handler  handler

	// configuration for handling connections
	maxConnections int
	connSemaphore  chan struct{}
	activeConns    sync.WaitGroup
	enableTLS      bool
	stopped        atomic.Bool
}

type Config struct {
	Address        string
	Port           int
	Handler        handler
	MaxConnections int
	EnableTLS      bool
	// Certificate is required when EnableTLS is set.
	Certificate *tls.Certificate
}

func (c *Config) validate() error {
	var errGrp []error

	if c.Port < 0 || c.Port > 65535 {
		errGrp = append(errGrp, errors.New("port must be between 0 and 65535"))
	}
	if c.Handler == nil {
		errGrp = append(errGrp, errors.New("handler is required"))
	}
	if c.EnableTLS && c.Certificate == nil {
		errGrp = append(errGrp, errors.New("certificate is required when TLS is enabled"))
	}

	return errors.Join(errGrp...)
}

// New returns a new server listening on the configured address. Port 0 picks a free port.
func New(cfg *Config) (*Server, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	addr := fmt.Sprintf("%s:%d", cfg.Address, cfg.Port)

	var listener net.Listener
	var err error
	if cfg.EnableTLS {
		tlsConfig := &tls.Config{
			Certificates: []tls.Certificate{*cfg.Certificate},
			MinVersion:   tls.VersionTLS12,
		}
		listener, err = tls.Listen("tcp", addr, tlsConfig)
	} else {
		listener, err = net.Listen("tcp", addr)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create listener: %w", err)
	}

	maxConns := cfg.MaxConnections
	if maxConns <= 0 {
		maxConns = defaultMaxConnections
	}

	return &Server{
		listener:       listener,
		address:        cfg.Address,
		port:           cfg.Port,
		handler:        cfg.Handler,
		maxConnections: maxConns,
		connSemaphore:  make(chan struct{}, maxConns),
		enableTLS:      cfg.EnableTLS,
	}, nil
}

// Addr returns the address the server is listening on.
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Start accepts connections until Stop is called.
func (s *Server) Start() error {
	log.Info().Str("addr", s.Addr().String()).Bool("tls", s.enableTLS).Msg("TCP server listening")

	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if s.stopped.Load() && errors.Is(err, net.ErrClosed) {
				return nil
			}
			return err
		}
		remoteAddr := conn.RemoteAddr().String()

		// Try to acquire a connection slot
		select {
		case s.connSemaphore <- struct{}{}:
			s.activeConns.Add(1)
			go func() {
				defer func() {
					<-s.connSemaphore
					s.activeConns.Done()
				}()

				log.Debug().Str("remote", remoteAddr).Msg("handling connection")
				s.handler.Handle(conn)
			}()
		default:
			_ = conn.Close()
			log.Warn().Str("remote", remoteAddr).Int("max", s.maxConnections).
				Msg("rejected connection: max connections reached")
		}
	}
}

// Stop will stop the server from accepting new connections and wait for active ones to finish.
func (s *Server) Stop() error {
	s.stopped.Store(true)
	err := s.listener.Close()
	s.activeConns.Wait()
	return err
}

// Name returns the name of the server.
func (s *Server) Name() string {
	return serverName
}
