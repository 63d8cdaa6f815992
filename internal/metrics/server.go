// Package metrics serves the store's metrics in the Prometheus text format.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"github.com/VictoriaMetrics/metrics"
	"github.com/rs/zerolog/log"
	"net"
	"net/http"
	"time"
)

const shutdownTimeout = 5 * time.Second

// Server implements the app.Dependency interface for the metrics endpoint.
type Server struct {
	address  string
	port     int
	listener net.Listener
	server   *http.Server
}

type Config struct {
	Address string
	Port    int
	// Sets are written after the process metrics, in order.
	Sets []*metrics.Set
	// Debug logs every scrape.
	Debug bool
}

func (c *Config) validate() error {
	var errGrp []error
	if c.Address == "" {
		errGrp = append(errGrp, errors.New("address required"))
	}
	if c.Port < 0 || c.Port > 65535 {
		errGrp = append(errGrp, errors.New("port must be between 0 and 65535"))
	}
	return errors.Join(errGrp...)
}

func New(cfg *Config) (*Server, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	lis, err := net.Listen("tcp", fmt.Sprintf("%s:%d", cfg.Address, cfg.Port))
	if err != nil {
		return nil, fmt.Errorf("failed to create listener on port %d: %w", cfg.Port, err)
	}

	return &Server{
		address:  cfg.Address,
		port:     cfg.Port,
		listener: lis,
		server: &http.Server{
			Handler:           newHandler(cfg.Sets, cfg.Debug),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}, nil
}

func newHandler(sets []*metrics.Set, debug bool) http.Handler {
	mux := http.NewServeMux()

	handler := func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; version=0.0.4")
		metrics.WritePrometheus(w, true)
		for _, set := range sets {
			set.WritePrometheus(w)
		}
	}
	if debug {
		mux.HandleFunc("GET /metrics", loggerMiddleware(handler))
	} else {
		mux.HandleFunc("GET /metrics", handler)
	}

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	return mux
}

// loggerMiddleware logs every request with its latency
func loggerMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Debug().Str("path", r.URL.Path).Dur("took", time.Since(start)).Msg("metrics scrape")
	}
}

// Addr returns the address the server is listening on.
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

func (s *Server) Start() error {
	log.Info().Msgf("metrics server listening at %s", s.Addr())
	if err := s.server.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("metrics server failed: %w", err)
	}
	return nil
}

func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) Name() string {
	return "Metrics Server"
}
