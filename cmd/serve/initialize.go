package serve

import (
	vm "github.com/VictoriaMetrics/metrics"
	"github.com/colstore/colstore/internal/app"
	"github.com/colstore/colstore/internal/cdc_emitter"
	"github.com/colstore/colstore/internal/config"
	"github.com/colstore/colstore/internal/metrics"
	"github.com/colstore/colstore/internal/operations"
	"github.com/colstore/colstore/internal/server"
	grpcServer "github.com/colstore/colstore/internal/server/grpc"
	"github.com/colstore/colstore/internal/store"
	"github.com/colstore/colstore/internal/users"
)

const serviceName = "colstore"

// initialize builds every dependency from the configuration. The store is created once and shared
// by the text protocol, the gRPC service and the metrics endpoint.
func initialize(cfg *config.Config) (*app.App, error) {
	var deps []app.Dependency

	storeCfg := &store.Config{
		ShardCount:  cfg.ShardCount,
		MaxVersions: cfg.MaxVersions,
	}

	// the CDC emitter is only assigned when enabled so the store never sees a typed nil
	if cfg.CDCPort != 0 {
		cdcEmitter, err := cdc_emitter.New(&cdc_emitter.Config{
			Port:       cfg.CDCPort,
			Address:    cfg.Address,
			BufferSize: cfg.CDCBufferSize,
		})
		if err != nil {
			return nil, err
		}
		deps = append(deps, cdcEmitter)
		storeCfg.CDC = cdcEmitter
	}

	st, err := store.New(storeCfg)
	if err != nil {
		return nil, err
	}

	userService, err := users.New(&users.Config{
		Store: st,
	})
	if err != nil {
		return nil, err
	}

	opsManager, err := operations.New(&operations.Config{
		Service:       userService,
		MaxBufferSize: cfg.MaxBufferSize,
		IOTimeout:     cfg.IOTimeout,
	})
	if err != nil {
		return nil, err
	}

	cert, err := cfg.Certificate()
	if err != nil {
		return nil, err
	}

	srv, err := server.New(&server.Config{
		Address:        cfg.Address,
		Port:           cfg.Port,
		Handler:        opsManager,
		MaxConnections: cfg.MaxConnections,
		EnableTLS:      cfg.EnableTLS,
		Certificate:    cert,
	})
	if err != nil {
		return nil, err
	}
	deps = append(deps, srv)

	if cfg.GRPCPort != 0 {
		rpc, err := grpcServer.NewServer(&grpcServer.Config{
			Address: cfg.Address,
			Port:    cfg.GRPCPort,
			Store:   st,
		})
		if err != nil {
			return nil, err
		}
		deps = append(deps, rpc)
	}

	if cfg.MetricsPort != 0 {
		metricsServer, err := metrics.New(&metrics.Config{
			Address: cfg.Address,
			Port:    cfg.MetricsPort,
			Sets:    []*vm.Set{st.Metrics()},
			Debug:   cfg.Debug(),
		})
		if err != nil {
			return nil, err
		}
		deps = append(deps, metricsServer)
	}

	return app.CreateApp(&app.Config{
		ServiceName: serviceName,
		StopTimeout: cfg.StopTimeout,
	}, deps...)
}
