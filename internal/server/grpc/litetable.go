package grpc

import (
	"github.com/colstore/colstore/internal/table"
	"github.com/litetable/litetable-db/pkg/proto"
	"net"
)

//go:generate mockgen -destination=litetable_mock.go -package=grpc -source=litetable.go

type store interface {
	Put(rowKey string, columns table.ColumnFamilyData) (table.RowVersion, error)
	GetVersions(rowKey string) []table.RowVersion
	Scan() []table.RowVersion
	ScanPrefix(prefix string) []table.RowVersion
	Delete(rowKey string) bool
}

type grpcServer interface {
	Serve(lis net.Listener) error
	GracefulStop()
}

// litetable serves the LitetableService API from the versioned store. Every write is a new
// version of the whole row holding the qualifiers of a single family.
type litetable struct {
	proto.UnimplementedLitetableServiceServer
	store store
}
