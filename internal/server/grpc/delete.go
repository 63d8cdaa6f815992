package grpc

import (
	"context"
	"errors"
	"github.com/litetable/litetable-db/pkg/proto"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (l *litetable) validateDelete(msg *proto.DeleteRequest) error {
	var errGrp []error
	if msg.GetRowKey() == "" {
		errGrp = append(errGrp, status.Errorf(codes.InvalidArgument, "rowKey required"))
	}
	// only whole rows can be deleted
	if msg.GetFamily() != "" || len(msg.GetQualifiers()) > 0 {
		errGrp = append(errGrp, status.Errorf(codes.InvalidArgument,
			"family and qualifier deletes are not supported, omit them to delete the row"))
	}
	if msg.GetTimestampUnix() != 0 || msg.GetTtl() != 0 {
		errGrp = append(errGrp, status.Errorf(codes.InvalidArgument,
			"timestamp and ttl are not supported"))
	}

	return errors.Join(errGrp...)
}

// Delete removes a row and its whole version history. Deleting an unknown row succeeds.
func (l *litetable) Delete(ctx context.Context, msg *proto.DeleteRequest) (*proto.Empty, error) {
	if err := l.validateDelete(msg); err != nil {
		return nil, err
	}

	existed := l.store.Delete(msg.GetRowKey())
	log.Debug().Str("rowKey", msg.GetRowKey()).Bool("existed", existed).Msg("Delete request")
	return &proto.Empty{}, nil
}
