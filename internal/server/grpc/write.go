package grpc

import (
	"context"
	"errors"
	"github.com/colstore/colstore/internal/table"
	"github.com/litetable/litetable-db/pkg/proto"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"time"
)

func (l *litetable) validateWrite(msg *proto.WriteRequest) error {
	var errGrp []error
	if msg.GetFamily() == "" {
		errGrp = append(errGrp, status.Errorf(codes.InvalidArgument, "family required"))
	}
	if msg.GetRowKey() == "" {
		errGrp = append(errGrp, status.Errorf(codes.InvalidArgument, "rowKey required"))
	}
	if len(msg.GetQualifiers()) == 0 {
		errGrp = append(errGrp, status.Errorf(codes.InvalidArgument, "qualifiers required"))
	}
	for _, q := range msg.GetQualifiers() {
		if q.GetName() == "" {
			errGrp = append(errGrp, status.Errorf(codes.InvalidArgument, "qualifier name required"))
			break
		}
	}
	return errors.Join(errGrp...)
}

// Write stores the request's qualifiers as a new version of the row. The version replaces the
// whole row, so families not named in the request are not carried over.
func (l *litetable) Write(ctx context.Context, msg *proto.WriteRequest) (*proto.LitetableData,
	error) {
	if err := l.validateWrite(msg); err != nil {
		return nil, err
	}
	now := time.Now()
	log.Debug().Msgf("Write request: %v", msg)

	qualifiers := make(map[string]string, len(msg.GetQualifiers()))
	for _, q := range msg.GetQualifiers() {
		qualifiers[q.GetName()] = string(q.GetValue())
	}

	version, err := l.store.Put(msg.GetRowKey(), table.ColumnFamilyData{
		msg.GetFamily(): qualifiers,
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to write data: %v", err)
	}

	result := &proto.LitetableData{
		Rows: make(map[string]*proto.Row),
	}
	if row := convertToProtoRow([]table.RowVersion{version}, msg.GetFamily(), nil, 1); row != nil {
		result.Rows[row.Key] = row
	}

	log.Debug().Msgf("Write latency: %v", time.Since(now))
	return result, nil
}
