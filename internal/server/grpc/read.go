package grpc

import (
	"context"
	"errors"
	"github.com/colstore/colstore/internal/table"
	"github.com/litetable/litetable-db/pkg/proto"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"regexp"
	"time"
)

func (l *litetable) validateRead(msg *proto.ReadRequest) error {
	var errGrp []error
	if msg.GetFamily() == "" {
		errGrp = append(errGrp, status.Errorf(codes.InvalidArgument, "family required"))
	}
	if msg.GetRowKey() == "" {
		errGrp = append(errGrp, status.Errorf(codes.InvalidArgument, "rowKey required"))
	}
	if msg.GetLatest() < 0 {
		errGrp = append(errGrp, status.Errorf(codes.InvalidArgument, "latest cannot be negative"))
	}

	return errors.Join(errGrp...)
}

// Read returns the retained versions of one family. The row key is matched exactly, as a prefix
// or as a regular expression depending on the query type. Latest limits the number of versions
// per row, 0 returns all of them. Every write replaces the whole row, so a qualifier's history
// stops at the newest version that lacks it, and rows whose newest version lacks the family are
// not returned.
func (l *litetable) Read(ctx context.Context, msg *proto.ReadRequest) (*proto.LitetableData,
	error) {
	now := time.Now()
	log.Debug().Msgf("Read request: %v", msg)
	if err := l.validateRead(msg); err != nil {
		return nil, err
	}

	rowKeys, err := l.matchRowKeys(msg)
	if err != nil {
		return nil, err
	}

	result := &proto.LitetableData{
		Rows: make(map[string]*proto.Row),
	}
	for _, rowKey := range rowKeys {
		row := convertToProtoRow(l.store.GetVersions(rowKey), msg.GetFamily(), msg.GetQualifiers(),
			int(msg.GetLatest()))
		if row != nil {
			result.Rows[rowKey] = row
		}
	}

	if msg.GetQueryType() == proto.QueryType_EXACT && len(result.Rows) == 0 {
		return nil, status.Errorf(codes.NotFound, "row not found: %s", msg.GetRowKey())
	}

	log.Debug().Msgf("Read latency: %v", time.Since(now))
	return result, nil
}

func (l *litetable) matchRowKeys(msg *proto.ReadRequest) ([]string, error) {
	switch msg.GetQueryType() {
	case proto.QueryType_PREFIX:
		return rowKeys(l.store.ScanPrefix(msg.GetRowKey())), nil
	case proto.QueryType_REGEX:
		re, err := regexp.Compile(msg.GetRowKey())
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid regex: %v", err)
		}

		var keys []string
		for _, key := range rowKeys(l.store.Scan()) {
			if re.MatchString(key) {
				keys = append(keys, key)
			}
		}
		return keys, nil
	default:
		return []string{msg.GetRowKey()}, nil
	}
}

func rowKeys(versions []table.RowVersion) []string {
	keys := make([]string, 0, len(versions))
	for _, v := range versions {
		keys = append(keys, v.RowKey)
	}
	return keys
}
