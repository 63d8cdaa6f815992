package grpc

import (
	"context"
	"errors"
	"github.com/litetable/litetable-db/pkg/proto"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (l *litetable) validateCreateFamilyRequest(msg *proto.CreateFamilyRequest) error {
	var errGrp []error

	families := msg.GetFamily()
	if len(families) == 0 {
		errGrp = append(errGrp, status.Errorf(codes.InvalidArgument, "family required"))
	}
	for _, f := range families {
		if f == "" {
			errGrp = append(errGrp, status.Errorf(codes.InvalidArgument, "family name cannot be empty"))
			break
		}
	}

	return errors.Join(errGrp...)
}

// CreateFamily accepts any family names. Families exist implicitly once a row uses them, so
// nothing is stored.
func (l *litetable) CreateFamily(ctx context.Context, msg *proto.CreateFamilyRequest) (*proto.
	Empty, error) {
	if err := l.validateCreateFamilyRequest(msg); err != nil {
		return nil, err
	}

	log.Debug().Strs("families", msg.GetFamily()).Msg("CreateFamily request")
	return &proto.Empty{}, nil
}
