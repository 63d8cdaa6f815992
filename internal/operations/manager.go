// Package operations implements the text query protocol. A request is a verb followed by
// space-separated name=value arguments whose values are URL query escaped:
//
//	WRITE key=u1 column=info:name value=Ada column=contact:email value=ada%40example.com
//	READ key=u1 versions=true
//	SCAN prefix=user:
//
// Responses are JSON.
package operations

import (
	"errors"
	"time"
	"github.com/colstore/colstore/internal/table"
	"github.com/colstore/colstore/internal/users"
)

const (
	defaultMaxBufferSize = 4096
	defaultIOTimeout     = 5 * time.Second
)

type service interface {
	Put(userID string, columns table.ColumnFamilyData) (users.UserRecord, error)
	Get(userID string) (users.UserRecord, error)
	Versions(userID string) []users.UserRecord
	AsOf(userID string, ts int64) (users.UserRecord, error)
	Scan(prefix string) []users.UserRecord
	Delete(userID string) (users.UserRecord, bool)
	BatchPut(rows []table.RowInput) ([]users.UserRecord, error)
	Create(userID, name, email string, extra users.Extra) (users.UserRecord, error)
	Update(userID, name, email string) (users.UserRecord, error)
}

type Manager struct {
	service       service
	maxBufferSize int
	ioTimeout     time.Duration
}

type Config struct {
	Service service
	// MaxBufferSize is the largest request Handle reads from a connection.
	MaxBufferSize int
	// IOTimeout bounds reading the request and writing the response of one connection.
	IOTimeout time.Duration
}

func (c *Config) validate() error {
	var errGrp []error
	if c.Service == nil {
		errGrp = append(errGrp, errors.New("service cannot be nil"))
	}
	if c.MaxBufferSize < 0 {
		errGrp = append(errGrp, errors.New("max buffer size cannot be negative"))
	}
	if c.IOTimeout < 0 {
		errGrp = append(errGrp, errors.New("io timeout cannot be negative"))
	}
	return errors.Join(errGrp...)
}

// New creates a new operations manager
func New(cfg *Config) (*Manager, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	maxBufferSize := cfg.MaxBufferSize
	if maxBufferSize == 0 {
		maxBufferSize = defaultMaxBufferSize
	}

	ioTimeout := cfg.IOTimeout
	if ioTimeout == 0 {
		ioTimeout = defaultIOTimeout
	}

	return &Manager{
		service:       cfg.Service,
		maxBufferSize: maxBufferSize,
		ioTimeout:     ioTimeout,
	}, nil
}
