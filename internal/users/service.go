// Package users is the request-facing layer over the store. It validates input, turns absent
// rows into ErrNotFound and returns UserRecord projections.
package users

import (
	"errors"
	"github.com/colstore/colstore/internal/table"
	"github.com/rs/zerolog/log"
	"time"
)

//go:generate mockgen -destination=store_mock.go -package=users -source=service.go

type storer interface {
	Put(rowKey string, columns table.ColumnFamilyData) (table.RowVersion, error)
	BatchPut(rows []table.RowInput) ([]table.RowVersion, error)
	Get(rowKey string) (table.RowVersion, bool)
	GetVersions(rowKey string) []table.RowVersion
	GetAsOf(rowKey string, ts int64) (table.RowVersion, bool)
	Scan() []table.RowVersion
	ScanPrefix(prefix string) []table.RowVersion
	Remove(rowKey string) (table.RowVersion, bool)
	ClearAll()
}

type Service struct {
	store storer
	now   func() time.Time
}

type Config struct {
	Store storer
	// Now is used for the created_at and updated_at qualifiers. Defaults to time.Now.
	Now func() time.Time
}

func (c *Config) validate() error {
	var errGrp []error
	if c.Store == nil {
		errGrp = append(errGrp, errors.New("store cannot be nil"))
	}
	return errors.Join(errGrp...)
}

func New(cfg *Config) (*Service, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Service{
		store: cfg.Store,
		now:   now,
	}, nil
}

// Extra holds the optional fields accepted when creating a user.
type Extra struct {
	Age   string
	Phone string
}

// Put writes columns as the new version of a user row.
func (s *Service) Put(userID string, columns table.ColumnFamilyData) (UserRecord, error) {
	if userID == "" {
		return UserRecord{}, newError(ErrInvalidArgument, "userId is required")
	}

	v, err := s.store.Put(userID, columns)
	if err != nil {
		return UserRecord{}, err
	}
	return Project(v), nil
}

// Get returns the newest version of a user.
func (s *Service) Get(userID string) (UserRecord, error) {
	v, ok := s.store.Get(userID)
	if !ok {
		return UserRecord{}, newError(ErrNotFound, "%s", userID)
	}
	return Project(v), nil
}

// Versions returns every retained version of a user, newest first.
func (s *Service) Versions(userID string) []UserRecord {
	return ProjectAll(s.store.GetVersions(userID))
}

// AsOf returns the user as it was at ts, in milliseconds since the epoch.
func (s *Service) AsOf(userID string, ts int64) (UserRecord, error) {
	v, ok := s.store.GetAsOf(userID, ts)
	if !ok {
		return UserRecord{}, newError(ErrNotFound, "%s as of %d", userID, ts)
	}
	return Project(v), nil
}

// Scan returns the newest version of every user whose id starts with prefix. An empty prefix
// returns every user.
func (s *Service) Scan(prefix string) []UserRecord {
	if prefix == "" {
		return ProjectAll(s.store.Scan())
	}
	return ProjectAll(s.store.ScanPrefix(prefix))
}

// Delete removes a user and all of its versions. It returns the newest version the user had and
// whether the user existed.
func (s *Service) Delete(userID string) (UserRecord, bool) {
	removed, existed := s.store.Remove(userID)
	if !existed {
		return UserRecord{}, false
	}
	return Project(removed), true
}

// BatchPut writes every row in order. A row without a user id rejects the whole batch.
func (s *Service) BatchPut(rows []table.RowInput) ([]UserRecord, error) {
	for i, row := range rows {
		if row.RowKey == "" {
			return nil, newError(ErrInvalidArgument, "row %d: userId is required", i)
		}
	}

	versions, err := s.store.BatchPut(rows)
	if err != nil {
		return nil, err
	}
	return ProjectAll(versions), nil
}

// ClearAll removes every user.
func (s *Service) ClearAll() {
	s.store.ClearAll()
}

// Create writes the first version of a user. The id, name and email are required.
func (s *Service) Create(userID, name, email string, extra Extra) (UserRecord, error) {
	var errGrp []error
	if userID == "" {
		errGrp = append(errGrp, newError(ErrInvalidArgument, "userId is required"))
	}
	if name == "" {
		errGrp = append(errGrp, newError(ErrInvalidArgument, "name is required"))
	}
	if email == "" {
		errGrp = append(errGrp, newError(ErrInvalidArgument, "email is required"))
	}
	if err := errors.Join(errGrp...); err != nil {
		return UserRecord{}, err
	}

	info := map[string]string{
		qualifierName:      name,
		qualifierCreatedAt: s.timestamp(),
	}
	if extra.Age != "" {
		info[qualifierAge] = extra.Age
	}
	contact := map[string]string{
		qualifierEmail: email,
	}
	if extra.Phone != "" {
		contact[qualifierPhone] = extra.Phone
	}

	rec, err := s.Put(userID, table.ColumnFamilyData{
		familyInfo:    info,
		familyContact: contact,
	})
	if err != nil {
		return UserRecord{}, err
	}

	log.Debug().Str("userId", userID).Msg("user created")
	return rec, nil
}

// Update writes a new version of an existing user. An empty name or email keeps the current
// value. Like every put the new version replaces the row, so fields other than name and email
// are not carried over.
func (s *Service) Update(userID, name, email string) (UserRecord, error) {
	if userID == "" {
		return UserRecord{}, newError(ErrInvalidArgument, "userId is required")
	}

	existing, err := s.Get(userID)
	if err != nil {
		return UserRecord{}, err
	}

	if name == "" {
		name = existing.Name
	}
	if email == "" {
		email = existing.Email
	}

	rec, err := s.Put(userID, table.ColumnFamilyData{
		familyInfo: {
			qualifierName:      name,
			qualifierUpdatedAt: s.timestamp(),
		},
		familyContact: {
			qualifierEmail: email,
		},
	})
	if err != nil {
		return UserRecord{}, err
	}

	log.Debug().Str("userId", userID).Msg("user updated")
	return rec, nil
}

func (s *Service) timestamp() string {
	return s.now().UTC().Format(time.RFC3339Nano)
}
