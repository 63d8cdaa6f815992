package store

import (
	"github.com/colstore/colstore/internal/cdc_emitter"
	"github.com/colstore/colstore/internal/table"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"testing"
	"time"
)

func TestStore_Delete(t *testing.T) {
	t.Parallel()
	req := require.New(t)
	s := newTestStore(t)

	req.False(s.Delete("u1"))

	for i := 0; i < 3; i++ {
		_, err := s.Put("u1", user("Alice", "a@x"))
		req.NoError(err)
	}
	_, err := s.Put("u2", user("Bob", "b@x"))
	req.NoError(err)

	req.True(s.Delete("u1"))
	req.False(s.Delete("u1"))

	_, ok := s.Get("u1")
	req.False(ok)
	req.Empty(s.GetVersions("u1"))
	req.Len(s.Scan(), 1)

	// a new put after delete starts a fresh history
	_, err = s.Put("u1", user("Alice", "a@x"))
	req.NoError(err)
	req.Len(s.GetVersions("u1"), 1)
}

func TestStore_DeleteEmitsCDC(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	ctrl := gomock.NewController(t)
	cdc := NewMockemitter(ctrl)

	s, err := New(&Config{
		CDC: cdc,
		Now: steppingClock(time.UnixMilli(1_000), time.Millisecond),
	})
	req.NoError(err)

	gomock.InOrder(
		cdc.EXPECT().Emit(gomock.Any()).Do(func(p *cdc_emitter.CDCParams) {
			req.Equal(table.OperationWrite, p.Operation)
		}),
		cdc.EXPECT().Emit(gomock.Any()).Do(func(p *cdc_emitter.CDCParams) {
			req.Equal(table.OperationDelete, p.Operation)
			req.Equal("u1", p.RowKey)
			req.Nil(p.Version)
		}),
	)

	_, err = s.Put("u1", user("Alice", "a@x"))
	req.NoError(err)
	req.True(s.Delete("u1"))
	// deleting an unknown row emits nothing
	req.False(s.Delete("u1"))
}

func TestStore_Remove(t *testing.T) {
	t.Parallel()
	req := require.New(t)
	s := newTestStore(t)

	_, existed := s.Remove("u1")
	req.False(existed)

	_, err := s.Put("u1", user("Alice", "a@x"))
	req.NoError(err)
	latest, err := s.Put("u1", user("Alicia", "a@x"))
	req.NoError(err)

	removed, existed := s.Remove("u1")
	req.True(existed)
	req.Equal(latest, removed)
	req.Empty(s.GetVersions("u1"))

	// the returned version is a copy
	removed.Columns["info"]["name"] = "changed"
	req.Equal("Alicia", latest.Columns["info"]["name"])
}

func TestStore_ClearAll(t *testing.T) {
	t.Parallel()
	req := require.New(t)
	s := newTestStore(t)

	s.ClearAll()
	req.Empty(s.Scan())

	for _, key := range []string{"a", "b", "c"} {
		_, err := s.Put(key, user(key, key))
		req.NoError(err)
	}
	req.Equal(3, s.Len())

	s.ClearAll()
	req.Equal(0, s.Len())
	req.Empty(s.Scan())
	req.Empty(s.GetVersions("a"))

	_, err := s.Put("a", user("a", "a"))
	req.NoError(err)
	req.Len(s.Scan(), 1)
}
