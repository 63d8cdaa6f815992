package table

import (
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func TestColumnFamilyData_Clone(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	original := ColumnFamilyData{
		"info":    {"name": "Ada"},
		"contact": {"email": "ada@example.com"},
	}
	clone := original.Clone()
	req.Equal(original, clone)

	clone["info"]["name"] = "Grace"
	delete(clone, "contact")

	req.Equal("Ada", original["info"]["name"], "clone must not share qualifier maps")
	req.Contains(original, "contact", "clone must not share the family map")

	var empty ColumnFamilyData
	req.NotNil(empty.Clone())
	req.Empty(empty.Clone())
}

func TestColumnFamilyData_Value(t *testing.T) {
	t.Parallel()
	data := ColumnFamilyData{"info": {"name": "Ada"}}

	tests := map[string]struct {
		family, qualifier string
		want              string
		found             bool
	}{
		"present":           {family: "info", qualifier: "name", want: "Ada", found: true},
		"missing qualifier": {family: "info", qualifier: "age"},
		"missing family":    {family: "contact", qualifier: "email"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, found := data.Value(tc.family, tc.qualifier)
			require.Equal(t, tc.want, got)
			require.Equal(t, tc.found, found)
		})
	}
}

func TestRowVersion_Clone(t *testing.T) {
	t.Parallel()
	now := time.Now()
	v := RowVersion{
		RowKey:         "u1",
		Columns:        ColumnFamilyData{"info": {"name": "Ada"}},
		WriteTimestamp: now.UnixMilli(),
	}

	c := v.Clone()
	c.Columns["info"]["name"] = "changed"

	require.Equal(t, "Ada", v.Columns["info"]["name"])
	require.Equal(t, v.WriteTimestamp, c.WriteTimestamp)
	require.Equal(t, now.UnixMilli(), v.WrittenAt().UnixMilli())
}
