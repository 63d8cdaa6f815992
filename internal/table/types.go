package table

import (
	"time"
)

// ColumnFamilyData maps column families to their qualifiers and values:
//
// Example:
//
//	ColumnFamilyData{
//	  "info": {
//	    "name": "Ada",
//	    "age":  "36",
//	  },
//	  "contact": {
//	    "email": "ada@example.com",
//	  },
//	}
//
// There is no declared schema, any family or qualifier name is accepted.
type ColumnFamilyData map[string]map[string]string

// Clone returns a deep copy of the column data. A nil receiver clones to an empty map.
func (c ColumnFamilyData) Clone() ColumnFamilyData {
	out := make(ColumnFamilyData, len(c))
	for family, qualifiers := range c {
		q := make(map[string]string, len(qualifiers))
		for name, value := range qualifiers {
			q[name] = value
		}
		out[family] = q
	}
	return out
}

// Value returns the value stored at family:qualifier.
func (c ColumnFamilyData) Value(family, qualifier string) (string, bool) {
	qualifiers, ok := c[family]
	if !ok {
		return "", false
	}
	v, ok := qualifiers[qualifier]
	return v, ok
}

// RowVersion is one immutable, timestamped snapshot of a row. Writes never modify a RowVersion,
// they create a new one.
type RowVersion struct {
	RowKey  string           `json:"rowKey"`
	Columns ColumnFamilyData `json:"columns"`
	// WriteTimestamp is assigned by the store, in milliseconds since the epoch.
	WriteTimestamp int64 `json:"writeTimestamp"`
}

// Clone returns a copy of the version that shares no memory with the receiver.
func (v RowVersion) Clone() RowVersion {
	return RowVersion{
		RowKey:         v.RowKey,
		Columns:        v.Columns.Clone(),
		WriteTimestamp: v.WriteTimestamp,
	}
}

// WrittenAt returns the write timestamp as a time.Time.
func (v RowVersion) WrittenAt() time.Time {
	return time.UnixMilli(v.WriteTimestamp)
}

// RowInput is a single row of a batch write.
type RowInput struct {
	RowKey  string           `json:"rowKey"`
	Columns ColumnFamilyData `json:"columns"`
}
