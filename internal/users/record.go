package users

import (
	"github.com/colstore/colstore/internal/table"
)

const (
	familyInfo    = "info"
	familyContact = "contact"

	qualifierName      = "name"
	qualifierAge       = "age"
	qualifierCreatedAt = "created_at"
	qualifierUpdatedAt = "updated_at"
	qualifierEmail     = "email"
	qualifierPhone     = "phone"
)

// UserRecord is the user view of one row version. It is derived on every read and never stored.
type UserRecord struct {
	UserID    string  `json:"userId"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Age       *string `json:"age,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	CreatedAt *string `json:"created_at,omitempty"`
	UpdatedAt *string `json:"updated_at,omitempty"`
	// Timestamp is the write timestamp of the projected version in milliseconds since the epoch.
	Timestamp int64 `json:"timestamp"`
}

// Project maps a row version onto a UserRecord. Name and email default to "" when missing, the
// other fields stay nil.
func Project(v table.RowVersion) UserRecord {
	name, _ := v.Columns.Value(familyInfo, qualifierName)
	email, _ := v.Columns.Value(familyContact, qualifierEmail)

	return UserRecord{
		UserID:    v.RowKey,
		Name:      name,
		Email:     email,
		Age:       optional(v.Columns, familyInfo, qualifierAge),
		Phone:     optional(v.Columns, familyContact, qualifierPhone),
		CreatedAt: optional(v.Columns, familyInfo, qualifierCreatedAt),
		UpdatedAt: optional(v.Columns, familyInfo, qualifierUpdatedAt),
		Timestamp: v.WriteTimestamp,
	}
}

// ProjectAll projects every version, keeping their order.
func ProjectAll(versions []table.RowVersion) []UserRecord {
	out := make([]UserRecord, 0, len(versions))
	for _, v := range versions {
		out = append(out, Project(v))
	}
	return out
}

func optional(c table.ColumnFamilyData, family, qualifier string) *string {
	v, ok := c.Value(family, qualifier)
	if !ok {
		return nil
	}
	return &v
}
