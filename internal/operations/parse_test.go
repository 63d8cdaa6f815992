package operations

import (
	"github.com/colstore/colstore/internal/table"
	"github.com/colstore/colstore/internal/users"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestParseWrite(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input       string
		expected    *table.RowInput
		expectedErr error
	}{
		"single column": {
			input: "key=u1 column=info:name value=Alice",
			expected: &table.RowInput{
				RowKey:  "u1",
				Columns: table.ColumnFamilyData{"info": {"name": "Alice"}},
			},
		},
		"multiple families with escaped values": {
			input: "key=u1 column=info:name value=Alice%20Smith column=contact:email value=a%40x",
			expected: &table.RowInput{
				RowKey: "u1",
				Columns: table.ColumnFamilyData{
					"info":    {"name": "Alice Smith"},
					"contact": {"email": "a@x"},
				},
			},
		},
		"no columns is an empty snapshot": {
			input: "key=u1",
			expected: &table.RowInput{
				RowKey:  "u1",
				Columns: table.ColumnFamilyData{},
			},
		},
		"missing key": {
			input:       "column=info:name value=Alice",
			expectedErr: errMissingKey,
		},
		"unpaired column": {
			input:       "key=u1 column=info:name",
			expectedErr: errInvalidFormat,
		},
		"column without qualifier": {
			input:       "key=u1 column=info value=x",
			expectedErr: errInvalidFormat,
		},
		"not name=value": {
			input:       "key=u1 info",
			expectedErr: errInvalidFormat,
		},
		"bad escape": {
			input:       "key=u1 column=info:name value=%zz",
			expectedErr: errInvalidFormat,
		},
		"unknown parameter": {
			input:       "key=u1 pizza=pepperoni",
			expectedErr: errUnknownParameter,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			req := require.New(t)

			got, err := parseWrite(tc.input)
			if tc.expectedErr != nil {
				req.ErrorIs(err, tc.expectedErr)
				req.Nil(got)
				return
			}
			req.NoError(err)
			req.Equal(tc.expected, got)
		})
	}
}

func TestParseRead(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input       string
		expected    *readQuery
		expectedErr error
	}{
		"latest": {
			input:    "key=u1",
			expected: &readQuery{rowKey: "u1"},
		},
		"versions": {
			input:    "key=u1 versions=true",
			expected: &readQuery{rowKey: "u1", versions: true},
		},
		"as of": {
			input:    "key=u1 asof=1700000000000",
			expected: &readQuery{rowKey: "u1", asOf: 1700000000000},
		},
		"invalid versions": {
			input:       "key=u1 versions=maybe",
			expectedErr: errInvalidFormat,
		},
		"invalid asof": {
			input:       "key=u1 asof=yesterday",
			expectedErr: errInvalidFormat,
		},
		"negative asof": {
			input:       "key=u1 asof=-5",
			expectedErr: errInvalidFormat,
		},
		"versions with asof": {
			input:       "key=u1 versions=true asof=10",
			expectedErr: errInvalidFormat,
		},
		"missing key": {
			input:       "versions=true",
			expectedErr: errMissingKey,
		},
		"unknown parameter": {
			input:       "key=u1 family=info",
			expectedErr: errUnknownParameter,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			req := require.New(t)

			got, err := parseRead(tc.input)
			if tc.expectedErr != nil {
				req.ErrorIs(err, tc.expectedErr)
				req.Nil(got)
				return
			}
			req.NoError(err)
			req.Equal(tc.expected, got)
		})
	}
}

func TestParseBatch(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input       string
		wantKeys    []string
		expectedErr error
	}{
		"two rows": {
			input:    "key=a column=info:name value=A; key=b column=info:name value=B",
			wantKeys: []string{"a", "b"},
		},
		"trailing separator": {
			input:    "key=a column=info:name value=A;",
			wantKeys: []string{"a"},
		},
		"escaped separator stays in the value": {
			input:    "key=a column=info:name value=x%3By",
			wantKeys: []string{"a"},
		},
		"bad row rejects everything": {
			input:       "key=a column=info:name value=A; column=info:name value=B",
			expectedErr: errInvalidFormat,
		},
		"no rows": {
			input:       " ; ",
			expectedErr: errInvalidFormat,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			req := require.New(t)

			rows, err := parseBatch(tc.input)
			if tc.expectedErr != nil {
				req.ErrorIs(err, tc.expectedErr)
				return
			}
			req.NoError(err)
			req.Len(rows, len(tc.wantKeys))
			for i, key := range tc.wantKeys {
				req.Equal(key, rows[i].RowKey)
			}
		})
	}
}

func TestParseUser(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input       string
		allowExtra  bool
		expected    *userQuery
		expectedErr error
	}{
		"create with extras": {
			input:      "key=u1 name=Alice email=a%40x age=30 phone=555",
			allowExtra: true,
			expected: &userQuery{
				userID: "u1",
				name:   "Alice",
				email:  "a@x",
				extra:  users.Extra{Age: "30", Phone: "555"},
			},
		},
		"update rejects extras": {
			input:       "key=u1 age=30",
			expectedErr: errUnknownParameter,
		},
		"missing key": {
			input:       "name=Alice",
			allowExtra:  true,
			expectedErr: errMissingKey,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			req := require.New(t)

			got, err := parseUser(tc.input, tc.allowExtra)
			if tc.expectedErr != nil {
				req.ErrorIs(err, tc.expectedErr)
				return
			}
			req.NoError(err)
			req.Equal(tc.expected, got)
		})
	}
}
