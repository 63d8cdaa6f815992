package operations

import (
	"github.com/colstore/colstore/internal/table"
	"github.com/colstore/colstore/internal/users"
	"strings"
)

func (m *Manager) write(query string) (users.UserRecord, error) {
	row, err := parseWrite(query)
	if err != nil {
		return users.UserRecord{}, err
	}
	return m.service.Put(row.RowKey, row.Columns)
}

// parseWrite parses `key=K column=family:qualifier value=V ...`. Columns and values are paired
// in the order they appear.
func parseWrite(input string) (*table.RowInput, error) {
	args, err := parseArgs(input)
	if err != nil {
		return nil, err
	}

	row := &table.RowInput{
		Columns: table.ColumnFamilyData{},
	}
	var columns, values []string

	for _, arg := range args {
		switch arg.name {
		case "key":
			row.RowKey = arg.value
		case "column":
			columns = append(columns, arg.value)
		case "value":
			values = append(values, arg.value)
		default:
			return nil, newError(errUnknownParameter, "%s", arg.name)
		}
	}

	if row.RowKey == "" {
		return nil, newError(errMissingKey, "write requires key")
	}
	if len(columns) != len(values) {
		return nil, newError(errInvalidFormat,
			"number of columns (%d) doesn't match number of values (%d)", len(columns), len(values))
	}

	for i, column := range columns {
		family, qualifier, ok := strings.Cut(column, ":")
		if !ok || family == "" || qualifier == "" {
			return nil, newError(errInvalidFormat, "column must be family:qualifier, got: %s", column)
		}
		if _, exists := row.Columns[family]; !exists {
			row.Columns[family] = map[string]string{}
		}
		row.Columns[family][qualifier] = values[i]
	}

	return row, nil
}
