package operations

import (
	"github.com/colstore/colstore/internal/table"
	"github.com/colstore/colstore/internal/users"
	"strings"
)

const batchSeparator = ";"

// batch writes several rows in one request. Rows use the WRITE argument form and are separated
// by semicolons. Nothing is written if any row fails to parse.
func (m *Manager) batch(query string) ([]users.UserRecord, error) {
	rows, err := parseBatch(query)
	if err != nil {
		return nil, err
	}
	return m.service.BatchPut(rows)
}

func parseBatch(input string) ([]table.RowInput, error) {
	var rows []table.RowInput
	for i, segment := range strings.Split(input, batchSeparator) {
		if strings.TrimSpace(segment) == "" {
			continue
		}

		row, err := parseWrite(segment)
		if err != nil {
			return nil, newError(errInvalidFormat, "row %d: %s", i, err)
		}
		rows = append(rows, *row)
	}

	if len(rows) == 0 {
		return nil, newError(errInvalidFormat, "batch contains no rows")
	}
	return rows, nil
}
