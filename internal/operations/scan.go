package operations

import (
	"github.com/colstore/colstore/internal/users"
)

func (m *Manager) scan(query string) ([]users.UserRecord, error) {
	args, err := parseArgs(query)
	if err != nil {
		return nil, err
	}

	prefix := ""
	for _, arg := range args {
		switch arg.name {
		case "prefix":
			prefix = arg.value
		default:
			return nil, newError(errUnknownParameter, "%s", arg.name)
		}
	}

	return m.service.Scan(prefix), nil
}
