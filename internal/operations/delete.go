package operations

import "github.com/colstore/colstore/internal/users"

type deleteResult struct {
	Existed     bool              `json:"existed"`
	DeletedUser *users.UserRecord `json:"deletedUser,omitempty"`
}

// delete removes the whole row and returns the newest version it held. Deleting an unknown row is
// not an error.
func (m *Manager) delete(query string) (deleteResult, error) {
	rowKey, err := parseKeyOnly(query)
	if err != nil {
		return deleteResult{}, err
	}

	deleted, existed := m.service.Delete(rowKey)
	if !existed {
		return deleteResult{}, nil
	}
	return deleteResult{
		Existed:     true,
		DeletedUser: &deleted,
	}, nil
}

func parseKeyOnly(input string) (string, error) {
	args, err := parseArgs(input)
	if err != nil {
		return "", err
	}

	rowKey := ""
	for _, arg := range args {
		switch arg.name {
		case "key":
			rowKey = arg.value
		default:
			return "", newError(errUnknownParameter, "%s", arg.name)
		}
	}

	if rowKey == "" {
		return "", newError(errMissingKey, "delete requires key")
	}
	return rowKey, nil
}
