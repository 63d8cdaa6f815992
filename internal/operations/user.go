package operations

import (
	"github.com/colstore/colstore/internal/users"
)

type userQuery struct {
	userID string
	name   string
	email  string
	extra  users.Extra
}

// create parses `key=K name=N email=E [age=A] [phone=P]`.
func (m *Manager) create(query string) (users.UserRecord, error) {
	parsed, err := parseUser(query, true)
	if err != nil {
		return users.UserRecord{}, err
	}
	return m.service.Create(parsed.userID, parsed.name, parsed.email, parsed.extra)
}

// update parses `key=K [name=N] [email=E]`.
func (m *Manager) update(query string) (users.UserRecord, error) {
	parsed, err := parseUser(query, false)
	if err != nil {
		return users.UserRecord{}, err
	}
	return m.service.Update(parsed.userID, parsed.name, parsed.email)
}

func parseUser(input string, allowExtra bool) (*userQuery, error) {
	args, err := parseArgs(input)
	if err != nil {
		return nil, err
	}

	parsed := &userQuery{}
	for _, arg := range args {
		switch {
		case arg.name == "key":
			parsed.userID = arg.value
		case arg.name == "name":
			parsed.name = arg.value
		case arg.name == "email":
			parsed.email = arg.value
		case arg.name == "age" && allowExtra:
			parsed.extra.Age = arg.value
		case arg.name == "phone" && allowExtra:
			parsed.extra.Phone = arg.value
		default:
			return nil, newError(errUnknownParameter, "%s", arg.name)
		}
	}

	if parsed.userID == "" {
		return nil, newError(errMissingKey, "key is required")
	}
	return parsed, nil
}
