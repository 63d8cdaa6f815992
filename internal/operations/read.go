package operations

import (
	"strconv"
)

// readQuery are the parameters for any supported read query
type readQuery struct {
	rowKey   string
	versions bool
	asOf     int64 // milliseconds since the epoch, 0 when not set
}

func (m *Manager) read(query string) (any, error) {
	parsed, err := parseRead(query)
	if err != nil {
		return nil, err
	}

	switch {
	case parsed.versions:
		return m.service.Versions(parsed.rowKey), nil
	case parsed.asOf > 0:
		return m.service.AsOf(parsed.rowKey, parsed.asOf)
	default:
		return m.service.Get(parsed.rowKey)
	}
}

// parseRead parses `key=K [versions=true | asof=<ms>]`.
func parseRead(input string) (*readQuery, error) {
	args, err := parseArgs(input)
	if err != nil {
		return nil, err
	}

	parsed := &readQuery{}
	for _, arg := range args {
		switch arg.name {
		case "key":
			parsed.rowKey = arg.value
		case "versions":
			b, err := strconv.ParseBool(arg.value)
			if err != nil {
				return nil, newError(errInvalidFormat, "versions must be true or false. received %s",
					arg.value)
			}
			parsed.versions = b
		case "asof":
			ts, err := strconv.ParseInt(arg.value, 10, 64)
			if err != nil || ts <= 0 {
				return nil, newError(errInvalidFormat,
					"asof must be a positive unix timestamp in milliseconds. received %s", arg.value)
			}
			parsed.asOf = ts
		default:
			return nil, newError(errUnknownParameter, "%s", arg.name)
		}
	}

	if parsed.rowKey == "" {
		return nil, newError(errMissingKey, "read requires key")
	}
	if parsed.versions && parsed.asOf > 0 {
		return nil, newError(errInvalidFormat, "versions and asof cannot be combined")
	}

	return parsed, nil
}
