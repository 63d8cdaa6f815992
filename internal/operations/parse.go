package operations

import (
	"net/url"
	"strings"
)

type argument struct {
	name  string
	value string
}

// parseArgs splits a query into its name=value arguments, unescaping every value. Argument
// order is preserved.
func parseArgs(input string) ([]argument, error) {
	parts := strings.Fields(input)
	args := make([]argument, 0, len(parts))

	for _, part := range parts {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			return nil, newError(errInvalidFormat, "expected name=value, got: %s", part)
		}

		value, err := url.QueryUnescape(kv[1])
		if err != nil {
			return nil, newError(errInvalidFormat, "failed to decode value of %s: %s", kv[0], err)
		}

		args = append(args, argument{
			name:  strings.TrimLeft(kv[0], "-"),
			value: value,
		})
	}

	return args, nil
}
