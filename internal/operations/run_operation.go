package operations

import (
	"encoding/json"
	"github.com/colstore/colstore/internal/table"
)

// Run accepts a buffer, decodes it into an operation and its arguments and returns the JSON
// response.
func (m *Manager) Run(buf []byte) ([]byte, error) {
	op, query := table.Decode(buf)
	if op == table.OperationUnknown {
		return nil, errUnknownOperation
	}
	// SCAN is the only operation without required arguments
	if len(query) == 0 && op != table.OperationScan {
		return nil, errEmptyQuery
	}

	var (
		result any
		err    error
	)

	switch op {
	case table.OperationWrite:
		result, err = m.write(string(query))
	case table.OperationRead:
		result, err = m.read(string(query))
	case table.OperationScan:
		result, err = m.scan(string(query))
	case table.OperationDelete:
		result, err = m.delete(string(query))
	case table.OperationBatch:
		result, err = m.batch(string(query))
	case table.OperationCreate:
		result, err = m.create(string(query))
	case table.OperationUpdate:
		result, err = m.update(string(query))
	}
	if err != nil {
		return nil, err
	}

	return json.Marshal(result)
}
