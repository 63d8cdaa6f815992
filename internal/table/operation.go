package table

import (
	"bytes"
)

// Operation is a request verb understood by the text query protocol and carried on change events.
type Operation int

const (
	OperationUnknown Operation = iota
	OperationRead
	OperationWrite
	OperationDelete
	OperationScan
	OperationBatch
	OperationCreate
	OperationUpdate
)

var operationNames = map[Operation]string{
	OperationRead:   "READ",
	OperationWrite:  "WRITE",
	OperationDelete: "DELETE",
	OperationScan:   "SCAN",
	OperationBatch:  "BATCH",
	OperationCreate: "CREATE",
	OperationUpdate: "UPDATE",
}

// decodeOrder is fixed so Decode never depends on map iteration.
var decodeOrder = []Operation{
	OperationRead,
	OperationWrite,
	OperationDelete,
	OperationScan,
	OperationBatch,
	OperationCreate,
	OperationUpdate,
}

func (o Operation) String() string {
	if name, ok := operationNames[o]; ok {
		return name
	}
	return "UNKNOWN"
}

// Decode splits a buffer into its operation and payload. The verb must be upper case, start at
// the first byte and be followed by a single space or the end of the buffer.
func Decode(buf []byte) (Operation, []byte) {
	for _, op := range decodeOrder {
		verb := operationNames[op]
		if !bytes.HasPrefix(buf, []byte(verb)) {
			continue
		}

		rest := buf[len(verb):]
		if len(rest) == 0 {
			return op, rest
		}
		if rest[0] == ' ' {
			return op, rest[1:]
		}
	}

	return OperationUnknown, nil
}
