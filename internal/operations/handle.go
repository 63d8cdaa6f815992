package operations

import (
	"bufio"
	"bytes"
	"errors"
	"github.com/rs/zerolog/log"
	"io"
	"net"
	"time"
)

// Handle implements the server.handler interface. It reads one request from the connection,
// runs it and writes the response, or `ERROR: <message>` when the request fails.
//
// A request ends at the first newline or when the client closes its side of the connection. A
// client that sends nothing within the io timeout is disconnected.
func (m *Manager) Handle(conn net.Conn) {
	defer func() {
		if err := conn.Close(); err != nil {
			log.Debug().Err(err).Msg("error closing connection")
		}
	}()

	var response []byte
	buf, err := m.readConn(conn)
	switch {
	case errors.Is(err, errRequestTooLarge):
		log.Debug().Err(err).Msg("read error")
		response = []byte("ERROR: " + err.Error())
	case err != nil:
		log.Debug().Err(err).Msg("read error")
		return
	default:
		response, err = m.Run(buf)
		if err != nil {
			log.Debug().Err(err).Msg("operation failed")
			response = []byte("ERROR: " + err.Error())
		}
	}

	if err = conn.SetWriteDeadline(time.Now().Add(m.ioTimeout)); err != nil {
		log.Debug().Err(err).Msg("error setting write deadline")
	}
	if _, err = conn.Write(response); err != nil {
		log.Error().Err(err).Msg("error writing response")
	}
}

// readConn reads one request, which may arrive in several segments, up to maxBufferSize bytes.
func (m *Manager) readConn(conn net.Conn) ([]byte, error) {
	if err := conn.SetReadDeadline(time.Now().Add(m.ioTimeout)); err != nil {
		return nil, err
	}

	// one byte over the limit tells a full-size request apart from a larger one
	reader := bufio.NewReader(io.LimitReader(conn, int64(m.maxBufferSize)+1))
	line, err := reader.ReadBytes('\n')
	if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
		return nil, err
	}

	request := bytes.TrimRight(line, "\r\n")
	if len(request) > m.maxBufferSize {
		return nil, newError(errRequestTooLarge, "limit is %d bytes", m.maxBufferSize)
	}
	return request, nil
}
