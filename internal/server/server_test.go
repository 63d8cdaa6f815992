package server

import (
	"github.com/stretchr/testify/require"
	"io"
	"net"
	"testing"
	"time"
)

type echoHandler struct {
	block chan struct{}
}

func (h *echoHandler) Handle(conn net.Conn) {
	defer func() {
		_ = conn.Close()
	}()
	if h.block != nil {
		<-h.block
	}
	buf := make([]byte, 64)
	n, err := conn.Read(buf)
	if err != nil {
		return
	}
	_, _ = conn.Write(buf[:n])
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		cfg       *Config
		expectErr bool
	}{
		"missing handler": {
			cfg:       &Config{Address: "127.0.0.1"},
			expectErr: true,
		},
		"invalid port": {
			cfg:       &Config{Address: "127.0.0.1", Port: 70000, Handler: &echoHandler{}},
			expectErr: true,
		},
		"tls without certificate": {
			cfg:       &Config{Address: "127.0.0.1", Handler: &echoHandler{}, EnableTLS: true},
			expectErr: true,
		},
		"valid config": {
			cfg: &Config{Address: "127.0.0.1", Handler: &echoHandler{}},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			req := require.New(t)

			got, err := New(tc.cfg)
			if tc.expectErr {
				req.Error(err)
				req.Nil(got)
				return
			}

			req.NoError(err)
			req.Equal(defaultMaxConnections, got.maxConnections)
			req.NoError(got.Stop())
		})
	}
}

func TestServer_Name(t *testing.T) {
	s := &Server{}
	require.Equal(t, "Colstore TCP Server", s.Name())
}

func TestServer_StartStop(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	s, err := New(&Config{Address: "127.0.0.1", Handler: &echoHandler{}})
	req.NoError(err)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Start()
	}()

	conn, err := net.Dial("tcp", s.Addr().String())
	req.NoError(err)
	_, err = conn.Write([]byte("SCAN"))
	req.NoError(err)

	got, err := io.ReadAll(conn)
	req.NoError(err)
	req.Equal("SCAN", string(got))
	req.NoError(conn.Close())

	req.NoError(s.Stop())
	select {
	case err := <-errCh:
		req.NoError(err)
	case <-time.After(time.Second):
		t.Fatal("Start did not return after Stop")
	}
}

func TestServer_MaxConnections(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	h := &echoHandler{block: make(chan struct{})}
	s, err := New(&Config{Address: "127.0.0.1", Handler: h, MaxConnections: 1})
	req.NoError(err)
	go func() {
		_ = s.Start()
	}()

	first, err := net.Dial("tcp", s.Addr().String())
	req.NoError(err)

	req.Eventually(func() bool {
		return len(s.connSemaphore) == 1
	}, time.Second, 5*time.Millisecond)

	second, err := net.Dial("tcp", s.Addr().String())
	req.NoError(err)
	defer func() {
		_ = second.Close()
	}()

	// the rejected connection is closed by the server
	_ = second.SetReadDeadline(time.Now().Add(time.Second))
	buf := make([]byte, 1)
	_, err = second.Read(buf)
	req.Error(err)

	req.NoError(first.Close())
	close(h.block)
	req.NoError(s.Stop())
}
