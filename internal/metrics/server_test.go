package metrics

import (
	"github.com/VictoriaMetrics/metrics"
	"github.com/stretchr/testify/require"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		cfg       *Config
		expectErr bool
	}{
		"missing address": {
			cfg:       &Config{},
			expectErr: true,
		},
		"invalid port": {
			cfg:       &Config{Address: "127.0.0.1", Port: -1},
			expectErr: true,
		},
		"valid config": {
			cfg: &Config{Address: "127.0.0.1"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := New(tc.cfg)
			if tc.expectErr {
				require.Error(t, err)
				require.Nil(t, got)
				return
			}
			require.NoError(t, err)
			require.Equal(t, "Metrics Server", got.Name())
			require.NoError(t, got.listener.Close())
		})
	}
}

func TestHandler(t *testing.T) {
	t.Parallel()

	set := metrics.NewSet()
	set.NewCounter("colstore_test_total").Add(3)

	for _, debug := range []bool{false, true} {
		rec := httptest.NewRecorder()
		newHandler([]*metrics.Set{set}, debug).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "colstore_test_total 3")
		require.Contains(t, rec.Body.String(), "go_goroutines")
	}

	rec := httptest.NewRecorder()
	newHandler(nil, false).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/metrics", nil))
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestServer_StartStop(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	s, err := New(&Config{Address: "127.0.0.1"})
	req.NoError(err)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Start()
	}()

	resp, err := http.Get("http://" + s.Addr().String() + "/healthz")
	req.NoError(err)
	body, err := io.ReadAll(resp.Body)
	req.NoError(err)
	req.NoError(resp.Body.Close())
	req.Equal("ok", string(body))

	req.NoError(s.Stop())
	select {
	case err := <-errCh:
		req.NoError(err)
	case <-time.After(time.Second):
		t.Fatal("Start did not return after Stop")
	}
}
