package service

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/randkit/pcg"
)

func testServer(t *testing.T, cfg *Config) (*httptest.Server, *websocket.Conn) {
	t.Helper()

	if cfg == nil {
		cfg = DefaultConfig()
	}
	logger := log.New(io.Discard)
	ts := httptest.NewServer(NewServer(cfg, logger).Handler())
	t.Cleanup(ts.Close)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/draws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return ts, conn
}

func roundTrip(t *testing.T, conn *websocket.Conn, req DrawRequest) DrawResponse {
	t.Helper()
	require.NoError(t, conn.WriteJSON(req))
	var resp DrawResponse
	require.NoError(t, conn.ReadJSON(&resp))
	return resp
}

func TestSeededDrawsAreReproducible(t *testing.T) {
	seed := uint64(12345)
	_, conn := testServer(t, nil)

	resp := roundTrip(t, conn, DrawRequest{Op: "u32", N: 5, Seed: &seed, Seq: 1})
	require.Empty(t, resp.Error)
	require.Len(t, resp.Values, 5)

	g := pcg.New(12345, 1)
	for i, v := range resp.Values {
		// JSON numbers decode as float64.
		require.Equal(t, float64(g.Uint32()), v, "draw %d", i)
	}
}

func TestProfileDraws(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Profiles = []ProfileConfig{{Name: "replay", Seed: 42, Seq: 7}}
	_, conn := testServer(t, cfg)

	resp := roundTrip(t, conn, DrawRequest{Op: "uuid", Profile: "replay"})
	require.Empty(t, resp.Error)
	require.Len(t, resp.Values, 1)
	assert.Equal(t, pcg.New(42, 7).UUID(), resp.Values[0])
}

func TestUnseededDraws(t *testing.T) {
	_, conn := testServer(t, nil)

	resp := roundTrip(t, conn, DrawRequest{Op: "int", N: 100, Min: 1, Max: 6})
	require.Empty(t, resp.Error)
	require.Len(t, resp.Values, 100)
	for _, v := range resp.Values {
		f := v.(float64)
		assert.GreaterOrEqual(t, f, 1.0)
		assert.LessOrEqual(t, f, 6.0)
	}
}

func TestStringAndBytesOps(t *testing.T) {
	seed := uint64(9)
	_, conn := testServer(t, nil)

	resp := roundTrip(t, conn, DrawRequest{Op: "string", Len: 12, Seed: &seed})
	require.Empty(t, resp.Error)
	assert.Equal(t, pcg.New(9, 0).Alphanumeric(12), resp.Values[0])

	resp = roundTrip(t, conn, DrawRequest{Op: "bytes", Len: 8, Seed: &seed})
	require.Empty(t, resp.Error)
	require.Len(t, resp.Values, 1)
	assert.Len(t, resp.Values[0], 16) // 8 bytes hex-encoded
}

func TestUnknownOp(t *testing.T) {
	_, conn := testServer(t, nil)
	resp := roundTrip(t, conn, DrawRequest{Op: "quantum"})
	assert.Contains(t, resp.Error, "unknown op")
}

func TestUnknownProfile(t *testing.T) {
	_, conn := testServer(t, nil)
	resp := roundTrip(t, conn, DrawRequest{Op: "u32", Profile: "nope"})
	assert.Contains(t, resp.Error, "unknown profile")
}

func TestBatchLimit(t *testing.T) {
	_, conn := testServer(t, nil)
	resp := roundTrip(t, conn, DrawRequest{Op: "u32", N: maxBatch + 1})
	assert.Contains(t, resp.Error, "batch")
}

func TestConnectionSurvivesErrors(t *testing.T) {
	// A bad request must not tear down the connection.
	_, conn := testServer(t, nil)
	resp := roundTrip(t, conn, DrawRequest{Op: "bogus"})
	require.NotEmpty(t, resp.Error)

	resp = roundTrip(t, conn, DrawRequest{Op: "u32"})
	require.Empty(t, resp.Error)
	require.Len(t, resp.Values, 1)
}

func TestHealth(t *testing.T) {
	ts, _ := testServer(t, nil)
	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestEvaluateGaussianDefaults(t *testing.T) {
	s := NewServer(DefaultConfig(), log.New(io.Discard))
	seed := uint64(3)
	resp := s.evaluate(DrawRequest{Op: "gaussian", Seed: &seed})
	require.Empty(t, resp.Error)
	require.Len(t, resp.Values, 1)
	assert.Equal(t, pcg.New(3, 0).Gaussian(0, 1), resp.Values[0])
}

func TestResponseMarshals(t *testing.T) {
	resp := DrawResponse{Op: "u32", Values: []any{uint32(1)}}
	b, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"op":"u32"`)
}
