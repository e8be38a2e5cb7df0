// Package service exposes randkit draws over a small websocket endpoint.
// It is thin glue around package pcg: one JSON request per batch of draws,
// one JSON response. Seeded requests are reproducible; unseeded requests
// draw from the entropy-backed global pool.
package service

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	"github.com/lox/randkit/pcg"
)

// maxBatch bounds the number of values a single request may ask for.
const maxBatch = 10000

// DrawRequest is one client request. Op selects the operation; N is the
// batch size (default 1). Seed/Seq or Profile pin a deterministic
// generator for the request; when both are absent the draws come from the
// shared entropy-seeded pool.
type DrawRequest struct {
	Op      string  `json:"op"`
	N       int     `json:"n,omitempty"`
	Min     int32   `json:"min,omitempty"`
	Max     int32   `json:"max,omitempty"`
	MinF    float32 `json:"min_f,omitempty"`
	MaxF    float32 `json:"max_f,omitempty"`
	Len     int     `json:"len,omitempty"`
	Mean    float64 `json:"mean,omitempty"`
	StdDev  float64 `json:"stddev,omitempty"`
	Seed    *uint64 `json:"seed,omitempty"`
	Seq     uint64  `json:"seq,omitempty"`
	Profile string  `json:"profile,omitempty"`
}

// DrawResponse carries the values for one request, or an error message.
type DrawResponse struct {
	Op     string `json:"op"`
	Values []any  `json:"values,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Server is the websocket draw service.
type Server struct {
	cfg      *Config
	logger   *log.Logger
	upgrader websocket.Upgrader
	mux      *http.ServeMux
}

// NewServer creates a draw service for the given configuration.
func NewServer(cfg *Config, logger *log.Logger) *Server {
	s := &Server{
		cfg:    cfg,
		logger: logger.WithPrefix("service"),
		upgrader: websocket.Upgrader{
			CheckOrigin:     func(r *http.Request) bool { return true },
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		mux: http.NewServeMux(),
	}
	s.mux.HandleFunc("/draws", s.handleDraws)
	s.mux.HandleFunc("/health", s.handleHealth)
	return s
}

// Handler returns the HTTP handler, for embedding in tests or another mux.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Run serves until ctx is cancelled, then shuts down cleanly.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Listen)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.cfg.Listen, err)
	}

	srv := &http.Server{Handler: s.mux}
	s.logger.Info("Starting draw service", "addr", ln.Addr().String())

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-ctx.Done()
		return srv.Shutdown(context.Background())
	})
	g.Go(func() error {
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	return g.Wait()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "ok")
}

func (s *Server) handleDraws(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("Websocket upgrade failed", "error", err)
		return
	}
	defer func() {
		_ = conn.Close()
	}()

	s.logger.Debug("Client connected", "remote", conn.RemoteAddr())
	for {
		var req DrawRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Debug("Client read failed", "error", err)
			}
			return
		}
		resp := s.evaluate(req)
		if err := conn.WriteJSON(resp); err != nil {
			s.logger.Debug("Client write failed", "error", err)
			return
		}
	}
}

// evaluate runs one request. It never panics on bad input; malformed
// requests come back as an error response on the same connection.
func (s *Server) evaluate(req DrawRequest) DrawResponse {
	n := req.N
	if n <= 0 {
		n = 1
	}
	if n > maxBatch {
		return errResponse(req.Op, fmt.Sprintf("n exceeds maximum batch size %d", maxBatch))
	}

	gen, err := s.generator(req)
	if err != nil {
		return errResponse(req.Op, err.Error())
	}

	values := make([]any, 0, n)
	for i := 0; i < n; i++ {
		switch req.Op {
		case "u32":
			values = append(values, draw(gen, (*pcg.Gen).Uint32, pcg.Uint32))
		case "u64":
			values = append(values, draw(gen, (*pcg.Gen).Uint64, pcg.Uint64))
		case "f64":
			values = append(values, draw(gen, (*pcg.Gen).Float64, pcg.Float64))
		case "bool":
			values = append(values, draw(gen, (*pcg.Gen).Bool, pcg.Bool))
		case "int":
			if gen != nil {
				values = append(values, gen.Range(req.Min, req.Max))
			} else {
				values = append(values, pcg.Range(req.Min, req.Max))
			}
		case "float":
			if gen != nil {
				values = append(values, gen.RangeFloat(req.MinF, req.MaxF))
			} else {
				values = append(values, pcg.RangeFloat(req.MinF, req.MaxF))
			}
		case "gaussian":
			stddev := req.StdDev
			if stddev == 0 {
				stddev = 1
			}
			if gen != nil {
				values = append(values, gen.Gaussian(req.Mean, stddev))
			} else {
				values = append(values, pcg.Gaussian(req.Mean, stddev))
			}
		case "uuid":
			values = append(values, draw(gen, (*pcg.Gen).UUID, pcg.UUID))
		case "string":
			length := req.Len
			if length <= 0 {
				length = 16
			}
			if gen != nil {
				values = append(values, gen.Alphanumeric(length))
			} else {
				values = append(values, pcg.Alphanumeric(length))
			}
		case "bytes":
			length := req.Len
			if length <= 0 {
				length = 16
			}
			buf := make([]byte, length)
			if gen != nil {
				gen.Bytes(buf)
			} else {
				pcg.Bytes(buf)
			}
			values = append(values, hex.EncodeToString(buf))
		default:
			return errResponse(req.Op, fmt.Sprintf("unknown op %q", req.Op))
		}
	}
	return DrawResponse{Op: req.Op, Values: values}
}

// generator resolves the request's generator: explicit seed wins, then a
// named profile, then nil for the shared pool.
func (s *Server) generator(req DrawRequest) (*pcg.Gen, error) {
	if req.Seed != nil {
		return pcg.New(*req.Seed, req.Seq), nil
	}
	if req.Profile != "" {
		p, ok := s.cfg.Profile(req.Profile)
		if !ok {
			return nil, fmt.Errorf("unknown profile %q", req.Profile)
		}
		return pcg.New(p.Seed, p.Seq), nil
	}
	return nil, nil
}

// draw dispatches to the explicit generator when one is pinned, otherwise
// to the package-level pool-backed form.
func draw[T any](gen *pcg.Gen, method func(*pcg.Gen) T, global func() T) T {
	if gen != nil {
		return method(gen)
	}
	return global()
}

func errResponse(op, msg string) DrawResponse {
	return DrawResponse{Op: op, Error: msg}
}
