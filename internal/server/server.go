// Package server exposes world generation over a websocket.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"islandgen/pkg/worldgen"
)

// DefaultMaxCells caps the size of a requested world.
const DefaultMaxCells = 1 << 20

// Options configures a Server.
type Options struct {
	Logger *slog.Logger
	// Timeout bounds a single generation request. Zero means no limit.
	Timeout  time.Duration
	MaxCells int
	// AllowAnyOrigin disables the same-origin check on upgrade.
	AllowAnyOrigin bool
}

// Server answers generation requests received over websocket connections.
type Server struct {
	log      *slog.Logger
	timeout  time.Duration
	maxCells int
	upgrader websocket.Upgrader
}

// New creates a Server.
func New(opts Options) *Server {
	s := &Server{
		log:      opts.Logger,
		timeout:  opts.Timeout,
		maxCells: opts.MaxCells,
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	if s.maxCells <= 0 {
		s.maxCells = DefaultMaxCells
	}
	if opts.AllowAnyOrigin {
		s.upgrader.CheckOrigin = func(r *http.Request) bool { return true }
	}
	return s
}

// Handler returns the HTTP routes of the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})
	return mux
}

// conn serialises writes to a websocket connection.
type conn struct {
	ws *websocket.Conn
	mu sync.Mutex
}

func (c *conn) writeJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ws.WriteJSON(v)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", slog.Any("err", err))
		return
	}
	defer ws.Close()
	c := &conn{ws: ws}

	ctx, cancelConn := context.WithCancel(r.Context())
	defer cancelConn()

	var (
		wg       sync.WaitGroup
		cancelRq context.CancelFunc
	)
	defer func() {
		if cancelRq != nil {
			cancelRq()
		}
		wg.Wait()
	}()

	for {
		var req Request
		if err := ws.ReadJSON(&req); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Debug("websocket read failed", slog.Any("err", err))
			}
			return
		}

		// A new request supersedes the one in flight on this connection.
		if cancelRq != nil {
			cancelRq()
		}
		var rqCtx context.Context
		rqCtx, cancelRq = s.requestContext(ctx)

		wg.Add(1)
		go func(ctx context.Context, req Request) {
			defer wg.Done()
			s.serve(ctx, c, req)
		}(rqCtx, req)
	}
}

func (s *Server) requestContext(parent context.Context) (context.Context, context.CancelFunc) {
	if s.timeout > 0 {
		return context.WithTimeout(parent, s.timeout)
	}
	return context.WithCancel(parent)
}

func (s *Server) serve(ctx context.Context, c *conn, req Request) {
	res, err := s.Generate(ctx, req)
	if errors.Is(ctx.Err(), context.Canceled) {
		return
	}
	var reply any
	if err != nil {
		s.log.Info("generation failed", slog.String("id", req.ID), slog.Any("err", err))
		reply = EncodeError(req.ID, err)
	} else {
		reply = EncodeWorld(req.ID, res, req.Fields)
	}
	if err := c.writeJSON(reply); err != nil {
		s.log.Debug("websocket write failed", slog.Any("err", err))
	}
}

// Generate resolves the request into a config and runs the generator.
func (s *Server) Generate(ctx context.Context, req Request) (worldgen.Result, error) {
	preset := req.Preset
	if preset == "" {
		preset = "island"
	}
	cfg, ok := worldgen.Preset(preset, req.Params)
	if !ok {
		return worldgen.Result{}, fmt.Errorf("unknown preset %q", preset)
	}
	if cfg.Width > 0 && cfg.Height > 0 && cfg.Width > s.maxCells/cfg.Height {
		return worldgen.Result{}, fmt.Errorf("%w: %dx%d exceeds %d cells", worldgen.ErrInvalidConfig, cfg.Width, cfg.Height, s.maxCells)
	}
	return worldgen.Generate(ctx, cfg)
}
