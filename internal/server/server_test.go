package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"islandgen/pkg/worldgen"
)

func newTestServer(t *testing.T, opts Options) *httptest.Server {
	t.Helper()
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	ts := httptest.NewServer(New(opts).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { ws.Close() })
	_ = ws.SetReadDeadline(time.Now().Add(30 * time.Second))
	return ws
}

// roundTrip sends req and decodes the reply into out.
func roundTrip(t *testing.T, ws *websocket.Conn, req Request, out any) {
	t.Helper()
	if err := ws.WriteJSON(req); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := ws.ReadJSON(out); err != nil {
		t.Fatalf("read: %v", err)
	}
}

var permissive = map[string]string{
	"w":            "24",
	"h":            "20",
	"seed":         "3",
	"min_lands":    "0",
	"min_land_pct": "0",
}

func TestWebSocketWorld(t *testing.T) {
	ts := newTestServer(t, Options{})
	ws := dial(t, ts)

	var msg WorldMessage
	roundTrip(t, ws, Request{ID: "a", Params: permissive, Fields: true}, &msg)
	if msg.Type != "world" || msg.ID != "a" {
		t.Fatalf("unexpected reply %+v", msg)
	}
	if msg.Width != 24 || msg.Height != 20 || len(msg.Terrain) != 24*20 {
		t.Fatalf("unexpected dimensions %dx%d (%d cells)", msg.Width, msg.Height, len(msg.Terrain))
	}
	if len(msg.Heights) != 24*20 || len(msg.Moisture) != 24*20 {
		t.Fatal("fields missing from reply")
	}
	if msg.Seed != 3 || msg.Attempts != 1 {
		t.Fatalf("seed=%d attempts=%d", msg.Seed, msg.Attempts)
	}
}

func TestWebSocketErrors(t *testing.T) {
	ts := newTestServer(t, Options{MaxCells: 100})
	ws := dial(t, ts)

	cases := []struct {
		req      Request
		contains string
		attempts int
	}{
		{Request{ID: "p", Preset: "atlantis"}, "unknown preset", 0},
		{Request{ID: "big", Params: map[string]string{"w": "20", "h": "20"}}, "exceeds", 0},
		{Request{ID: "x", Params: map[string]string{"w": "9", "h": "9", "min_lands": "1000", "retries": "2"}}, "no world", 2},
	}
	for _, tc := range cases {
		var msg ErrorMessage
		roundTrip(t, ws, tc.req, &msg)
		if msg.Type != "error" || msg.ID != tc.req.ID {
			t.Fatalf("%s: unexpected reply %+v", tc.req.ID, msg)
		}
		if !strings.Contains(msg.Error, tc.contains) {
			t.Fatalf("%s: error %q does not mention %q", tc.req.ID, msg.Error, tc.contains)
		}
		if msg.Attempts != tc.attempts {
			t.Fatalf("%s: attempts=%d, expected %d", tc.req.ID, msg.Attempts, tc.attempts)
		}
	}
}

func TestGenerateRejectsOversizedWorld(t *testing.T) {
	cases := []struct {
		maxCells int
		w, h     string
	}{
		{10, "4", "4"},
		{0, "3", "4611686018427387904"},
		{0, "4611686018427387904", "4611686018427387904"},
	}
	for _, tc := range cases {
		s := New(Options{MaxCells: tc.maxCells})
		_, err := s.Generate(context.Background(), Request{Params: map[string]string{"w": tc.w, "h": tc.h}})
		if !errors.Is(err, worldgen.ErrInvalidConfig) {
			t.Fatalf("%sx%s: expected ErrInvalidConfig, got %v", tc.w, tc.h, err)
		}
	}
}

func TestWebSocketSurvivesHugeDimensions(t *testing.T) {
	ts := newTestServer(t, Options{})
	ws := dial(t, ts)

	var failed ErrorMessage
	roundTrip(t, ws, Request{ID: "huge", Params: map[string]string{"w": "3", "h": "4611686018427387904"}}, &failed)
	if failed.Type != "error" || !strings.Contains(failed.Error, "exceeds") {
		t.Fatalf("unexpected reply %+v", failed)
	}

	var ok WorldMessage
	roundTrip(t, ws, Request{ID: "after", Params: permissive}, &ok)
	if ok.Type != "world" || ok.ID != "after" {
		t.Fatalf("connection unusable after rejected request: %+v", ok)
	}
}

func TestEncodeWorldBoundaryCoords(t *testing.T) {
	cfg, _ := worldgen.Preset("island", permissive)
	res, err := worldgen.Generate(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	msg := EncodeWorld("", res, false)
	if msg.Heights != nil || msg.Moisture != nil {
		t.Fatal("fields encoded without being requested")
	}
	if len(msg.Lands) != len(res.Lands) || len(msg.Seas) != len(res.Seas) {
		t.Fatal("region count mismatch")
	}
	for i, land := range msg.Lands {
		if len(land.Boundary) != len(res.Lands[i].Boundary) {
			t.Fatalf("land %d boundary length mismatch", land.ID)
		}
		for j, p := range land.Boundary {
			if res.Terrain.Index(p[0], p[1]) != res.Lands[i].Boundary[j] {
				t.Fatalf("land %d point %d decoded to the wrong cell", land.ID, j)
			}
		}
	}
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t, Options{})
	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
}
