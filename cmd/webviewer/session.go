package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"

	"github.com/coder/websocket"

	"mandelzoom"
)

// frameServer renders frames for all connected viewers. Sessions share
// one renderer (and therefore one pixel buffer), so renders are
// serialized; each session keeps its own viewport.
type frameServer struct {
	renderer *mandelzoom.Renderer
	home     mandelzoom.Viewport

	mu sync.Mutex
}

// renderRGBA produces one frame of vp in canvas byte order. The lock
// covers the conversion too, because the returned engine buffer is only
// valid until the next Render call.
func (s *frameServer) renderRGBA(vp mandelzoom.Viewport, dst []byte) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return mandelzoom.ToRGBA(s.renderer.Render(vp), dst)
}

// event is one input message from the page.
type event struct {
	Op  string  `json:"op"`            // "zoom", "pan" or "home"
	Dir int     `json:"dir,omitempty"` // zoom: positive in, negative out
	Dx  float64 `json:"dx,omitempty"`  // pan: accumulated drag delta, pixels
	Dy  float64 `json:"dy,omitempty"`
}

func (s *frameServer) handleWS(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"}, // TODO: tighten in prod
	})
	if err != nil {
		log.Printf("websocket accept: %v", err)
		return
	}
	defer c.CloseNow()

	log.Printf("viewer connected: %s", r.RemoteAddr)
	err = s.serve(r.Context(), c)
	switch {
	case err == nil,
		errors.Is(err, io.EOF),
		errors.Is(err, context.Canceled),
		websocket.CloseStatus(err) != -1:
		log.Printf("viewer left: %s", r.RemoteAddr)
	default:
		log.Printf("viewer %s: %v", r.RemoteAddr, err)
	}
}

// serve runs one viewer session: announce the frame dimensions, send
// the home frame, then render and send a fresh frame after every input
// event. The page throttles drag deltas to one outstanding frame, so no
// coalescing is needed here.
func (s *frameServer) serve(ctx context.Context, c *websocket.Conn) error {
	cfg := s.renderer.Config()

	hello, err := json.Marshal(map[string]int{"width": cfg.Width, "height": cfg.Height})
	if err != nil {
		return err
	}
	if err := c.Write(ctx, websocket.MessageText, hello); err != nil {
		return fmt.Errorf("send dimensions: %w", err)
	}

	vp := s.home
	var rgba []byte
	sendFrame := func() error {
		rgba = s.renderRGBA(vp, rgba)
		return c.Write(ctx, websocket.MessageBinary, rgba)
	}
	if err := sendFrame(); err != nil {
		return fmt.Errorf("send frame: %w", err)
	}

	for {
		typ, data, err := c.Read(ctx)
		if err != nil {
			return err
		}
		if typ != websocket.MessageText {
			continue
		}

		var ev event
		if err := json.Unmarshal(data, &ev); err != nil {
			return fmt.Errorf("bad event %q: %w", data, err)
		}

		switch ev.Op {
		case "zoom":
			if ev.Dir > 0 {
				vp.ZoomIn()
			} else {
				vp.ZoomOut()
			}
		case "pan":
			vp.Pan(ev.Dx, ev.Dy, cfg.Width, cfg.Height)
		case "home":
			vp = s.home
		default:
			continue
		}

		if err := sendFrame(); err != nil {
			return fmt.Errorf("send frame: %w", err)
		}
	}
}
