// Command h2status runs a tiny HTTP/1 status endpoint reporting counters
// from a running decoder fleet. It exists to give the library an ambient
// operational surface the way the teacher's own servers expose one,
// without pulling frame decoding itself onto the HTTP/1 path.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"sync/atomic"

	"github.com/valyala/fasthttp"

	http2 "github.com/domsolutions/h2dec"
)

// Counters tracks frame and error totals across every decoder a caller
// wires a Listener into. A process embedding this package increments it
// from its own Listener implementation; h2status only serves the numbers.
type Counters struct {
	Frames  uint64
	Errors  uint64
	ByType  [256]uint64
}

func (c *Counters) observe(h http2.Header) {
	atomic.AddUint64(&c.Frames, 1)
	atomic.AddUint64(&c.ByType[byte(h.Type())], 1)
}

func (c *Counters) observeError() {
	atomic.AddUint64(&c.Errors, 1)
}

type statusListener struct {
	http2.NoopListener
	counters *Counters
}

func (l *statusListener) OnFrameHeader(h http2.Header) { l.counters.observe(h) }
func (l *statusListener) OnFrameSizeError(http2.Header) { l.counters.observeError() }

// NewCountingListener returns a Listener that does nothing but feed
// Counters, for embedding alongside a real Listener via a fan-out wrapper.
func NewCountingListener(c *Counters) http2.Listener {
	return &statusListener{counters: c}
}

type statusResponse struct {
	Frames uint64            `json:"frames"`
	Errors uint64            `json:"errors"`
	ByType map[string]uint64 `json:"by_type,omitempty"`
}

func main() {
	addr := flag.String("addr", ":8089", "listen address for the status endpoint")
	flag.Parse()

	counters := &Counters{}

	handler := func(ctx *fasthttp.RequestCtx) {
		switch string(ctx.Path()) {
		case "/healthz":
			ctx.SetStatusCode(fasthttp.StatusOK)
			ctx.SetBodyString("ok")
		case "/status":
			resp := statusResponse{
				Frames: atomic.LoadUint64(&counters.Frames),
				Errors: atomic.LoadUint64(&counters.Errors),
				ByType: make(map[string]uint64),
			}
			for i, n := range counters.ByType {
				if n == 0 {
					continue
				}
				resp.ByType[http2.FrameType(i).String()] = atomic.LoadUint64(&counters.ByType[i])
			}
			body, err := json.Marshal(resp)
			if err != nil {
				ctx.SetStatusCode(fasthttp.StatusInternalServerError)
				return
			}
			ctx.SetContentType("application/json")
			ctx.SetBody(body)
		default:
			ctx.SetStatusCode(fasthttp.StatusNotFound)
		}
	}

	log.Printf("h2status: listening on %s", *addr)
	if err := fasthttp.ListenAndServe(*addr, handler); err != nil {
		log.Fatalf("h2status: %v", err)
	}
}
