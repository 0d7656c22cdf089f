package api

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"

	"github.com/matt-g-everett/ledbolt/stream"
)

type framePayload struct {
	Width  float64        `json:"width"`
	Height float64        `json:"height"`
	Stroke string         `json:"stroke"`
	Paths  [][][2]float64 `json:"paths"`
}

// Api serves the most recent frame over HTTP. It is a stream.Sink.
type Api struct {
	mu    sync.RWMutex
	frame *stream.Frame
	mux   *http.ServeMux
}

func NewApi() *Api {
	a := new(Api)
	a.mux = http.NewServeMux()
	a.mux.HandleFunc("/frame.json", a.handleJSON)
	a.mux.HandleFunc("/frame.svg", a.handleSVG)
	a.mux.HandleFunc("/", a.handleIndex)
	return a
}

// DrawFrame keeps f for the next request. Frames are never mutated after being drawn, so
// holding the pointer is safe.
func (a *Api) DrawFrame(f *stream.Frame) error {
	a.mu.Lock()
	a.frame = f
	a.mu.Unlock()
	return nil
}

func (a *Api) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.mux.ServeHTTP(w, r)
}

// Serve listens on addr until the server fails.
func (a *Api) Serve(addr string) error {
	log.Printf("Listening on %s...", addr)
	return http.ListenAndServe(addr, a)
}

func (a *Api) latest() *stream.Frame {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.frame
}

func (a *Api) handleJSON(w http.ResponseWriter, r *http.Request) {
	f := a.latest()
	if f == nil {
		http.Error(w, "no frame yet", http.StatusServiceUnavailable)
		return
	}

	payload := framePayload{
		Width:  f.Width,
		Height: f.Height,
		Stroke: f.Stroke().Hex(),
		Paths:  make([][][2]float64, 0, len(f.Paths)),
	}
	for _, p := range f.Paths {
		points := make([][2]float64, len(p))
		for i, v := range p {
			points[i] = [2]float64{v.X, v.Y}
		}
		payload.Paths = append(payload.Paths, points)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Encode frame: %v", err)
	}
}

func (a *Api) handleSVG(w http.ResponseWriter, r *http.Request) {
	f := a.latest()
	if f == nil {
		http.Error(w, "no frame yet", http.StatusServiceUnavailable)
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %g %g" width="%g" height="%g">`,
		f.Width, f.Height, f.Width, f.Height)
	b.WriteString(`<rect width="100%" height="100%" fill="black"/>`)
	stroke := f.Stroke().Hex()
	for _, p := range f.Paths {
		b.WriteString(`<polyline fill="none" stroke="`)
		b.WriteString(stroke)
		b.WriteString(`" points="`)
		for i, v := range p {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%.2f,%.2f", v.X, v.Y)
		}
		b.WriteString(`"/>`)
	}
	b.WriteString(`</svg>`)

	w.Header().Set("Content-Type", "image/svg+xml")
	if _, err := io.WriteString(w, b.String()); err != nil {
		log.Printf("Write frame: %v", err)
	}
}

const indexPage = `<!DOCTYPE html>
<html><body style="margin:0;background:black">
<img id="bolt" src="/frame.svg">
<script>
setInterval(() => { document.getElementById("bolt").src = "/frame.svg?" + Date.now(); }, 100);
</script>
</body></html>
`

func (a *Api) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := io.WriteString(w, indexPage); err != nil {
		log.Printf("Write index: %v", err)
	}
}
