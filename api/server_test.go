package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/matt-g-everett/ledbolt/bolt"
	"github.com/matt-g-everett/ledbolt/stream"
)

func testFrame() *stream.Frame {
	f := stream.NewFrame(500, 500)
	f.DrawPath([]bolt.Vec{{X: 0, Y: 250}, {X: 250, Y: 231.5}, {X: 500, Y: 250}})
	return f
}

func TestNoFrameYet(t *testing.T) {
	a := NewApi()
	for _, path := range []string{"/frame.json", "/frame.svg"} {
		rec := httptest.NewRecorder()
		a.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("%s: expected 503, got %d", path, rec.Code)
		}
	}
}

func TestFrameJSON(t *testing.T) {
	a := NewApi()
	a.DrawFrame(testFrame())

	rec := httptest.NewRecorder()
	a.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/frame.json", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var payload framePayload
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if payload.Width != 500 || payload.Stroke != "#ffffff" {
		t.Errorf("Unexpected payload header %+v", payload)
	}
	if len(payload.Paths) != 1 || len(payload.Paths[0]) != 3 || payload.Paths[0][1] != [2]float64{250, 231.5} {
		t.Errorf("Unexpected paths %v", payload.Paths)
	}
}

func TestFrameSVG(t *testing.T) {
	a := NewApi()
	a.DrawFrame(testFrame())

	rec := httptest.NewRecorder()
	a.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/frame.svg", nil))

	body := rec.Body.String()
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Unexpected content type %q", ct)
	}
	if !strings.Contains(body, `points="0.00,250.00 250.00,231.50 500.00,250.00"`) {
		t.Errorf("Polyline missing from %s", body)
	}
	if !strings.Contains(body, `fill="none"`) {
		t.Error("Expected an unfilled path")
	}
}

func TestIndex(t *testing.T) {
	a := NewApi()

	rec := httptest.NewRecorder()
	a.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "/frame.svg") {
		t.Errorf("Unexpected index response %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	a.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/elsewhere", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", rec.Code)
	}
}

// brokenWriter drops the connection on the first write.
type brokenWriter struct {
	*httptest.ResponseRecorder
}

func (w brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

func (w brokenWriter) WriteString(string) (int, error) {
	return w.Write(nil)
}

func TestWriteErrorsLogged(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	a := NewApi()
	a.DrawFrame(testFrame())
	for _, path := range []string{"/", "/frame.svg", "/frame.json"} {
		buf.Reset()
		w := brokenWriter{httptest.NewRecorder()}
		a.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if !strings.Contains(buf.String(), "connection reset") {
			t.Errorf("%s: expected write error to be logged, got %q", path, buf.String())
		}
	}
}
