package render

import (
	"io"
	"net/http"
)

// StreamingRenderer wraps Renderer with chunked output support.
// It flushes content incrementally for faster time-to-first-byte.
type StreamingRenderer struct {
	*Renderer
	flusher http.Flusher
	w       io.Writer
}

// NewStreamingRenderer creates a streaming renderer that writes to w. If w
// implements http.Flusher, the head and body are flushed as they complete.
func NewStreamingRenderer(w io.Writer, config RendererConfig) *StreamingRenderer {
	flusher, _ := w.(http.Flusher)
	return &StreamingRenderer{
		Renderer: NewRenderer(config),
		flusher:  flusher,
		w:        w,
	}
}

// RenderPage renders a complete HTML document with incremental flushing.
func (s *StreamingRenderer) RenderPage(page PageData) error {
	if err := s.renderDocumentStart(s.w, page); err != nil {
		return err
	}
	s.flush()

	if err := s.RenderToWriter(s.w, page.Body); err != nil {
		return err
	}
	s.flush()

	if err := s.renderDocumentEnd(s.w, page); err != nil {
		return err
	}
	s.flush()
	return nil
}

func (s *StreamingRenderer) flush() {
	if s.flusher != nil {
		s.flusher.Flush()
	}
}

// FlushableWriter wraps an io.Writer and counts flushes.
// Useful for testing streaming behavior without an http.ResponseWriter.
type FlushableWriter struct {
	io.Writer
	FlushCount int
}

// Flush implements http.Flusher.
func (w *FlushableWriter) Flush() {
	w.FlushCount++
}
