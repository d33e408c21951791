package server

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/controls/internal/config"
	"github.com/vango-dev/controls/internal/errors"
	"github.com/vango-dev/controls/internal/gallery"
	"github.com/vango-dev/controls/pkg/live"
	"github.com/vango-dev/controls/pkg/render"
	"github.com/vango-dev/controls/pkg/routepath"
	"github.com/vango-dev/controls/pkg/vdom"
)

//go:embed client.js
var clientJS []byte

// ClientPath is where the client script is served.
const ClientPath = "/_vango/client.js"

const (
	defaultPendingTimeout  = 30 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	maxFrameSize           = 64 << 10
)

// Server serves live gallery pages.
type Server struct {
	cfg      *config.Config
	page     func() *vdom.VNode
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *live.Metrics
	upgrader websocket.Upgrader

	pendingTimeout time.Duration

	mu       sync.Mutex
	sessions map[string]*entry

	httpServer *http.Server
}

type entry struct {
	session   *live.Session
	timer     *time.Timer
	connected bool
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server logger (default slog.Default()).
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRegistry registers the session metrics on reg and serves reg on the
// metrics path. By default each Server gets its own registry with the Go
// and process collectors.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) {
		s.registry = reg
	}
}

// WithPage replaces the gallery as the root component of every session.
func WithPage(page func() *vdom.VNode) Option {
	return func(s *Server) {
		s.page = page
	}
}

// WithPendingTimeout sets how long a rendered page may take to connect
// before its session is closed.
func WithPendingTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.pendingTimeout = d
		}
	}
}

// New creates a server for cfg.
func New(cfg *config.Config, opts ...Option) *Server {
	s := &Server{
		cfg:            cfg,
		logger:         slog.Default(),
		pendingTimeout: defaultPendingTimeout,
		sessions:       make(map[string]*entry),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.page == nil {
		s.page = gallery.Page(cfg.Gallery.Title)
	}
	if s.registry == nil {
		s.registry = prometheus.NewRegistry()
		s.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	s.metrics = live.NewMetrics(live.MetricsConfig{Registry: s.registry})
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  cfg.Server.ReadBuffer,
		WriteBufferSize: cfg.Server.WriteBuffer,
	}
	return s
}

// Handler returns the router of the server.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get(ClientPath, s.serveClient)
	r.Get(s.cfg.Server.WSPath, s.serveLive)
	r.Method(http.MethodGet, s.cfg.Server.MetricsPath,
		promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{Registry: s.registry}))
	r.Get("/*", s.servePage)
	return r
}

func (s *Server) serveClient(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.Write(clientJS)
}

func (s *Server) servePage(w http.ResponseWriter, r *http.Request) {
	logger := s.logger.With("request_id", middleware.GetReqID(r.Context()))

	path, err := routepath.Canonical(r.URL.EscapedPath())
	if err != nil {
		http.Error(w, "invalid path", http.StatusBadRequest)
		return
	}
	if path != r.URL.EscapedPath() {
		if r.URL.RawQuery != "" {
			path += "?" + r.URL.RawQuery
		}
		http.Redirect(w, r, path, http.StatusPermanentRedirect)
		return
	}

	sess := live.New(s.page,
		live.WithLogger(logger),
		live.WithMetrics(s.metrics),
		live.WithPath(path),
	)
	tree, _, err := sess.Render(r.Context())
	if err != nil {
		sess.Close()
		logger.Error("page render failed", "path", path, "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	page := gallery.Document(s.cfg.Gallery.Title, tree, sess.ID())
	page.Scripts = []render.ScriptTag{
		{Inline: fmt.Sprintf("window.__VANGO_WS__=%q;", s.cfg.Server.WSPath)},
		{Src: ClientPath, Defer: true},
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	sr := render.NewStreamingRenderer(w, render.RendererConfig{})
	if err := sr.RenderPage(page); err != nil {
		sess.Close()
		logger.Error("page write failed", "path", path, "error", err)
		return
	}
	s.track(sess)
	logger.Debug("page served", "path", path, "session", sess.ID())
}

func (s *Server) serveLive(w http.ResponseWriter, r *http.Request) {
	sid := r.URL.Query().Get("sid")
	sess := s.claim(sid)
	if sess == nil {
		http.Error(w, "unknown session", http.StatusNotFound)
		return
	}
	defer s.release(sid)

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "session", sid, "error", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxFrameSize)

	ctx := r.Context()
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("websocket read failed", "session", sid, "error", err)
			}
			return
		}

		reply := apply(ctx, sess, data)
		if reply.Type == FrameError {
			s.logger.Debug("frame rejected", "session", sid, "error", reply.Error)
		}
		if err := conn.WriteJSON(reply); err != nil {
			s.logger.Warn("websocket write failed", "session", sid, "error", err)
			return
		}
	}
}

// track registers a rendered session and closes it if no socket claims it
// in time.
func (s *Server) track(sess *live.Session) {
	id := sess.ID()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = &entry{
		session: sess,
		timer: time.AfterFunc(s.pendingTimeout, func() {
			s.expire(id)
		}),
	}
}

// claim binds a session to a socket. A session can be claimed once.
func (s *Server) claim(id string) *live.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[id]
	if !ok || e.connected {
		return nil
	}
	e.timer.Stop()
	e.connected = true
	return e.session
}

func (s *Server) release(id string) {
	s.mu.Lock()
	e, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if ok {
		e.session.Close()
	}
}

func (s *Server) expire(id string) {
	s.mu.Lock()
	e, ok := s.sessions[id]
	if !ok || e.connected {
		s.mu.Unlock()
		return
	}
	delete(s.sessions, id)
	s.mu.Unlock()

	s.logger.Debug("session expired", "session", id)
	e.session.Close()
}

// SessionCount returns the number of open sessions.
func (s *Server) SessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// ListenAndServe serves on the configured address until ctx is done, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.cfg.Address(),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "address", s.cfg.Address())
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.New("S301").Wrap(err)
	case <-ctx.Done():
		s.logger.Info("shutting down...")
		return s.Shutdown(context.Background())
	}
}

// Shutdown closes every session and stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, defaultShutdownTimeout)
	defer cancel()

	s.mu.Lock()
	sessions := s.sessions
	s.sessions = make(map[string]*entry)
	s.mu.Unlock()
	for _, e := range sessions {
		e.timer.Stop()
		e.session.Close()
	}

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return errors.New("S301").Wrap(err)
		}
	}
	s.logger.Info("server shutdown complete")
	return nil
}
