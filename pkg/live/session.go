package live

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/controls/pkg/render"
	"github.com/vango-dev/controls/pkg/vango"
	"github.com/vango-dev/controls/pkg/vdom"
)

// maxRenderPasses bounds how often binding refs may re-dirty one render.
const maxRenderPasses = 8

var sessionCounter atomic.Uint64

// Session hosts one live component tree.
//
// Every component node in the tree renders under an owner of its own,
// kept while a component of the same name renders at the same position and
// disposed when it leaves the tree.
//
// Every operation is serialized behind one mutex: an event, its batched
// updates, the re-render and the pending effects all complete before the
// next operation starts.
type Session struct {
	mu sync.Mutex

	id    string
	root  func() *vdom.VNode
	owner *vango.Owner
	inst  *rootInstance
	comps *instance

	renderer *render.Renderer
	tree     *vdom.VNode
	html     string

	elements map[string]*Element
	refs     map[vdom.ElementRef]*Element

	outside   map[uint64]*outsideRegistration
	outsideID uint64

	path   string
	closed bool

	logger  *slog.Logger
	metrics *Metrics
	tracer  trace.Tracer
}

type outsideRegistration struct {
	id  uint64
	ref *vango.NodeRef
	fn  func()
}

// rootInstance is the listener of the root component. Any signal read while
// rendering marks it dirty.
type rootInstance struct {
	owner *vango.Owner
	dirty atomic.Bool
}

func (r *rootInstance) MarkDirty() { r.dirty.Store(true) }

func (r *rootInstance) ID() uint64 { return r.owner.ID() }

// New creates a session for the component rendered by root. Nothing is
// rendered until the first call to Render.
func New(root func() *vdom.VNode, opts ...Option) *Session {
	owner := vango.NewOwner(nil)
	s := &Session{
		id:       fmt.Sprintf("s%d", sessionCounter.Add(1)),
		root:     root,
		owner:    owner,
		inst:     &rootInstance{owner: owner},
		comps:    newInstance("root", owner),
		renderer: render.NewRenderer(render.RendererConfig{HydrateAll: true}),
		elements: make(map[string]*Element),
		refs:     make(map[vdom.ElementRef]*Element),
		outside:  make(map[uint64]*outsideRegistration),
		path:     "/",
		logger:   slog.Default(),
		tracer:   otel.Tracer("vango/live"),
	}
	s.inst.dirty.Store(true)
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("session", s.id)
	s.metrics.sessionOpened()
	return s
}

// ID returns the session ID.
func (s *Session) ID() string { return s.id }

// Logger implements vango.LoggerProvider.
func (s *Session) Logger() *slog.Logger { return s.logger }

// Path implements vango.Locator.
func (s *Session) Path() string { return s.path }

// Render renders the tree if anything it read has changed and returns the
// tree and its HTML.
func (s *Session) Render(ctx context.Context) (*vdom.VNode, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, "", ErrSessionClosed
	}
	if err := s.renderLocked(ctx); err != nil {
		return nil, "", err
	}
	return s.tree, s.html, nil
}

// HTML returns the HTML of the last render.
func (s *Session) HTML() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.html
}

// Tree returns the tree of the last render.
func (s *Session) Tree() *vdom.VNode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree
}

// Element returns the handle for hid, or nil.
func (s *Session) Element(hid string) *Element {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.elements[hid]
}

func (s *Session) renderLocked(ctx context.Context) (err error) {
	if s.tree != nil && !s.inst.dirty.Load() {
		if !s.owner.HasPendingEffects() {
			return nil
		}
		vango.WithCtx(s, s.owner.RunPendingEffects)
		if !s.inst.dirty.Load() {
			return nil
		}
	}

	_, span := s.tracer.Start(ctx, "live.render",
		trace.WithAttributes(attribute.String("vango.session", s.id)))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	start := time.Now()
	for pass := 1; pass <= maxRenderPasses; pass++ {
		s.inst.dirty.Store(false)

		var tree *vdom.VNode
		vango.WithCtx(s, func() {
			vango.WithOwner(s.owner, func() {
				s.owner.StartRender()
				defer s.owner.EndRender()
				vango.WithListener(s.inst, func() {
					tree = s.comps.expand(s.root())
				})
			})
		})

		vdom.AssignAllHIDs(tree, vdom.NewHIDGenerator())
		s.bind(tree)
		if s.inst.dirty.Load() {
			continue
		}

		s.renderer.Reset()
		html, err := s.renderer.RenderToString(tree)
		if err != nil {
			return fmt.Errorf("live: render: %w", err)
		}
		s.tree, s.html = tree, html

		vango.WithCtx(s, s.owner.RunPendingEffects)
		if s.inst.dirty.Load() {
			continue
		}

		span.SetAttributes(attribute.Int("vango.render.passes", pass))
		s.metrics.render(time.Since(start).Seconds(), pass)
		s.logger.Debug("rendered", "passes", pass, "elements", len(s.elements))
		return nil
	}

	s.metrics.render(time.Since(start).Seconds(), maxRenderPasses)
	return ErrRenderLoop
}

// bind updates the element handles from tree and attaches every NodeRef to
// the handle of the element it was rendered on. Handles whose HID is gone
// are dropped and their refs detached.
func (s *Session) bind(tree *vdom.VNode) {
	seen := make(map[string]bool, len(s.elements))
	refs := make(map[vdom.ElementRef]*Element)

	var visit func(n *vdom.VNode, parent *Element)
	visit = func(n *vdom.VNode, parent *Element) {
		if n == nil {
			return
		}
		if n.Kind == vdom.KindElement {
			el := s.elements[n.HID]
			if el == nil || el.tag != n.Tag {
				el = &Element{hid: n.HID}
				s.elements[n.HID] = el
			}
			el.tag, el.node, el.parent = n.Tag, n, parent
			seen[n.HID] = true
			if ref := n.Ref(); ref != nil {
				refs[ref] = el
			}
			parent = el
		}
		for _, child := range n.Children {
			visit(child, parent)
		}
	}
	visit(tree, nil)

	for hid := range s.elements {
		if !seen[hid] {
			delete(s.elements, hid)
		}
	}
	for ref := range s.refs {
		if _, ok := refs[ref]; !ok {
			ref.Detach()
		}
	}
	for ref, el := range refs {
		ref.Attach(el)
	}
	s.refs = refs
}

// Components returns the number of mounted components.
func (s *Session) Components() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.comps.count()
}

// ClickOutsideListeners returns the number of registered click-outside
// listeners.
func (s *Session) ClickOutsideListeners() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.outside)
}

// RegisterClickOutside implements vango.ClickOutsideRegistry. It is called
// while the session lock is held, from render or an event handler.
func (s *Session) RegisterClickOutside(ref *vango.NodeRef, fn func()) func() {
	s.outsideID++
	id := s.outsideID
	s.outside[id] = &outsideRegistration{id: id, ref: ref, fn: fn}
	return func() { delete(s.outside, id) }
}

// Click dispatches a click on the element hid and re-renders.
//
// Click-outside listeners whose element does not contain the target run
// first. Then onclick handlers run from the target up to the root until one
// stops propagation. All updates are batched.
func (s *Session) Click(ctx context.Context, hid string, ev vango.MouseEvent) error {
	return s.dispatch(ctx, "click", hid, func(target *Element) error {
		ev.TargetHID = hid
		return s.click(target, &ev)
	})
}

// Measure records the scroll size the client measured for hid and
// re-renders when it changed.
func (s *Session) Measure(ctx context.Context, hid string, width, height int) error {
	return s.dispatch(ctx, "measure", hid, func(el *Element) error {
		if el.scrollWidth == width && el.scrollHeight == height {
			return nil
		}
		el.scrollWidth, el.scrollHeight = width, height
		s.inst.MarkDirty()
		return nil
	})
}

// Navigate changes the location path and re-renders.
func (s *Session) Navigate(ctx context.Context, path string) error {
	return s.dispatch(ctx, "navigate", "", func(*Element) error {
		if path != s.path {
			s.path = path
			s.inst.MarkDirty()
		}
		return nil
	})
}

func (s *Session) dispatch(ctx context.Context, kind, hid string, fn func(*Element) error) (err error) {
	ctx, span := s.tracer.Start(ctx, "live."+kind, trace.WithAttributes(
		attribute.String("vango.session", s.id),
		attribute.String("vango.hid", hid),
	))
	defer func() {
		if err != nil {
			s.metrics.eventError(kind)
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSessionClosed
	}
	s.metrics.event(kind)

	var el *Element
	if hid != "" {
		if el = s.elements[hid]; el == nil {
			return fmt.Errorf("%w: %s", ErrNodeNotFound, hid)
		}
	}

	vango.WithCtx(s, func() {
		vango.WithOwner(s.owner, func() {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("live: %s handler panicked: %v", kind, r)
				}
			}()
			vango.Batch(func() {
				err = fn(el)
			})
		})
	})
	if err != nil {
		s.logger.Error("event failed", "type", kind, "hid", hid, "error", err)
		return err
	}
	return s.renderLocked(ctx)
}

func (s *Session) click(target *Element, ev *vango.MouseEvent) error {
	regs := make([]*outsideRegistration, 0, len(s.outside))
	for _, r := range s.outside {
		regs = append(regs, r)
	}
	sort.Slice(regs, func(i, j int) bool { return regs[i].id < regs[j].id })

	for _, r := range regs {
		el := r.ref.Peek()
		if el == nil || el.Contains(target) {
			continue
		}
		s.metrics.outsideClick()
		r.fn()
	}

	for el := target; el != nil; el = el.parent {
		handler := el.node.Props["onclick"]
		if handler == nil {
			continue
		}
		if err := invoke(handler, el == target, ev); err != nil {
			return err
		}
		if ev.PropagationStopped() {
			break
		}
	}
	return nil
}

func invoke(handler any, atTarget bool, ev *vango.MouseEvent) error {
	if mh, ok := handler.(vango.ModifiedHandler); ok {
		if mh.Self && !atTarget {
			return nil
		}
		if mh.PreventDefault {
			ev.PreventDefault()
		}
		if mh.StopPropagation {
			ev.StopPropagation()
		}
		handler = mh.Unwrap()
	}

	switch h := handler.(type) {
	case func():
		h()
	case func(*vango.MouseEvent):
		h(ev)
	default:
		return fmt.Errorf("live: unsupported click handler %T", handler)
	}
	return nil
}

// Close disposes the component tree, removing its click-outside listeners
// and detaching its refs. Later operations return ErrSessionClosed.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	vango.WithCtx(s, s.owner.Dispose)
	for ref := range s.refs {
		ref.Detach()
	}
	s.refs = nil
	s.metrics.sessionClosed()
	s.logger.Debug("session closed")
}

var (
	_ vango.ClickOutsideRegistry = (*Session)(nil)
	_ vango.Locator              = (*Session)(nil)
	_ vango.LoggerProvider       = (*Session)(nil)
	_ vango.Listener             = (*rootInstance)(nil)
)
