package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/vango-dev/controls/pkg/vdom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables pretty-printed HTML output with indentation.
	// Should only be used in development as it increases output size.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string

	// HydrateAll gives every element a hydration ID, not only interactive
	// and referenced ones. Live hosts need it to resolve click targets.
	HydrateAll bool
}

// Renderer handles server-side rendering of VNode trees to HTML.
type Renderer struct {
	config   RendererConfig
	hids     *vdom.HIDGenerator
	handlers map[string]any
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{
		config:   config,
		hids:     vdom.NewHIDGenerator(),
		handlers: make(map[string]any),
	}
}

// RenderToString renders a VNode tree to an HTML string.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a VNode tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	return r.renderNode(w, node, 0)
}

// GetHandlers returns the handler registry collected during rendering.
// The map keys are in the format "hid_eventname" (e.g., "h1_onclick").
func (r *Renderer) GetHandlers() map[string]any {
	return r.handlers
}

// Reset clears the HID counter and handler registry.
func (r *Renderer) Reset() {
	r.hids.Reset()
	r.handlers = make(map[string]any)
}

func (r *Renderer) renderNode(w io.Writer, node *vdom.VNode, depth int) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindElement:
		return r.renderElement(w, node, depth)
	case vdom.KindText:
		_, err := io.WriteString(w, escapeHTML(node.Text))
		return err
	case vdom.KindFragment:
		for _, child := range node.Children {
			if err := r.renderNode(w, child, depth); err != nil {
				return err
			}
		}
		return nil
	case vdom.KindComponent:
		if node.Comp != nil {
			return r.renderNode(w, node.Comp.Render(), depth)
		}
		return nil
	case vdom.KindRaw:
		_, err := io.WriteString(w, node.Text)
		return err
	default:
		return fmt.Errorf("render: unknown node kind: %d", node.Kind)
	}
}

func (r *Renderer) renderElement(w io.Writer, node *vdom.VNode, depth int) error {
	tag := node.Tag

	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}

	if _, err := fmt.Fprintf(w, "<%s", tag); err != nil {
		return err
	}
	if err := r.renderAttributes(w, node); err != nil {
		return err
	}

	if node.HID == "" && r.needsHID(node) {
		node.HID = r.hids.Next()
	}
	if node.HID != "" {
		if _, err := fmt.Fprintf(w, ` data-hid="%s"`, node.HID); err != nil {
			return err
		}
		r.registerHandlers(node)
	}

	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}
	if isVoidElement(tag) {
		if r.config.Pretty {
			io.WriteString(w, "\n")
		}
		return nil
	}

	hasBlockChildren := len(node.Children) > 0 && !isInlineElement(tag)
	if r.config.Pretty && hasBlockChildren {
		io.WriteString(w, "\n")
	}
	for _, child := range node.Children {
		if err := r.renderNode(w, child, depth+1); err != nil {
			return err
		}
	}
	if r.config.Pretty && hasBlockChildren {
		r.writeIndent(w, depth)
	}

	if _, err := fmt.Fprintf(w, "</%s>", tag); err != nil {
		return err
	}
	if r.config.Pretty {
		io.WriteString(w, "\n")
	}
	return nil
}

// renderAttributes writes the node's effective attributes in sorted order.
func (r *Renderer) renderAttributes(w io.Writer, node *vdom.VNode) error {
	attrs := vdom.EffectiveAttrs(node)
	for _, key := range vdom.SortedAttrKeys(attrs) {
		if vdom.IsBooleanAttr(key) {
			if _, err := fmt.Fprintf(w, " %s", key); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(attrs[key])); err != nil {
			return err
		}
	}
	return nil
}

// needsHID must agree with vdom.AssignHIDs so that pre-assigned and
// renderer-assigned trees address the same elements.
func (r *Renderer) needsHID(node *vdom.VNode) bool {
	if node.Kind != vdom.KindElement {
		return false
	}
	return r.config.HydrateAll || node.IsInteractive() || node.Ref() != nil
}

func (r *Renderer) registerHandlers(node *vdom.VNode) {
	for key, value := range node.Props {
		if value != nil && len(key) > 2 && key[:2] == "on" {
			r.handlers[node.HID+"_"+key] = value
		}
	}
}

func (r *Renderer) writeIndent(w io.Writer, depth int) {
	for i := 0; i < depth; i++ {
		io.WriteString(w, r.config.Indent)
	}
}
