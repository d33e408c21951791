package ui

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/vango-dev/controls/pkg/routepath"
	"github.com/vango-dev/controls/pkg/vango"
	"github.com/vango-dev/controls/pkg/vdom"
)

// LinkButtonConfig configures a LinkButton. Href is required.
type LinkButtonConfig struct {
	Href string

	Variant  vango.Readable[Variant]
	Color    vango.Readable[Color]
	Size     vango.Readable[Size]
	Disabled vango.Readable[bool]
	Active   vango.Readable[bool]

	ID    string
	Class vango.Readable[string]
	Style string
	Title string

	// Exact marks the link current only when the location equals Href.
	// Otherwise any location below Href matches.
	Exact bool

	// State is pushed to the history entry on navigation, as JSON. A value
	// that cannot be encoded is logged and left out.
	State any

	// Replace navigates without adding a history entry.
	Replace bool
}

// LinkButton renders a navigable link styled like a button.
//
// The anchor carries aria-current="page" when the host location matches
// Href (see LinkActive); navigation options are exposed to the client as
// data-replace and data-state.
func LinkButton(cfg LinkButtonConfig, children ...any) *vdom.VNode {
	active := vango.OrZero(cfg.Active)
	disabled := vango.OrZero(cfg.Disabled)

	wrapper := []any{
		vdom.Class(ButtonClass, vango.OrZero(cfg.Class).Get(), vdom.ClassIf(active.Get(), "active")),
		vdom.Data("variant", vango.OrZero(cfg.Variant).Get().String()),
		vdom.Data("color", vango.OrZero(cfg.Color).Get().String()),
		vdom.Data("size", vango.OrZero(cfg.Size).Get().String()),
		vdom.AttrOf("aria-disabled", strconv.FormatBool(disabled.Get())),
	}
	if cfg.ID != "" {
		wrapper = append(wrapper, vdom.ID(cfg.ID))
	}
	if cfg.Style != "" {
		wrapper = append(wrapper, vdom.StyleAttr(cfg.Style))
	}

	anchor := []any{vdom.Href(cfg.Href)}
	if cfg.Title != "" {
		anchor = append(anchor, vdom.TitleAttr(cfg.Title))
	}
	if LinkActive(vango.CurrentPath(), cfg.Href, cfg.Exact) {
		anchor = append(anchor, vdom.AriaCurrent("page"))
	}
	if cfg.Replace {
		anchor = append(anchor, vdom.Data("replace", "true"))
	}
	if cfg.State != nil {
		b, err := json.Marshal(cfg.State)
		if err != nil {
			vango.Logger().Warn("link state dropped", "href", cfg.Href, "error", err)
		} else {
			anchor = append(anchor, vdom.Data("state", string(b)))
		}
	}
	anchor = append(anchor, vdom.Div(append([]any{vdom.Class("name")}, children...)...))

	return vdom.El("vango-link", append(wrapper, vdom.A(anchor...))...)
}

// LinkActive reports whether a link to href is current at location current.
//
// Query strings, fragments and trailing slashes are ignored. With exact the
// paths must be equal. Otherwise href must equal current or be a whole-segment
// prefix of it, and "/" matches every location.
func LinkActive(current, href string, exact bool) bool {
	if current == "" || href == "" {
		return false
	}
	cur, err := routepath.Canonical(current)
	if err != nil {
		return false
	}
	target, err := routepath.Canonical(href)
	if err != nil {
		return false
	}
	if cur == target {
		return true
	}
	if exact {
		return false
	}
	if target == "/" {
		return true
	}
	return strings.HasPrefix(cur, target+"/")
}
