package ui

import (
	"sort"
	"strconv"

	"github.com/vango-dev/controls/pkg/aria"
	"github.com/vango-dev/controls/pkg/vango"
	"github.com/vango-dev/controls/pkg/vdom"
)

// AttrValue is a constant or reactive attribute value. A nil resolved value
// removes the attribute.
type AttrValue = vango.Readable[any]

// Attribute keys produced by UseButton.
const (
	AttrRole         = "role"
	AttrTabIndex     = "tabindex"
	AttrDisabled     = "disabled"
	AttrAriaDisabled = "aria-disabled"
	AttrAriaHasPopup = "aria-haspopup"
	AttrAriaExpanded = "aria-expanded"
)

// ButtonState is the declarative intent of a button-like control. Nil
// fields mean not disabled, no popup and not expanded.
type ButtonState struct {
	Disabled     vango.Readable[bool]
	AriaHasPopup vango.Readable[aria.HasPopup]
	AriaExpanded vango.Readable[aria.Expanded]
}

// ButtonProps is the attribute map of a button-like control, keyed by
// attribute name.
type ButtonProps map[string]AttrValue

// UseButton composes the accessibility attributes of a button-like control.
//
// role is always "button". tabindex is "0" while enabled and removed while
// disabled. disabled mirrors the flag and aria-disabled carries its string
// form. aria-haspopup and aria-expanded pass through. Every value tracks its
// input, so one render always sees a consistent map.
func UseButton(state ButtonState) ButtonProps {
	disabled := vango.OrZero(state.Disabled)
	hasPopup := vango.OrZero(state.AriaHasPopup)
	expanded := vango.OrZero(state.AriaExpanded)

	return ButtonProps{
		AttrRole: vango.Const[any]("button"),
		AttrTabIndex: vango.Derive(func() any {
			if disabled.Get() {
				return nil
			}
			return "0"
		}),
		AttrDisabled: vango.Derive(func() any {
			return disabled.Get()
		}),
		AttrAriaDisabled: vango.Derive(func() any {
			return strconv.FormatBool(disabled.Get())
		}),
		AttrAriaHasPopup: vango.Derive(func() any {
			return hasPopup.Get().String()
		}),
		AttrAriaExpanded: vango.Derive(func() any {
			return expanded.Get().String()
		}),
	}
}

// Get resolves one attribute, subscribing the current listener.
func (p ButtonProps) Get(key string) any {
	if v, ok := p[key]; ok && v != nil {
		return v.Get()
	}
	return nil
}

// Peek resolves one attribute without subscribing.
func (p ButtonProps) Peek(key string) any {
	if v, ok := p[key]; ok && v != nil {
		return v.Peek()
	}
	return nil
}

// Attrs resolves the map into element attributes in key order.
// Reads are tracked, so a render using Attrs re-runs when an input changes.
func (p ButtonProps) Attrs() []vdom.Attr {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]vdom.Attr, 0, len(keys))
	for _, k := range keys {
		attrs = append(attrs, vdom.AttrOf(k, p.Get(k)))
	}
	return attrs
}
