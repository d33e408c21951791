package vdom

import "strings"

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining non-empty classes with spaces.
func Class(classes ...string) Attr {
	parts := classes[:0:0]
	for _, c := range classes {
		if c = strings.TrimSpace(c); c != "" {
			parts = append(parts, c)
		}
	}
	return attr("class", strings.Join(parts, " "))
}

// ClassIf returns class when cond is true and "" otherwise. Use it inside
// Class for conditional classes.
func ClassIf(cond bool, class string) string {
	if cond {
		return class
	}
	return ""
}

// StyleAttr sets the style attribute (named to avoid conflict with Style element).
func StyleAttr(style string) Attr { return attr("style", style) }

// Data creates a data-* attribute.
// Example: Data("variant", "filled") → data-variant="filled"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Accessibility attributes

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return attr("aria-label", label) }

// AriaHidden sets the aria-hidden attribute.
func AriaHidden(hidden bool) Attr { return attr("aria-hidden", hidden) }

// AriaCurrent sets the aria-current attribute.
func AriaCurrent(value string) Attr { return attr("aria-current", value) }

// AriaDisabled sets the aria-disabled attribute.
func AriaDisabled(disabled bool) Attr { return attr("aria-disabled", disabled) }

// AriaControls sets the aria-controls attribute.
func AriaControls(id string) Attr { return attr("aria-controls", id) }

// Keyboard attributes

// TabIndex sets the tabindex attribute.
func TabIndex(index int) Attr { return attr("tabindex", index) }

// TitleAttr sets the title attribute (named to avoid conflict with Title element).
func TitleAttr(title string) Attr { return attr("title", title) }

// Href sets the href attribute.
func Href(url string) Attr { return attr("href", url) }

// Target sets the target attribute.
func Target(target string) Attr { return attr("target", target) }

// Type sets the type attribute.
func Type(t string) Attr { return attr("type", t) }

// Disabled sets the disabled boolean attribute.
func Disabled(disabled bool) Attr { return attr("disabled", disabled) }

// AttrOf sets an arbitrary attribute. A nil value removes the attribute.
func AttrOf(key string, value any) Attr { return attr(key, value) }
