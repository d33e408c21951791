package vdom

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

var booleanAttrs = map[string]bool{
	"allowfullscreen": true,
	"async":           true,
	"autofocus":       true,
	"checked":         true,
	"defer":           true,
	"disabled":        true,
	"hidden":          true,
	"inert":           true,
	"multiple":        true,
	"open":            true,
	"readonly":        true,
	"required":        true,
	"selected":        true,
}

// IsBooleanAttr reports whether name is an HTML boolean attribute, rendered
// as a bare name when true and omitted when false.
func IsBooleanAttr(name string) bool {
	return booleanAttrs[strings.ToLower(name)]
}

// EffectiveAttrs returns the string attributes that should be present on the
// DOM for the given node.
//
// This includes regular attributes (nil values, internal "_" props, keys and
// event handlers excluded) and the derived event interception attributes:
// `data-ve` listing the handled events plus one marker per modifier flag.
// A true boolean attribute maps to "".
//
// It intentionally omits `data-hid`, which is managed separately via node.HID.
func EffectiveAttrs(node *VNode) map[string]string {
	if node == nil || node.Props == nil {
		return nil
	}

	attrs := make(map[string]string)

	for key, value := range node.Props {
		if value == nil || key == "key" || strings.HasPrefix(key, "_") {
			continue
		}
		if isEventHandler(key) {
			continue
		}
		if s, ok := attrValueToString(key, value); ok {
			attrs[key] = s
		}
	}

	ve, mods := buildEventInterceptionAttrs(node.Props)
	if ve != "" {
		attrs["data-ve"] = ve
		for k, v := range mods {
			attrs[k] = v
		}
	}

	return attrs
}

// SortedAttrKeys returns the keys of attrs in lexical order.
func SortedAttrKeys(attrs map[string]string) []string {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func attrValueToString(key string, value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case bool:
		if IsBooleanAttr(key) {
			return "", v
		}
		if v {
			return "true", true
		}
		return "false", true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case fmt.Stringer:
		return v.String(), true
	default:
		// Avoid encoding complex structs/maps as attributes unintentionally.
		rv := reflect.ValueOf(value)
		if rv.IsValid() && rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			return string(rv.Bytes()), true
		}
		return "", false
	}
}

func buildEventInterceptionAttrs(props Props) (dataVE string, modifierAttrs map[string]string) {
	events := make([]string, 0, 2)
	modifierAttrs = make(map[string]string)

	for key, value := range props {
		if value == nil || !isEventHandler(key) {
			continue
		}
		eventName := strings.ToLower(key[2:])
		events = append(events, eventName)

		if mods, ok := extractModifierFlags(value); ok {
			if mods.PreventDefault {
				modifierAttrs["data-pd-"+eventName] = "true"
			}
			if mods.StopPropagation {
				modifierAttrs["data-sp-"+eventName] = "true"
			}
			if mods.Self {
				modifierAttrs["data-self-"+eventName] = "true"
			}
		}
	}

	if len(events) == 0 {
		return "", nil
	}
	sort.Strings(events)
	dataVE = strings.Join(events, ",")

	if len(modifierAttrs) == 0 {
		return dataVE, nil
	}
	return dataVE, modifierAttrs
}

type modifierFlags struct {
	PreventDefault  bool
	StopPropagation bool
	Self            bool
}

// extractModifierFlags recognizes handler wrappers by shape (a struct with a
// Handler field), since this package cannot import the reactive core.
func extractModifierFlags(value any) (modifierFlags, bool) {
	var out modifierFlags

	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return out, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct || !rv.FieldByName("Handler").IsValid() {
		return out, false
	}

	out.PreventDefault = fieldBool(rv, "PreventDefault")
	out.StopPropagation = fieldBool(rv, "StopPropagation")
	out.Self = fieldBool(rv, "Self")
	return out, true
}

func fieldBool(rv reflect.Value, name string) bool {
	f := rv.FieldByName(name)
	if !f.IsValid() || f.Kind() != reflect.Bool {
		return false
	}
	return f.Bool()
}
