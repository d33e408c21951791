// Package render provides server-side rendering (SSR) of VNode trees.
//
// The renderer produces HTML5 output with escaped text and attributes,
// void and boolean attribute handling, and hydration IDs:
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(node)
//
// # Hydration IDs
//
// Elements that already carry a HID keep it. Otherwise interactive elements
// and elements bound to a NodeRef receive a data-hid attribute, or every
// element when RendererConfig.HydrateAll is set. Handlers of hydrated
// elements are collected and can be retrieved via GetHandlers.
//
// # Pages
//
// RenderPage writes a full document. StreamingRenderer does the same while
// flushing the head and body as soon as each is complete.
package render
