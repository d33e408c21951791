// Package gallery is the showcase page of the controls. It is rendered
// statically by the render and publish commands and served live by serve.
package gallery
