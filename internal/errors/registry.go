package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Config (C1xx)
	"C101": {
		Category: CategoryConfig,
		Message:  "Config file not found",
		Detail:   "No controls.yaml was found in this directory or any parent directory.",
	},
	"C102": {
		Category: CategoryConfig,
		Message:  "Config file could not be parsed",
		Detail:   "controls.yaml is not valid YAML or a field has the wrong type.",
	},
	"C103": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "One or more configuration values are out of range.",
	},
	"C104": {
		Category: CategoryConfig,
		Message:  "Config file could not be written",
	},

	// Render (R2xx)
	"R201": {
		Category: CategoryRender,
		Message:  "Gallery render failed",
	},

	// Server (S3xx)
	"S301": {
		Category: CategoryServer,
		Message:  "Server failed",
		Detail:   "The HTTP server stopped with an error. Check that the address is free.",
	},

	// Publish (P4xx)
	"P401": {
		Category: CategoryPublish,
		Message:  "No publish target",
		Detail:   "Set publish.dir or publish.s3.bucket in controls.yaml, or pass --dir or --bucket.",
	},
	"P402": {
		Category: CategoryPublish,
		Message:  "Publish failed",
	},
}

// GetAllCodes returns all registered error codes in order.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
