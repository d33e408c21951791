package vango

import "log/slog"

// Locator is implemented by hosts that know the current location path.
type Locator interface {
	Path() string
}

// UseCtx returns the host runtime installed with WithCtx, or nil outside of
// a host render, effect or event handler.
func UseCtx() any {
	return getCurrentCtx()
}

// CurrentPath returns the host's current location path, or "" when the host
// does not implement Locator.
func CurrentPath() string {
	if l, ok := getCurrentCtx().(Locator); ok {
		return l.Path()
	}
	return ""
}

// LoggerProvider is implemented by hosts that carry a structured logger.
type LoggerProvider interface {
	Logger() *slog.Logger
}

// Logger returns the host's logger, or slog.Default() outside a host.
func Logger() *slog.Logger {
	if p, ok := getCurrentCtx().(LoggerProvider); ok {
		if l := p.Logger(); l != nil {
			return l
		}
	}
	return slog.Default()
}

// SetContext sets a value for the current component scope. Descendant
// scopes see it through GetContext.
func SetContext(key, value any) {
	if owner := getCurrentOwner(); owner != nil {
		owner.SetValue(key, value)
	}
}

// GetContext retrieves a value from the nearest scope that set key.
func GetContext(key any) any {
	if owner := getCurrentOwner(); owner != nil {
		return owner.GetValue(key)
	}
	return nil
}
