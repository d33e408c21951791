package publish

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
)

var (
	// ErrEmptyName is returned when an object has no name.
	ErrEmptyName = errors.New("publish: empty object name")

	// ErrInvalidName is returned for names that escape the target, such as
	// absolute paths or names containing "..".
	ErrInvalidName = errors.New("publish: invalid object name")

	// ErrTooLarge is returned when an object exceeds the publisher's limit.
	ErrTooLarge = errors.New("publish: object too large")
)

// Publisher writes rendered artifacts to a target.
type Publisher interface {
	// Publish stores body under name. name is a slash-separated relative
	// path such as "index.html" or "assets/controls.css".
	Publish(ctx context.Context, name, contentType string, body io.Reader) error
}

// Object is one artifact to publish.
type Object struct {
	Name        string
	ContentType string
	Body        []byte
}

// All publishes objects in order and stops at the first failure.
func All(ctx context.Context, p Publisher, objects ...Object) error {
	for _, o := range objects {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := p.Publish(ctx, o.Name, o.ContentType, bytes.NewReader(o.Body)); err != nil {
			return fmt.Errorf("publish %s: %w", o.Name, err)
		}
	}
	return nil
}

// CleanName validates name and returns it in canonical slash form.
func CleanName(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", ErrEmptyName
	}
	name = strings.ReplaceAll(name, "\\", "/")
	if strings.HasPrefix(name, "/") {
		return "", fmt.Errorf("%w: %q is absolute", ErrInvalidName, name)
	}
	for _, seg := range strings.Split(name, "/") {
		if seg == ".." {
			return "", fmt.Errorf("%w: %q leaves the target", ErrInvalidName, name)
		}
	}
	clean := path.Clean(name)
	if clean == "." {
		return "", ErrEmptyName
	}
	return clean, nil
}

// readLimited reads r fully, failing with ErrTooLarge beyond max bytes.
// A max of 0 means no limit.
func readLimited(r io.Reader, max int64) ([]byte, error) {
	if max > 0 {
		r = io.LimitReader(r, max+1) // +1 to detect overflow
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if max > 0 && int64(len(data)) > max {
		return nil, ErrTooLarge
	}
	return data, nil
}
