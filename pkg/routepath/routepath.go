// Package routepath canonicalizes URL paths for link matching, page
// requests and client navigation.
package routepath

import (
	"errors"
	"strings"
)

// Errors returned for paths that cannot be canonicalized.
var (
	ErrInvalidPath = errors.New("routepath: invalid path")
	ErrBackslash   = errors.New("routepath: path contains backslash")
	ErrNullByte    = errors.New("routepath: path contains null byte")
	ErrBadEscape   = errors.New("routepath: invalid percent escape")
	ErrEscapesRoot = errors.New("routepath: path escapes root via ..")
)

// Canonical returns the canonical form of p:
//   - query and fragment dropped
//   - rooted at "/"
//   - repeated slashes collapsed
//   - "." and ".." segments resolved
//   - no trailing slash, except for "/" itself
//
// Backslashes, NUL bytes, malformed percent escapes and ".." above the root
// are rejected.
func Canonical(p string) (string, error) {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if strings.Contains(p, `\`) {
		return "", ErrBackslash
	}
	if strings.Contains(p, "\x00") || strings.Contains(strings.ToUpper(p), "%00") {
		return "", ErrNullByte
	}
	if err := checkEscapes(p); err != nil {
		return "", err
	}

	var out []string
	for _, seg := range strings.Split(p, "/") {
		switch seg {
		case "", ".":
		case "..":
			if len(out) == 0 {
				return "", ErrEscapesRoot
			}
			out = out[:len(out)-1]
		default:
			out = append(out, seg)
		}
	}
	return "/" + strings.Join(out, "/"), nil
}

// Nav validates a navigation target sent by a client and returns its
// canonical path. Only rooted paths are accepted, never URLs.
func Nav(p string) (string, error) {
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") {
		return "", ErrInvalidPath
	}
	return Canonical(p)
}

func checkEscapes(p string) error {
	for i := 0; i < len(p); i++ {
		if p[i] != '%' {
			continue
		}
		if i+2 >= len(p) || !isHex(p[i+1]) || !isHex(p[i+2]) {
			return ErrBadEscape
		}
		i += 2
	}
	return nil
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
