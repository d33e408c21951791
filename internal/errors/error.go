package errors

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
)

// Category represents the type of error.
type Category string

const (
	CategoryConfig  Category = "config"
	CategoryRender  Category = "render"
	CategoryServer  Category = "server"
	CategoryPublish Category = "publish"
	CategoryCLI     Category = "cli"
)

// Location is a position in a file, usually controls.yaml.
type Location struct {
	File string
	Line int
}

// String returns the location as a formatted string.
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Line > 0 {
		return fmt.Sprintf("%s:%d", l.File, l.Line)
	}
	return l.File
}

// Error is a coded CLI diagnostic with an optional file location and hint.
type Error struct {
	// Code is a unique error identifier (e.g., "C101").
	Code string

	Category Category
	Message  string
	Detail   string

	// Location is the file position the error refers to.
	Location *Location

	// Context contains the lines around Location.
	Context []string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = e.Code + ": " + msg
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// WithLocation adds a file location and the surrounding lines to the error.
func (e *Error) WithLocation(file string, line int) *Error {
	e.Location = &Location{File: file, Line: line}
	if line > 0 {
		e.Context = readContextLines(file, line, 5)
	}
	return e
}

// yamlLine matches the position prefix of YAML decoder errors
// ("yaml: line 4: ..." and "line 4: cannot unmarshal ...").
var yamlLine = regexp.MustCompile(`line (\d+):`)

// WithLocationFromYAML points the error at file, taking the line number from
// a YAML decoding error when it carries one.
func (e *Error) WithLocationFromYAML(file string, err error) *Error {
	line := 0
	if err != nil {
		if m := yamlLine.FindStringSubmatch(err.Error()); m != nil {
			line, _ = strconv.Atoi(m[1])
		}
	}
	return e.WithLocation(file, line)
}

// WithSuggestion adds a fix suggestion to the error.
func (e *Error) WithSuggestion(s string) *Error {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *Error) WithDetail(d string) *Error {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *Error) Wrap(err error) *Error {
	e.Wrapped = err
	return e
}

// readContextLines reads lines around the specified line number from a file.
func readContextLines(filename string, targetLine, contextSize int) []string {
	file, err := os.Open(filename)
	if err != nil {
		return nil
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	lineNum := 0
	startLine := targetLine - contextSize/2
	endLine := targetLine + contextSize/2

	for scanner.Scan() {
		lineNum++
		if lineNum >= startLine && lineNum <= endLine {
			lines = append(lines, scanner.Text())
		}
		if lineNum > endLine {
			break
		}
	}

	return lines
}

// New creates an Error from a registered error code.
func New(code string) *Error {
	template, ok := registry[code]
	if !ok {
		return &Error{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &Error{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
	}
}

// Newf creates a new Error with a formatted message (no code).
func Newf(category Category, format string, args ...any) *Error {
	return &Error{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in an Error.
func FromError(err error, code string) *Error {
	if err == nil {
		return nil
	}
	if ce, ok := err.(*Error); ok {
		return ce
	}
	return New(code).Wrap(err)
}
