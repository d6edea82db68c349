package aoc

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// ErrInvalidUTF8 is reported (wrapped in a *ReadError) when a file's content
// is not valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// ReadError is returned when an input file can't be read as text.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// ConvertError is returned by ParseLines when a line fails to convert. It
// wraps the converter's error as is; converters that want the line in the
// message need to put it there themselves.
type ConvertError struct {
	Err error
}

func (e *ConvertError) Error() string {
	return fmt.Sprintf("converting line: %v", e.Err)
}

func (e *ConvertError) Unwrap() error { return e.Err }

// ReadRaw returns the content of the file at path.
func ReadRaw(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}
	if !utf8.Valid(b) {
		return "", &ReadError{Path: path, Err: ErrInvalidUTF8}
	}
	return string(b), nil
}

// ParseLines reads the file at path and converts each of its lines with
// convert. It stops at the first line that fails and returns a *ConvertError
// wrapping that failure.
func ParseLines[T any](path string, convert func(string) (T, error)) ([]T, error) {
	return parseLines(path, func(line string) (T, error) {
		v, err := convert(line)
		if err != nil {
			return v, &ConvertError{Err: err}
		}
		return v, nil
	})
}

// ParseLinesWith is like ParseLines but returns the parser's error unchanged,
// so callers can errors.As into their own error types.
func ParseLinesWith[T any](path string, parse func(string) (T, error)) ([]T, error) {
	return parseLines(path, parse)
}

func parseLines[T any](path string, parse func(string) (T, error)) ([]T, error) {
	content, err := ReadRaw(path)
	if err != nil {
		return nil, err
	}
	lines := Lines(content)
	out := make([]T, 0, len(lines))
	for _, line := range lines {
		v, err := parse(line)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// ParseWhole reads the file at path and hands all of it to parse.
func ParseWhole[T any](path string, parse func(string) (T, error)) (T, error) {
	content, err := ReadRaw(path)
	if err != nil {
		var zero T
		return zero, err
	}
	v, err := parse(content)
	if err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// Lines splits content into lines. Both "\n" and "\r\n" end a line, and a
// final line ending does not start another line, so "" has no lines and
// "a\n" has one.
func Lines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// Sections splits content into blank-line separated sections.
func Sections(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.TrimSuffix(content, "\n")
	if content == "" {
		return nil
	}
	return strings.Split(content, "\n\n")
}
