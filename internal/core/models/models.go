// Package models declares the plain data shared across the rig: servo
// kinds, mood and trigger states, and colors.
package models

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownValue = errors.New("unknown value")

// names is the lookup shared by the enum parsers.
type names[T ~uint8] []string

func (n names[T]) format(kind string, v T) string {
	if int(v) < len(n) {
		return n[v]
	}
	return fmt.Sprintf("%s(%d)", kind, uint8(v))
}

func (n names[T]) marshal(kind string, v T) ([]byte, error) {
	if int(v) >= len(n) {
		return nil, fmt.Errorf("%s(%d): %w", kind, uint8(v), ErrUnknownValue)
	}
	return []byte(n[v]), nil
}

func (n names[T]) parse(kind, s string) (T, error) {
	want := strings.ToUpper(strings.TrimSpace(s))
	for i, name := range n {
		if name == want {
			return T(i), nil
		}
	}
	return 0, fmt.Errorf("%s %q: %w", kind, s, ErrUnknownValue)
}
