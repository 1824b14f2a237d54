package models

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB is a color with 8-bit intended channels. Values outside 0..255 are
// stored as given.
type RGB struct {
	R int32 `json:"r" yaml:"r"`
	G int32 `json:"g" yaml:"g"`
	B int32 `json:"b" yaml:"b"`
}

// String renders the color as #rrggbb, clamping each channel for display.
func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

// ParseRGB reads a #rrggbb (or rrggbb) hex color.
func ParseRGB(s string) (RGB, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("color %q: %w", s, ErrUnknownValue)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("color %q: %w", s, ErrUnknownValue)
	}
	return RGB{R: int32((v >> 16) & 0xff), G: int32((v >> 8) & 0xff), B: int32(v & 0xff)}, nil
}

func channel(v int32) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	default:
		return uint8(v)
	}
}
