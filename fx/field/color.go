package field

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is an RGB triple with channels in [0,1].
type Color struct {
	R, G, B float32
}

// ParseColor accepts "#rrggbb", "#rgb" or an SVG color name such as "orange".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Color{}, fmt.Errorf("empty color")
	}
	if !strings.HasPrefix(s, "#") {
		named, ok := colornames.Map[strings.ToLower(s)]
		if !ok {
			return Color{}, fmt.Errorf("unknown color name %q", s)
		}
		return Color{
			R: float32(named.R) / 255,
			G: float32(named.G) / 255,
			B: float32(named.B) / 255,
		}, nil
	}

	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("malformed hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("malformed hex color %q: %w", s, err)
	}
	return Color{
		R: float32((v>>16)&0xff) / 255,
		G: float32((v>>8)&0xff) / 255,
		B: float32(v&0xff) / 255,
	}, nil
}

// MustParseColor is ParseColor for package-level defaults.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Lerp mixes a towards b; t is clamped to [0,1] so the result stays between the endpoints.
func Lerp(a, b Color, t float32) Color {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
	}
}

// Hex formats the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channelByte(c.R), channelByte(c.G), channelByte(c.B))
}

func channelByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
