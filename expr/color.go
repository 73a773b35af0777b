package expr

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/gogpu/sld/internal/cache"
)

// ErrInvalidColor is returned when a colour string cannot be parsed.
var ErrInvalidColor = errors.New("expr: invalid colour")

// Color returns a colour literal.
func Color(c color.Color) Literal {
	return Literal{value: color.NRGBAModel.Convert(c).(color.NRGBA)}
}

// RGB returns an opaque colour literal from 8-bit components.
func RGB(r, g, b uint8) Literal {
	return Literal{value: color.NRGBA{R: r, G: g, B: b, A: 255}}
}

// Hex returns a colour literal parsed from s. Supported forms are "#RGB",
// "#RGBA", "#RRGGBB", "#RRGGBBAA" (the '#' is optional) and CSS colour
// names. A string that is not a colour is kept as a string literal so the
// consumer can report it.
func Hex(s string) Literal {
	c, err := ParseColor(s)
	if err != nil {
		return Str(s)
	}
	return Literal{value: c}
}

type parsedColor struct {
	c   color.NRGBA
	err error
}

// colors memoizes ParseColor; style documents repeat a small palette.
var colors = cache.New[string, parsedColor](512)

// ParseColor parses a hex colour or a CSS/SVG colour name.
func ParseColor(s string) (color.NRGBA, error) {
	p := colors.GetOrCreate(s, func() parsedColor {
		c, err := parseColor(s)
		return parsedColor{c, err}
	})
	return p.c, p.err
}

func parseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}

	hex := s
	switch {
	case strings.HasPrefix(hex, "#"):
		hex = hex[1:]
	case strings.HasPrefix(hex, "0x"), strings.HasPrefix(hex, "0X"):
		hex = hex[2:]
	}

	var r, g, b, a uint32
	a = 255
	ok := true

	switch len(hex) {
	case 3: // RGB
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) &&
			parseHex(hex[2:3], &b) && parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) &&
			parseHex(hex[4:6], &b) && parseHex(hex[6:8], &a)
	default:
		ok = false
	}
	if !ok {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	return color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}, nil
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// AsColor returns the colour of a literal expression. String literals
// are parsed with ParseColor.
func AsColor(e Expression) (color.NRGBA, bool) {
	l, ok := e.(Literal)
	if !ok {
		return color.NRGBA{}, false
	}
	switch v := l.value.(type) {
	case color.NRGBA:
		return v, true
	case string:
		c, err := ParseColor(v)
		return c, err == nil
	}
	return color.NRGBA{}, false
}

// formatHex renders c as "#RRGGBB", or "#RRGGBBAA" when not opaque.
func formatHex(c color.NRGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}
