package theme

import (
	"fmt"
	"strings"
)

// rgb is a parsed 8-bit color triple.
type rgb struct {
	r, g, b uint8
}

// parseColor accepts #rgb and #rrggbb hex notation.
func parseColor(s string) (rgb, bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	if !strings.HasPrefix(s, "#") {
		return rgb{}, false
	}
	hex := s[1:]

	nibble := func(c byte) (uint8, bool) {
		switch {
		case c >= '0' && c <= '9':
			return c - '0', true
		case c >= 'a' && c <= 'f':
			return c - 'a' + 10, true
		}
		return 0, false
	}

	switch len(hex) {
	case 3:
		var out [3]uint8
		for i := 0; i < 3; i++ {
			n, ok := nibble(hex[i])
			if !ok {
				return rgb{}, false
			}
			out[i] = n<<4 | n
		}
		return rgb{out[0], out[1], out[2]}, true
	case 6:
		var out [3]uint8
		for i := 0; i < 3; i++ {
			hi, ok1 := nibble(hex[i*2])
			lo, ok2 := nibble(hex[i*2+1])
			if !ok1 || !ok2 {
				return rgb{}, false
			}
			out[i] = hi<<4 | lo
		}
		return rgb{out[0], out[1], out[2]}, true
	}
	return rgb{}, false
}

// glowAlpha is the fixed opacity of the accent-derived glow color.
const glowAlpha = 0.12

// Glow returns the translucent accent color as an rgba() string. A
// color that fails to parse yields a fully transparent glow.
func Glow(accent string) string {
	c, ok := parseColor(accent)
	if !ok {
		return "rgba(0,0,0,0)"
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%.2f)", c.r, c.g, c.b, glowAlpha)
}

// CSS renders the palette as the CSS custom properties the page styles
// against: background, surface, two border tones, text at three
// emphasis levels, the accent, and the accent glow.
func CSS(c Colors) string {
	var b strings.Builder
	b.WriteString(":root {\n")
	write := func(name, value string) {
		b.WriteString("  --")
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(value)
		b.WriteString(";\n")
	}
	write("background", c.Background)
	write("surface", c.BLow)
	write("border", c.BMed)
	write("border-strong", c.BHigh)
	write("text", c.FHigh)
	write("muted", c.FMed)
	write("dim", c.FLow)
	write("accent", c.BInv)
	write("glow", Glow(c.BInv))
	b.WriteString("}\n")
	return b.String()
}
