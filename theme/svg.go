package theme

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// svgNode is a minimal recursive view of an SVG document: only element
// ids and fill attributes matter for the swatch contract.
type svgNode struct {
	XMLName  xml.Name
	ID       string    `xml:"id,attr"`
	Fill     string    `xml:"fill,attr"`
	Children []svgNode `xml:",any"`
}

func (n svgNode) walk(fills map[string]string) {
	if n.ID != "" && n.Fill != "" {
		if _, seen := fills[n.ID]; !seen {
			fills[n.ID] = n.Fill
		}
	}
	for _, child := range n.Children {
		child.walk(fills)
	}
}

// ParseSVG reads a theme palette from an SVG swatch file. The document
// must contain 9 elements addressable by the canonical key identifiers,
// each carrying a fill attribute with a parseable color.
func ParseSVG(data []byte) (Colors, error) {
	var root svgNode
	if err := xml.Unmarshal(data, &root); err != nil {
		return Colors{}, fmt.Errorf("parse svg: %w", err)
	}

	fills := make(map[string]string)
	root.walk(fills)

	var colors Colors
	for _, key := range Keys {
		fill, ok := fills[key]
		if !ok {
			return Colors{}, fmt.Errorf("parse svg: missing element %q", key)
		}
		if _, ok := parseColor(fill); !ok {
			return Colors{}, fmt.Errorf("parse svg: element %q has invalid fill %q", key, fill)
		}
		colors.set(key, strings.TrimSpace(strings.ToLower(fill)))
	}
	return colors, nil
}

// RenderSVG generates the swatch file for a palette: one rectangle for
// the background and 8 circles for the remaining keys, each addressable
// by the same identifiers ParseSVG reads. Import of an exported file is
// lossless for all 9 color values.
func RenderSVG(c Colors) []byte {
	var b strings.Builder
	b.WriteString(`<svg width="96px" height="96px" xmlns="http://www.w3.org/2000/svg" baseProfile="full" version="1.1">`)
	b.WriteString("\n")
	fmt.Fprintf(&b, `  <rect width="96" height="96" id="background" fill="%s"></rect>`+"\n", c.Background)

	// Two rows of four: foreground tones on top, background tones below.
	circles := []string{"f_high", "f_med", "f_low", "f_inv", "b_high", "b_med", "b_low", "b_inv"}
	for i, key := range circles {
		cx := 24 + (i%4)*16
		cy := 32 + (i/4)*32
		fmt.Fprintf(&b, `  <circle cx="%d" cy="%d" r="8" id="%s" fill="%s"></circle>`+"\n", cx, cy, key, c.Get(key))
	}
	b.WriteString("</svg>\n")
	return []byte(b.String())
}
