package theme

// Colors is the 9-key palette every theme must fully specify:
// foreground and background tones at three emphasis levels plus the
// inverse/accent color on each side.
type Colors struct {
	Background string `json:"background"`
	FHigh      string `json:"f_high"`
	FMed       string `json:"f_med"`
	FLow       string `json:"f_low"`
	FInv       string `json:"f_inv"`
	BHigh      string `json:"b_high"`
	BMed       string `json:"b_med"`
	BLow       string `json:"b_low"`
	BInv       string `json:"b_inv"`
}

// Keys lists the color keys in their canonical order. The same
// identifiers address the elements of an importable/exportable SVG
// swatch file.
var Keys = []string{
	"background", "f_high", "f_med", "f_low", "f_inv",
	"b_high", "b_med", "b_low", "b_inv",
}

// Get returns the color for a canonical key name.
func (c Colors) Get(key string) string {
	switch key {
	case "background":
		return c.Background
	case "f_high":
		return c.FHigh
	case "f_med":
		return c.FMed
	case "f_low":
		return c.FLow
	case "f_inv":
		return c.FInv
	case "b_high":
		return c.BHigh
	case "b_med":
		return c.BMed
	case "b_low":
		return c.BLow
	case "b_inv":
		return c.BInv
	}
	return ""
}

func (c *Colors) set(key, value string) {
	switch key {
	case "background":
		c.Background = value
	case "f_high":
		c.FHigh = value
	case "f_med":
		c.FMed = value
	case "f_low":
		c.FLow = value
	case "f_inv":
		c.FInv = value
	case "b_high":
		c.BHigh = value
	case "b_med":
		c.BMed = value
	case "b_low":
		c.BLow = value
	case "b_inv":
		c.BInv = value
	}
}

// Valid reports whether all 9 colors are present and parseable.
func (c Colors) Valid() bool {
	for _, key := range Keys {
		if _, ok := parseColor(c.Get(key)); !ok {
			return false
		}
	}
	return true
}

// Entry is a named, categorized palette. Built-in entries are defined at
// load time and immutable; custom entries come from imported SVG files
// and are persisted as a list in the data directory.
type Entry struct {
	Name     string `json:"name"`
	Display  string `json:"display"`
	Category string `json:"category"`
	Colors   Colors `json:"colors"`
	Custom   bool   `json:"custom,omitempty"`
}
