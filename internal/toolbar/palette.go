// internal/toolbar/palette.go
package toolbar

import (
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Swatch is one entry in the color picker shown for the color and highlight
// actions.
type Swatch struct {
	Name string
	Hex  string
}

// defaultSwatches is the stock palette offered before any typed value.
var defaultSwatches = []Swatch{
	{Name: "Red", Hex: "#e11d48"},
	{Name: "Orange", Hex: "#f97316"},
	{Name: "Yellow", Hex: "#fde047"},
	{Name: "Green", Hex: "#22c55e"},
	{Name: "Teal", Hex: "#14b8a6"},
	{Name: "Blue", Hex: "#3b82f6"},
	{Name: "Purple", Hex: "#a855f7"},
	{Name: "Pink", Hex: "#ec4899"},
	{Name: "Gray", Hex: "#6b7280"},
	{Name: "Black", Hex: "#111827"},
}

// Palette returns the stock swatches sorted by hue, grays last.
func Palette() []Swatch {
	swatches := make([]Swatch, len(defaultSwatches))
	copy(swatches, defaultSwatches)

	sort.SliceStable(swatches, func(i, j int) bool {
		hi, si := hueSat(swatches[i].Hex)
		hj, sj := hueSat(swatches[j].Hex)
		// Near-gray swatches sink to the end.
		grayI, grayJ := si < 0.15, sj < 0.15
		if grayI != grayJ {
			return grayJ
		}
		return hi < hj
	})
	return swatches
}

func hueSat(hex string) (float64, float64) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0, 0
	}
	h, s, _ := c.Hsv()
	return h, s
}

// NormalizeHex reports whether value parses as a hex color, returning the
// lowercased canonical form when it does. A failed parse is advisory only:
// the raw value is still inserted verbatim, any rendering anomaly surfaces
// in the preview.
func NormalizeHex(value string) (string, bool) {
	c, err := colorful.Hex(strings.TrimSpace(value))
	if err != nil {
		return value, false
	}
	return c.Hex(), true
}
