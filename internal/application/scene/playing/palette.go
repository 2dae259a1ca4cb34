package playing

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Colors for rendering
var (
	colorFallback = color.RGBA{255, 0, 255, 255}
	colorHUD      = color.RGBA{0, 0, 0, 140}
	colorShadow   = color.RGBA{0, 0, 0, 60}
	colorCarry    = color.RGBA{255, 255, 255, 200}
	colorBeak     = color.RGBA{255, 165, 0, 255}
	colorWattle   = color.RGBA{220, 20, 60, 255}
	colorAngry    = color.RGBA{255, 60, 60, 255}
	colorCalm     = color.RGBA{120, 200, 255, 255}
)

// parseColor reads "#RRGGBB" or "#RRGGBBAA". Anything else draws as magenta.
func parseColor(s string) color.RGBA {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return colorFallback
	}

	c, err := colorful.Hex("#" + hex[:6])
	if err != nil {
		return colorFallback
	}
	r, g, b := c.RGB255()
	if len(hex) == 6 {
		return color.RGBA{R: r, G: g, B: b, A: 0xFF}
	}

	a, err := strconv.ParseUint(hex[6:], 16, 8)
	if err != nil {
		return colorFallback
	}
	// color.RGBA is premultiplied
	return color.RGBA{
		R: uint8(uint32(r) * uint32(a) / 0xFF),
		G: uint8(uint32(g) * uint32(a) / 0xFF),
		B: uint8(uint32(b) * uint32(a) / 0xFF),
		A: uint8(a),
	}
}

// palette caches parsed config colors
type palette map[string]color.RGBA

func (p palette) get(s string) color.RGBA {
	if c, ok := p[s]; ok {
		return c
	}
	c := parseColor(s)
	p[s] = c
	return c
}

// fade scales a color's alpha by a in [0, 1]
func fade(c color.RGBA, a float64) color.RGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	// color.RGBA is premultiplied
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
