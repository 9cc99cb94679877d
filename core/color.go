package core

import "image/color"

// Color stores normalized RGBA channels in [0, 1]
type Color struct {
	R, G, B, A float64
}

// RGB stores explicit 8-bit color channels, decoupled from any backend
type RGB struct {
	R, G, B uint8
}

// Predefined colors, matching the classic macroquad palette
var (
	Blue   = Color{R: 0.00, G: 0.47, B: 0.95, A: 1}
	Green  = Color{R: 0.00, G: 0.89, B: 0.19, A: 1}
	Yellow = Color{R: 0.99, G: 0.98, B: 0.00, A: 1}
	Red    = Color{R: 0.90, G: 0.16, B: 0.22, A: 1}
	Black  = Color{A: 1}
)

// NewOpaque returns a fully opaque color from normalized channels
func NewOpaque(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGB quantizes the color to 8 bits per channel, premultiplied by alpha
func (c Color) RGB() RGB {
	a := clamp01(c.A)
	return RGB{
		R: channel8(c.R * a),
		G: channel8(c.G * a),
		B: channel8(c.B * a),
	}
}

// NRGBA converts to the standard library color model
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: channel8(c.R),
		G: channel8(c.G),
		B: channel8(c.B),
		A: channel8(c.A),
	}
}

func channel8(v float64) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}

func clamp01(v float64) float64 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 1
	}
	return v
}
