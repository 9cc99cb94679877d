package constant

// Shape Geometry
const (
	// BodyRadius is the radius of a UFO body (circle or pentagon)
	BodyRadius = 20.0

	// TrailRadius is the radius of one after-image dot
	TrailRadius = 5.0

	// PentagonSides is the vertex count of the player body
	PentagonSides = 5

	// PentagonRotation is the player body rotation in degrees
	PentagonRotation = 0.0
)

// Terminal Glyphs
const (
	// FillRune paints a rasterized cell
	FillRune = '█'
)
