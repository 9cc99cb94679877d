package constant

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the terminal frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// EventQueueSize is the buffered capacity of the input event channel
	EventQueueSize = 256
)

// Terminal Geometry
const (
	// DefaultCellWidth is the world width covered by one terminal cell
	DefaultCellWidth = 8

	// DefaultCellHeight is the world height covered by one terminal cell
	// Terminal cells are roughly twice as tall as they are wide
	DefaultCellHeight = 16
)

// Window Geometry
const (
	DefaultWindowWidth  = 800
	DefaultWindowHeight = 600
	DefaultWindowTitle  = "pewpewpew"
)
