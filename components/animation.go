package components

import (
	"image"

	"github.com/yohamta/donburi"
)

// AnimationData cycles a sprite through a sequence of sheet sub-rectangles.
type AnimationData struct {
	Frames []image.Rectangle
	// Current frame index.
	Current int
	// Seconds since the last frame change.
	SinceFrame float64
	// Frames per second.
	FPS int
}

var Animation = donburi.NewComponentType[AnimationData]()
