package components

import "github.com/yohamta/donburi"

// InputData is the sampled keyboard state for the tick. The input system
// fills it; the control system turns it into player velocity and shots, so
// gameplay logic never reads the keyboard directly.
type InputData struct {
	// MoveX is -1, 0 or 1.
	MoveX float64
	Shoot bool
}

var Input = donburi.NewComponentType[InputData]()
