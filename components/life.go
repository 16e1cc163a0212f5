package components

import "github.com/yohamta/donburi"

// LifeData holds an entity's remaining life points. The life system flips
// Alive to false when Points reaches zero; it never flags deletion itself.
type LifeData struct {
	Points int
	Alive  bool
}

var Life = donburi.NewComponentType[LifeData]()
