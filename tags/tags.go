package tags

import "github.com/yohamta/donburi"

// Archetype tags. Collision effect rules dispatch on the ordered pair of
// these tags, never on component capability.
var (
	Player    = donburi.NewTag().SetName("Player")
	Wall      = donburi.NewTag().SetName("Wall")
	Ball      = donburi.NewTag().SetName("Ball")
	Sakura    = donburi.NewTag().SetName("Sakura")
	Explosion = donburi.NewTag().SetName("Explosion")
)
