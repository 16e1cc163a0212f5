package components

import (
	"github.com/automoto/hanapop/gamemath"
	"github.com/yohamta/donburi"
)

// HitboxData is the physical box of an entity. Blocking hitboxes take part in
// velocity-correcting collision response; non-blocking ones (balls, sakura)
// only trigger detection.
type HitboxData struct {
	Rect     gamemath.Rect
	Blocking bool
}

var Hitbox = donburi.NewComponentType[HitboxData]()
