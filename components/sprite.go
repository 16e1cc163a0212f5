package components

import (
	"image"

	"github.com/automoto/hanapop/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// SpriteData is the drawable of an entity: a sub-rectangle of a sheet drawn
// at Pos. Pos is kept in sync with the hitbox by the synchronize system.
type SpriteData struct {
	Image *ebiten.Image
	Src   image.Rectangle
	Pos   gamemath.Vec2
}

// Bounds returns the on-screen box of the sprite.
func (s *SpriteData) Bounds() gamemath.Rect {
	return gamemath.Rect{
		X: s.Pos.X,
		Y: s.Pos.Y,
		W: float64(s.Src.Dx()),
		H: float64(s.Src.Dy()),
	}
}

var Sprite = donburi.NewComponentType[SpriteData]()
