package systems

import (
	"image/color"

	"github.com/automoto/hanapop/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var spriteDrawOp = &ebiten.DrawImageOptions{}

// DrawSprites renders every sprite at its synchronized position.
func DrawSprites(e *ecs.ECS, screen *ebiten.Image) {
	components.Sprite.Each(e.World, func(entry *donburi.Entry) {
		sprite := components.Sprite.Get(entry)
		if sprite.Image == nil {
			return
		}

		spriteDrawOp.GeoM.Reset()
		spriteDrawOp.GeoM.Translate(sprite.Pos.X, sprite.Pos.Y)
		screen.DrawImage(sprite.Image.SubImage(sprite.Src).(*ebiten.Image), spriteDrawOp)
	})
}

// DrawParticles renders the explosion bursts as fading points.
func DrawParticles(e *ecs.ECS, screen *ebiten.Image) {
	components.ParticleSystem.Each(e.World, func(entry *donburi.Entry) {
		burst := components.ParticleSystem.Get(entry)

		for i := range burst.Particles {
			p := &burst.Particles[i]
			if p.Life <= 0 {
				continue
			}

			alpha := p.Life
			if alpha > 1 {
				alpha = 1
			}
			c := color.RGBA{
				R: burst.Color.R,
				G: burst.Color.G,
				B: burst.Color.B,
				A: uint8(alpha * 255),
			}
			vector.DrawFilledRect(screen,
				float32(p.Pos.X), float32(p.Pos.Y), 2, 2, c, false)
		}
	})
}
