package systems

import (
	"github.com/automoto/hanapop/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput samples the keyboard into the Input singleton. Gameplay
// systems never read the keyboard directly.
func UpdateInput(e *ecs.ECS) {
	entry, ok := session(e)
	if !ok {
		return
	}
	input := components.Input.Get(entry)

	input.MoveX = 0
	if ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		input.MoveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		input.MoveX += 1
	}
	input.Shoot = ebiten.IsKeyPressed(ebiten.KeySpace)
}
