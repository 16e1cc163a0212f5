package systems

import (
	"github.com/automoto/hanapop/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics moves every entity that has both a hitbox and a velocity,
// testing its swept box against every other hitbox in the world. Naive
// pairwise checks; entity counts are small enough that O(n²) is fine.
//
// Resolution rules:
//   - The approach side is decided from the mover's pre-movement edges,
//     checked bottom, top, right, left in that order. The displacement on
//     the colliding axis is clamped to the exact gap so the mover ends up
//     flush with the obstacle; the other axis is untouched.
//   - Boxes already overlapping on both axes before the move get no
//     correction. Known gap, kept on purpose.
//   - Every swept intersection records the pair (mover, other) for the
//     collision effects system, blocking or not.
//   - Only when both hitboxes are blocking is the mover's velocity
//     rewritten to the corrected displacement over dt, so later checks in
//     the same tick see the corrected motion. Last write wins; this is not
//     full contact resolution.
func UpdatePhysics(e *ecs.ECS) {
	entry, ok := session(e)
	if !ok {
		return
	}
	dt := components.Clock.Get(entry).Delta
	if dt <= 0 {
		return
	}

	record := components.Collisions.Get(entry)
	record.Pairs = record.Pairs[:0]

	components.Movement.Each(e.World, func(fst *donburi.Entry) {
		if !fst.HasComponent(components.Hitbox) {
			return
		}
		fhb := components.Hitbox.Get(fst)
		fmov := components.Movement.Get(fst)

		components.Hitbox.Each(e.World, func(snd *donburi.Entry) {
			if snd.Entity() == fst.Entity() {
				return
			}
			shb := components.Hitbox.Get(snd)

			move := fmov.Velocity.Scale(dt)
			swept := fhb.Rect.Translated(move)
			if swept.Intersects(shb.Rect) {
				switch {
				case fhb.Rect.Bottom() <= shb.Rect.Y && swept.Bottom() > shb.Rect.Y:
					move.Y = shb.Rect.Y - fhb.Rect.Bottom()
				case fhb.Rect.Y >= shb.Rect.Bottom() && swept.Y < shb.Rect.Bottom():
					move.Y = shb.Rect.Bottom() - fhb.Rect.Y
				case fhb.Rect.Right() <= shb.Rect.X && swept.Right() > shb.Rect.X:
					move.X = shb.Rect.X - fhb.Rect.Right()
				case fhb.Rect.X >= shb.Rect.Right() && swept.X < shb.Rect.Right():
					move.X = shb.Rect.Right() - fhb.Rect.X
				}
				record.Pairs = append(record.Pairs, components.CollisionPair{
					First:  fst,
					Second: snd,
				})
			}

			if fhb.Blocking && shb.Blocking {
				fmov.Velocity = move.Scale(1 / dt)
			}
		})

		fhb.Rect.X += fmov.Velocity.X * dt
		fhb.Rect.Y += fmov.Velocity.Y * dt
	})
}
