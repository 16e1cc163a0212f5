package systems

import (
	"github.com/automoto/hanapop/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimation advances every animated sprite by the tick's delta.
func UpdateAnimation(e *ecs.ECS) {
	dt := delta(e)

	components.Animation.Each(e.World, func(entry *donburi.Entry) {
		anim := components.Animation.Get(entry)
		if len(anim.Frames) == 0 || anim.FPS <= 0 {
			return
		}

		frameTime := 1.0 / float64(anim.FPS)
		anim.SinceFrame += dt
		for anim.SinceFrame >= frameTime {
			anim.SinceFrame -= frameTime
			anim.Current = (anim.Current + 1) % len(anim.Frames)
		}

		if entry.HasComponent(components.Sprite) {
			components.Sprite.Get(entry).Src = anim.Frames[anim.Current]
		}
	})
}
