package systems

import (
	"image/color"

	"github.com/automoto/hanapop/components"
	cfg "github.com/automoto/hanapop/config"
	"github.com/automoto/hanapop/events"
	"github.com/automoto/hanapop/systems/factory"
	"github.com/automoto/hanapop/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// SugoiDisplaySeconds is how long the celebration banner stays on screen.
const SugoiDisplaySeconds = 1.5

// UpdateRules drains the tick's event queue and applies the reactive layer:
// combo and score arithmetic, life loss, game over, and the time-driven
// affinity rotation. Runs after every component-mutating system and before
// the deletion sweep, so event payloads still reference live entities.
func UpdateRules(e *ecs.ECS) {
	entry, ok := session(e)
	if !ok {
		return
	}
	game := components.Game.Get(entry)
	audio := components.Audio.Get(entry)
	queue := components.Bus.Get(entry).Queue

	for {
		ev, ok := queue.Poll()
		if !ok {
			break
		}

		switch ev := ev.(type) {
		case events.PlayerHit:
			game.Combo = 0
			audio.PendingSFX = append(audio.PendingSFX, cfg.SoundPlayerHit)
			if player, ok := tags.Player.First(e.World); ok {
				if components.Life.Get(player).Points <= 0 {
					game.Running = false
					zap.L().Info("run over",
						zap.Int("score", game.Score),
						zap.String("difficulty", game.Difficulty.String()))
				}
			}

		case events.BallShot:
			factory.CreateExplosion(e, ev.Center, ev.Color, game.Rng)
			if ev.Color == game.Affinity {
				game.Combo++
				if game.Combo > game.Tier.ComboMin {
					game.Score += game.Combo
				} else {
					game.Score++
				}
				if game.Combo > game.Tier.ComboMin && game.Combo%game.Tier.SugoiCombo == 0 {
					game.SinceSugoi = 0
					game.SugoiScale = gween.New(0.2, 1.5, 0.6, ease.OutElastic)
					audio.PendingSFX = append(audio.PendingSFX, cfg.SoundSugoi)
				} else {
					audio.PendingSFX = append(audio.PendingSFX, cfg.SoundGoodBall)
				}
			} else {
				game.Score--
				game.Combo = 0
				audio.PendingSFX = append(audio.PendingSFX, cfg.SoundWrongBall)
			}

		case events.EntityDeath:
			// Reserved; nothing reacts to plain deaths yet.
			_ = ev
		}
	}

	if game.SinceAffinityChange >= game.Tier.AffinityChangeSec {
		game.SinceAffinityChange = 0
		game.Affinity = nextAffinity(game.Affinity)
		audio.PendingSFX = append(audio.PendingSFX, cfg.SoundAffinityChange)
	}

	if game.SugoiScale != nil {
		v, done := game.SugoiScale.Update(float32(delta(e)))
		game.SugoiValue = v
		if done && game.SinceSugoi > SugoiDisplaySeconds {
			game.SugoiScale = nil
		}
	}
}

func nextAffinity(current color.RGBA) color.RGBA {
	for i, c := range cfg.AffinityCycle {
		if c == current {
			return cfg.AffinityCycle[(i+1)%len(cfg.AffinityCycle)]
		}
	}
	return cfg.AffinityCycle[0]
}
