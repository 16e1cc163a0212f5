package scenes

import (
	"image/color"
	"math/rand"
	"sync"
	"time"

	"github.com/automoto/hanapop/archetypes"
	"github.com/automoto/hanapop/assets"
	"github.com/automoto/hanapop/components"
	cfg "github.com/automoto/hanapop/config"
	"github.com/automoto/hanapop/events"
	"github.com/automoto/hanapop/leveldata"
	"github.com/automoto/hanapop/systems"
	"github.com/automoto/hanapop/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// GameScene runs one arcade round at a fixed difficulty.
type GameScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	difficulty   cfg.Difficulty
	tiers        cfg.Tiers
	once         sync.Once
}

func NewGameScene(sc SceneChanger, difficulty cfg.Difficulty, tiers cfg.Tiers) *GameScene {
	return &GameScene{sceneChanger: sc, difficulty: difficulty, tiers: tiers}
}

func (gs *GameScene) Update() {
	gs.once.Do(gs.configure)

	// A finished run ends the pipeline entirely; the tick that flipped
	// Running off was the last one to execute.
	if entry, ok := components.Game.First(gs.ecs.World); ok {
		game := components.Game.Get(entry)
		if !game.Running {
			best := systems.RecordScore(gs.difficulty, game.Score)
			gs.sceneChanger.ChangeScene(
				NewScoreScene(gs.sceneChanger, gs.tiers, gs.difficulty, game.Score, best))
			return
		}
	}

	gs.ecs.Update()
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameScene) configure() {
	arena, err := leveldata.LoadArena(assets.LevelFS, assets.ArenaPath)
	if err != nil {
		zap.L().Fatal("load arena", zap.Error(err))
	}

	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateAudio)
	e.AddSystem(systems.UpdateClock)
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateControl)
	e.AddSystem(systems.UpdateSpawn)
	e.AddSystem(systems.UpdateAnimation)
	e.AddSystem(systems.UpdatePhysics)
	e.AddSystem(systems.UpdateSynchronize)
	e.AddSystem(systems.UpdateCollisionEffects)
	e.AddSystem(systems.UpdateLife)
	e.AddSystem(systems.UpdateRules)
	e.AddSystem(systems.UpdateParticles)
	e.AddSystem(systems.UpdateSweep)

	e.AddRenderer(cfg.Default, systems.DrawParticles)
	e.AddRenderer(cfg.Default, systems.DrawSprites)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawSugoi)

	tier := gs.tiers[gs.difficulty]
	session := archetypes.Session.Spawn(e)
	components.Bus.SetValue(session, components.BusData{Queue: events.NewQueue()})
	components.Game.SetValue(session, components.GameData{
		Running:    true,
		Affinity:   cfg.AffinityCycle[0],
		Difficulty: gs.difficulty,
		Tier:       tier,
		Rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	})

	for _, rect := range arena.Walls {
		factory.CreateWall(e, rect)
	}
	factory.CreatePlayer(e, arena.Spawn.X, arena.Spawn.Y, tier.LifePoints)

	zap.L().Info("run started",
		zap.String("difficulty", gs.difficulty.String()),
		zap.Int("walls", len(arena.Walls)))

	gs.ecs = e
}
