package scenes

import (
	"fmt"
	"image/color"
	"math/rand"
	"sync"
	"time"

	"github.com/automoto/hanapop/archetypes"
	"github.com/automoto/hanapop/components"
	cfg "github.com/automoto/hanapop/config"
	"github.com/automoto/hanapop/events"
	"github.com/automoto/hanapop/fonts"
	"github.com/automoto/hanapop/gamemath"
	"github.com/automoto/hanapop/systems"
	"github.com/automoto/hanapop/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene lets the player pick a difficulty tier. The background reuses
// the game's animated wall tiles.
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	tiers        cfg.Tiers
	cursor       cfg.Difficulty
	save         *systems.SavedData
	once         sync.Once
}

func NewMenuScene(sc SceneChanger, tiers cfg.Tiers) *MenuScene {
	return &MenuScene{sceneChanger: sc, tiers: tiers}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		ms.cursor = (ms.cursor - 1 + cfg.DifficultyCount) % cfg.DifficultyCount
		systems.PlaySFX(cfg.SoundMenuNavigate)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		ms.cursor = (ms.cursor + 1) % cfg.DifficultyCount
		systems.PlaySFX(cfg.SoundMenuNavigate)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		systems.PlaySFX(cfg.SoundMenuSelect)
		ms.sceneChanger.ChangeScene(NewGameScene(ms.sceneChanger, ms.cursor, ms.tiers))
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)

	face := fonts.Title.Get()
	centerX := cfg.C.Width / 2

	text.Draw(screen, "H A N A P O P", face, centerX-46, 180, cfg.Pink)
	text.Draw(screen, "arrows: move   space: shoot", face, centerX-94, 220, cfg.White)

	for d := cfg.Difficulty(0); d < cfg.DifficultyCount; d++ {
		label := d.String()
		if best := ms.save.BestScores[label]; best > 0 {
			label = fmt.Sprintf("%s   best %d", label, best)
		}
		c := cfg.DarkBlue
		if d == ms.cursor {
			c = cfg.LightBlue
			label = "> " + label
		}
		text.Draw(screen, label, face, centerX-60, 300+int(d)*2*fonts.LineHeight(), c)
	}
}

func (ms *MenuScene) configure() {
	ms.save = systems.LoadSave()
	if t := cfg.Difficulty(ms.save.LastTier); t >= 0 && t < cfg.DifficultyCount {
		ms.cursor = t
	}

	ms.ecs = ecs.NewECS(donburi.NewWorld())

	// A stripped-down session so the clock and animation systems have
	// their singletons; no gameplay runs here.
	entry := archetypes.Session.Spawn(ms.ecs)
	components.Bus.SetValue(entry, components.BusData{Queue: events.NewQueue()})
	components.Game.SetValue(entry, components.GameData{
		Rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	})

	ms.ecs.AddSystem(systems.UpdateAudio)
	ms.ecs.AddSystem(systems.UpdateClock)
	ms.ecs.AddSystem(systems.UpdateAnimation)

	ms.ecs.AddRenderer(cfg.Default, systems.DrawSprites)

	// Border of animated wall tiles behind the menu text.
	tile := float64(cfg.C.TileSize)
	cols := cfg.C.Width / cfg.C.TileSize
	rows := cfg.C.Height / cfg.C.TileSize
	for x := 0; x < cols; x++ {
		factory.CreateWall(ms.ecs, gamemath.NewRect(float64(x)*tile, 0, tile, tile))
		factory.CreateWall(ms.ecs, gamemath.NewRect(float64(x)*tile, float64(rows-1)*tile, tile, tile))
	}
	for y := 1; y < rows-1; y++ {
		factory.CreateWall(ms.ecs, gamemath.NewRect(0, float64(y)*tile, tile, tile))
		factory.CreateWall(ms.ecs, gamemath.NewRect(float64(cols-1)*tile, float64(y)*tile, tile, tile))
	}
}
