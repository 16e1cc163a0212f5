package main

import (
	"image"

	"github.com/automoto/hanapop/config"
	"github.com/automoto/hanapop/scenes"
	"github.com/automoto/hanapop/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(tiers config.Tiers) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewMenuScene(g, tiers)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	tiers, err := config.LoadTiers()
	if err != nil {
		logger.Fatal("load difficulty tiers", zap.Error(err))
	}

	if err := systems.InitPersistence(); err != nil {
		logger.Warn("continuing without persistence", zap.Error(err))
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Hanapop")

	if err := ebiten.RunGame(NewGame(tiers)); err != nil {
		logger.Fatal("game loop", zap.Error(err))
	}
}
