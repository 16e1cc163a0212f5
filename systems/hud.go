package systems

import (
	"fmt"
	"image"

	"github.com/automoto/hanapop/assets"
	"github.com/automoto/hanapop/components"
	cfg "github.com/automoto/hanapop/config"
	"github.com/automoto/hanapop/fonts"
	"github.com/automoto/hanapop/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 20
	heartSpacing  = 40
	swatchScale   = 1.5
	sugoiBannerW  = 160
	sugoiBannerH  = 40
)

var hudDrawOp = &ebiten.DrawImageOptions{}
var sugoiBanner *ebiten.Image

// DrawHUD renders score, combo, the affinity swatch and the life hearts.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := session(e)
	if !ok {
		return
	}
	game := components.Game.Get(entry)
	face := fonts.Regular.Get()

	text.Draw(screen, fmt.Sprintf("SCORE %d", game.Score), face,
		hudMargin, hudMargin, cfg.White)

	comboColor := cfg.White
	if game.Combo > game.Tier.ComboMin {
		comboColor = cfg.Yellow
	}
	text.Draw(screen, fmt.Sprintf("COMBO %d", game.Combo), face,
		hudMargin, hudMargin+fonts.LineHeight()+4, comboColor)

	drawAffinitySwatch(game, screen)
	drawHearts(e, screen)
}

// drawAffinitySwatch shows the currently scoring ball color in the top-right
// corner, slightly enlarged.
func drawAffinitySwatch(game *components.GameData, screen *ebiten.Image) {
	band := 0
	for i, c := range cfg.AffinityCycle {
		if c == game.Affinity {
			band = i
			break
		}
	}

	tile := cfg.C.TileSize
	src := image.Rect(band*tile, 0, (band+1)*tile, tile)
	swatch := assets.BallsSheet().SubImage(src).(*ebiten.Image)

	hudDrawOp.GeoM.Reset()
	hudDrawOp.GeoM.Scale(swatchScale, swatchScale)
	hudDrawOp.GeoM.Translate(
		float64(cfg.C.Width)-float64(tile)*swatchScale-hudMargin,
		hudMargin)
	screen.DrawImage(swatch, hudDrawOp)
}

func drawHearts(e *ecs.ECS, screen *ebiten.Image) {
	player, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	life := components.Life.Get(player)

	heart := assets.HeartImage()
	y := float64(cfg.C.Height - cfg.C.TileSize + (cfg.C.TileSize-assets.HeartSize)/2)
	for i := 0; i < life.Points; i++ {
		hudDrawOp.GeoM.Reset()
		hudDrawOp.GeoM.Translate(float64(hudMargin+i*heartSpacing), y)
		screen.DrawImage(heart, hudDrawOp)
	}
}

// DrawSugoi renders the tweened celebration banner while its window is open.
func DrawSugoi(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := session(e)
	if !ok {
		return
	}
	game := components.Game.Get(entry)
	if game.SugoiScale == nil || game.SinceSugoi > SugoiDisplaySeconds {
		return
	}

	// The bitmap face cannot be sized, so the text goes through an
	// offscreen image that the tween scales up.
	if sugoiBanner == nil {
		sugoiBanner = ebiten.NewImage(sugoiBannerW, sugoiBannerH)
	}
	sugoiBanner.Clear()
	text.Draw(sugoiBanner, "SUGOI !!", fonts.Title.Get(),
		sugoiBannerW/2-28, sugoiBannerH/2+4, cfg.Yellow)

	scale := float64(game.SugoiValue) * 4
	hudDrawOp.GeoM.Reset()
	hudDrawOp.GeoM.Translate(-sugoiBannerW/2, -sugoiBannerH/2)
	hudDrawOp.GeoM.Scale(scale, scale)
	hudDrawOp.GeoM.Translate(float64(cfg.C.Width)/2, float64(cfg.C.Height)/3)
	screen.DrawImage(sugoiBanner, hudDrawOp)
}
