package scenes

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/hanapop/config"
	"github.com/automoto/hanapop/fonts"
	"github.com/automoto/hanapop/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ScoreScene shows the finished run's score next to the stored best.
type ScoreScene struct {
	sceneChanger SceneChanger
	tiers        cfg.Tiers
	difficulty   cfg.Difficulty
	score        int
	best         int
}

func NewScoreScene(sc SceneChanger, tiers cfg.Tiers, difficulty cfg.Difficulty, score, best int) *ScoreScene {
	return &ScoreScene{
		sceneChanger: sc,
		tiers:        tiers,
		difficulty:   difficulty,
		score:        score,
		best:         best,
	}
}

func (ss *ScoreScene) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		systems.PlaySFX(cfg.SoundMenuSelect)
		ss.sceneChanger.ChangeScene(NewMenuScene(ss.sceneChanger, ss.tiers))
	}
}

func (ss *ScoreScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	vector.DrawFilledRect(screen, 0, 0,
		float32(cfg.C.Width), float32(cfg.C.Height), cfg.BlackOverlay, false)

	face := fonts.Title.Get()
	centerX := cfg.C.Width / 2
	lh := fonts.LineHeight()

	text.Draw(screen, "GAME OVER", face, centerX-32, 260, cfg.Red)
	text.Draw(screen, fmt.Sprintf("difficulty  %s", ss.difficulty), face, centerX-60, 260+3*lh, cfg.White)
	text.Draw(screen, fmt.Sprintf("score       %d", ss.score), face, centerX-60, 260+5*lh, cfg.White)

	bestColor := cfg.White
	if ss.score >= ss.best && ss.score > 0 {
		bestColor = cfg.Yellow
	}
	text.Draw(screen, fmt.Sprintf("best        %d", ss.best), face, centerX-60, 260+7*lh, bestColor)

	text.Draw(screen, "press enter", face, centerX-38, 260+10*lh, cfg.LightBlue)
}
