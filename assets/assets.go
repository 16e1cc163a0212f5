// Package assets provides the game's texture sheets. All sprites are
// generated at startup; the repository ships no image files.
package assets

import (
	"image"
	"image/color"
	"math"

	cfg "github.com/automoto/hanapop/config"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// BoxFrames is the number of animation frames in one row of the wall
	// sheet; the full animation is two rows.
	BoxFrames = 18
	BoxRows   = 2

	SakuraSize = 32
	HeartSize  = 32
)

var (
	boxSheet   *ebiten.Image
	ballsSheet *ebiten.Image
	playerImg  *ebiten.Image
	sakuraImg  *ebiten.Image
	heartImg   *ebiten.Image
)

// BoxSheet returns the animated wall tile sheet: BoxFrames columns by
// BoxRows rows of TileSize tiles, pulsing in brightness across the frames.
func BoxSheet() *ebiten.Image {
	if boxSheet == nil {
		boxSheet = ebiten.NewImageFromImage(renderBoxSheet())
	}
	return boxSheet
}

// BallsSheet returns the four ball sprites side by side, one TileSize band
// per color. The band order matches config.AffinityCycle; collision effects
// recover a ball's color from its source sub-rectangle offset.
func BallsSheet() *ebiten.Image {
	if ballsSheet == nil {
		ballsSheet = ebiten.NewImageFromImage(renderBallsSheet())
	}
	return ballsSheet
}

func PlayerImage() *ebiten.Image {
	if playerImg == nil {
		playerImg = ebiten.NewImageFromImage(renderPlayer())
	}
	return playerImg
}

func SakuraImage() *ebiten.Image {
	if sakuraImg == nil {
		sakuraImg = ebiten.NewImageFromImage(renderDisc(SakuraSize, cfg.Pink))
	}
	return sakuraImg
}

func HeartImage() *ebiten.Image {
	if heartImg == nil {
		heartImg = ebiten.NewImageFromImage(renderDisc(HeartSize, cfg.Red))
	}
	return heartImg
}

func renderBoxSheet() *image.RGBA {
	tile := cfg.C.TileSize
	img := image.NewRGBA(image.Rect(0, 0, BoxFrames*tile, BoxRows*tile))

	total := BoxFrames * BoxRows
	for frame := 0; frame < total; frame++ {
		ox := (frame % BoxFrames) * tile
		oy := (frame / BoxFrames) * tile

		// Brightness pulses once over the full animation.
		pulse := 0.5 + 0.5*math.Sin(2*math.Pi*float64(frame)/float64(total))
		base := uint8(90 + pulse*60)
		fill := color.RGBA{R: base, G: base, B: uint8(float64(base) * 1.2), A: 255}
		border := color.RGBA{R: base / 2, G: base / 2, B: base / 2, A: 255}

		for y := 0; y < tile; y++ {
			for x := 0; x < tile; x++ {
				c := fill
				if x < 3 || y < 3 || x >= tile-3 || y >= tile-3 {
					c = border
				}
				img.SetRGBA(ox+x, oy+y, c)
			}
		}
	}
	return img
}

func renderBallsSheet() *image.RGBA {
	tile := cfg.C.TileSize
	img := image.NewRGBA(image.Rect(0, 0, len(cfg.AffinityCycle)*tile, tile))

	r := float64(tile)/2 - 4
	for band, c := range cfg.AffinityCycle {
		cx := float64(band*tile) + float64(tile)/2
		cy := float64(tile) / 2
		fillCircle(img, cx, cy, r, c)
	}
	return img
}

func renderPlayer() *image.RGBA {
	tile := cfg.C.TileSize
	img := image.NewRGBA(image.Rect(0, 0, tile, tile))
	fill := color.RGBA{R: 230, G: 230, B: 245, A: 255}
	for y := 0; y < tile; y++ {
		for x := 0; x < tile; x++ {
			if x < 2 || y < 2 || x >= tile-2 || y >= tile-2 {
				img.SetRGBA(x, y, cfg.Pink)
			} else {
				img.SetRGBA(x, y, fill)
			}
		}
	}
	return img
}

func renderDisc(size int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	fillCircle(img, float64(size)/2, float64(size)/2, float64(size)/2-1, c)
	return img
}

func fillCircle(img *image.RGBA, cx, cy, r float64, c color.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			if dx*dx+dy*dy <= r*r {
				img.SetRGBA(x, y, c)
			}
		}
	}
}
