package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer the game uses.
const Default ecs.LayerID = 0

// Config contains display-level constants.
type Config struct {
	Width  int
	Height int

	// TileSize is the side of one arena tile in pixels. Walls, balls and the
	// ball sprite sheet color bands are all TileSize wide.
	TileSize int
}

// MaxTickSeconds caps a single simulation step so a stalled frame cannot
// teleport entities through each other.
const MaxTickSeconds = 0.5

var C *Config

// Shared RGBA color constants. Red/Blue/Green/Yellow are the four ball color
// bands and double as the affinity cycle.
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Pink         = color.RGBA{R: 255, G: 160, B: 210, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 120}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
)

// AffinityCycle is the rotation order of the affinity color.
var AffinityCycle = []color.RGBA{Red, Blue, Green, Yellow}

func init() {
	C = &Config{
		Width:    768,
		Height:   768,
		TileSize: 64,
	}
}
