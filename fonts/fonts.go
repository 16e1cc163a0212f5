// Package fonts exposes the text faces used by the HUD and menus. The game
// ships no TTF assets; every name resolves to the fixed bitmap face and the
// banner renderer scales it up when it needs a bigger glyph.
package fonts

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

type FontName string

const (
	Regular FontName = "regular"
	Title   FontName = "title"
)

func (f FontName) Get() font.Face {
	return basicfont.Face7x13
}

// LineHeight is the vertical advance of the face in pixels.
func LineHeight() int {
	return basicfont.Face7x13.Height
}
