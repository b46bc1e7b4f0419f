//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD draws a one-line status strip over the simulation view.
type HUD struct {
	face *basicfont.Face
}

// NewHUD constructs a HUD instance.
func NewHUD() *HUD {
	return &HUD{face: basicfont.Face7x13}
}

// Draw renders the round counter, grid side length and lit-pixel count in
// the top-left corner.
func (h *HUD) Draw(screen *ebiten.Image, round, size, on int) {
	line := fmt.Sprintf("round %d  size %d  on %d", round, size, on)
	text.Draw(screen, line, h.face, 4, 14, color.RGBA{R: 40, G: 220, B: 40, A: 255})
}
