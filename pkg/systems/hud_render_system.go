package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// HUDStats is the data shown by the debug overlay.
type HUDStats struct {
	Particles int
	Spawned   int
	Removed   int
	Frame     FrameStats
	UseFill   bool
	TPS       float64
}

// HUDRenderSystem draws a small debug overlay in the top-left corner.
type HUDRenderSystem struct {
	face       *text.GoXFace
	textColor  color.Color
	panelColor color.Color
	lineHeight float64
	padding    float32
}

// NewHUDRenderSystem creates the overlay renderer.
func NewHUDRenderSystem() *HUDRenderSystem {
	return &HUDRenderSystem{
		face:       text.NewGoXFace(basicfont.Face7x13),
		textColor:  color.RGBA{R: 220, G: 240, B: 255, A: 255},
		panelColor: color.RGBA{R: 0, G: 0, B: 0, A: 160},
		lineHeight: 15,
		padding:    6,
	}
}

// Lines formats stats into the overlay's text lines.
func (h *HUDRenderSystem) Lines(stats HUDStats) []string {
	mode := "stroke"
	if stats.UseFill {
		mode = "fill"
	}
	lines := []string{
		fmt.Sprintf("TPS: %.1f", stats.TPS),
		fmt.Sprintf("particles: %d (+%d / -%d)", stats.Particles, stats.Spawned, stats.Removed),
		fmt.Sprintf("triangles: %d drawn / %d rejected", stats.Frame.Drawn, stats.Frame.Rejected),
		fmt.Sprintf("mode: %s", mode),
	}
	if stats.Frame.Err != nil {
		lines = append(lines, fmt.Sprintf("triangulation: %v", stats.Frame.Err))
	}
	return lines
}

// Draw renders the overlay onto screen.
func (h *HUDRenderSystem) Draw(screen *ebiten.Image, stats HUDStats) {
	lines := h.Lines(stats)

	maxWidth := 0.0
	for _, line := range lines {
		if w, _ := text.Measure(line, h.face, h.lineHeight); w > maxWidth {
			maxWidth = w
		}
	}
	panelW := float32(maxWidth) + 2*h.padding
	panelH := float32(float64(len(lines))*h.lineHeight) + 2*h.padding
	vector.DrawFilledRect(screen, 0, 0, panelW, panelH, h.panelColor, false)

	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(h.padding), float64(h.padding)+float64(i)*h.lineHeight)
		op.ColorScale.ScaleWithColor(h.textColor)
		text.Draw(screen, line, h.face, op)
	}
}
