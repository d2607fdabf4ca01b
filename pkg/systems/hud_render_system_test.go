package systems

import (
	"errors"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// TestHUDLines 调试面板文本内容
func TestHUDLines(t *testing.T) {
	hud := NewHUDRenderSystem()

	lines := hud.Lines(HUDStats{
		Particles: 42,
		Spawned:   3,
		Removed:   1,
		Frame:     FrameStats{Drawn: 10, Rejected: 4},
		UseFill:   true,
		TPS:       60,
	})

	joined := strings.Join(lines, "\n")
	for _, want := range []string{"TPS: 60.0", "particles: 42 (+3 / -1)", "10 drawn / 4 rejected", "mode: fill"} {
		if !strings.Contains(joined, want) {
			t.Errorf("HUD lines missing %q:\n%s", want, joined)
		}
	}
	if len(lines) != 4 {
		t.Errorf("expected 4 lines without an error, got %d", len(lines))
	}
}

// TestHUDLines_StrokeAndError 描边模式与三角剖分错误
func TestHUDLines_StrokeAndError(t *testing.T) {
	hud := NewHUDRenderSystem()

	lines := hud.Lines(HUDStats{Frame: FrameStats{Err: errors.New("degenerate")}})

	if lines[3] != "mode: stroke" {
		t.Errorf("mode line: got %q, want %q", lines[3], "mode: stroke")
	}
	if len(lines) != 5 || !strings.Contains(lines[4], "degenerate") {
		t.Errorf("expected an error line, got %v", lines)
	}
}

// TestHUDDraw 绘制不应 panic
func TestHUDDraw(t *testing.T) {
	hud := NewHUDRenderSystem()
	screen := ebiten.NewImage(320, 240)
	hud.Draw(screen, HUDStats{Particles: 1, TPS: 60})
}
