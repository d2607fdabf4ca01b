package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a screen of the application with its own update and
// rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Resizable 是一个可选接口，用于接收视口尺寸变化
//
// 画笔的画布与视口等大，窗口缩放或切换全屏时需要重新分配。
// SceneManager 仅在尺寸真正改变时调用 Resize，切换场景时会把当前尺寸补发给新场景。
type Resizable interface {
	Resize(width, height int)
}
