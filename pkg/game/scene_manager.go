package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager controls which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene

	// 最近一次 Layout 的视口尺寸，0 表示尚未收到
	width, height int
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo changes the active scene to the provided scene.
// If the viewport size is already known and the scene is Resizable, it is
// resized before its first Update.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
	if r, ok := scene.(Resizable); ok && sm.width > 0 && sm.height > 0 {
		r.Resize(sm.width, sm.height)
	}
}

// GetCurrentScene 返回当前活动的场景，没有活动场景时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Layout 记录视口尺寸，尺寸变化时通知实现了 Resizable 的当前场景
func (sm *SceneManager) Layout(width, height int) {
	if width == sm.width && height == sm.height {
		return
	}
	log.Printf("[SceneManager] 视口尺寸变化: %dx%d -> %dx%d", sm.width, sm.height, width, height)
	sm.width, sm.height = width, height

	if r, ok := sm.currentScene.(Resizable); ok {
		r.Resize(width, height)
	}
}

// Size returns the last viewport size passed to Layout.
func (sm *SceneManager) Size() (width, height int) {
	return sm.width, sm.height
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
