// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/frozenbrush/pkg/config"
	"github.com/decker502/frozenbrush/pkg/game"
	"github.com/decker502/frozenbrush/pkg/scenes"
	"github.com/decker502/frozenbrush/pkg/utils"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 用户配置文件路径，为空则使用内嵌的 data/brush.yaml
	ConfigPath string
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
	// Fullscreen 以全屏启动，与配置文件中的 window.fullscreen 取或；移动端总是全屏
	Fullscreen bool
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	brushConfig  *config.BrushConfig

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 使用内嵌配置时，调用此函数前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	brushConfig, err := config.ResolveBrushConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("画笔配置加载失败: %w", err)
	}
	if cfg.Fullscreen || utils.IsMobile() {
		brushConfig.Window.Fullscreen = true
	}
	log.Printf("[Config] 窗口 %dx%d, fadeAlpha=%.0f, strokeWeight=%.2f, tps=%d",
		brushConfig.Window.Width, brushConfig.Window.Height,
		brushConfig.Render.FadeAlpha, brushConfig.Render.StrokeWeight, brushConfig.TPS)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[App] Random seed: %d", seed)

	sceneManager := game.NewSceneManager()
	brushScene := scenes.NewBrushScene(brushConfig, utils.NewPointerInput(), rand.New(rand.NewSource(seed)))
	sceneManager.SwitchTo(brushScene)

	return &App{
		sceneManager: sceneManager,
		brushConfig:  brushConfig,
	}, nil
}

// ApplyWindowSettings 把配置中的窗口参数应用到 ebiten
// 必须在 ebiten.RunGame 之前调用
func (a *App) ApplyWindowSettings() {
	w := a.brushConfig.Window
	ebiten.SetWindowSize(w.Width, w.Height)
	ebiten.SetWindowTitle(w.Title)
	if w.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetFullscreen(w.Fullscreen)
	ebiten.SetTPS(a.brushConfig.TPS)
}

// Update 更新应用逻辑
// 每个 tick 调用一次
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.brushConfig.Window.Width, a.brushConfig.Window.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.brushConfig.Window.Width, a.brushConfig.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(utils.KeyToggleFullscreen) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.sceneManager.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 返回逻辑屏幕尺寸
// 画布始终与窗口等大，尺寸变化会转发给当前场景
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.sceneManager.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// BrushConfig 返回生效的画笔配置
func (a *App) BrushConfig() *config.BrushConfig {
	return a.brushConfig
}
