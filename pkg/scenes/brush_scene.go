package scenes

import (
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/frozenbrush/pkg/config"
	"github.com/decker502/frozenbrush/pkg/game"
	"github.com/decker502/frozenbrush/pkg/systems"
	"github.com/decker502/frozenbrush/pkg/utils"
)

// BrushScene 画笔场景
//
// 持有粒子系统、网格渲染器和与视口等大的离屏画布。
// 每次 Update 依次执行：读取输入 → 生成粒子 / 切换模式 → 推进一步模拟 → 在离屏画布上绘制一帧。
// 离屏画布不会被清空，旧网格靠每帧的半透明遮罩逐渐淡出；Draw 只负责把画布贴到屏幕上。
type BrushScene struct {
	input     utils.InputSource
	particles *systems.ParticleSystem
	mesh      *systems.MeshRenderSystem
	hud       *systems.HUDRenderSystem

	canvasImage *ebiten.Image
	canvas      *systems.EbitenCanvas
	background  float64
	antialias   bool

	useFill bool
	showHUD bool

	lastFrame systems.FrameStats
	lastErr   error
}

var _ game.Resizable = (*BrushScene)(nil)

// NewBrushScene 创建画笔场景
//
// 参数:
//   - cfg: 已校验的画笔配置
//   - input: 每个 tick 的输入来源
//   - rng: 粒子初速度方向的随机源
//
// 画布先按配置中的窗口尺寸分配，收到第一次 Resize 后按实际视口重新分配。
func NewBrushScene(cfg *config.BrushConfig, input utils.InputSource, rng *rand.Rand) *BrushScene {
	s := &BrushScene{
		input:      input,
		particles:  systems.NewParticleSystem(rng, config.MaxLevel),
		mesh:       systems.NewMeshRenderSystem(nil, systems.MeshStyleFromConfig(cfg.Render)),
		hud:        systems.NewHUDRenderSystem(),
		background: cfg.Render.Background,
		antialias:  cfg.Render.Antialias,
		useFill:    cfg.Render.StartFilled,
		showHUD:    cfg.HUD.Visible,
	}
	s.Resize(cfg.Window.Width, cfg.Window.Height)
	return s
}

// Update 推进一个 tick
func (s *BrushScene) Update(deltaTime float64) {
	in := s.input.Poll()

	for _, drag := range in.Drags {
		s.particles.SpawnFromInput(drag.X, drag.Y)
	}

	// 同一 tick 内成对的切换相互抵消
	if in.FillToggles%2 != 0 {
		s.useFill = !s.useFill
		log.Printf("[BrushScene] 绘制模式切换: fill=%v", s.useFill)
	}
	if in.ToggleHUD {
		s.showHUD = !s.showHUD
	}

	s.particles.Step()
	s.lastFrame = s.mesh.RenderFrame(s.canvas, s.particles.Particles(), s.useFill)

	// 只在错误状态变化时记录，避免逐帧刷屏
	if s.lastFrame.Err != nil && s.lastErr == nil {
		log.Printf("[BrushScene] 三角剖分失败，本帧跳过网格: %v", s.lastFrame.Err)
	}
	s.lastErr = s.lastFrame.Err
}

// Draw 把离屏画布贴到屏幕上，再按需叠加调试面板
func (s *BrushScene) Draw(screen *ebiten.Image) {
	screen.DrawImage(s.canvasImage, nil)

	if s.showHUD {
		spawned, removed := s.particles.LastStepStats()
		s.hud.Draw(screen, systems.HUDStats{
			Particles: s.particles.Count(),
			Spawned:   spawned,
			Removed:   removed,
			Frame:     s.lastFrame,
			UseFill:   s.useFill,
			TPS:       ebiten.ActualTPS(),
		})
	}
}

// Resize 按新的视口尺寸重新分配画布，并填充为背景色
// 已有的网格轨迹会被丢弃，粒子不受影响
func (s *BrushScene) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if s.canvasImage != nil {
		if b := s.canvasImage.Bounds(); b.Dx() == width && b.Dy() == height {
			return
		}
		s.canvasImage.Deallocate()
	}

	s.canvasImage = ebiten.NewImage(width, height)
	s.canvasImage.Fill(utils.GrayAlpha360(s.background, utils.HSBMax))
	s.canvas = systems.NewEbitenCanvas(s.canvasImage, s.antialias)
}

// UseFill 当前是否为填充模式
func (s *BrushScene) UseFill() bool {
	return s.useFill
}

// ShowHUD 调试面板是否可见
func (s *BrushScene) ShowHUD() bool {
	return s.showHUD
}

// ParticleCount 当前存活粒子数
func (s *BrushScene) ParticleCount() int {
	return s.particles.Count()
}

// LastFrame 最近一次绘制的统计信息
func (s *BrushScene) LastFrame() systems.FrameStats {
	return s.lastFrame
}

// CanvasSize 离屏画布尺寸
func (s *BrushScene) CanvasSize() (int, int) {
	return s.canvas.Size()
}
