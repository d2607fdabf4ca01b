package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/decker502/frozenbrush/pkg/embedded"
)

// DefaultBrushConfigPath 内嵌默认配置的路径
const DefaultBrushConfigPath = "data/brush.yaml"

// BrushConfig 画笔的窗口与外观配置
//
// 只描述呈现层参数。粒子寿命、衰减与距离阈值等模拟参数是编译期常量，
// 不从配置文件读取。
//
// 配置文件位置: data/brush.yaml
type BrushConfig struct {
	Window WindowConfig `yaml:"window"`
	Render RenderConfig `yaml:"render"`
	HUD    HUDConfig    `yaml:"hud"`

	// TPS 每秒更新次数
	TPS int `yaml:"tps"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Resizable  bool   `yaml:"resizable"`
	Fullscreen bool   `yaml:"fullscreen"`
}

// RenderConfig 绘制配置，颜色数值使用 HSB-360 刻度
type RenderConfig struct {
	// Background 背景灰度 (0~360)
	Background float64 `yaml:"background"`

	// FadeAlpha 每帧渐隐遮罩的透明度 (0~360)
	FadeAlpha float64 `yaml:"fadeAlpha"`

	// StrokeWeight 描边模式线宽
	StrokeWeight float64 `yaml:"strokeWeight"`

	Antialias   bool `yaml:"antialias"`
	StartFilled bool `yaml:"startFilled"`
}

// HUDConfig 调试面板配置
type HUDConfig struct {
	Visible bool `yaml:"visible"`
}

// DefaultBrushConfig 返回与 data/brush.yaml 一致的默认配置
func DefaultBrushConfig() *BrushConfig {
	return &BrushConfig{
		Window: WindowConfig{
			Width:     1280,
			Height:    800,
			Title:     "Frozen Brush",
			Resizable: true,
		},
		Render: RenderConfig{
			Background:   0,
			FadeAlpha:    30,
			StrokeWeight: 0.1,
			Antialias:    true,
		},
		TPS: 60,
	}
}

// LoadBrushConfig 从文件系统加载画笔配置
//
// 参数:
//   - path: 配置文件路径
//
// 返回:
//   - *BrushConfig: 校验通过的配置
//   - error: 读取、解析或校验失败时返回错误
func LoadBrushConfig(path string) (*BrushConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read brush config: %w", err)
	}
	return ParseBrushConfig(data)
}

// LoadEmbeddedBrushConfig 加载内嵌的默认配置 data/brush.yaml
//
// 调用前必须先调用 embedded.Init()。
func LoadEmbeddedBrushConfig() (*BrushConfig, error) {
	data, err := embedded.ReadFile(DefaultBrushConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded brush config: %w", err)
	}
	return ParseBrushConfig(data)
}

// ResolveBrushConfig 优先加载用户指定的配置文件，path 为空时使用内嵌默认配置
func ResolveBrushConfig(path string) (*BrushConfig, error) {
	if path != "" {
		return LoadBrushConfig(path)
	}
	return LoadEmbeddedBrushConfig()
}

// ParseBrushConfig 解析 YAML 格式的画笔配置
//
// 文件中缺省的字段保留 DefaultBrushConfig 中的值。
func ParseBrushConfig(data []byte) (*BrushConfig, error) {
	config := DefaultBrushConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse brush config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid brush config: %w", err)
	}

	return config, nil
}

// Validate 验证配置有效性
func (c *BrushConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}

	if c.Render.Background < 0 || c.Render.Background > 360 {
		return fmt.Errorf("background must be in [0, 360], got %.2f", c.Render.Background)
	}

	// 0 会让旧网格永不消退，360 则等价于每帧清屏
	if c.Render.FadeAlpha <= 0 || c.Render.FadeAlpha > 360 {
		return fmt.Errorf("fadeAlpha must be in (0, 360], got %.2f", c.Render.FadeAlpha)
	}

	if c.Render.StrokeWeight <= 0 {
		return fmt.Errorf("strokeWeight must be positive, got %.2f", c.Render.StrokeWeight)
	}

	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}

	return nil
}
