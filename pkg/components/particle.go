package components

import "github.com/decker502/frozenbrush/pkg/utils"

// Particle represents a single live particle of the brush.
//
// A particle drifts away from where it was born, slows down under friction and
// periodically spawns a child while it still has spawn depth left. It is
// removed once its speed drops below the removal threshold.
//
// This is a pure data component - ParticleSystem owns all behaviour.
type Particle struct {
	// Position 当前位置（屏幕坐标），每步更新
	Position utils.Vec2

	// Velocity 每步位移；每步先乘以摩擦系数再累加到 Position
	Velocity utils.Vec2

	// Level 剩余生成深度
	// 只会减少；Level > 0 时才能生成子粒子，子粒子的 Level 可以为负
	Level int

	// Age 已经历的步数，既是生成计时器也是颜色种子
	Age int
}

// Speed returns the magnitude of the particle's velocity.
func (p *Particle) Speed() float64 {
	return p.Velocity.Mag()
}
