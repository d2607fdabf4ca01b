package systems

import (
	"math/rand"

	"github.com/decker502/frozenbrush/pkg/components"
	"github.com/decker502/frozenbrush/pkg/config"
	"github.com/decker502/frozenbrush/pkg/utils"
)

// ParticleSystem owns the live particle collection of the brush.
//
// It creates particles from pointer drags, advances every particle once per
// frame, spawns children on the spawn timer and prunes particles that have
// come to rest. The collection is never exposed directly; renderers read it
// through Particles, which returns a copy.
//
// Each Step processes particles in two phases:
//  1. Advance every particle present at the start of the step, collecting
//     children and marking particles that fell below the removal speed
//  2. Compact survivors in their original order and append the children
//
// Children are therefore not advanced in the step that created them.
type ParticleSystem struct {
	particles []components.Particle
	children  []components.Particle // 复用的子粒子缓冲区
	rng       *rand.Rand
	maxLevel  int

	// 上一步的统计信息（用于调试面板）
	lastSpawned int
	lastRemoved int
}

// NewParticleSystem creates a new ParticleSystem.
// rng seeds every random launch direction; maxLevel is the spawn depth given
// to particles created from input.
func NewParticleSystem(rng *rand.Rand, maxLevel int) *ParticleSystem {
	return &ParticleSystem{
		particles: make([]components.Particle, 0, 256),
		rng:       rng,
		maxLevel:  maxLevel,
	}
}

// SpawnFromInput appends a new particle at (x, y) with the full spawn depth.
func (ps *ParticleSystem) SpawnFromInput(x, y float64) {
	ps.particles = append(ps.particles, ps.newParticle(utils.NewVec2(x, y), ps.maxLevel))
}

// Step advances every live particle by one frame.
func (ps *ParticleSystem) Step() {
	ps.children = ps.children[:0]
	alive := 0

	for i := range ps.particles {
		p := &ps.particles[i]

		p.Age++
		p.Velocity = p.Velocity.Scale(config.Friction)
		p.Position = p.Position.Add(p.Velocity)

		// 生成子粒子：父粒子先降一级，子粒子再比父粒子低一级
		if p.Age%config.SpawnInterval == 0 && p.Level > 0 {
			p.Level--
			ps.children = append(ps.children, ps.newParticle(p.Position, p.Level-1))
		}

		if p.Speed() < config.RemovalSpeed {
			continue
		}

		// 标记-压缩：存活粒子按原顺序前移
		ps.particles[alive] = *p
		alive++
	}

	ps.lastRemoved = len(ps.particles) - alive
	ps.lastSpawned = len(ps.children)
	ps.particles = append(ps.particles[:alive], ps.children...)
}

// Particles returns a snapshot of the live particles in collection order.
func (ps *ParticleSystem) Particles() []components.Particle {
	snapshot := make([]components.Particle, len(ps.particles))
	copy(snapshot, ps.particles)
	return snapshot
}

// Count returns the number of live particles.
func (ps *ParticleSystem) Count() int {
	return len(ps.particles)
}

// LastStepStats returns how many children were spawned and how many particles
// were removed during the most recent Step.
func (ps *ParticleSystem) LastStepStats() (spawned, removed int) {
	return ps.lastSpawned, ps.lastRemoved
}

// newParticle creates a particle at pos moving in a random direction with the
// launch speed of its level.
func (ps *ParticleSystem) newParticle(pos utils.Vec2, level int) components.Particle {
	return components.Particle{
		Position: pos,
		Velocity: utils.RandomUnitVec2(ps.rng).Scale(LaunchSpeed(level, ps.maxLevel)),
		Level:    level,
		Age:      0,
	}
}

// LaunchSpeed maps level linearly from [0, maxLevel] onto
// [SpeedAtLevelZero, SpeedAtMaxLevel]. Levels outside the range extrapolate,
// so negative levels launch faster than level 0.
func LaunchSpeed(level, maxLevel int) float64 {
	return utils.MapRange(float64(level), 0, float64(maxLevel), config.SpeedAtLevelZero, config.SpeedAtMaxLevel)
}
