package utils

import (
	"math"
	"math/rand"
)

// Vec2 二维向量（值类型）
//
// 用于粒子的位置与速度。所有运算返回新值，不修改接收者。
type Vec2 struct {
	X, Y float64
}

// NewVec2 创建二维向量
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// RandomUnitVec2 返回随机方向的单位向量
// 角度在 [0, 2π) 内均匀分布
func RandomUnitVec2(rng *rand.Rand) Vec2 {
	angle := rng.Float64() * 2 * math.Pi
	return Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
}

// Add 向量加法
func (v Vec2) Add(u Vec2) Vec2 {
	return Vec2{X: v.X + u.X, Y: v.Y + u.Y}
}

// Sub 向量减法
func (v Vec2) Sub(u Vec2) Vec2 {
	return Vec2{X: v.X - u.X, Y: v.Y - u.Y}
}

// Scale 标量乘法
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Mag 向量长度
func (v Vec2) Mag() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist 两点间的欧氏距离
func (v Vec2) Dist(u Vec2) float64 {
	return v.Sub(u).Mag()
}

// MapRange 将 value 从 [inMin, inMax] 线性映射到 [outMin, outMax]
// 不做截断，超出输入范围的值按同一斜率外推
func MapRange(value, inMin, inMax, outMin, outMax float64) float64 {
	if inMax == inMin {
		return outMin
	}
	return outMin + (value-inMin)/(inMax-inMin)*(outMax-outMin)
}
