package config

// 粒子模拟常量
// 这些值是编译期常量，不通过配置文件修改

const (
	// MaxLevel 拖拽生成的粒子的生成深度
	MaxLevel = 5

	// DistanceThreshold 三角形任意两顶点间距超过该值时不绘制（像素）
	// 用于过滤连接两个不相关粒子团的大三角形
	DistanceThreshold = 75.0
)

const (
	// Friction 每步速度乘以该系数
	Friction = 0.9

	// RemovalSpeed 速度（每步位移长度）低于该值的粒子被移除
	RemovalSpeed = 0.01

	// SpawnInterval 每隔多少步尝试生成一次子粒子
	SpawnInterval = 10

	// SpeedAtLevelZero Level 为 0 的粒子的初始速度
	SpeedAtLevelZero = 5.0

	// SpeedAtMaxLevel Level 为 MaxLevel 的粒子的初始速度
	// 中间 Level 线性插值，越深的粒子（Level 越小）越快
	SpeedAtMaxLevel = 2.0
)

// 网格颜色常量（HSB-360 颜色空间）
const (
	// HueBase 年龄为 0 时的色相
	HueBase = 165.0

	// HuePerAge 每步年龄增加的色相
	HuePerAge = 1.5
)
