package utils

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// HSBMax HSB 颜色模式下每个通道的最大值（色相、饱和度、亮度、透明度共用）
const HSBMax = 360.0

// WrapHue 将色相折回 [0, 360) 区间
func WrapHue(hue float64) float64 {
	h := math.Mod(hue, HSBMax)
	if h < 0 {
		h += HSBMax
	}
	return h
}

// HSB360 将 HSB-360 颜色（三个通道都在 0~360 之间）转换为不透明的 RGBA 颜色
//
// 色相会被折回 [0, 360)，饱和度和亮度会被截断到 [0, 360]。
func HSB360(hue, saturation, brightness float64) color.RGBA {
	s := clamp01(saturation / HSBMax)
	v := clamp01(brightness / HSBMax)
	c := colorful.Hsv(WrapHue(hue), s, v).Clamped()
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// GrayAlpha360 返回 HSB-360 模式下的灰度 + 透明度颜色（预乘 alpha）
//
// gray 和 alpha 都在 0~360 之间，例如 GrayAlpha360(0, 30) 为 30/360 不透明度的黑色。
func GrayAlpha360(gray, alpha float64) color.RGBA {
	a := clamp01(alpha / HSBMax)
	g := clamp01(gray/HSBMax) * a
	return color.RGBA{
		R: uint8(math.Round(g * 0xff)),
		G: uint8(math.Round(g * 0xff)),
		B: uint8(math.Round(g * 0xff)),
		A: uint8(math.Round(a * 0xff)),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
