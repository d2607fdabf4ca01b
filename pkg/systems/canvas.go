package systems

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/frozenbrush/pkg/utils"
)

// Canvas is the set of drawing primitives the mesh renderer needs.
type Canvas interface {
	// Size returns the canvas size in pixels.
	Size() (width, height int)

	// FillRect fills an axis-aligned rectangle, blending with existing content.
	FillRect(x, y, width, height float32, clr color.Color)

	// FillTriangle fills a triangle without an outline.
	FillTriangle(a, b, c utils.Vec2, clr color.Color)

	// StrokeTriangle draws the outline of a triangle without filling it.
	StrokeTriangle(a, b, c utils.Vec2, strokeWidth float32, clr color.Color)
}

var (
	whiteImage = ebiten.NewImage(3, 3)

	// whiteSubImage 三角形填充用的纯白纹理
	// 取中心像素，避免线性过滤时采样到边缘
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// EbitenCanvas draws onto an ebiten image.
type EbitenCanvas struct {
	dst       *ebiten.Image
	antialias bool
	vertices  []ebiten.Vertex
	indices   []uint16
}

// NewEbitenCanvas wraps dst as a Canvas.
func NewEbitenCanvas(dst *ebiten.Image, antialias bool) *EbitenCanvas {
	return &EbitenCanvas{
		dst:       dst,
		antialias: antialias,
		vertices:  make([]ebiten.Vertex, 3),
		indices:   []uint16{0, 1, 2},
	}
}

// Image returns the wrapped image.
func (c *EbitenCanvas) Image() *ebiten.Image {
	return c.dst
}

// Size 实现 Canvas 接口
func (c *EbitenCanvas) Size() (int, int) {
	b := c.dst.Bounds()
	return b.Dx(), b.Dy()
}

// FillRect 实现 Canvas 接口
func (c *EbitenCanvas) FillRect(x, y, width, height float32, clr color.Color) {
	vector.DrawFilledRect(c.dst, x, y, width, height, clr, c.antialias)
}

// FillTriangle 实现 Canvas 接口
func (c *EbitenCanvas) FillTriangle(a, b, p utils.Vec2, clr color.Color) {
	r, g, bl, al := clr.RGBA()
	for i, pt := range [3]utils.Vec2{a, b, p} {
		c.vertices[i] = ebiten.Vertex{
			DstX:   float32(pt.X),
			DstY:   float32(pt.Y),
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(r) / 0xffff,
			ColorG: float32(g) / 0xffff,
			ColorB: float32(bl) / 0xffff,
			ColorA: float32(al) / 0xffff,
		}
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = c.antialias
	c.dst.DrawTriangles(c.vertices, c.indices, whiteSubImage, op)
}

// StrokeTriangle 实现 Canvas 接口
func (c *EbitenCanvas) StrokeTriangle(a, b, p utils.Vec2, strokeWidth float32, clr color.Color) {
	c.strokeLine(a, b, strokeWidth, clr)
	c.strokeLine(b, p, strokeWidth, clr)
	c.strokeLine(p, a, strokeWidth, clr)
}

func (c *EbitenCanvas) strokeLine(from, to utils.Vec2, strokeWidth float32, clr color.Color) {
	vector.StrokeLine(c.dst, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), strokeWidth, clr, c.antialias)
}
