package systems

import (
	"image/color"

	"github.com/decker502/frozenbrush/internal/delaunay"
	"github.com/decker502/frozenbrush/pkg/components"
	"github.com/decker502/frozenbrush/pkg/config"
	"github.com/decker502/frozenbrush/pkg/utils"
)

// TriangulateFunc triangulates points and returns a flat slice of vertex
// indices, three per triangle, referring back into points.
type TriangulateFunc func(points []delaunay.Point) ([]int, error)

// MeshStyle holds the visual parameters of the mesh.
type MeshStyle struct {
	// FadeColor 每帧覆盖整个画布的半透明遮罩颜色
	FadeColor color.Color

	// StrokeWidth 描边模式下的线宽
	StrokeWidth float32

	// HueBase / HuePerAge 色相 = HueBase + 第一个顶点的 Age × HuePerAge
	HueBase   float64
	HuePerAge float64

	// Saturation / Brightness HSB-360 饱和度与亮度
	Saturation float64
	Brightness float64

	// DistanceThreshold 任意两顶点距离超过该值的三角形被丢弃
	DistanceThreshold float64
}

// DefaultMeshStyle returns the brush's stock look.
func DefaultMeshStyle() MeshStyle {
	return MeshStyle{
		FadeColor:         utils.GrayAlpha360(0, 30),
		StrokeWidth:       0.1,
		HueBase:           config.HueBase,
		HuePerAge:         config.HuePerAge,
		Saturation:        utils.HSBMax,
		Brightness:        utils.HSBMax,
		DistanceThreshold: config.DistanceThreshold,
	}
}

// FrameStats describes what a single RenderFrame call did.
type FrameStats struct {
	Particles  int   // 参与本帧的粒子数
	Candidates int   // 三角剖分得到的候选三角形数
	Drawn      int   // 实际绘制的三角形数
	Rejected   int   // 因边长超过阈值被丢弃的三角形数
	Err        error // 三角剖分失败时的错误（本帧不绘制三角形）
}

// MeshRenderSystem turns particle positions into a filtered triangle mesh and
// draws it with a fading trail.
//
// The mesh is a pure function of the current positions: it is recomputed
// from scratch every frame and nothing is cached between frames.
type MeshRenderSystem struct {
	triangulate TriangulateFunc
	style       MeshStyle
	points      []delaunay.Point // 复用的坐标缓冲区
}

// NewMeshRenderSystem creates a mesh renderer. A nil triangulate uses
// delaunay.Triangulate.
func NewMeshRenderSystem(triangulate TriangulateFunc, style MeshStyle) *MeshRenderSystem {
	if triangulate == nil {
		triangulate = delaunay.Triangulate
	}
	return &MeshRenderSystem{
		triangulate: triangulate,
		style:       style,
	}
}

// Style returns the renderer's visual parameters.
func (s *MeshRenderSystem) Style() MeshStyle {
	return s.style
}

// RenderFrame draws one frame of the mesh onto canvas.
//
// The canvas is dimmed with FadeColor instead of being cleared. With fewer
// than three particles no triangulation is attempted. Triangles with any edge
// longer than DistanceThreshold are skipped; the rest are drawn in
// triangulation order, filled when useFill is true and outlined otherwise.
func (s *MeshRenderSystem) RenderFrame(canvas Canvas, particles []components.Particle, useFill bool) FrameStats {
	stats := FrameStats{Particles: len(particles)}

	w, h := canvas.Size()
	canvas.FillRect(0, 0, float32(w), float32(h), s.style.FadeColor)

	if len(particles) < 3 {
		return stats
	}

	s.points = s.points[:0]
	for i := range particles {
		pos := particles[i].Position
		s.points = append(s.points, delaunay.Point{X: pos.X, Y: pos.Y})
	}

	indices, err := s.triangulate(s.points)
	if err != nil {
		stats.Err = err
		return stats
	}

	for i := 0; i+2 < len(indices); i += 3 {
		stats.Candidates++
		p1 := &particles[indices[i]]
		p2 := &particles[indices[i+1]]
		p3 := &particles[indices[i+2]]

		if !s.withinThreshold(p1.Position, p2.Position, p3.Position) {
			stats.Rejected++
			continue
		}

		clr := s.TriangleColor(p1.Age)
		if useFill {
			canvas.FillTriangle(p1.Position, p2.Position, p3.Position, clr)
		} else {
			canvas.StrokeTriangle(p1.Position, p2.Position, p3.Position, s.style.StrokeWidth, clr)
		}
		stats.Drawn++
	}

	return stats
}

// TriangleColor returns the colour of a triangle whose first vertex has the
// given age.
func (s *MeshRenderSystem) TriangleColor(age int) color.RGBA {
	hue := s.style.HueBase + float64(age)*s.style.HuePerAge
	return utils.HSB360(hue, s.style.Saturation, s.style.Brightness)
}

// withinThreshold reports whether all three pairwise distances are at most
// the distance threshold.
func (s *MeshRenderSystem) withinThreshold(a, b, c utils.Vec2) bool {
	limit := s.style.DistanceThreshold
	return a.Dist(b) <= limit && b.Dist(c) <= limit && a.Dist(c) <= limit
}

// MeshStyleFromConfig applies the render settings of a brush config on top of
// DefaultMeshStyle.
func MeshStyleFromConfig(render config.RenderConfig) MeshStyle {
	style := DefaultMeshStyle()
	style.FadeColor = utils.GrayAlpha360(render.Background, render.FadeAlpha)
	style.StrokeWidth = float32(render.StrokeWeight)
	return style
}
