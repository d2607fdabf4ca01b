// Package delaunay adapts github.com/fogleman/delaunay to the flat index
// triples the mesh renderer consumes.
//
// On top of the library it adds input checks, collapses coincident points
// before triangulating and normalises every triangle to a positive winding
// while keeping its first vertex first.
//
// Example usage:
//
//	indices, err := delaunay.Triangulate([]delaunay.Point{{0, 0}, {10, 0}, {0, 10}})
//	if err != nil {
//	    return err
//	}
//	for i := 0; i+2 < len(indices); i += 3 {
//	    a, b, c := indices[i], indices[i+1], indices[i+2]
//	    ...
//	}
package delaunay

import (
	"errors"
	"math"
	"sort"

	fdelaunay "github.com/fogleman/delaunay"
)

// Point is a 2D input vertex.
type Point struct {
	X, Y float64
}

var (
	// ErrTooFewPoints is returned when fewer than 3 points are supplied.
	ErrTooFewPoints = errors.New("delaunay: at least 3 points are required")

	// ErrNonFinitePoint is returned when a coordinate is NaN or infinite.
	ErrNonFinitePoint = errors.New("delaunay: point coordinates must be finite")
)

const (
	// coincidentEpsilon 坐标差小于该值的点视为同一个点，只参与一次剖分
	coincidentEpsilon = 1e-9

	// degenerateEpsilon 面积（叉积）小于该值的三角形视为退化
	degenerateEpsilon = 1e-12
)

// Triangulate returns the Delaunay triangulation of points as a flat slice of
// vertex indices, three per triangle, referring back into points.
//
// Every triangle is emitted with a positive signed area. Coincident points are
// triangulated once, so only the first of them appears in the output. Input
// with no triangulation (all points collinear or coincident) yields an empty
// slice and no error.
func Triangulate(points []Point) ([]int, error) {
	if len(points) < 3 {
		return nil, ErrTooFewPoints
	}
	for _, p := range points {
		if !isFinite(p.X) || !isFinite(p.Y) {
			return nil, ErrNonFinitePoint
		}
	}

	unique, origin := dedupe(points)
	if len(unique) < 3 || collinear(unique) {
		return []int{}, nil
	}

	tri, err := fdelaunay.Triangulate(unique)
	if err != nil {
		// 库只在不存在非退化三角形时返回错误，上面的共线检查已覆盖该情况
		return []int{}, nil
	}

	indices := make([]int, 0, len(tri.Triangles))
	for i := 0; i+2 < len(tri.Triangles); i += 3 {
		a, b, c := tri.Triangles[i], tri.Triangles[i+1], tri.Triangles[i+2]
		area := cross(unique[a], unique[b], unique[c])
		if math.Abs(area) < degenerateEpsilon {
			continue
		}
		if area < 0 {
			b, c = c, b
		}
		indices = append(indices, origin[a], origin[b], origin[c])
	}
	return indices, nil
}

// dedupe drops points coincident with an earlier one. origin maps each kept
// point back to its index in points.
func dedupe(points []Point) (unique []fdelaunay.Point, origin []int) {
	order := make([]int, len(points))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		pi, pj := points[order[i]], points[order[j]]
		if pi.X != pj.X {
			return pi.X < pj.X
		}
		return pi.Y < pj.Y
	})

	keep := make([]bool, len(points))
	last := -1
	for _, i := range order {
		if last >= 0 && coincident(points[i], points[last]) {
			continue
		}
		keep[i] = true
		last = i
	}

	// 按原顺序输出，保证重复点中保留的是下标最小的那个
	for i, p := range points {
		if keep[i] {
			unique = append(unique, fdelaunay.Point{X: p.X, Y: p.Y})
			origin = append(origin, i)
		}
	}
	return unique, origin
}

// collinear reports whether all points lie on one line.
func collinear(points []fdelaunay.Point) bool {
	a, b := points[0], points[1]
	for _, c := range points[2:] {
		if math.Abs((b.X-a.X)*(c.Y-a.Y)-(b.Y-a.Y)*(c.X-a.X)) >= degenerateEpsilon {
			return false
		}
	}
	return true
}

func cross(a, b, c fdelaunay.Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func coincident(p, q Point) bool {
	return math.Abs(p.X-q.X) < coincidentEpsilon && math.Abs(p.Y-q.Y) < coincidentEpsilon
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
