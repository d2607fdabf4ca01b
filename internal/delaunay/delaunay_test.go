package delaunay

import (
	"errors"
	"math"
	"math/rand"
	"sort"
	"testing"
)

// TestTriangulate_TooFewPoints 少于 3 个点时返回 ErrTooFewPoints
func TestTriangulate_TooFewPoints(t *testing.T) {
	inputs := [][]Point{
		nil,
		{},
		{{1, 1}},
		{{1, 1}, {2, 2}},
	}
	for _, pts := range inputs {
		indices, err := Triangulate(pts)
		if !errors.Is(err, ErrTooFewPoints) {
			t.Errorf("Triangulate(%v): expected ErrTooFewPoints, got %v", pts, err)
		}
		if len(indices) != 0 {
			t.Errorf("Triangulate(%v): expected no indices, got %v", pts, indices)
		}
	}
}

// TestTriangulate_NonFinite NaN/Inf 坐标被拒绝
func TestTriangulate_NonFinite(t *testing.T) {
	pts := []Point{{0, 0}, {1, 0}, {math.NaN(), 1}}
	if _, err := Triangulate(pts); !errors.Is(err, ErrNonFinitePoint) {
		t.Errorf("expected ErrNonFinitePoint, got %v", err)
	}

	pts = []Point{{0, 0}, {1, 0}, {math.Inf(1), 1}}
	if _, err := Triangulate(pts); !errors.Is(err, ErrNonFinitePoint) {
		t.Errorf("expected ErrNonFinitePoint, got %v", err)
	}
}

// TestTriangulate_SingleTriangle 三个点恰好生成一个三角形
func TestTriangulate_SingleTriangle(t *testing.T) {
	pts := []Point{{100, 100}, {150, 100}, {120, 140}}
	indices, err := Triangulate(pts)
	if err != nil {
		t.Fatalf("Triangulate failed: %v", err)
	}
	if len(indices) != 3 {
		t.Fatalf("expected 1 triangle (3 indices), got %d indices: %v", len(indices), indices)
	}

	seen := map[int]bool{}
	for _, idx := range indices {
		seen[idx] = true
	}
	for i := range pts {
		if !seen[i] {
			t.Errorf("point %d missing from triangle %v", i, indices)
		}
	}
}

// TestTriangulate_Square 正方形（四点共圆）生成两个三角形
func TestTriangulate_Square(t *testing.T) {
	pts := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	indices, err := Triangulate(pts)
	if err != nil {
		t.Fatalf("Triangulate failed: %v", err)
	}
	if len(indices) != 6 {
		t.Fatalf("expected 2 triangles, got %d indices: %v", len(indices), indices)
	}

	total := 0.0
	for i := 0; i < len(indices); i += 3 {
		total += math.Abs(signedArea(pts[indices[i]], pts[indices[i+1]], pts[indices[i+2]])) / 2
	}
	if math.Abs(total-100) > 1e-9 {
		t.Errorf("triangles should cover the square exactly, total area %v", total)
	}
}

// TestTriangulate_Collinear 全部共线时没有三角形
func TestTriangulate_Collinear(t *testing.T) {
	pts := []Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {5, 5}}
	indices, err := Triangulate(pts)
	if err != nil {
		t.Fatalf("collinear input should not be an error, got %v", err)
	}
	if len(indices) != 0 {
		t.Errorf("expected no triangles for collinear input, got %v", indices)
	}
}

// TestTriangulate_AllCoincident 所有点重合时没有三角形
func TestTriangulate_AllCoincident(t *testing.T) {
	pts := []Point{{7, 7}, {7, 7}, {7, 7}}
	indices, err := Triangulate(pts)
	if err != nil {
		t.Fatalf("coincident input should not be an error, got %v", err)
	}
	if len(indices) != 0 {
		t.Errorf("expected no triangles, got %v", indices)
	}
}

// TestTriangulate_Duplicates 重复点只参与一次（子粒子在父粒子位置生成时出现）
func TestTriangulate_Duplicates(t *testing.T) {
	pts := []Point{{0, 0}, {10, 0}, {5, 8}, {10, 0}}
	indices, err := Triangulate(pts)
	if err != nil {
		t.Fatalf("Triangulate failed: %v", err)
	}
	if len(indices) != 3 {
		t.Fatalf("expected exactly 1 triangle, got %v", indices)
	}

	count := 0
	for _, idx := range indices {
		if idx == 1 || idx == 3 {
			count++
		}
	}
	if count != 1 {
		t.Errorf("duplicate point should appear exactly once, indices %v", indices)
	}
}

// TestTriangulate_Winding 所有三角形方向一致（有向面积为正）
func TestTriangulate_Winding(t *testing.T) {
	pts := randomPoints(rand.New(rand.NewSource(7)), 50, 500)
	indices, err := Triangulate(pts)
	if err != nil {
		t.Fatalf("Triangulate failed: %v", err)
	}
	for i := 0; i < len(indices); i += 3 {
		if a := signedArea(pts[indices[i]], pts[indices[i+1]], pts[indices[i+2]]); a <= 0 {
			t.Errorf("triangle %d has non-positive signed area %v", i/3, a)
		}
	}
}

// TestTriangulate_EmptyCircumcircle 随机点集满足 Delaunay 空圆性质
func TestTriangulate_EmptyCircumcircle(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))

	for _, n := range []int{3, 10, 100, 400} {
		pts := randomPoints(rng, n, 800)
		indices, err := Triangulate(pts)
		if err != nil {
			t.Fatalf("n=%d: Triangulate failed: %v", n, err)
		}
		if len(indices)%3 != 0 {
			t.Fatalf("n=%d: index count %d is not a multiple of 3", n, len(indices))
		}
		if len(indices) == 0 {
			t.Fatalf("n=%d: expected triangles", n)
		}

		used := make([]bool, n)
		for i := 0; i < len(indices); i += 3 {
			a, b, c := indices[i], indices[i+1], indices[i+2]
			for _, idx := range []int{a, b, c} {
				if idx < 0 || idx >= n {
					t.Fatalf("n=%d: index %d out of range", n, idx)
				}
				used[idx] = true
			}

			cx, cy, r2 := circumcircle(pts[a], pts[b], pts[c])
			for k, p := range pts {
				if k == a || k == b || k == c {
					continue
				}
				dx, dy := p.X-cx, p.Y-cy
				if dx*dx+dy*dy < r2*(1-1e-9) {
					t.Fatalf("n=%d: point %d lies inside circumcircle of triangle (%d,%d,%d)", n, k, a, b, c)
				}
			}
		}

		for i, ok := range used {
			if !ok {
				t.Errorf("n=%d: point %d is not part of any triangle", n, i)
			}
		}
		t.Logf("n=%d: %d triangles", n, len(indices)/3)
	}
}

// TestTriangulate_Complete 三角形数量等于 2n-2-h（h 为凸包顶点数），凸包边缘的细长三角形也不能丢
func TestTriangulate_Complete(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for round := 0; round < 200; round++ {
		n := 3 + rng.Intn(200)
		var pts []Point
		if round%2 == 0 {
			pts = randomPoints(rng, n, 800)
		} else {
			pts = clusteredPoints(rng, n, 800)
		}

		indices, err := Triangulate(pts)
		if err != nil {
			t.Fatalf("round %d (n=%d): Triangulate failed: %v", round, n, err)
		}

		h := len(convexHull(pts))
		want := 2*n - 2 - h
		if got := len(indices) / 3; got != want {
			t.Fatalf("round %d: n=%d h=%d got %d triangles, want %d", round, n, h, got, want)
		}

		total := 0.0
		for i := 0; i < len(indices); i += 3 {
			total += signedArea(pts[indices[i]], pts[indices[i+1]], pts[indices[i+2]]) / 2
		}
		if hullArea := polygonArea(convexHull(pts)); math.Abs(total-hullArea) > 1e-6*hullArea {
			t.Fatalf("round %d: triangles cover area %v, convex hull area %v", round, total, hullArea)
		}
	}
	t.Logf("✅ 200 个随机点集的三角形数量与凸包面积均正确")
}

// TestTriangulate_FirstVertexKept 调整方向时保留第一个顶点（颜色取自第一个顶点）
func TestTriangulate_FirstVertexKept(t *testing.T) {
	pts := randomPoints(rand.New(rand.NewSource(5)), 30, 300)
	indices, err := Triangulate(pts)
	if err != nil {
		t.Fatalf("Triangulate failed: %v", err)
	}

	seen := make(map[[3]int]bool)
	for i := 0; i < len(indices); i += 3 {
		a, b, c := indices[i], indices[i+1], indices[i+2]
		if a == b || b == c || a == c {
			t.Fatalf("triangle %d repeats a vertex: %v", i/3, indices[i:i+3])
		}
		key := [3]int{a, b, c}
		sort.Ints(key[:])
		if seen[key] {
			t.Fatalf("triangle %v emitted twice", key)
		}
		seen[key] = true
	}
}

// signedArea 叉积，正值表示正向
func signedArea(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// circumcircle 返回外接圆圆心与半径平方
func circumcircle(a, b, c Point) (cx, cy, r2 float64) {
	bx, by := b.X-a.X, b.Y-a.Y
	qx, qy := c.X-a.X, c.Y-a.Y
	d := 2 * (bx*qy - by*qx)
	b2 := bx*bx + by*by
	q2 := qx*qx + qy*qy
	ux := (qy*b2 - by*q2) / d
	uy := (bx*q2 - qx*b2) / d
	return a.X + ux, a.Y + uy, ux*ux + uy*uy
}

// convexHull 单调链算法，去掉共线点，按逆时针返回凸包顶点
func convexHull(points []Point) []Point {
	pts := append([]Point(nil), points...)
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})

	hull := make([]Point, 0, 2*len(pts))
	for _, p := range pts {
		for len(hull) >= 2 && signedArea(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	lower := len(hull) + 1
	for i := len(pts) - 2; i >= 0; i-- {
		p := pts[i]
		for len(hull) >= lower && signedArea(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return hull[:len(hull)-1]
}

func polygonArea(poly []Point) float64 {
	area := 0.0
	for i := range poly {
		j := (i + 1) % len(poly)
		area += poly[i].X*poly[j].Y - poly[j].X*poly[i].Y
	}
	return math.Abs(area) / 2
}

// clusteredPoints 模拟拖拽留下的粒子团：几个中心附近的正态分布点
func clusteredPoints(rng *rand.Rand, n int, size float64) []Point {
	centers := make([]Point, 1+rng.Intn(4))
	for i := range centers {
		centers[i] = Point{X: rng.Float64() * size, Y: rng.Float64() * size}
	}
	pts := make([]Point, n)
	for i := range pts {
		c := centers[rng.Intn(len(centers))]
		pts[i] = Point{X: c.X + rng.NormFloat64()*25, Y: c.Y + rng.NormFloat64()*25}
	}
	return pts
}

func randomPoints(rng *rand.Rand, n int, size float64) []Point {
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = Point{X: rng.Float64() * size, Y: rng.Float64() * size}
	}
	return pts
}

func BenchmarkTriangulate1000(b *testing.B) {
	pts := randomPoints(rand.New(rand.NewSource(1)), 1000, 1200)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Triangulate(pts); err != nil {
			b.Fatal(err)
		}
	}
}
