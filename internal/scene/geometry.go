package scene

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

// Vertex is the interleaved vertex layout uploaded to the GPU.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	UV       [2]float32
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Geometry is an indexed triangle list.
type Geometry struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}

// TriangleCount returns the number of indexed triangles.
func (g *Geometry) TriangleCount() int {
	return len(g.Indices) / 3
}

// Validate checks that the geometry can be uploaded and drawn: at least one
// triangle, whole triangles only, and every index inside the vertex list.
func (g *Geometry) Validate() error {
	if len(g.Vertices) == 0 {
		return errors.New("geometry has no vertices")
	}
	if len(g.Indices) == 0 || len(g.Indices)%3 != 0 {
		return fmt.Errorf("geometry has %d indices, want a positive multiple of 3", len(g.Indices))
	}
	for i, idx := range g.Indices {
		if int(idx) >= len(g.Vertices) {
			return fmt.Errorf("index %d at %d out of range (%d vertices)", idx, i, len(g.Vertices))
		}
	}
	return nil
}

func newGeometry(name string, vertices []Vertex, indices []uint32) *Geometry {
	g := &Geometry{Name: name, Vertices: vertices, Indices: indices}
	g.Bounds = Bounds{
		Min: [3]float32{math32.Inf(1), math32.Inf(1), math32.Inf(1)},
		Max: [3]float32{math32.Inf(-1), math32.Inf(-1), math32.Inf(-1)},
	}
	for _, v := range vertices {
		for i := 0; i < 3; i++ {
			g.Bounds.Min[i] = math32.Min(g.Bounds.Min[i], v.Position[i])
			g.Bounds.Max[i] = math32.Max(g.Bounds.Max[i], v.Position[i])
		}
	}
	return g
}

// gridIndices builds two triangles per cell of a (rows+1) x (cols+1) vertex
// grid laid out row by row.
func gridIndices(rows, cols int) []uint32 {
	indices := make([]uint32, 0, rows*cols*6)
	stride := cols + 1
	for j := 1; j <= rows; j++ {
		for i := 1; i <= cols; i++ {
			a := uint32(stride*j + i - 1)
			b := uint32(stride*(j-1) + i - 1)
			c := uint32(stride*(j-1) + i)
			d := uint32(stride*j + i)
			indices = append(indices, a, b, d, b, c, d)
		}
	}
	return indices
}

// Torus builds a ring in the XY plane facing +Z.
// radius is the ring radius, tube the tube radius.
func Torus(radius, tube float32, radialSegments, tubularSegments int) *Geometry {
	radialSegments = max(radialSegments, 3)
	tubularSegments = max(tubularSegments, 3)

	vertices := make([]Vertex, 0, (radialSegments+1)*(tubularSegments+1))
	for j := 0; j <= radialSegments; j++ {
		v := float32(j) / float32(radialSegments) * 2 * math32.Pi
		for i := 0; i <= tubularSegments; i++ {
			u := float32(i) / float32(tubularSegments) * 2 * math32.Pi

			pos := [3]float32{
				(radius + tube*math32.Cos(v)) * math32.Cos(u),
				(radius + tube*math32.Cos(v)) * math32.Sin(u),
				tube * math32.Sin(v),
			}
			center := [3]float32{radius * math32.Cos(u), radius * math32.Sin(u), 0}

			vertices = append(vertices, Vertex{
				Position: pos,
				Normal:   normalize(sub(pos, center)),
				UV:       [2]float32{float32(i) / float32(tubularSegments), float32(j) / float32(radialSegments)},
			})
		}
	}

	return newGeometry("torus", vertices, gridIndices(radialSegments, tubularSegments))
}

// Cone builds a cone along Y with its tip at +height/2 and a closed base.
func Cone(radius, height float32, radialSegments int) *Geometry {
	radialSegments = max(radialSegments, 3)
	half := height / 2

	var vertices []Vertex
	var indices []uint32

	// Side: one tip vertex per segment so each slice keeps its own normal
	for i := 0; i <= radialSegments; i++ {
		theta := float32(i) / float32(radialSegments) * 2 * math32.Pi
		sin, cos := math32.Sincos(theta)
		normal := normalize([3]float32{sin * height, radius, cos * height})
		u := float32(i) / float32(radialSegments)

		vertices = append(vertices,
			Vertex{Position: [3]float32{0, half, 0}, Normal: normal, UV: [2]float32{u, 1}},
			Vertex{Position: [3]float32{radius * sin, -half, radius * cos}, Normal: normal, UV: [2]float32{u, 0}},
		)
	}
	for i := 0; i < radialSegments; i++ {
		tip := uint32(2 * i)
		base := tip + 1
		nextBase := uint32(2*(i+1) + 1)
		indices = append(indices, tip, base, nextBase)
	}

	// Base cap, facing -Y
	center := uint32(len(vertices))
	down := [3]float32{0, -1, 0}
	vertices = append(vertices, Vertex{Position: [3]float32{0, -half, 0}, Normal: down, UV: [2]float32{0.5, 0.5}})
	for i := 0; i <= radialSegments; i++ {
		theta := float32(i) / float32(radialSegments) * 2 * math32.Pi
		sin, cos := math32.Sincos(theta)
		vertices = append(vertices, Vertex{
			Position: [3]float32{radius * sin, -half, radius * cos},
			Normal:   down,
			UV:       [2]float32{sin*0.5 + 0.5, cos*0.5 + 0.5},
		})
	}
	for i := 0; i < radialSegments; i++ {
		cur := center + 1 + uint32(i)
		indices = append(indices, center, cur+1, cur)
	}

	return newGeometry("cone", vertices, indices)
}

// TorusKnot builds a (p, q) torus knot tube.
func TorusKnot(radius, tube float32, tubularSegments, radialSegments, p, q int) *Geometry {
	tubularSegments = max(tubularSegments, 3)
	radialSegments = max(radialSegments, 3)
	if p == 0 {
		p = 2
	}
	if q == 0 {
		q = 3
	}
	pf, qf := float32(p), float32(q)

	vertices := make([]Vertex, 0, (tubularSegments+1)*(radialSegments+1))
	for i := 0; i <= tubularSegments; i++ {
		u := float32(i) / float32(tubularSegments) * pf * 2 * math32.Pi

		// Frenet-like frame from two nearby curve samples
		p1 := knotPoint(u, pf, qf, radius)
		p2 := knotPoint(u+0.01, pf, qf, radius)
		t := sub(p2, p1)
		n := add(p2, p1)
		b := normalize(cross(t, n))
		n = normalize(cross(b, t))

		for j := 0; j <= radialSegments; j++ {
			v := float32(j) / float32(radialSegments) * 2 * math32.Pi
			cx := -tube * math32.Cos(v)
			cy := tube * math32.Sin(v)

			pos := [3]float32{
				p1[0] + cx*n[0] + cy*b[0],
				p1[1] + cx*n[1] + cy*b[1],
				p1[2] + cx*n[2] + cy*b[2],
			}
			vertices = append(vertices, Vertex{
				Position: pos,
				Normal:   normalize(sub(pos, p1)),
				UV:       [2]float32{float32(i) / float32(tubularSegments), float32(j) / float32(radialSegments)},
			})
		}
	}

	return newGeometry("torusknot", vertices, gridIndices(tubularSegments, radialSegments))
}

func knotPoint(u, p, q, radius float32) [3]float32 {
	cu, su := math32.Cos(u), math32.Sin(u)
	quOverP := q / p * u
	cs := math32.Cos(quOverP)
	return [3]float32{
		radius * (2 + cs) * 0.5 * cu,
		radius * (2 + cs) * su * 0.5,
		radius * math32.Sin(quOverP) * 0.5,
	}
}

func add(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func sub(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func cross(a, b [3]float32) [3]float32 {
	return [3]float32{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func normalize(v [3]float32) [3]float32 {
	l := math32.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if l < 1e-8 {
		return [3]float32{0, 1, 0}
	}
	return [3]float32{v[0] / l, v[1] / l, v[2] / l}
}
