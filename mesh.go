package flycam

import (
	"golang.org/x/image/colornames"
)

const (
	checkerboardSize = 20  // Tiles along each side of the checkerboard floor
	skyboxDistance   = 50  // Distance from the camera to each skybox wall
	skyboxHeight     = 50  // Height of the skybox walls and ceiling
	tileHeight       = 0.2 // Height of the even (yellow) checkerboard tiles
	tileDrop         = 0.1 // How much lower the odd (green) checkerboard tiles sit
)

// Vertex represents a colored vertex in world space. Vertices are not shared between triangles.
type Vertex struct {
	X, Y, Z float64
	Color   Color
}

// Position returns the Vertex's position as a Vector.
func (vert Vertex) Position() Vector {
	return NewVector(vert.X, vert.Y, vert.Z)
}

// VertexList is a growable triangle list; every three consecutive vertices form a triangle.
// Reset() empties it while keeping the backing storage, so rebuilding the scene each frame doesn't reallocate.
type VertexList struct {
	vertices []Vertex
}

// NewVertexList creates a new VertexList with room for the provided number of vertices before it has to grow.
func NewVertexList(capacity int) *VertexList {
	return &VertexList{vertices: make([]Vertex, 0, capacity)}
}

// Reset empties the VertexList.
func (vl *VertexList) Reset() {
	vl.vertices = vl.vertices[:0]
}

// Len returns the number of vertices in the VertexList.
func (vl *VertexList) Len() int {
	return len(vl.vertices)
}

// TriangleCount returns the number of complete triangles in the VertexList.
func (vl *VertexList) TriangleCount() int {
	return len(vl.vertices) / 3
}

// Vertices returns the vertices in the VertexList. The returned slice is only valid until the list is next modified.
func (vl *VertexList) Vertices() []Vertex {
	return vl.vertices
}

// AddVertex adds a vertex to the list. Storage grows geometrically, so adding is amortized constant time.
func (vl *VertexList) AddVertex(x, y, z float64, color Color) {
	vl.vertices = append(vl.vertices, Vertex{X: x, Y: y, Z: z, Color: color})
}

// AddQuad adds two triangles (6 vertices) covering the parallelogram at p spanned by u and v.
// The vertices along the p, p+u edge get c1; the ones on the far side of v get c2.
func (vl *VertexList) AddQuad(p, u, v Vector, c1, c2 Color) {
	pu := p.Add(u)
	pv := p.Add(v)
	puv := pu.Add(v)
	vl.AddVertex(p.X, p.Y, p.Z, c1)
	vl.AddVertex(pu.X, pu.Y, pu.Z, c1)
	vl.AddVertex(pv.X, pv.Y, pv.Z, c2)
	vl.AddVertex(pv.X, pv.Y, pv.Z, c2)
	vl.AddVertex(pu.X, pu.Y, pu.Z, c1)
	vl.AddVertex(puv.X, puv.Y, puv.Z, c2)
}

// AddCheckerboard adds a 20x20 checkerboard floor of unit tiles centered on the world origin. Tiles alternate between
// yellow and green; the green tiles sit slightly lower than the yellow ones.
func (vl *VertexList) AddCheckerboard() {

	c1 := NewColorFromStd(colornames.Yellow)
	c2 := NewColorFromStd(colornames.Green)

	for y := 0; y < checkerboardSize; y++ {
		for x := 0; x < checkerboardSize; x++ {
			px := float64(x) - checkerboardSize*0.5
			py := tileHeight
			pz := float64(y) - checkerboardSize*0.5
			c := c1
			if (x+y)&1 == 1 {
				c = c2
				py -= tileDrop
			}
			vl.AddQuad(NewVector(px, py, pz), WorldRight, WorldBackward, c, c)
		}
	}

}

// AddSkybox adds a skybox around the given center point: four walls fading from black at the bottom to blue at the top,
// and a ceiling fading from blue at the edges to white in the middle. The skybox is always a fixed distance away
// from the center, so it should be rebuilt around the Camera's position every frame.
func (vl *VertexList) AddSkybox(center Vector) {

	c1 := NewColorFromStd(colornames.Black)
	c2 := NewColorFromStd(colornames.Blue)
	c3 := NewColorFromStd(colornames.White)

	d := float64(skyboxDistance)
	h := float64(skyboxHeight)
	x, z := center.X, center.Z

	width := NewVector(2*d, 0, 0)
	depth := NewVector(0, 0, 2*d)
	up := NewVector(0, h, 0)

	// Back, front, left, and right walls
	vl.AddQuad(NewVector(x-d, 0, z-d), width, up, c1, c2)
	vl.AddQuad(NewVector(x-d, 0, z+d), width, up, c1, c2)
	vl.AddQuad(NewVector(x-d, 0, z-d), depth, up, c1, c2)
	vl.AddQuad(NewVector(x+d, 0, z-d), depth, up, c1, c2)

	// Ceiling, as a fan of four triangles around the middle
	corners := [5][2]float64{
		{x - d, z - d},
		{x + d, z - d},
		{x + d, z + d},
		{x - d, z + d},
		{x - d, z - d},
	}

	for i := 0; i < 4; i++ {
		vl.AddVertex(corners[i][0], h, corners[i][1], c2)
		vl.AddVertex(corners[i+1][0], h, corners[i+1][1], c2)
		vl.AddVertex(x, h, z, c3)
	}

}

// BuildScene clears the VertexList and fills it with the checkerboard floor and a skybox centered on the Camera.
func (vl *VertexList) BuildScene(camera *Camera) {
	vl.Reset()
	vl.AddCheckerboard()
	vl.AddSkybox(camera.Position)
}
