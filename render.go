package flycam

import (
	"image"
	"image/color"
	"math"
	"time"

	"github.com/golang/glog"
	"github.com/hajimehoshi/ebiten/v2"
)

// MaxTriangleCount is the most triangles a single DrawTriangles call can take with 16-bit indices.
const MaxTriangleCount = 21845

// DebugInfo is a struct that holds debugging information for a Renderer's render pass. These values are reset each time Render() is called.
type DebugInfo struct {
	FrameTime time.Duration // Amount of CPU frame time spent transforming vertices and calling Image.DrawTriangles.
	TotalTris int           // Total number of triangles submitted
	DrawnTris int           // Number of drawn triangles, after clipping (clipping can split one triangle into two)
	DrawCalls int           // Number of DrawTriangles calls
}

// clipVertex is a vertex in clip space (after the view and projection transforms, before the perspective divide).
type clipVertex struct {
	Position Vector4
	Color    Color
}

// screenVertex is a vertex projected onto the Renderer's texture, in pixels.
type screenVertex struct {
	X, Y  float32
	Color Color
}

// Renderer draws a VertexList from the point of view of a Camera onto its color texture.
// There's no depth buffer; triangles are sorted back to front and drawn in that order instead.
type Renderer struct {
	DebugInfo DebugInfo

	colorTexture *ebiten.Image
	bucket       *sortingTriangleBucket

	clipped   []clipVertex
	projected []screenVertex
	vertices  []ebiten.Vertex
	indices   []uint16

	whiteImage *ebiten.Image
}

// NewRenderer creates a new Renderer with a color texture of the specified width and height.
func NewRenderer(w, h int) *Renderer {
	return &Renderer{
		colorTexture: ebiten.NewImage(w, h),
		bucket:       newSortingTriangleBucket(512),
	}
}

// Resize resizes the Renderer's color texture, if the size is different from the current one.
func (r *Renderer) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	if cw, ch := r.Size(); cw == w && ch == h {
		return
	}
	glog.V(1).Infof("renderer resized to %dx%d", w, h)
	r.colorTexture.Deallocate()
	r.colorTexture = ebiten.NewImage(w, h)
}

// Size returns the width and height of the Renderer's color texture.
func (r *Renderer) Size() (w, h int) {
	size := r.colorTexture.Bounds().Size()
	return size.X, size.Y
}

// ColorTexture returns the Renderer's color texture, holding the result of the last Render() call.
func (r *Renderer) ColorTexture() *ebiten.Image {
	return r.colorTexture
}

// Clear fills the color texture with the provided clear color.
func (r *Renderer) Clear(clear color.Color) {
	r.colorTexture.Fill(clear)
}

// Render draws the triangles in the VertexList to the color texture as seen through the Camera.
func (r *Renderer) Render(camera *Camera, list *VertexList) {

	start := time.Now()

	r.DebugInfo.TotalTris = list.TriangleCount()
	r.DebugInfo.DrawnTris = 0
	r.DebugInfo.DrawCalls = 0

	w, h := r.Size()
	width, height := float64(w), float64(h)

	viewProjection := camera.ViewProjection(width, height)

	r.projected = r.projected[:0]
	r.bucket.Clear()

	minDepth := math.MaxFloat64
	maxDepth := -math.MaxFloat64

	verts := list.Vertices()

	var tri [3]clipVertex

	for i := 0; i+2 < len(verts); i += 3 {

		for j := 0; j < 3; j++ {
			tri[j].Position = viewProjection.MultVecW(verts[i+j].Position())
			tri[j].Color = verts[i+j].Color
		}

		if beyondFar(tri) {
			continue
		}

		r.clipped = clipNear(tri, r.clipped[:0])

		// The clipped polygon is convex, so it can be split into a fan of triangles.
		for k := 1; k+1 < len(r.clipped); k++ {

			fan := [3]clipVertex{r.clipped[0], r.clipped[k], r.clipped[k+1]}

			// Sorting by the farthest vertex keeps the huge skybox triangles behind the floor.
			depth := math.Max(fan[0].Position.W, math.Max(fan[1].Position.W, fan[2].Position.W))
			minDepth = math.Min(minDepth, depth)
			maxDepth = math.Max(maxDepth, depth)

			r.bucket.AddTriangle(len(r.projected), depth)

			for _, cv := range fan {
				r.projected = append(r.projected, clipToScreen(cv, width, height))
			}

		}

	}

	if len(r.projected) > 0 {

		r.bucket.Sort(minDepth, maxDepth)

		r.bucket.ForEachBackToFront(func(vertexIndex int) {
			if len(r.indices)+3 > MaxTriangleCount*3 {
				r.flush()
			}
			for v := vertexIndex; v < vertexIndex+3; v++ {
				r.indices = append(r.indices, uint16(len(r.vertices)))
				r.vertices = append(r.vertices, r.ebitenVertex(r.projected[v]))
			}
			r.DebugInfo.DrawnTris++
		})

		r.flush()

	}

	r.DebugInfo.FrameTime = time.Since(start)

}

func (r *Renderer) ebitenVertex(sv screenVertex) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   sv.X,
		DstY:   sv.Y,
		SrcX:   1.5,
		SrcY:   1.5,
		ColorR: sv.Color.R,
		ColorG: sv.Color.G,
		ColorB: sv.Color.B,
		ColorA: sv.Color.A,
	}
}

func (r *Renderer) flush() {

	if len(r.indices) == 0 {
		return
	}

	if r.whiteImage == nil {
		// Sampling from the middle of a 3x3 image avoids bleeding in from the texture's edges.
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		r.whiteImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	r.colorTexture.DrawTriangles(r.vertices, r.indices, r.whiteImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
	r.DebugInfo.DrawCalls++

	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]

}

// clipNear clips a clip-space triangle against the near plane (z >= -w), appending the resulting convex polygon to
// out. The result has 0 vertices (entirely behind the near plane), 3, or 4.
func clipNear(tri [3]clipVertex, out []clipVertex) []clipVertex {

	var dist [3]float64
	inside := 0
	for i, v := range tri {
		dist[i] = v.Position.Z + v.Position.W
		if dist[i] >= 0 {
			inside++
		}
	}

	if inside == 3 {
		return append(out, tri[0], tri[1], tri[2])
	}

	if inside == 0 {
		return out
	}

	for i := 0; i < 3; i++ {

		j := (i + 1) % 3
		a, b := tri[i], tri[j]
		da, db := dist[i], dist[j]

		if da >= 0 {
			out = append(out, a)
		}

		if (da >= 0) != (db >= 0) {
			t := da / (da - db)
			out = append(out, clipVertex{
				Position: a.Position.Lerp(b.Position, t),
				Color:    a.Color.Lerp(b.Color, float32(t)),
			})
		}

	}

	return out

}

// beyondFar returns if the whole triangle lies past the far plane (z > w). Triangles that only cross it are kept.
func beyondFar(tri [3]clipVertex) bool {
	for _, v := range tri {
		if v.Position.Z <= v.Position.W {
			return false
		}
	}
	return true
}

// clipToScreen performs the perspective divide on a clip-space vertex and maps it to pixel coordinates on a texture
// of the given width and height (with Y pointing down, as usual for images).
func clipToScreen(v clipVertex, width, height float64) screenVertex {

	w := v.Position.W
	if w <= 0 {
		w = 1e-6
	}

	ndcX := v.Position.X / w
	ndcY := v.Position.Y / w

	return screenVertex{
		X:     float32((ndcX + 1) * width / 2),
		Y:     float32((1 - ndcY) * height / 2),
		Color: v.Color,
	}

}
