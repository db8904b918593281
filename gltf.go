package flycam

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// ErrEmptyScene is returned when exporting a VertexList that doesn't hold a single complete triangle.
var ErrEmptyScene = errors.New("scene has no triangles to export")

// ExportGLB writes the triangles in the VertexList to w as a binary glTF (.glb) file: a single node holding a single
// mesh, with vertex positions and vertex colors. Any trailing vertices that don't complete a triangle are left out.
func ExportGLB(w io.Writer, list *VertexList) error {

	triCount := list.TriangleCount()

	if triCount == 0 {
		return ErrEmptyScene
	}

	verts := list.Vertices()[:triCount*3]

	positions := make([][3]float32, len(verts))
	colors := make([][4]uint8, len(verts))

	for i, v := range verts {
		positions[i] = [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
		colors[i] = v.Color.ToRGBA8()
	}

	doc := gltf.NewDocument()

	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: "Scene",
		Primitives: []*gltf.Primitive{
			{
				Attributes: map[string]int{
					gltf.POSITION: modeler.WritePosition(doc, positions),
					gltf.COLOR_0:  modeler.WriteColor(doc, colors),
				},
				Mode: gltf.PrimitiveTriangles,
			},
		},
	})

	doc.Nodes = append(doc.Nodes, &gltf.Node{
		Name: "Scene",
		Mesh: gltf.Index(len(doc.Meshes) - 1),
	})

	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)

	encoder := gltf.NewEncoder(w)
	encoder.AsBinary = true

	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("encoding glTF: %w", err)
	}

	return nil

}

// ExportGLBFile writes the VertexList to a binary glTF file at the given path, replacing it if it exists.
func ExportGLBFile(path string, list *VertexList) (err error) {

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	if err = ExportGLB(f, list); err != nil {
		return fmt.Errorf("exporting %s: %w", path, err)
	}

	glog.Infof("exported %d triangles to %s", list.TriangleCount(), path)

	return nil

}
