package draw

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/perihelion/salvage/internal/asset"
)

// MeshRenderer flattens mesh triangles onto the canvas. This is the forward
// end of the pipeline: callers hand it a mesh handle and a world transform,
// it projects each vertex and rasterizes the result.
type MeshRenderer struct {
	canvas *Canvas
}

// NewMeshRenderer creates a renderer over the given canvas.
func NewMeshRenderer(canvas *Canvas) *MeshRenderer {
	return &MeshRenderer{canvas: canvas}
}

// Draw transforms every triangle of the mesh by the model matrix, drops the
// depth component, and fills the projected triangles.
func (r *MeshRenderer) Draw(mesh asset.Mesh, model mgl64.Mat4) {
	for _, tri := range mesh.Triangles {
		var pts [3]Point
		for i, v := range tri {
			w := model.Mul4x1(v.Vec4(1))
			pts[i] = Point{X: w.X(), Y: w.Y()}
		}
		r.canvas.FillTriangle(pts[0], pts[1], pts[2])
	}
}

// Outline strokes the mesh's triangle edges without filling, for meshes that
// would flood the canvas if rasterized solid (the background).
func (r *MeshRenderer) Outline(mesh asset.Mesh, model mgl64.Mat4) {
	for _, tri := range mesh.Triangles {
		var pts [3]Point
		for i, v := range tri {
			w := model.Mul4x1(v.Vec4(1))
			pts[i] = Point{X: w.X(), Y: w.Y()}
		}
		r.canvas.Line(pts[0], pts[1])
		r.canvas.Line(pts[1], pts[2])
		r.canvas.Line(pts[2], pts[0])
	}
}
