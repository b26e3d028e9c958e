package game

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/perihelion/salvage/internal/asset"
	"github.com/perihelion/salvage/internal/draw"
	"github.com/perihelion/salvage/internal/object"
)

// Per-type render scales, matching the mesh authoring size.
const (
	satScale      = 0.15
	asteroidScale = 0.035
	junkScale     = 0.025
)

// Fuel bar placement, left of the play area.
const (
	fuelBarX      = -0.7
	fuelBarWidth  = 0.03
	fuelBarHeight = 0.3
)

// PlayView is the world rectangle the canvas shows: the play frame plus a
// margin so spawning debris is visible entering.
var PlayView = draw.View{MinX: -1, MaxX: 1, MinY: -0.6, MaxY: 0.6}

// Renderer draws a session onto the canvas once per frame. It only reads
// session state.
type Renderer struct {
	meshes *asset.Library
	mr     *draw.MeshRenderer
	canvas *draw.Canvas
}

// NewRenderer creates a renderer using the given mesh library and canvas.
func NewRenderer(meshes *asset.Library, canvas *draw.Canvas) *Renderer {
	return &Renderer{
		meshes: meshes,
		mr:     draw.NewMeshRenderer(canvas),
		canvas: canvas,
	}
}

// Draw rasterizes the world: play frame border, debris, satellite, and fuel
// bar. Inactive asteroids and an inactive satellite are skipped; junk is
// always drawn since it is never deactivated.
func (r *Renderer) Draw(s *Session) {
	r.canvas.Clear()

	r.canvas.Rect(
		draw.Point{X: FrameMinX, Y: FrameMinY},
		draw.Point{X: FrameMaxX, Y: FrameMaxY},
	)
	if len(r.meshes.Background.Triangles) > 0 {
		r.mr.Outline(r.meshes.Background, mgl64.Ident4())
	}

	for _, a := range s.Asteroids {
		if a.Active {
			r.mr.Draw(r.meshes.Asteroid, modelMatrix(a.Transform, asteroidScale))
		}
	}
	for _, j := range s.Junks {
		r.mr.Draw(r.meshes.Junk, modelMatrix(j.Transform, junkScale))
	}

	if s.Sat.Active {
		r.mr.Draw(r.meshes.Satellite, modelMatrix(s.Sat.Transform, satScale))
		r.drawFuelBar(s.Fuel)
	}
}

// drawFuelBar scales the bar mesh to the fuel level, or swaps in the fixed
// "full" mesh once fuel passes the display threshold.
func (r *Renderer) drawFuelBar(fuel float64) {
	if fuel > FullFuelDisplay {
		r.mr.Draw(r.meshes.HealthBarWin,
			mgl64.Translate3D(fuelBarX, 0, 0).Mul4(mgl64.Scale3D(fuelBarWidth, fuelBarHeight, 1)))
		return
	}
	if fuel < 0 {
		fuel = 0
	}
	r.mr.Draw(r.meshes.HealthBarForeground,
		mgl64.Translate3D(fuelBarX, 0, 0).Mul4(mgl64.Scale3D(fuelBarWidth, fuelBarHeight*fuel, 1)))
}

// modelMatrix builds the object-to-world matrix: uniform planar scale
// composed with the object's rotation, translated to its position.
func modelMatrix(t object.Transform, scale float64) mgl64.Mat4 {
	return mgl64.Translate3D(t.Position.X(), t.Position.Y(), 0).
		Mul4(mgl64.Scale3D(scale, scale, 1)).
		Mul4(t.Rotation.Mat4())
}
