package asset

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Builtin returns a procedurally generated mesh library so the game runs
// without a blob file. Shapes are unit-scale silhouettes; per-type scaling
// happens in the renderer's model matrices.
func Builtin() *Library {
	return &Library{
		Background:          Mesh{Name: "Background"},
		Satellite:           satelliteMesh(),
		Asteroid:            fanMesh("Asteroid", 8, 1.0, 0.72),
		Junk:                fanMesh("Junk", 5, 1.0, 0.55),
		HealthBarWin:        quadMesh("HealthBarWin"),
		HealthBarForeground: quadMesh("HealthBarForeground"),
	}
}

// satelliteMesh builds a boxy body with two solar panels, nose along +Y.
func satelliteMesh() Mesh {
	body := quad(-0.35, -0.5, 0.35, 0.6)
	left := quad(-1.0, -0.2, -0.4, 0.2)
	right := quad(0.4, -0.2, 1.0, 0.2)
	nose := Triangle{
		{-0.2, 0.6, 0},
		{0.2, 0.6, 0},
		{0, 1.0, 0},
	}
	tris := append(body, left...)
	tris = append(tris, right...)
	tris = append(tris, nose)
	return Mesh{Name: "Satellite", Triangles: tris}
}

// fanMesh builds an irregular n-gon as a triangle fan around the origin.
// Odd vertices are pulled inward by dent for a jagged outline.
func fanMesh(name string, n int, radius, dent float64) Mesh {
	tris := make([]Triangle, 0, n)
	at := func(i int) mgl64.Vec3 {
		r := radius
		if i%2 == 1 {
			r *= dent
		}
		a := 2 * math.Pi * float64(i%n) / float64(n)
		return mgl64.Vec3{r * math.Cos(a), r * math.Sin(a), 0}
	}
	for i := 0; i < n; i++ {
		tris = append(tris, Triangle{{0, 0, 0}, at(i), at(i + 1)})
	}
	return Mesh{Name: name, Triangles: tris}
}

// quadMesh builds a unit quad spanning [-1,1] on both axes.
func quadMesh(name string) Mesh {
	return Mesh{Name: name, Triangles: quad(-1, -1, 1, 1)}
}

// quad returns the two triangles covering the axis-aligned rectangle.
func quad(x0, y0, x1, y1 float64) []Triangle {
	return []Triangle{
		{{x0, y0, 0}, {x1, y0, 0}, {x1, y1, 0}},
		{{x0, y0, 0}, {x1, y1, 0}, {x0, y1, 0}},
	}
}
