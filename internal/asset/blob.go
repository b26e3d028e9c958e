// Package asset loads the game's meshes from a chunked binary blob and
// provides built-in fallback shapes when no blob is configured.
package asset

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl64"
)

// Triangle is one mesh face, flattened to world units.
type Triangle [3]mgl64.Vec3

// Mesh is a named list of triangles ready for the renderer.
type Mesh struct {
	Name      string
	Triangles []Triangle
}

// Library holds the named meshes the game draws.
type Library struct {
	Background          Mesh
	Satellite           Mesh
	Asteroid            Mesh
	Junk                Mesh
	HealthBarWin        Mesh
	HealthBarForeground Mesh
}

// vertex matches the blob's packed 28-byte layout: position, normal, color.
// Normals and colors are parsed but unused by the terminal renderer.
type vertex struct {
	Position [3]float32
	Normal   [3]float32
	Color    [4]uint8
}

// indexEntry maps a name range in the string chunk to a vertex range.
type indexEntry struct {
	NameBegin   uint32
	NameEnd     uint32
	VertexBegin uint32
	VertexEnd   uint32
}

// LoadFile opens path and loads the mesh library from it.
func LoadFile(path string) (*Library, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open mesh blob: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load reads a mesh library from a chunked blob. The blob holds three
// little-endian chunks in order: "dat0" (packed vertices), "str0" (name
// characters), "idx0" (name-range to vertex-range entries). Each chunk is a
// 4-byte tag followed by a uint32 byte count and the payload.
func Load(r io.Reader) (*Library, error) {
	var verts []vertex
	if err := readChunk(r, "dat0", 28, func(n int) any {
		verts = make([]vertex, n)
		return verts
	}); err != nil {
		return nil, err
	}

	var names []byte
	if err := readChunk(r, "str0", 1, func(n int) any {
		names = make([]byte, n)
		return names
	}); err != nil {
		return nil, err
	}

	var entries []indexEntry
	if err := readChunk(r, "idx0", 16, func(n int) any {
		entries = make([]indexEntry, n)
		return entries
	}); err != nil {
		return nil, err
	}

	index := make(map[string]Mesh, len(entries))
	for _, e := range entries {
		if e.NameBegin > e.NameEnd || int(e.NameEnd) > len(names) {
			return nil, fmt.Errorf("mesh index: name range [%d,%d) out of bounds", e.NameBegin, e.NameEnd)
		}
		if e.VertexBegin > e.VertexEnd || int(e.VertexEnd) > len(verts) {
			return nil, fmt.Errorf("mesh index: vertex range [%d,%d) out of bounds", e.VertexBegin, e.VertexEnd)
		}
		name := string(names[e.NameBegin:e.NameEnd])
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("mesh index: duplicate name %q", name)
		}
		index[name] = triangulate(name, verts[e.VertexBegin:e.VertexEnd])
	}

	lib := &Library{}
	for _, m := range []struct {
		name string
		dst  *Mesh
	}{
		{"Background", &lib.Background},
		{"Satellite", &lib.Satellite},
		{"Asteroid", &lib.Asteroid},
		{"Junk", &lib.Junk},
		{"HealthBarWin", &lib.HealthBarWin},
		{"HealthBarForeground", &lib.HealthBarForeground},
	} {
		mesh, ok := index[m.name]
		if !ok {
			return nil, fmt.Errorf("mesh %q does not appear in index", m.name)
		}
		*m.dst = mesh
	}
	return lib, nil
}

// readChunk reads one tagged chunk. The size field counts bytes and must be
// a multiple of elemSize; alloc receives the element count and returns the
// destination slice for binary.Read.
func readChunk(r io.Reader, tag string, elemSize int, alloc func(n int) any) error {
	var header struct {
		Magic [4]byte
		Size  uint32
	}
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("read %q chunk header: %w", tag, err)
	}
	if string(header.Magic[:]) != tag {
		return fmt.Errorf("expected %q chunk, got %q", tag, header.Magic)
	}
	if int(header.Size)%elemSize != 0 {
		return fmt.Errorf("%q chunk size %d is not a multiple of %d", tag, header.Size, elemSize)
	}
	dst := alloc(int(header.Size) / elemSize)
	if err := binary.Read(r, binary.LittleEndian, dst); err != nil {
		return fmt.Errorf("read %q chunk payload: %w", tag, err)
	}
	return nil
}

// triangulate groups consecutive vertex triples into faces, dropping any
// trailing partial triangle.
func triangulate(name string, verts []vertex) Mesh {
	tris := make([]Triangle, 0, len(verts)/3)
	for i := 0; i+2 < len(verts); i += 3 {
		var t Triangle
		for j := 0; j < 3; j++ {
			p := verts[i+j].Position
			t[j] = mgl64.Vec3{float64(p[0]), float64(p[1]), float64(p[2])}
		}
		tris = append(tris, t)
	}
	return Mesh{Name: name, Triangles: tris}
}
