package obj

import "github.com/go-gl/mathgl/mgl32"

// Mesh holds the flat, indexed geometry of one model.
//
// All meshes have positions; normals, texture coordinates and vertex
// colors are optional, and the corresponding slices are empty when the
// input does not provide them. Values are stored packed, e.g. Positions
// is [x, y, z, x, y, z, ...].
type Mesh struct {
	// Positions, 3 floats per vertex.
	Positions []float32
	// VertexColors, 3 floats per vertex. Empty unless the `v` lines
	// carried r g b values after the coordinates.
	VertexColors []float32
	// Normals, 3 floats per normal.
	Normals []float32
	// Texcoords, 2 floats per texture coordinate.
	Texcoords []float32

	// Indices into Positions, one per emitted vertex use. With
	// LoadOptions.SingleIndex these drive all attribute buffers;
	// otherwise normals and texcoords have their own index arrays.
	Indices []uint32
	// FaceArities holds the vertex count of each face. Empty when the
	// mesh was triangulated or happens to consist only of triangles.
	FaceArities []uint32
	// VertexColorIndices into VertexColors. Only populated by
	// LoadOptions.MergeIdenticalPoints, which can split the color
	// index off the position index.
	VertexColorIndices []uint32
	// TexcoordIndices into Texcoords. Empty in single-index mode and
	// after ReorderData.
	TexcoordIndices []uint32
	// NormalIndices into Normals. Empty in single-index mode and after
	// ReorderData.
	NormalIndices []uint32

	// MaterialID indexes into the Result's material list, -1 if the
	// mesh has no material.
	MaterialID int
}

// Model associates a mesh with the name given by an `o` or `g` line.
type Model struct {
	Mesh Mesh
	Name string
}

// Result is the outcome of loading an OBJ source. Geometry loading
// succeeds or fails as a whole; material resolution is reported
// separately so a missing MTL file does not discard usable geometry.
type Result struct {
	// Models in file order.
	Models []Model
	// Materials merged from every resolved material library.
	Materials []Material
	// MaterialError is the last material-resolution failure, or nil.
	// It is cleared when at least one library resolved successfully.
	MaterialError error
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

// FaceCount returns the number of faces. A mesh with empty FaceArities
// is all triangles.
func (m *Mesh) FaceCount() int {
	if len(m.FaceArities) > 0 {
		return len(m.FaceArities)
	}
	return len(m.Indices) / 3
}

// Bounds returns the axis-aligned bounding box of the mesh positions.
// Both vectors are zero for an empty mesh.
func (m *Mesh) Bounds() (bmin, bmax mgl32.Vec3) {
	if len(m.Positions) < 3 {
		return
	}
	bmin = mgl32.Vec3{m.Positions[0], m.Positions[1], m.Positions[2]}
	bmax = bmin
	for i := 3; i+2 < len(m.Positions); i += 3 {
		for j := 0; j < 3; j++ {
			bmin[j] = min(bmin[j], m.Positions[i+j])
			bmax[j] = max(bmax[j], m.Positions[i+j])
		}
	}
	return bmin, bmax
}
