package obj

// LoadOptions controls on-the-fly processing of meshes during loading.
//
// The zero value keeps the data as close to the input file as possible:
// faces keep their native arity and normals/texcoords keep their own
// index arrays.
type LoadOptions struct {
	// SingleIndex assembles one shared index for positions, normals and
	// texture coordinates. Vertices may get duplicated to match
	// per-vertex-per-face normals or texcoords, so topology may change
	// (faces can become disconnected in index space even though they
	// still share a position).
	//
	// Mutually exclusive with MergeIdenticalPoints and ReorderData.
	SingleIndex bool `yaml:"single_index"`

	// Triangulate converts every face to triangles: quads split on the
	// fixed (a,b,c)+(a,c,d) diagonal, larger polygons become a fan
	// pivoting on the first vertex, and points/lines are blown up to
	// degenerate triangles unless ignored. The resulting mesh's
	// FaceArities is always empty.
	//
	// Only polygons that are trivially convertible to triangle fans are
	// supported.
	Triangulate bool `yaml:"triangulate"`

	// IgnorePoints drops faces with a single vertex.
	IgnorePoints bool `yaml:"ignore_points"`

	// IgnoreLines drops faces with two vertices.
	IgnoreLines bool `yaml:"ignore_lines"`

	// MergeIdenticalPoints merges attribute entries whose raw float bit
	// patterns are identical and remaps the index arrays accordingly.
	// Topology may change (faces can become connected in index space).
	//
	// Mutually exclusive with SingleIndex.
	MergeIdenticalPoints bool `yaml:"merge_identical_points"`

	// ReorderData reorders normals and texture coordinates so their
	// index arrays can be omitted: the resulting mesh's NormalIndices
	// and TexcoordIndices are empty and the attribute buffers align
	// with the position data.
	//
	// Mutually exclusive with SingleIndex.
	ReorderData bool `yaml:"reorder_data"`
}

// GPULoadOptions are typical options for meshes headed to a
// realtime/GPU context: triangulated, one shared index, degenerate
// faces discarded.
var GPULoadOptions = LoadOptions{
	SingleIndex:  true,
	Triangulate:  true,
	IgnorePoints: true,
	IgnoreLines:  true,
}

// OfflineRenderingLoadOptions are typical options for offline
// renderers: faces keep their arity, identical points are merged and
// attribute data is reordered so only the position index is needed.
var OfflineRenderingLoadOptions = LoadOptions{
	MergeIdenticalPoints: true,
	ReorderData:          true,
	IgnorePoints:         true,
	IgnoreLines:          true,
}

// Validate reports whether the options contain mutually exclusive flag
// settings. Load calls this before consuming any input.
func (o LoadOptions) Validate() error {
	if o.SingleIndex && (o.MergeIdenticalPoints || o.ReorderData) {
		return ErrInvalidLoadOptions
	}
	return nil
}
