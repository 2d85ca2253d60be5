package obj

// walkFaces feeds every face to add, applying the triangulation and
// degenerate-face policy from opts and keeping the per-face arity
// bookkeeping. Both indexing strategies share this walk; only the
// vertex emission differs.
func walkFaces(mesh *Mesh, faces []face, opts LoadOptions, add func(vertexIndices) error) error {
	allTriangles := true
	for _, f := range faces {
		switch len(f.verts) {
		case 1:
			if opts.IgnorePoints {
				continue
			}
			a := f.verts[0]
			if err := add(a); err != nil {
				return err
			}
			if opts.Triangulate {
				// Blow the point up to a zero-area triangle.
				if err := add(a); err != nil {
					return err
				}
				if err := add(a); err != nil {
					return err
				}
			} else {
				allTriangles = false
				mesh.FaceArities = append(mesh.FaceArities, 1)
			}
		case 2:
			if opts.IgnoreLines {
				continue
			}
			a, b := f.verts[0], f.verts[1]
			if err := add(a); err != nil {
				return err
			}
			if err := add(b); err != nil {
				return err
			}
			if opts.Triangulate {
				if err := add(b); err != nil {
					return err
				}
			} else {
				allTriangles = false
				mesh.FaceArities = append(mesh.FaceArities, 2)
			}
		case 3:
			for _, v := range f.verts {
				if err := add(v); err != nil {
					return err
				}
			}
			if !opts.Triangulate {
				mesh.FaceArities = append(mesh.FaceArities, 3)
			}
		case 4:
			a, b, c, d := f.verts[0], f.verts[1], f.verts[2], f.verts[3]
			for _, v := range []vertexIndices{a, b, c} {
				if err := add(v); err != nil {
					return err
				}
			}
			if opts.Triangulate {
				// Fixed diagonal split: (a,b,c) + (a,c,d).
				for _, v := range []vertexIndices{a, c, d} {
					if err := add(v); err != nil {
						return err
					}
				}
			} else {
				if err := add(d); err != nil {
					return err
				}
				allTriangles = false
				mesh.FaceArities = append(mesh.FaceArities, 4)
			}
		default:
			if opts.Triangulate {
				// parseFace never emits an empty face; this guards
				// faces constructed without it.
				if len(f.verts) < 2 {
					return ErrInvalidPolygon
				}
				// Triangle fan pivoting on the first vertex.
				a := f.verts[0]
				b := f.verts[1]
				for _, c := range f.verts[2:] {
					for _, v := range []vertexIndices{a, b, c} {
						if err := add(v); err != nil {
							return err
						}
					}
					b = c
				}
			} else {
				for _, v := range f.verts {
					if err := add(v); err != nil {
						return err
					}
				}
				allTriangles = false
				mesh.FaceArities = append(mesh.FaceArities, uint32(len(f.verts)))
			}
		}
	}
	if allTriangles {
		// Empty arities signal an all-triangle mesh to the consumer.
		mesh.FaceArities = nil
	}
	return nil
}

// exportFaces assembles a mesh with a single shared index: each unique
// (v, vt, vn) triple becomes one output vertex carrying all of its
// attribute data.
func exportFaces(pos, vcolor, texcoord, normal []float32, faces []face, matID int, opts LoadOptions) (Mesh, error) {
	mesh := Mesh{MaterialID: matID}
	indexMap := make(map[vertexIndices]uint32)

	add := func(vert vertexIndices) error {
		if i, ok := indexMap[vert]; ok {
			mesh.Indices = append(mesh.Indices, i)
			return nil
		}
		v := vert.v
		if v < 0 || 3*v+2 >= len(pos) {
			return ErrVertexOutOfBounds
		}
		mesh.Positions = append(mesh.Positions, pos[3*v], pos[3*v+1], pos[3*v+2])
		if len(texcoord) > 0 && vert.vt != missingIndex {
			vt := vert.vt
			if vt < 0 || 2*vt+1 >= len(texcoord) {
				return ErrTexcoordOutOfBounds
			}
			mesh.Texcoords = append(mesh.Texcoords, texcoord[2*vt], texcoord[2*vt+1])
		}
		if len(normal) > 0 && vert.vn != missingIndex {
			vn := vert.vn
			if vn < 0 || 3*vn+2 >= len(normal) {
				return ErrNormalOutOfBounds
			}
			mesh.Normals = append(mesh.Normals, normal[3*vn], normal[3*vn+1], normal[3*vn+2])
		}
		if len(vcolor) > 0 {
			if 3*v+2 >= len(vcolor) {
				return ErrColorOutOfBounds
			}
			mesh.VertexColors = append(mesh.VertexColors, vcolor[3*v], vcolor[3*v+1], vcolor[3*v+2])
		}
		next := uint32(len(indexMap))
		mesh.Indices = append(mesh.Indices, next)
		indexMap[vert] = next
		return nil
	}

	if err := walkFaces(&mesh, faces, opts, add); err != nil {
		return Mesh{}, err
	}
	return mesh, nil
}
