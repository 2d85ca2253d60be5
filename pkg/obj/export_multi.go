package obj

// exportFacesMultiIndex assembles a mesh with independent indices per
// attribute channel. Connectivity is governed by position index reuse
// alone, so the topology of the input survives per-vertex-per-face
// normals and texture coordinates.
func exportFacesMultiIndex(pos, vcolor, texcoord, normal []float32, faces []face, matID int, opts LoadOptions) (Mesh, error) {
	mesh := Mesh{MaterialID: matID}
	indexMap := make(map[int]uint32)
	texcoordIndexMap := make(map[int]uint32)
	normalIndexMap := make(map[int]uint32)

	add := func(vert vertexIndices) error {
		if i, ok := indexMap[vert.v]; ok {
			mesh.Indices = append(mesh.Indices, i)
		} else {
			v := vert.v
			if v < 0 || 3*v+2 >= len(pos) {
				return ErrVertexOutOfBounds
			}
			mesh.Positions = append(mesh.Positions, pos[3*v], pos[3*v+1], pos[3*v+2])
			next := uint32(len(indexMap))
			mesh.Indices = append(mesh.Indices, next)
			indexMap[v] = next

			if len(vcolor) > 0 {
				if 3*v+2 >= len(vcolor) {
					return ErrColorOutOfBounds
				}
				mesh.VertexColors = append(mesh.VertexColors, vcolor[3*v], vcolor[3*v+1], vcolor[3*v+2])
			}
		}

		if len(texcoord) > 0 {
			switch {
			case vert.vt == missingIndex && len(mesh.TexcoordIndices) == 0:
				// The very first vertex of the mesh has no texcoord
				// index; nothing precedes it, so reference the first
				// known value.
				mesh.Texcoords = append(mesh.Texcoords, texcoord[0], texcoord[1])
				mesh.TexcoordIndices = append(mesh.TexcoordIndices, 0)
				texcoordIndexMap[0] = 0
			case vert.vt == missingIndex:
				// Sparse index: repeat the previous one. An
				// approximation, but less prone to cause issues than
				// inventing data.
				prev := mesh.TexcoordIndices[len(mesh.TexcoordIndices)-1]
				mesh.TexcoordIndices = append(mesh.TexcoordIndices, prev)
			default:
				if i, ok := texcoordIndexMap[vert.vt]; ok {
					mesh.TexcoordIndices = append(mesh.TexcoordIndices, i)
				} else {
					vt := vert.vt
					if vt < 0 || 2*vt+1 >= len(texcoord) {
						return ErrTexcoordOutOfBounds
					}
					mesh.Texcoords = append(mesh.Texcoords, texcoord[2*vt], texcoord[2*vt+1])
					next := uint32(len(texcoordIndexMap))
					mesh.TexcoordIndices = append(mesh.TexcoordIndices, next)
					texcoordIndexMap[vt] = next
				}
			}
		}

		if len(normal) > 0 {
			switch {
			case vert.vn == missingIndex && len(mesh.NormalIndices) == 0:
				mesh.Normals = append(mesh.Normals, normal[0], normal[1], normal[2])
				mesh.NormalIndices = append(mesh.NormalIndices, 0)
				normalIndexMap[0] = 0
			case vert.vn == missingIndex:
				prev := mesh.NormalIndices[len(mesh.NormalIndices)-1]
				mesh.NormalIndices = append(mesh.NormalIndices, prev)
			default:
				if i, ok := normalIndexMap[vert.vn]; ok {
					mesh.NormalIndices = append(mesh.NormalIndices, i)
				} else {
					vn := vert.vn
					if vn < 0 || 3*vn+2 >= len(normal) {
						return ErrNormalOutOfBounds
					}
					mesh.Normals = append(mesh.Normals, normal[3*vn], normal[3*vn+1], normal[3*vn+2])
					next := uint32(len(normalIndexMap))
					mesh.NormalIndices = append(mesh.NormalIndices, next)
					normalIndexMap[vn] = next
				}
			}
		}
		return nil
	}

	if err := walkFaces(&mesh, faces, opts, add); err != nil {
		return Mesh{}, err
	}

	if opts.MergeIdenticalPoints {
		if len(mesh.VertexColors) > 0 {
			// Colors share the position index until merging tells them
			// apart.
			mesh.VertexColorIndices = append([]uint32(nil), mesh.Indices...)
			mesh.VertexColors = mergeIdenticalPoints(mesh.VertexColors, 3, mesh.VertexColorIndices)
		}
		mesh.Positions = mergeIdenticalPoints(mesh.Positions, 3, mesh.Indices)
		mesh.Normals = mergeIdenticalPoints(mesh.Normals, 3, mesh.NormalIndices)
		mesh.Texcoords = mergeIdenticalPoints(mesh.Texcoords, 2, mesh.TexcoordIndices)
	}
	if opts.ReorderData {
		reorderData(&mesh)
	}
	return mesh, nil
}
