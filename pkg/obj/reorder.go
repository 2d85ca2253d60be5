package obj

// reorderData collapses the texcoord and normal index arrays into the
// position index: the attribute buffers are rebuilt so the mesh can be
// consumed with Indices alone, and the per-channel index arrays are
// cleared. Channels the mesh does not carry are left untouched.
func reorderData(m *Mesh) {
	vertices := len(m.Positions) / 3

	if len(m.TexcoordIndices) > 0 {
		if len(m.Texcoords)/2 == vertices {
			// Per-vertex data: scatter each texcoord to the slot of the
			// position it was used with.
			reordered := make([]float32, 2*vertices)
			for i := 0; i < len(m.TexcoordIndices) && i < len(m.Indices); i++ {
				ti := 2 * m.TexcoordIndices[i]
				pi := 2 * m.Indices[i]
				reordered[pi] = m.Texcoords[ti]
				reordered[pi+1] = m.Texcoords[ti+1]
			}
			m.Texcoords = reordered
		} else {
			// Per-vertex-per-face data: gather into face order so slot
			// i matches Indices[i].
			reordered := make([]float32, 0, 2*len(m.TexcoordIndices))
			for _, ti := range m.TexcoordIndices {
				reordered = append(reordered, m.Texcoords[2*ti], m.Texcoords[2*ti+1])
			}
			m.Texcoords = reordered
		}
		m.TexcoordIndices = nil
	}

	if len(m.NormalIndices) > 0 {
		if len(m.Normals)/3 == vertices {
			reordered := make([]float32, 3*vertices)
			for i := 0; i < len(m.NormalIndices) && i < len(m.Indices); i++ {
				ni := 3 * m.NormalIndices[i]
				pi := 3 * m.Indices[i]
				reordered[pi] = m.Normals[ni]
				reordered[pi+1] = m.Normals[ni+1]
				reordered[pi+2] = m.Normals[ni+2]
			}
			m.Normals = reordered
		} else {
			reordered := make([]float32, 0, 3*len(m.NormalIndices))
			for _, ni := range m.NormalIndices {
				reordered = append(reordered, m.Normals[3*ni], m.Normals[3*ni+1], m.Normals[3*ni+2])
			}
			m.Normals = reordered
		}
		m.NormalIndices = nil
	}
}
