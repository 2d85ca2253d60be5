package obj

import "math"

// mergeIdenticalPoints removes duplicate points from a flat attribute
// buffer and remaps indices in place, returning the compacted buffer.
// stride is the number of floats per point (2 for texcoords, 3
// otherwise).
//
// Two points are identical iff their raw float bit patterns match, so
// -0 and +0 stay distinct and distinct NaN encodings are treated as
// distinct points. Floats have no total order; comparing bits sidesteps
// that.
func mergeIdenticalPoints(points []float32, stride int, indices []uint32) []float32 {
	if len(indices) == 0 {
		return points
	}

	canonical := make(map[[3]uint32]uint32)
	remap := make([]uint32, 0, len(points)/stride)
	merged := make([]float32, 0, len(points))

	var next uint32
	for i := 0; i+stride <= len(points); i += stride {
		var key [3]uint32
		for j := 0; j < stride; j++ {
			key[j] = math.Float32bits(points[i+j])
		}
		if canon, ok := canonical[key]; ok {
			remap = append(remap, canon)
			continue
		}
		canonical[key] = next
		remap = append(remap, next)
		merged = append(merged, points[i:i+stride]...)
		next++
	}

	for i, v := range indices {
		indices[i] = remap[v]
	}
	return merged
}
