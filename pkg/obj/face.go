package obj

import (
	"strconv"
	"strings"
)

// missingIndex marks a vertex channel (vt or vn) that the face token
// did not specify. Valid resolved indices are never negative.
const missingIndex = -1

// vertexIndices holds the resolved, zero-based attribute indices of one
// face vertex. v is required by the format; vt and vn may be
// missingIndex.
type vertexIndices struct {
	v, vt, vn int
}

// face is one parsed face line: 1 vertex is a point, 2 a line, 3 a
// triangle, 4 a quad and 5+ a polygon. The exporter switches on the
// arity exhaustively.
type face struct {
	verts []vertexIndices
}

// parseVertexIndices parses a face vertex token of the form
// "v", "v/vt", "v/vt/vn" or "v//vn".
//
// OBJ indices are 1-based; negative values are relative to the current
// size of the corresponding attribute buffer, which is why the counts
// are passed in. Resolution happens here, at parse time, so attribute
// lines appearing after the face do not shift it.
func parseVertexIndices(token string, posCount, texCount, normCount int) (vertexIndices, bool) {
	vi := vertexIndices{v: missingIndex, vt: missingIndex, vn: missingIndex}
	for i, part := range strings.Split(token, "/") {
		// A v//vn token yields an empty vt segment.
		if part == "" {
			continue
		}
		x, err := strconv.Atoi(part)
		if err != nil {
			return vi, false
		}
		idx := x - 1
		if x < 0 {
			switch i {
			case 0:
				idx = posCount + x
			case 1:
				idx = texCount + x
			case 2:
				idx = normCount + x
			}
		}
		switch i {
		case 0:
			vi.v = idx
		case 1:
			vi.vt = idx
		case 2:
			vi.vn = idx
		default:
			// More than three index fields is not a valid face vertex.
			return vi, false
		}
	}
	return vi, true
}

// parseFace parses the vertex tokens of one `f` (or `l`) line,
// classifying the result by arity. It fails if the line has no vertex
// tokens or any token is malformed.
func parseFace(tokens []string, posCount, texCount, normCount int) (face, bool) {
	if len(tokens) == 0 {
		return face{}, false
	}
	verts := make([]vertexIndices, 0, len(tokens))
	for _, tok := range tokens {
		vi, ok := parseVertexIndices(tok, posCount, texCount, normCount)
		if !ok {
			return face{}, false
		}
		verts = append(verts, vi)
	}
	return face{verts: verts}, true
}

// appendFloats parses up to n fields as floats and appends them to dst.
// It reports whether exactly n values were appended; values parsed
// before a failure stay appended.
func appendFloats(dst []float32, fields []string, n int) ([]float32, bool) {
	want := len(dst) + n
	for i := 0; i < n && i < len(fields); i++ {
		v, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return dst, false
		}
		dst = append(dst, float32(v))
	}
	return dst, len(dst) == want
}
