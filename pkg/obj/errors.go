package obj

import "errors"

// Load errors. Parse errors are wrapped with the offending line number,
// so use errors.Is to test for them.
var (
	// ErrInvalidPosition is returned when a `v` line does not contain
	// three parseable coordinates.
	ErrInvalidPosition = errors.New("invalid position")
	// ErrInvalidTexcoord is returned when a `vt` line does not contain
	// two parseable coordinates.
	ErrInvalidTexcoord = errors.New("invalid texture coordinate")
	// ErrInvalidNormal is returned when a `vn` line does not contain
	// three parseable coordinates.
	ErrInvalidNormal = errors.New("invalid normal")
	// ErrInvalidFace is returned when a face line has no vertices or a
	// vertex token is malformed.
	ErrInvalidFace = errors.New("invalid face")
	// ErrInvalidMaterial is returned for malformed MTL values.
	ErrInvalidMaterial = errors.New("invalid material")
	// ErrInvalidObjectName is returned for a `newmtl` line with no name.
	ErrInvalidObjectName = errors.New("invalid object name")
	// ErrInvalidPolygon is returned when a polygon face with fewer than
	// two vertices reaches export. Input that triggers this indicates a
	// parser bug, not bad user data.
	ErrInvalidPolygon = errors.New("invalid polygon")

	// ErrVertexOutOfBounds is returned when a face references a position
	// outside the accumulated position buffer.
	ErrVertexOutOfBounds = errors.New("face vertex index out of bounds")
	// ErrTexcoordOutOfBounds is returned when a face references a texture
	// coordinate outside the accumulated texcoord buffer.
	ErrTexcoordOutOfBounds = errors.New("face texcoord index out of bounds")
	// ErrNormalOutOfBounds is returned when a face references a normal
	// outside the accumulated normal buffer.
	ErrNormalOutOfBounds = errors.New("face normal index out of bounds")
	// ErrColorOutOfBounds is returned when vertex colors are present but
	// a face references a vertex with no color entry.
	ErrColorOutOfBounds = errors.New("face vertex color index out of bounds")

	// ErrInvalidLoadOptions is returned when mutually exclusive
	// LoadOptions flags are set together.
	ErrInvalidLoadOptions = errors.New("mutually exclusive load options")
)
