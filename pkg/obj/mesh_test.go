package obj

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestMeshBounds(t *testing.T) {
	m := Mesh{Positions: []float32{
		-0.5, -1, 0,
		0.5, 2, -3,
		0, 0, 1,
	}}
	bmin, bmax := m.Bounds()
	if want := (mgl32.Vec3{-0.5, -1, -3}); bmin != want {
		t.Errorf("min bounds = %v, want %v", bmin, want)
	}
	if want := (mgl32.Vec3{0.5, 2, 1}); bmax != want {
		t.Errorf("max bounds = %v, want %v", bmax, want)
	}

	var empty Mesh
	bmin, bmax = empty.Bounds()
	if bmin != (mgl32.Vec3{}) || bmax != (mgl32.Vec3{}) {
		t.Errorf("empty mesh bounds = %v %v, want zero", bmin, bmax)
	}
}

func TestMeshFaceCount(t *testing.T) {
	m := Mesh{Indices: []uint32{0, 1, 2, 0, 2, 3}}
	if m.FaceCount() != 2 {
		t.Errorf("triangle mesh face count = %d, want 2", m.FaceCount())
	}

	m.FaceArities = []uint32{4, 3}
	if m.FaceCount() != 2 {
		t.Errorf("mixed-arity face count = %d, want 2", m.FaceCount())
	}
}
