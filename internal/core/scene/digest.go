package scene

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/svgar/svgar/internal/core/geometry"
	"github.com/svgar/svgar/internal/core/transform"
)

// Digest fingerprints the scene: element and anchor ids, types, positions
// and transforms, plus the camera transform and view parameters. Equal scenes hash equal; any
// mutation changes the digest with overwhelming probability.
func (s *Scene) Digest() uint64 {
	d := xxhash.New()
	var buf [8]byte

	writeFloat := func(f float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
		_, _ = d.Write(buf[:])
	}
	writeTransform := func(t transform.Transform) {
		for _, f := range t.Mat4() {
			writeFloat(f)
		}
	}

	c := s.camera
	writeTransform(c.transform)
	for _, v := range [2]geometry.Vector3{c.Position, c.Target} {
		writeFloat(v.X)
		writeFloat(v.Y)
		writeFloat(v.Z)
	}
	writeFloat(c.Rotation)
	writeFloat(c.Extents.W)
	writeFloat(c.Extents.H)

	for _, e := range s.elements {
		_, _ = d.WriteString(e.id)
		_, _ = d.Write([]byte{byte(e.kind)})
		writeTransform(e.transform)
		for _, a := range e.anchors {
			_, _ = d.WriteString(a.id)
			for _, f := range a.position {
				writeFloat(f)
			}
			writeTransform(a.transform)
		}
	}

	return d.Sum64()
}
