package scene

import (
	"fmt"
	"slices"
	"strings"

	"github.com/svgar/svgar/internal/core/geometry"
	"github.com/svgar/svgar/internal/core/identity"
	"github.com/svgar/svgar/internal/core/transform"
	"github.com/svgar/svgar/pkg/sequence"
)

// GeometryType tags what an element's anchors describe.
type GeometryType uint8

const (
	Line GeometryType = iota + 1
	Quad
)

// Valid reports whether g is one of the known geometry types. The zero value
// is not.
func (g GeometryType) Valid() bool {
	return g == Line || g == Quad
}

func (g GeometryType) String() string {
	switch g {
	case Line:
		return "line"
	case Quad:
		return "quad"
	default:
		return fmt.Sprintf("geometry(%d)", uint8(g))
	}
}

// ParseGeometryType accepts "line" or "quad" in any case.
func ParseGeometryType(s string) (GeometryType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "line":
		return Line, nil
	case "quad":
		return Quad, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownGeometryType, s)
	}
}

func (g GeometryType) MarshalText() ([]byte, error) {
	if !g.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownGeometryType, uint8(g))
	}
	return []byte(g.String()), nil
}

func (g *GeometryType) UnmarshalText(text []byte) error {
	parsed, err := ParseGeometryType(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// Element is an identified, ordered group of anchors sharing a local transform.
type Element struct {
	id        string
	kind      GeometryType
	anchors   []*Anchor
	transform transform.Transform
	newID     identity.Generator
}

// NewElement creates an element with no anchors.
func NewElement(geometryType GeometryType) *Element {
	return newElement(identity.New, geometryType)
}

func newElement(gen identity.Generator, geometryType GeometryType) *Element {
	return &Element{
		id:        gen(),
		kind:      geometryType,
		transform: transform.Identity(),
		newID:     gen,
	}
}

func (e *Element) ID() string {
	return e.id
}

func (e *Element) Type() GeometryType {
	return e.kind
}

// Len returns the number of anchors.
func (e *Element) Len() int {
	return len(e.anchors)
}

// AddAnchor appends a new anchor at (x, y, z) and returns its id.
func (e *Element) AddAnchor(x, y, z float64) string {
	a := newAnchor(e.newID, x, y, z)
	e.anchors = append(e.anchors, a)
	return a.id
}

// GetAnchor returns the id of the anchor at index.
func (e *Element) GetAnchor(index int) (string, bool) {
	a, ok := e.AnchorAt(index)
	if !ok {
		return "", false
	}
	return a.id, true
}

func (e *Element) AnchorAt(index int) (*Anchor, bool) {
	if index < 0 || index >= len(e.anchors) {
		return nil, false
	}
	return e.anchors[index], true
}

// Anchor looks an anchor up by id.
func (e *Element) Anchor(id string) (*Anchor, bool) {
	for _, a := range e.anchors {
		if a.id == id {
			return a, true
		}
	}
	return nil, false
}

// RemoveAnchor deletes the anchor with the given id, keeping the order of the rest.
func (e *Element) RemoveAnchor(id string) bool {
	for i, a := range e.anchors {
		if a.id == id {
			e.anchors = slices.Delete(e.anchors, i, i+1)
			return true
		}
	}
	return false
}

// Anchors iterates over the anchors in insertion order.
func (e *Element) Anchors() *sequence.Iterator[*Anchor] {
	return sequence.From(e.anchors)
}

func (e *Element) Transform() transform.Transform {
	return e.transform
}

func (e *Element) SetTransform(t transform.Transform) {
	e.transform = t
}

// Translate composes a world-space translation onto the element transform.
func (e *Element) Translate(dx, dy, dz float64) {
	e.transform = e.transform.Translate(dx, dy, dz)
}

// WorldPositions resolves element transform · anchor transform · position for
// every anchor, in order.
func (e *Element) WorldPositions() []geometry.Vector3 {
	out := make([]geometry.Vector3, len(e.anchors))
	for i, a := range e.anchors {
		out[i] = e.worldPosition(a)
	}
	return out
}

func (e *Element) worldPosition(a *Anchor) geometry.Vector3 {
	return e.transform.Apply(a.WorldPosition())
}
