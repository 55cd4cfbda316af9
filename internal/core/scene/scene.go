// Package scene is the identity model on top of the geometry kernel: a Scene
// owns Elements, each Element owns Anchors, and world positions are resolved
// by composing their transforms.
//
// A Scene is not safe for concurrent use. Hosts call it from one goroutine.
package scene

import (
	"slices"

	"github.com/svgar/svgar/internal/core/geometry"
	"github.com/svgar/svgar/internal/core/identity"
	"github.com/svgar/svgar/internal/core/observability/log"
	"github.com/svgar/svgar/pkg/sequence"
)

// Summary is what Render reports about an element.
type Summary struct {
	ElementID   string       `json:"element_id" yaml:"element_id"`
	Type        GeometryType `json:"type" yaml:"type"`
	AnchorCount int          `json:"anchor_count" yaml:"anchor_count"`
}

type Option func(*Scene)

func WithLogger(logger log.Log) Option {
	return func(s *Scene) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithIDGenerator replaces the identifier source for everything the scene creates.
func WithIDGenerator(gen identity.Generator) Option {
	return func(s *Scene) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// WithCameraExtents sets the extents the camera starts with and resets to.
func WithCameraExtents(w, h float64) Option {
	return func(s *Scene) {
		s.cameraExtents = Extents{W: w, H: h}
	}
}

type Scene struct {
	elements []*Element
	camera   *Camera

	newID         identity.Generator
	cameraExtents Extents
	logger        log.Log
}

// New creates an empty scene with the default look-down camera.
func New(opts ...Option) *Scene {
	s := &Scene{
		newID:         identity.New,
		cameraExtents: DefaultExtents,
		logger:        log.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.camera = newCamera(s.cameraExtents)
	return s
}

func (s *Scene) Camera() *Camera {
	return s.camera
}

// Len returns the number of elements.
func (s *Scene) Len() int {
	return len(s.elements)
}

// AddElement creates an element seeded with one anchor at the origin and
// returns its id.
func (s *Scene) AddElement(geometryType GeometryType) string {
	e := newElement(s.newID, geometryType)
	e.AddAnchor(0, 0, 0)
	s.elements = append(s.elements, e)

	s.logger.Debug("element added",
		log.String("element", e.id),
		log.Stringer("type", geometryType),
	)
	return e.id
}

// Element looks an element up by id.
func (s *Scene) Element(id string) (*Element, bool) {
	for _, e := range s.elements {
		if e.id == id {
			return e, true
		}
	}
	s.logger.Debug("element not found", log.String("element", id))
	return nil, false
}

// RemoveElement deletes the element and every anchor it owns.
func (s *Scene) RemoveElement(id string) bool {
	for i, e := range s.elements {
		if e.id == id {
			s.elements = slices.Delete(s.elements, i, i+1)
			s.logger.Debug("element removed", log.String("element", id))
			return true
		}
	}
	return false
}

// Reset drops every element and resets the camera.
func (s *Scene) Reset() {
	s.elements = nil
	s.camera.Reset()
}

// Elements iterates over the elements in insertion order.
func (s *Scene) Elements() *sequence.Iterator[*Element] {
	return sequence.From(s.elements)
}

// Find iterates over the elements matching pred.
func (s *Scene) Find(pred func(*Element) bool) *sequence.Iterator[*Element] {
	return s.Elements().Filter(pred)
}

// GetAnchor returns the id of the anchor at anchorIndex in the given element.
func (s *Scene) GetAnchor(elementID string, anchorIndex int) (string, bool) {
	e, ok := s.Element(elementID)
	if !ok {
		return "", false
	}
	id, ok := e.GetAnchor(anchorIndex)
	if !ok {
		s.logger.Debug("anchor index out of range",
			log.String("element", elementID),
			log.Int("index", anchorIndex),
			log.Int("anchors", e.Len()),
		)
	}
	return id, ok
}

// WorldPosition resolves element transform · anchor transform · position for
// one anchor.
func (s *Scene) WorldPosition(elementID string, anchorIndex int) (geometry.Vector3, bool) {
	e, ok := s.Element(elementID)
	if !ok {
		return geometry.Vector3{}, false
	}
	a, ok := e.AnchorAt(anchorIndex)
	if !ok {
		return geometry.Vector3{}, false
	}
	return e.worldPosition(a), true
}

// Render summarizes an element for the host.
func (s *Scene) Render(elementID string) (Summary, bool) {
	e, ok := s.Element(elementID)
	if !ok {
		return Summary{}, false
	}
	return Summary{
		ElementID:   e.id,
		Type:        e.kind,
		AnchorCount: len(e.anchors),
	}, true
}
