// Package scenefile builds scenes from YAML documents and reports their
// resolved world positions. It is host-side tooling around the kernel.
package scenefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/svgar/svgar/internal/core/geometry"
	"github.com/svgar/svgar/internal/core/scene"
)

var ErrEmptyDocument = errors.New("scene document has no elements")

// Point is a position or offset written as [x, y, z].
type Point [3]float64

func (p Point) Vector() geometry.Vector3 {
	return geometry.New(p[0], p[1], p[2])
}

// Rotation describes a rotation about the line through Start and End.
type Rotation struct {
	Start   Point   `yaml:"start"`
	End     Point   `yaml:"end"`
	Angle   float64 `yaml:"angle"`
	Degrees bool    `yaml:"degrees"`
}

type Document struct {
	Camera   *CameraDoc   `yaml:"camera,omitempty"`
	Elements []ElementDoc `yaml:"elements"`
}

type CameraDoc struct {
	Position *Point  `yaml:"position,omitempty"`
	Target   *Point  `yaml:"target,omitempty"`
	Rotation float64 `yaml:"rotation,omitempty"`
	Tilt     float64 `yaml:"tilt,omitempty"`
	Degrees  bool    `yaml:"degrees,omitempty"`
}

type ElementDoc struct {
	Name      string             `yaml:"name,omitempty"`
	Type      scene.GeometryType `yaml:"type"`
	Translate *Point             `yaml:"translate,omitempty"`
	Rotate    *Rotation          `yaml:"rotate,omitempty"`
	Anchors   []AnchorDoc        `yaml:"anchors,omitempty"`
}

type AnchorDoc struct {
	Position  Point     `yaml:"position"`
	Translate *Point    `yaml:"translate,omitempty"`
	Rotate    *Rotation `yaml:"rotate,omitempty"`
}

// Decode reads a YAML scene document. Unknown keys are rejected.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, err
	}
	if len(doc.Elements) == 0 {
		return nil, ErrEmptyDocument
	}
	for i, ed := range doc.Elements {
		if !ed.Type.Valid() {
			return nil, fmt.Errorf("element %s: missing type: %w", elementLabel(i, ed), scene.ErrUnknownGeometryType)
		}
	}
	return &doc, nil
}

// Load reads and decodes a scene document from disk.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenefile: read %s: %w", path, err)
	}
	doc, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("scenefile: parse %s: %w", path, err)
	}
	return doc, nil
}
