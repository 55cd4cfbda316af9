package scenefile

import (
	"fmt"
	"strconv"

	"github.com/svgar/svgar/internal/core/geometry"
	"github.com/svgar/svgar/internal/core/scene"
	"github.com/svgar/svgar/internal/core/transform"
)

// ElementReport is the resolved state of one element.
type ElementReport struct {
	scene.Summary `yaml:",inline"`

	Name    string         `json:"name,omitempty" yaml:"name,omitempty"`
	Anchors []AnchorReport `json:"anchors" yaml:"anchors"`
}

type AnchorReport struct {
	ID    string `json:"id" yaml:"id"`
	World Point  `json:"world" yaml:"world"`
}

type CameraReport struct {
	Position Point `json:"position" yaml:"position"`
	Normal   Point `json:"normal" yaml:"normal"`
	Extents  Point `json:"extents" yaml:"extents"`
}

// Report is everything the CLI prints for one document.
type Report struct {
	Source   string          `json:"source,omitempty" yaml:"source,omitempty"`
	Digest   string          `json:"digest" yaml:"digest"`
	Camera   CameraReport    `json:"camera" yaml:"camera"`
	Elements []ElementReport `json:"elements" yaml:"elements"`
}

// Build creates a scene from the document. The first anchor listed for an
// element repositions the element's seed anchor; the rest are appended. It
// returns the element ids in document order.
func Build(doc *Document, opts ...scene.Option) (*scene.Scene, []string, error) {
	s := scene.New(opts...)

	if doc.Camera != nil {
		if err := applyCamera(s.Camera(), doc.Camera); err != nil {
			return nil, nil, err
		}
	}

	ids := make([]string, 0, len(doc.Elements))
	for i, ed := range doc.Elements {
		id := s.AddElement(ed.Type)
		e, _ := s.Element(id)

		if err := buildElement(e, ed); err != nil {
			return nil, nil, fmt.Errorf("element %s: %w", elementLabel(i, ed), err)
		}
		ids = append(ids, id)
	}
	return s, ids, nil
}

func buildElement(e *scene.Element, ed ElementDoc) error {
	t, err := docTransform(e.Transform(), ed.Translate, ed.Rotate)
	if err != nil {
		return err
	}
	e.SetTransform(t)

	for j, ad := range ed.Anchors {
		var a *scene.Anchor
		if j == 0 {
			a, _ = e.AnchorAt(0)
			a.SetPosition(ad.Position[0], ad.Position[1], ad.Position[2])
		} else {
			a, _ = e.Anchor(e.AddAnchor(ad.Position[0], ad.Position[1], ad.Position[2]))
		}

		at, err := docTransform(a.Transform(), ad.Translate, ad.Rotate)
		if err != nil {
			return fmt.Errorf("anchor %d: %w", j, err)
		}
		a.SetTransform(at)
	}
	return nil
}

// docTransform rotates first, then translates, both in world space.
func docTransform(t transform.Transform, translate *Point, rotate *Rotation) (transform.Transform, error) {
	if rotate != nil {
		var err error
		t, err = t.RotateAbout(rotate.Start.Vector(), rotate.End.Vector(), rotate.Angle, rotate.Degrees)
		if err != nil {
			return transform.Transform{}, err
		}
	}
	if translate != nil {
		t = t.Translate(translate[0], translate[1], translate[2])
	}
	return t, nil
}

func applyCamera(c *scene.Camera, cd *CameraDoc) error {
	if cd.Position != nil {
		c.Position = cd.Position.Vector()
	}
	if cd.Target != nil {
		c.Target = cd.Target.Vector()
	}
	if cd.Rotation != 0 {
		c.Rotate(cd.Rotation, cd.Degrees)
	}
	if cd.Tilt != 0 {
		if err := c.Tilt(cd.Tilt, cd.Degrees); err != nil {
			return fmt.Errorf("camera: %w", err)
		}
	}
	return nil
}

func elementLabel(i int, ed ElementDoc) string {
	if ed.Name != "" {
		return strconv.Quote(ed.Name)
	}
	return "#" + strconv.Itoa(i)
}

// Resolve reports world positions for the given elements of s.
func Resolve(s *scene.Scene, ids []string, names []string) Report {
	compiled := s.Camera().Compile()
	r := Report{
		Digest: fmt.Sprintf("%016x", s.Digest()),
		Camera: CameraReport{
			Position: toPoint(compiled[0]),
			Normal:   toPoint(compiled[1]),
			Extents:  toPoint(compiled[2]),
		},
		Elements: make([]ElementReport, 0, len(ids)),
	}

	for i, id := range ids {
		e, ok := s.Element(id)
		if !ok {
			continue
		}
		summary, _ := s.Render(id)
		er := ElementReport{
			Summary: summary,
			Anchors: make([]AnchorReport, 0, e.Len()),
		}
		if i < len(names) {
			er.Name = names[i]
		}
		for j, world := range e.WorldPositions() {
			anchorID, _ := e.GetAnchor(j)
			er.Anchors = append(er.Anchors, AnchorReport{ID: anchorID, World: toPoint(world)})
		}
		r.Elements = append(r.Elements, er)
	}
	return r
}

// Run builds the document and resolves every element in it.
func Run(doc *Document, opts ...scene.Option) (Report, error) {
	s, ids, err := Build(doc, opts...)
	if err != nil {
		return Report{}, err
	}
	names := make([]string, len(doc.Elements))
	for i, ed := range doc.Elements {
		names[i] = ed.Name
	}
	return Resolve(s, ids, names), nil
}

func toPoint(v geometry.Vector3) Point {
	return Point{v.X, v.Y, v.Z}
}
