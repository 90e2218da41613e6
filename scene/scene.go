package scene

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/gogpu/pixcurve"
)

// Curve is one curve of a scene.
type Curve struct {
	Name     string
	Type     pixcurve.CurveType
	Controls pixcurve.Controls
	Segments int
	Style    pixcurve.CurveStyle
}

// Clone returns a copy of c whose controls share no memory with c.
func (c Curve) Clone() Curve {
	c.Controls = cloneControls(c.Controls)
	return c
}

func cloneControls(ctl pixcurve.Controls) pixcurve.Controls {
	switch v := ctl.(type) {
	case pixcurve.HermiteControls:
		return v.Clone()
	case pixcurve.CardinalControls:
		return v.Clone()
	case pixcurve.BezierControls:
		return v.Clone()
	default:
		return ctl
	}
}

// Scene is an ordered list of curves on a width×height grid.
type Scene struct {
	Width      int
	Height     int
	CellSize   int
	ShowGrid   bool
	Background color.Color

	// Curves is the working copy drawn by Render. It may be edited freely.
	Curves []Curve

	defaults []Curve
}

// New creates a scene. The curves become both the defaults and the
// initial working copy; neither aliases the argument.
func New(width, height int, curves []Curve) *Scene {
	s := &Scene{
		Width:      width,
		Height:     height,
		CellSize:   1,
		Background: pixcurve.Black,
		defaults:   cloneCurves(curves),
	}
	s.Reset()
	return s
}

// Reset replaces the working curves with a fresh copy of the defaults.
func (s *Scene) Reset() {
	s.Curves = cloneCurves(s.defaults)
}

// Defaults returns a copy of the default curves.
func (s *Scene) Defaults() []Curve {
	return cloneCurves(s.defaults)
}

// Render clears the framebuffer and draws every working curve in order.
//
// A curve that fails to evaluate is skipped; the remaining curves are still
// drawn. The failures are returned joined, each prefixed with the curve
// name (or index).
func (s *Scene) Render(r *pixcurve.Renderer) error {
	r.Clear()

	var errs []error
	for i, c := range s.Curves {
		if _, err := r.DrawCurve(c.Type, c.Controls, c.Segments, c.Style); err != nil {
			errs = append(errs, fmt.Errorf("scene: curve %s: %w", c.label(i), err))
		}
	}
	return errors.Join(errs...)
}

func (c Curve) label(i int) string {
	if c.Name != "" {
		return fmt.Sprintf("%q", c.Name)
	}
	return fmt.Sprintf("#%d", i)
}

func cloneCurves(curves []Curve) []Curve {
	if curves == nil {
		return nil
	}
	out := make([]Curve, len(curves))
	for i, c := range curves {
		out[i] = c.Clone()
	}
	return out
}
