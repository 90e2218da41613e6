package pixcurve

import (
	"context"
	"errors"
	"image/color"
	"log/slog"

	"github.com/gogpu/pixcurve/basis"
)

// tangentScale shrinks Hermite tangent indicators so they stay on screen.
const tangentScale = 0.25

// CurveStyle selects what DrawCurve paints.
type CurveStyle struct {
	// ShowPoints draws a marker at every evaluated sample.
	ShowPoints bool
	// ShowLine joins consecutive samples with straight lines.
	ShowLine bool
	// ShowControls draws control point markers plus the tangent
	// indicators (Hermite) or the control polygon (Cardinal, Bezier).
	ShowControls bool
	// Color is the color of the curve line.
	Color color.Color
}

// Renderer draws lines and curves onto a Framebuffer.
//
// The basis tables the renderer evaluates curves with are owned by its
// basis.Cache, which lives as long as the renderer unless shared via
// WithBasisCache.
//
// A Renderer is not safe for concurrent use.
type Renderer struct {
	fb    *Framebuffer
	cache *basis.Cache

	sampleColor  color.Color
	controlColor color.Color
	overlayColor color.Color
}

// NewRenderer creates a renderer drawing onto fb.
func NewRenderer(fb *Framebuffer, opts ...RendererOption) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.cache == nil {
		o.cache = basis.New()
	}
	return &Renderer{
		fb:           fb,
		cache:        o.cache,
		sampleColor:  o.sampleColor,
		controlColor: o.controlColor,
		overlayColor: o.overlayColor,
	}
}

// Framebuffer returns the framebuffer the renderer draws onto.
func (r *Renderer) Framebuffer() *Framebuffer {
	return r.fb
}

// Cache returns the basis cache used for curve evaluation.
func (r *Renderer) Cache() *basis.Cache {
	return r.cache
}

// Clear resets the framebuffer to its background.
func (r *Renderer) Clear() {
	r.fb.Clear()
}

// DrawPixel paints the pixel containing (x, y).
func (r *Renderer) DrawPixel(x, y float64, c color.Color) {
	r.fb.DrawPixel(x, y, c)
}

// DrawLine paints a Bresenham line between the rounded endpoints.
func (r *Renderer) DrawLine(x0, y0, x1, y1 float64, c color.Color) {
	r.fb.DrawLine(x0, y0, x1, y1, c)
}

// DrawCurve evaluates the curve and paints it according to style.
//
// The evaluated samples are returned whatever the style, so a caller can
// inspect a curve without painting it. When the controls do not fit typ, or
// segments is not positive, nothing is painted and the error is returned
// (and logged: validation errors at error level, segment counts at warn
// level). A failing curve never affects other DrawCurve calls.
func (r *Renderer) DrawCurve(typ CurveType, ctl Controls, segments int, style CurveStyle) ([]Point, error) {
	pts, err := Evaluate(r.cache, typ, ctl, segments)
	if err != nil {
		level := slog.LevelError
		if errors.Is(err, ErrInvalidSegments) {
			level = slog.LevelWarn
		}
		Logger().Log(context.Background(), level, "pixcurve: curve skipped",
			slog.String("type", typ.String()),
			slog.Int("segments", segments),
			slog.String("error", err.Error()))
		return nil, err
	}

	if style.ShowLine {
		lineColor := style.Color
		if lineColor == nil {
			lineColor = White
		}
		r.drawPolyline(pts, lineColor)
	}

	if style.ShowPoints {
		for _, p := range pts {
			r.fb.DrawPointMarker(p.X, p.Y, r.sampleColor)
		}
	}

	if style.ShowControls {
		r.drawControls(ctl)
	}

	return pts, nil
}

// drawControls paints the control overlay of ctl.
func (r *Renderer) drawControls(ctl Controls) {
	switch c := ctl.(type) {
	case HermiteControls:
		for _, pair := range [][2]Point{{c[0], c[1]}, {c[2], c[3]}} {
			end := pair[0].Add(pair[1].Mul(tangentScale))
			r.fb.DrawLine(pair[0].X, pair[0].Y, end.X, end.Y, r.overlayColor)
		}
	default:
		r.drawPolyline(ctl.ControlPoints(), r.overlayColor)
	}

	// Markers last so the polygon does not hide them.
	for _, p := range ctl.ControlPoints() {
		r.fb.DrawPointMarker(p.X, p.Y, r.controlColor)
	}
}

func (r *Renderer) drawPolyline(pts []Point, c color.Color) {
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		r.fb.DrawLine(a.X, a.Y, b.X, b.Y, c)
	}
}
