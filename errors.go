package pixcurve

import "errors"

// Sentinel errors returned by the curve evaluators and the renderer.
var (
	// ErrInvalidControls reports control data of the wrong count or shape
	// for the curve type. The curve is skipped.
	ErrInvalidControls = errors.New("pixcurve: invalid curve controls")

	// ErrInvalidSegments reports a non-positive segment count. It is a
	// warning: the curve is skipped and rendering continues.
	ErrInvalidSegments = errors.New("pixcurve: segment count must be positive")

	// ErrUnknownCurveType reports a curve type outside Hermite, Cardinal
	// and Bezier.
	ErrUnknownCurveType = errors.New("pixcurve: unknown curve type")

	// ErrInvalidColor reports a color string ParseColor cannot read.
	ErrInvalidColor = errors.New("pixcurve: invalid color")
)
