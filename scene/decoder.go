package scene

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/pixcurve"
)

// Errors returned while decoding scene files.
var (
	// ErrUnknownFormat is returned for unsupported scene file extensions.
	ErrUnknownFormat = errors.New("scene: unknown file format")

	// ErrInvalidScene is returned for scene files with bad field values.
	ErrInvalidScene = errors.New("scene: invalid scene")
)

// Format is a scene file encoding.
type Format int

const (
	// FormatTOML decodes with github.com/pelletier/go-toml/v2.
	FormatTOML Format = iota
	// FormatYAML decodes with gopkg.in/yaml.v3.
	FormatYAML
)

// FormatFromPath picks the format from the file extension of path.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
}

// File is the on-disk form of a scene.
type File struct {
	Width      int         `toml:"width" yaml:"width"`
	Height     int         `toml:"height" yaml:"height"`
	CellSize   int         `toml:"cell_size" yaml:"cell_size"`
	ShowGrid   bool        `toml:"show_grid" yaml:"show_grid"`
	Background string      `toml:"background" yaml:"background"`
	Curves     []CurveFile `toml:"curve" yaml:"curves"`
}

// CurveFile is the on-disk form of a curve. Points are [x, y] pairs; for
// Hermite curves they are P0, T0, P1, T1.
type CurveFile struct {
	Name         string      `toml:"name" yaml:"name"`
	Type         string      `toml:"type" yaml:"type"`
	Points       [][]float64 `toml:"points" yaml:"points"`
	Tension      float64     `toml:"tension" yaml:"tension"`
	Segments     int         `toml:"segments" yaml:"segments"`
	ShowPoints   bool        `toml:"show_points" yaml:"show_points"`
	ShowLine     bool        `toml:"show_line" yaml:"show_line"`
	ShowControls bool        `toml:"show_controls" yaml:"show_controls"`
	Color        string      `toml:"color" yaml:"color"`
}

// Load reads a scene file, choosing the decoder from its extension.
func Load(path string) (*Scene, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	s, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("scene: load %s: %w", path, err)
	}
	return s, nil
}

// Decode reads a scene in the given format from r.
func Decode(r io.Reader, format Format) (*Scene, error) {
	var file File
	switch format {
	case FormatTOML:
		if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&file); err != nil {
			return nil, fmt.Errorf("scene: decode toml: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("scene: decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, int(format))
	}
	return file.Build()
}

// Build validates the file and converts it to a Scene.
//
// Grid size and colors are checked here. Control data is only checked
// where the curve type cannot be built otherwise (Hermite needs exactly
// four points); other shape problems surface when the curve is rendered.
func (f File) Build() (*Scene, error) {
	if f.Width <= 0 || f.Height <= 0 {
		return nil, fmt.Errorf("%w: grid size %dx%d", ErrInvalidScene, f.Width, f.Height)
	}

	background := pixcurve.Black
	if f.Background != "" {
		c, err := pixcurve.ParseColor(f.Background)
		if err != nil {
			return nil, fmt.Errorf("%w: background: %w", ErrInvalidScene, err)
		}
		background = c
	}

	curves := make([]Curve, 0, len(f.Curves))
	for i, cf := range f.Curves {
		c, err := cf.build()
		if err != nil {
			return nil, fmt.Errorf("%w: curve %s: %w", ErrInvalidScene, Curve{Name: cf.Name}.label(i), err)
		}
		curves = append(curves, c)
	}

	s := New(f.Width, f.Height, curves)
	s.CellSize = max(f.CellSize, 1)
	s.ShowGrid = f.ShowGrid
	s.Background = background
	return s, nil
}

func (cf CurveFile) build() (Curve, error) {
	typ, err := pixcurve.ParseCurveType(strings.ToLower(strings.TrimSpace(cf.Type)))
	if err != nil {
		return Curve{}, err
	}

	pts := make([]pixcurve.Point, len(cf.Points))
	for i, p := range cf.Points {
		if len(p) != 2 {
			return Curve{}, fmt.Errorf("point %d has %d coordinates, want 2", i, len(p))
		}
		pts[i] = pixcurve.Pt(p[0], p[1])
	}

	ctl, err := pixcurve.NewControls(typ, pts, cf.Tension)
	if err != nil {
		return Curve{}, err
	}

	var lineColor = pixcurve.White
	if cf.Color != "" {
		if lineColor, err = pixcurve.ParseColor(cf.Color); err != nil {
			return Curve{}, err
		}
	}

	return Curve{
		Name:     cf.Name,
		Type:     typ,
		Controls: ctl,
		Segments: cf.Segments,
		Style: pixcurve.CurveStyle{
			ShowPoints:   cf.ShowPoints,
			ShowLine:     cf.ShowLine,
			ShowControls: cf.ShowControls,
			Color:        lineColor,
		},
	}, nil
}
