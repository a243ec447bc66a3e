package export

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/philipparndt/gomeasure/internal/measurement"
)

// ErrUnsupportedFormat is returned for unknown export formats
var ErrUnsupportedFormat = errors.New("unsupported export format")

// ErrEmptyShape is returned when there is no geometry to export
var ErrEmptyShape = errors.New("nothing to export")

// Format is an export file format
type Format string

const (
	FormatGeoJSON  Format = "geojson"
	FormatKML      Format = "kml"
	FormatPolyline Format = "polyline"
)

// Formats lists the supported formats
var Formats = []Format{FormatGeoJSON, FormatKML, FormatPolyline}

// ParseFormat parses a format name case-insensitively
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
}

// Write exports shape with its measurement in the given format
func Write(w io.Writer, format Format, shape measurement.Shape, m measurement.Measurement) error {
	switch format {
	case FormatGeoJSON:
		data, err := GeoJSON(shape, m)
		if err != nil {
			return err
		}
		_, err = w.Write(append(data, '\n'))
		return err
	case FormatKML:
		return KML(w, "gomeasure", shape, m)
	case FormatPolyline:
		encoded, err := EncodePolyline(shape)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, encoded)
		return err
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}
