package main

import (
	"fmt"
	"io"

	"github.com/philipparndt/gomeasure/internal/export"
	"github.com/philipparndt/gomeasure/internal/measurement"
	"github.com/philipparndt/gomeasure/pkg/geo"
	"github.com/spf13/cobra"
)

var (
	measurePoints []string
	measureExport string

	circleCenter string
	circleRadius float64

	pathClosed bool
)

var polygonCmd = &cobra.Command{
	Use:   "polygon",
	Short: "Measure the area and perimeter of a polygon",
	Long: `Measure the spherical area and perimeter of a closed polygon.
Give at least three vertices in order, e.g.
  gomeasure polygon -p 40.0,-3.0 -p 40.01,-3.0 -p 40.0,-3.01`,
	Args: cobra.NoArgs,
	RunE: runPolygon,
}

var circleCmd = &cobra.Command{
	Use:   "circle",
	Short: "Measure a circle given its center and radius",
	Args:  cobra.NoArgs,
	RunE:  runCircle,
}

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Measure the length of a path",
	Long: `Measure a path segment by segment. With --closed the path is also closed back
onto its first point to report the enclosed area.`,
	Args: cobra.NoArgs,
	RunE: runPath,
}

func init() {
	rootCmd.AddCommand(polygonCmd, circleCmd, pathCmd)

	for _, cmd := range []*cobra.Command{polygonCmd, pathCmd} {
		cmd.Flags().StringArrayVarP(&measurePoints, "point", "p", nil, "Vertex as lat,lng (repeatable)")
		_ = cmd.MarkFlagRequired("point")
	}
	for _, cmd := range []*cobra.Command{polygonCmd, circleCmd, pathCmd} {
		cmd.Flags().StringVarP(&measureExport, "export", "e", "", "Also export the shape: geojson, kml or polyline")
	}

	circleCmd.Flags().StringVarP(&circleCenter, "center", "c", "", "Center as lat,lng")
	circleCmd.Flags().Float64VarP(&circleRadius, "radius", "r", 0, "Radius in meters")
	_ = circleCmd.MarkFlagRequired("center")
	_ = circleCmd.MarkFlagRequired("radius")

	pathCmd.Flags().BoolVar(&pathClosed, "closed", false, "Close the path to report the enclosed area")
}

func runPolygon(cmd *cobra.Command, args []string) error {
	vertices, err := parsePoints(measurePoints)
	if err != nil {
		return err
	}
	if len(vertices) < 3 {
		return fmt.Errorf("polygon needs at least 3 points, got %d: %w", len(vertices), geo.ErrInsufficientVertices)
	}

	shape := measurement.NewPolygon(vertices, true)
	m := measurement.Compute(shape)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Polygon Measurement")
	fmt.Fprintln(out, "===================")
	fmt.Fprintf(out, "Vertices: %d\n\n", len(vertices))
	printLines(out, m)
	printBounds(out, shape)
	return exportShape(out, shape, m)
}

func runCircle(cmd *cobra.Command, args []string) error {
	center, err := geo.ParseCoordinate(circleCenter)
	if err != nil {
		return err
	}
	if err := geo.ValidateRadius(circleRadius); err != nil {
		return fmt.Errorf("radius %v: %w", circleRadius, err)
	}

	shape := measurement.NewCircle(&center, circleRadius)
	m := measurement.Compute(shape)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Circle Measurement")
	fmt.Fprintln(out, "==================")
	fmt.Fprintf(out, "Center: %s\n\n", center)
	printLines(out, m)
	printBounds(out, shape)
	return exportShape(out, shape, m)
}

func runPath(cmd *cobra.Command, args []string) error {
	vertices, err := parsePoints(measurePoints)
	if err != nil {
		return err
	}
	if len(vertices) < 2 {
		return fmt.Errorf("path needs at least 2 points, got %d: %w", len(vertices), geo.ErrInsufficientVertices)
	}

	shape := measurement.NewPolyline(vertices)
	m := measurement.Compute(shape)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Path Measurement")
	fmt.Fprintln(out, "================")
	fmt.Fprintf(out, "Points: %d\n\n", len(vertices))

	fmt.Fprintf(out, "%-4s %-12s %-12s\n", "#", "Segment", "Cumulative")
	for i, marker := range measurement.SegmentMarkers(vertices) {
		if marker.Kind == measurement.MarkerSegment {
			fmt.Fprintf(out, "%-4d %-12s ", i/2+1, marker.Text)
		} else {
			fmt.Fprintf(out, "%-12s\n", marker.Text)
		}
	}
	fmt.Fprintln(out)
	printLines(out, m)

	if pathClosed {
		area, err := measurement.EnclosedArea(shape.Polyline)
		if err != nil {
			fmt.Fprintf(out, "Enclosed area: %s (%v)\n", measurement.NotAvailable, err)
		} else {
			fmt.Fprintf(out, "Enclosed area: %s\n", measurement.DualArea(&area))
		}
	}
	printBounds(out, shape)
	return exportShape(out, shape, m)
}

func parsePoints(values []string) ([]geo.Coordinate, error) {
	vertices := make([]geo.Coordinate, 0, len(values))
	for _, v := range values {
		c, err := geo.ParseCoordinate(v)
		if err != nil {
			return nil, err
		}
		vertices = append(vertices, c)
	}
	return vertices, nil
}

func printLines(out io.Writer, m measurement.Measurement) {
	for _, line := range measurement.Present(m) {
		fmt.Fprintln(out, line)
	}
}

func printBounds(out io.Writer, shape measurement.Shape) {
	if b, ok := measurement.FitBounds(shape); ok {
		fmt.Fprintf(out, "\nFit bounds: SW %s  NE %s\n", b.SouthWest, b.NorthEast)
	}
}

func exportShape(out io.Writer, shape measurement.Shape, m measurement.Measurement) error {
	if measureExport == "" {
		return nil
	}
	format, err := export.ParseFormat(measureExport)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	return export.Write(out, format, shape, m)
}
