package main

import (
	"fmt"

	"github.com/philipparndt/shapegen/pkg/analysis"
	"github.com/spf13/cobra"
)

var infoFlags shapeFlags

var infoCmd = &cobra.Command{
	Use:   "info [shape|file]",
	Short: "Display general information about a shape or mesh file",
	Long: `Show dimensions, face and triangle counts, surface area, edge statistics and
whether the mesh is closed. The argument is a shape name (built from the
flags), a shape document, an STL file or an OpenSCAD file.`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoFlags.register(infoCmd.Flags(), false)
}

func runInfo(cmd *cobra.Command, args []string) error {
	m, name, err := loadMesh(cmd.Context(), cmd, args[0], &infoFlags)
	if err != nil {
		return err
	}

	result := analysis.AnalyzeMesh(m)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Mesh Information")
	fmt.Fprintln(out, "================")
	if name != "" {
		fmt.Fprintf(out, "Name: %s\n", name)
	}
	fmt.Fprintf(out, "Source: %s\n\n", args[0])

	fmt.Fprintln(out, "Mesh Statistics:")
	fmt.Fprintf(out, "  Vertices: %d\n", result.VertexCount)
	fmt.Fprintf(out, "  Faces: %d (%d triangles, %d quads, %d polygons)\n", result.FaceCount,
		result.TriangleFaces, result.QuadFaces, result.FaceCount-result.TriangleFaces-result.QuadFaces)
	fmt.Fprintf(out, "  Triangles: %d\n", result.TriangleCount)
	fmt.Fprintf(out, "  Edges: %d\n", result.EdgeCount)
	fmt.Fprintf(out, "  Surface Area: %s\n\n", analysis.FormatMeasurement(result.SurfaceArea, "square units"))

	fmt.Fprintln(out, "Bounding Box:")
	fmt.Fprintf(out, "  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
	fmt.Fprintf(out, "  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
	fmt.Fprintf(out, "  Center: %s\n\n", analysis.FormatVector(result.BoundingBox.Center()))

	fmt.Fprintln(out, "Dimensions:")
	fmt.Fprintf(out, "  Width (X): %.6f units\n", result.Dimensions.X)
	fmt.Fprintf(out, "  Height (Y): %.6f units\n", result.Dimensions.Y)
	fmt.Fprintf(out, "  Depth (Z): %.6f units\n", result.Dimensions.Z)
	fmt.Fprintf(out, "  Diagonal: %s\n\n", analysis.FormatMeasurement(result.BoundingBox.Diagonal(), ""))

	fmt.Fprintln(out, "Edge Lengths:")
	fmt.Fprintf(out, "  Minimum: %.6f units\n", result.MinEdgeLength)
	fmt.Fprintf(out, "  Maximum: %.6f units\n", result.MaxEdgeLength)
	fmt.Fprintf(out, "  Average: %.6f units\n\n", result.AvgEdgeLength)

	fmt.Fprintln(out, "Closure:")
	fmt.Fprintf(out, "  Open edges: %d\n", len(result.OpenEdges))
	fmt.Fprintf(out, "  Non-manifold edges: %d\n", len(result.NonManifoldEdges))
	fmt.Fprintf(out, "  Inconsistent winding: %d\n", len(result.InconsistentEdges))
	if result.IsWatertight() {
		fmt.Fprintf(out, "  Watertight, volume %.6f cubic units\n", result.Volume)
	} else {
		fmt.Fprintln(out, "  Not watertight")
	}
	return nil
}
