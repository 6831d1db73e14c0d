package main

import (
	"fmt"

	"github.com/philipparndt/shapegen/pkg/analysis"
	"github.com/spf13/cobra"
)

var (
	edgesFlags     shapeFlags
	edgesCount     int
	edgesLongest   bool
	edgesShortest  bool
	edgesOpen      bool
	edgesMinLength float64
	edgesMaxLength float64
)

var edgesCmd = &cobra.Command{
	Use:   "edges [shape|file]",
	Short: "Analyze and measure the edges of a shape or mesh file",
	Long:  "Find and measure edges, including longest, shortest, open edges or edges within a specific length range.",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdges,
}

func init() {
	rootCmd.AddCommand(edgesCmd)

	edgesCmd.Flags().IntVarP(&edgesCount, "count", "n", 10, "Number of edges to display")
	edgesCmd.Flags().BoolVarP(&edgesLongest, "longest", "l", false, "Show longest edges")
	edgesCmd.Flags().BoolVarP(&edgesShortest, "shortest", "s", false, "Show shortest edges")
	edgesCmd.Flags().BoolVar(&edgesOpen, "open", false, "Show edges used by a single face")
	edgesCmd.Flags().Float64Var(&edgesMinLength, "min", 0.0, "Minimum edge length filter")
	edgesCmd.Flags().Float64Var(&edgesMaxLength, "max", 0.0, "Maximum edge length filter")
	edgesFlags.register(edgesCmd.Flags(), false)
}

func runEdges(cmd *cobra.Command, args []string) error {
	m, _, err := loadMesh(cmd.Context(), cmd, args[0], &edgesFlags)
	if err != nil {
		return err
	}

	result := analysis.AnalyzeMesh(m)

	var edges []analysis.EdgeInfo
	var title string

	switch {
	case edgesOpen:
		edges = result.OpenEdges
		title = fmt.Sprintf("Open Edges (found %d)", len(edges))
	case edgesLongest:
		edges = analysis.FindLongestEdges(result, edgesCount)
		title = fmt.Sprintf("Top %d Longest Edges", len(edges))
	case edgesShortest:
		edges = analysis.FindShortestEdges(result, edgesCount)
		title = fmt.Sprintf("Top %d Shortest Edges", len(edges))
	case edgesMaxLength > 0:
		edges = analysis.FindEdgesByLength(result, edgesMinLength, edgesMaxLength)
		title = fmt.Sprintf("Edges between %.6f and %.6f units (found %d)", edgesMinLength, edgesMaxLength, len(edges))
	default:
		edges = result.AllEdges
		title = fmt.Sprintf("All Edges (showing first %d of %d)", min(edgesCount, len(edges)), len(edges))
	}
	if len(edges) > edgesCount {
		edges = edges[:edgesCount]
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, title)
	fmt.Fprintln(out, "====================")
	fmt.Fprintf(out, "Total edges in mesh: %d\n", result.EdgeCount)
	fmt.Fprintf(out, "Min edge length: %.6f units\n", result.MinEdgeLength)
	fmt.Fprintf(out, "Max edge length: %.6f units\n", result.MaxEdgeLength)
	fmt.Fprintf(out, "Avg edge length: %.6f units\n\n", result.AvgEdgeLength)

	if len(edges) > 0 {
		fmt.Fprintf(out, "%-6s %-6s %-35s %-35s %-15s\n", "Index", "Face", "Start", "End", "Length")
		for i, edge := range edges {
			fmt.Fprintf(out, "%-6d %-6d %-35s %-35s %.6f\n", i+1, edge.FaceID,
				analysis.FormatVector(edge.Start), analysis.FormatVector(edge.End), edge.Length)
		}
	}
	return nil
}
