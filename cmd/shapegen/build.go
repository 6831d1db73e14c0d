package main

import (
	"fmt"
	"log/slog"

	"github.com/philipparndt/shapegen/internal/config"
	"github.com/spf13/cobra"
)

var (
	buildFlags  shapeFlags
	buildConfig string
)

var buildCmd = &cobra.Command{
	Use:   "build [shape]",
	Short: "Generate a shape and write it to a file",
	Long: `Generate a shape from command line flags, or from a YAML or TOML shape
document given with --config, and write the mesh to the output file.`,
	Example: `  shapegen build arch --size 1,1,0.2 --sides 12 -o arch.3mf
  shapegen build stairs --circumference 180 --size 1,2.5,0.5 -f obj
  shapegen build --config stairs.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVarP(&buildConfig, "config", "c", "", "Shape document (.yaml, .yml or .toml)")
	buildFlags.register(buildCmd.Flags(), true)
}

func runBuild(cmd *cobra.Command, args []string) error {
	job, err := resolveJob(cmd, args)
	if err != nil {
		return err
	}

	slog.Info("building", "shape", job.Name, "size", job.Size, "pivot", job.Pivot)
	m, err := job.Run()
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d faces, %d vertices) to %s\n",
		job.Name, m.FaceCount(), m.VertexCount(), job.Output)
	return nil
}

func resolveJob(cmd *cobra.Command, args []string) (*config.Job, error) {
	if buildConfig != "" {
		if len(args) > 0 {
			return nil, fmt.Errorf("give either a shape or --config, not both")
		}
		return config.Load(buildConfig)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("missing shape (see 'shapegen list')")
	}

	doc, err := buildFlags.document(cmd, args[0])
	if err != nil {
		return nil, err
	}
	return doc.Resolve(".")
}
