package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/shapegen/internal/logx"
	"github.com/philipparndt/shapegen/version"
	"github.com/spf13/cobra"
)

var (
	verbose     bool
	veryVerbose bool
	quiet       bool
)

var rootCmd = &cobra.Command{
	Use:   "shapegen",
	Short: "Generate parametric arch, door and stairs meshes",
	Long: `shapegen builds procedural meshes for arches, door frames and straight or
curved stairs from a size and a handful of shape parameters, and writes them
as STL, 3MF, OBJ or OpenSCAD files.`,
	Version:       version.GetFullVersion(),
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logx.Setup(os.Stderr, logx.LevelFromFlags(veryVerbose, verbose, quiet))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log progress")
	rootCmd.PersistentFlags().BoolVar(&veryVerbose, "debug", false, "Log everything")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Only log errors")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
