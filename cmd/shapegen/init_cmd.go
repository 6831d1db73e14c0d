package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/shapegen/internal/config"
	"github.com/philipparndt/shapegen/pkg/shapes"
	"github.com/spf13/cobra"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init [shape] [file]",
	Short: "Write a shape document with default parameters",
	Long:  "Create a YAML or TOML shape document (picked by the file extension) to edit and feed to build or watch.",
	Example: `  shapegen init stairs stairs.yaml
  shapegen init door door.toml`,
	Args: cobra.ExactArgs(2),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing file")
}

func runInit(cmd *cobra.Command, args []string) error {
	kind, path := args[0], args[1]
	if _, err := shapes.New(kind); err != nil {
		return err
	}

	if !initForce {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}

	doc := config.Default(kind)
	if err := config.Save(path, doc); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s document to %s\n", kind, path)
	return nil
}
