package main

import (
	"fmt"

	"github.com/philipparndt/shapegen/pkg/shapes"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available shapes and their default parameters",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, kind := range shapes.Kinds() {
		s, err := shapes.New(kind)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%-8s %+v\n", kind, s.Parameters())
	}
	return nil
}
