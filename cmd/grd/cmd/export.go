package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gracefulearth/petragrd"
)

var exportOutput string

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <file|url>",
	Short: "Write the values of a GRD file as CSV",
	Long: `Export writes one x,y,z row per cell of a rectangular grid, with
coordinates computed from the grid extents and steps, or one
triangle,vertex,x,y,z row per vertex of a triangulated grid.

Example:
  grd export -o top_sand.csv TOP_SAND.GRD`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		grid, err := readGrid(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", args[0], err)
			os.Exit(1)
		}

		out := os.Stdout
		if exportOutput != "" {
			f, err := os.Create(exportOutput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			defer f.Close()
			out = f
		}

		if err := petragrd.WriteCSV(grid, out); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "destination file (default stdout)")
	rootCmd.AddCommand(exportCmd)
}
