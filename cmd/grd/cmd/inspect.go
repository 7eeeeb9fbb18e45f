package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gracefulearth/petragrd"
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect <file|url>...",
	Short: "Print the header and data shape of GRD files",
	Long: `Inspect decodes each named grid and prints its header fields and the
shape of its value data. Files that fail to decode report the reason and
set a non zero exit status once all files have been tried.

Example:
  grd inspect TOP_SAND.GRD https://archive.example.com/grids/BASE_SAND.GRD`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		failed := false
		for _, path := range args {
			grid, err := readGrid(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
				failed = true
				continue
			}
			printGrid(path, grid)
		}
		if failed {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func printGrid(path string, g *petragrd.Grid) {
	fmt.Printf("Inspecting %s\n", path)
	fmt.Printf("\tName: %s\n", g.Name)
	fmt.Printf("\tVersion: %d\n", g.Version)
	fmt.Printf("\tCreated: %s\n", g.CreatedDate.Format(time.RFC3339))
	fmt.Printf("\tX: %g to %g, step %g\n", g.XMin, g.XMax, g.XStep)
	fmt.Printf("\tY: %g to %g, step %g\n", g.YMin, g.YMax, g.YStep)
	fmt.Printf("\tZ: %g to %g\n", g.ZMin, g.ZMax)
	fmt.Printf("\tUnits: xy %s, z %s\n", g.XYUnits, g.ZUnits)
	fmt.Printf("\tProjection: %s (code %d, cm %g, rlat %g)\n", g.Projection, g.ProjectionCode, g.CM, g.RLat)
	fmt.Printf("\tDatum: %s\n", g.Datum)
	fmt.Printf("\tGridding method: %d\n", g.GridMethod)
	if g.SourceData != "" {
		fmt.Printf("\tSource: %s\n", g.SourceData)
	}
	switch data := g.Data.(type) {
	case petragrd.RectangularData:
		rows, cols := data.Dims()
		fmt.Printf("\tData: rectangular, %d rows by %d columns\n", rows, cols)
	case petragrd.TriangularData:
		fmt.Printf("\tData: triangular, %d triangles\n", data.Triangles())
	}
}
