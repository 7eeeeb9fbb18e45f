package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/gracefulearth/petragrd/render"
)

var (
	heatmapOutput string
	heatmapWidth  float64
	heatmapHeight float64
)

// heatmapCmd represents the heatmap command
var heatmapCmd = &cobra.Command{
	Use:   "heatmap <file|url>",
	Short: "Render a rectangular GRD file as a colored heat map",
	Long: `Heatmap draws the values of a rectangular grid as a colored
elevation plot, blue at the low end and red at the high end, with axes
in the grid's coordinate units. The plot format follows the destination
extension; .png, .pdf, and .svg all work.

Example:
  grd heatmap -o top_sand.png TOP_SAND.GRD`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		grid, err := readGrid(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", args[0], err)
			os.Exit(1)
		}
		width := vg.Length(heatmapWidth) * vg.Inch
		height := vg.Length(heatmapHeight) * vg.Inch
		if err := render.SaveHeatmap(grid, width, height, heatmapOutput); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	heatmapCmd.Flags().StringVarP(&heatmapOutput, "output", "o", "", "destination plot file")
	heatmapCmd.Flags().Float64Var(&heatmapWidth, "width", 10, "plot width in inches")
	heatmapCmd.Flags().Float64Var(&heatmapHeight, "height", 8, "plot height in inches")
	heatmapCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(heatmapCmd)
}
