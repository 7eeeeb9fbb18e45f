package cmd

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/gracefulearth/image/bmp"
	"github.com/gracefulearth/image/tiff"
	"github.com/spf13/cobra"

	"github.com/gracefulearth/petragrd"
)

var convertOutput string

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <file|url>",
	Short: "Convert a rectangular GRD file to a grayscale image",
	Long: `Convert renders the values of a rectangular grid as a 16 bit
grayscale image, darkest at the lowest value. The image format follows
the destination extension; .png, .bmp, .tif, and .tiff are supported.

Example:
  grd convert -o top_sand.tif TOP_SAND.GRD`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		grid, err := readGrid(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", args[0], err)
			os.Exit(1)
		}
		if err := writeImage(grid, convertOutput); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "destination image file")
	convertCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(convertCmd)
}

func writeImage(g *petragrd.Grid, dst string) error {
	img, err := petragrd.GridImage(g)
	if err != nil {
		return err
	}

	f, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(dst)) {
	case ".png":
		return png.Encode(f, img)
	case ".bmp":
		return bmp.Encode(f, img)
	case ".tif", ".tiff":
		return tiff.Encode(f, img, nil)
	}
	return petragrd.UnsupportedError("image format not supported: " + filepath.Ext(dst))
}
