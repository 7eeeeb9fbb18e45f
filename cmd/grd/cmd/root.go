package cmd

import (
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gracefulearth/petragrd"
)

var verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "grd",
	Short: "Read, export, and render Petra GRD grid files",
	Long: `grd decodes the binary grid files written by the Petra geological
mapping application. Grids can be printed, exported to CSV, converted
to grayscale images, or rendered as heat maps, and can be read from
local paths or from http(s) URLs on servers that allow byte range
requests.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log decode progress to stderr")
}

// readGrid opens path as a file or URL and decodes the grid in it.
func readGrid(path string) (*petragrd.Grid, error) {
	src, err := petragrd.OpenFileOrURL(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	start := time.Now()
	grid, err := petragrd.Read(src)
	if err != nil {
		return nil, err
	}
	slog.Debug("decoded grid", "path", path, "name", grid.Name, "elapsed", time.Since(start))
	return grid, nil
}
