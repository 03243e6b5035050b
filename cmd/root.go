// Package cmd implements the organica-chart-converter command line.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/natsuneco/organica-chart-converter/internal/version"
)

var rootCmd = &cobra.Command{
	Use:     "organica-chart-converter",
	Short:   "Convert MIDI recordings into Organica chart files",
	Long:    `Converts standard MIDI files into the 7-lane JSON chart format played by the Organica chart player.`,
	Version: version.Version(),
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
