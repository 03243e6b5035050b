package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/natsuneco/organica-chart-converter/internal/file"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <chart.json>",
	Short: "Print metadata and note counts of an existing chart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := file.ReadChart(args[0])
		if err != nil {
			return err
		}
		s := c.Summary()
		fmt.Printf("version: %v\n", c.Version)
		fmt.Printf("title: %v\n", c.Title)
		fmt.Printf("bpm: %v\n", c.BPM)
		fmt.Printf("tpb: %v\n", c.TicksPerBeat)
		fmt.Printf("offset: %v\n", c.Offset)
		fmt.Printf("notes: %d normal, %d critical, %d long (%d total), %d tempo changes\n",
			s.Normal, s.Critical, s.Long, s.TotalNotes(), s.TempoChanges)
		return nil
	},
}
