package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/natsuneco/organica-chart-converter/internal/file"
	"github.com/natsuneco/organica-chart-converter/internal/processor"
)

var (
	convertOutput string
	convertConfig string
)

func init() {
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "output chart file (default: input with .json extension)")
	convertCmd.Flags().StringVarP(&convertConfig, "config", "c", "", "converter config file (YAML)")
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert <input.mid>",
	Short: "Convert a MIDI file to a chart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return convert(args[0])
	},
}

func loadConfig() (*processor.Config, error) {
	if convertConfig == "" {
		return processor.DefaultConfig(), nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %v", err)
	}
	cfg, err := file.ReadConfig(os.DirFS(cwd), convertConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %v: %v", convertConfig, err)
	}
	return cfg, nil
}

func convert(inputPath string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	outputPath := convertOutput
	if outputPath == "" {
		outputPath = file.DefaultOutputPath(inputPath)
	}
	c, err := file.Convert(inputPath, outputPath, cfg)
	if err != nil {
		return err
	}
	s := c.Summary()
	fmt.Printf("wrote %v\n", outputPath)
	fmt.Printf("title: %v\n", c.Title)
	fmt.Printf("bpm: %v, tpb: %v\n", c.BPM, c.TicksPerBeat)
	fmt.Printf("notes: %d normal, %d critical, %d long (%d total), %d tempo changes\n",
		s.Normal, s.Critical, s.Long, s.TotalNotes(), s.TempoChanges)
	return nil
}
