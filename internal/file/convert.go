// Package file is the path-level glue around the converter: it reads MIDI
// files, writes and re-reads chart files, and loads configs. All failures
// surface as *ReadError or *WriteError with the offending path attached.
package file

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/natsuneco/organica-chart-converter/internal/chart"
	"github.com/natsuneco/organica-chart-converter/internal/processor"
)

// ReadSMF reads and parses a MIDI file.
func ReadSMF(path string) (mid *smf.SMF, err error) {
	// The SMF parser panics on some malformed inputs instead of returning an
	// error; turn that into a ReadError too.
	defer func() {
		if r := recover(); r != nil {
			mid = nil
			err = &ReadError{Path: path, Err: fmt.Errorf("invalid MIDI data: %v", r)}
		}
	}()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	mid, err = smf.ReadFrom(bytes.NewReader(data))
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	return mid, nil
}

// WriteChart serializes the chart to path. The file handle is closed on
// every path; a close failure counts as a write failure.
func WriteChart(path string, c *chart.Chart) (err error) {
	data, err := c.Encode()
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	f, err := os.Create(path)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	defer func() {
		closeErr := f.Close()
		if closeErr != nil && err == nil {
			err = &WriteError{Path: path, Err: closeErr}
		}
	}()
	if _, err := f.Write(data); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// ReadChart parses a chart file previously written by WriteChart.
func ReadChart(path string) (*chart.Chart, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	c, err := chart.Decode(data)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	return c, nil
}

// DefaultOutputPath is the chart path used when the caller names none: the
// input path with its extension swapped for .json.
func DefaultOutputPath(inputPath string) string {
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".json"
}

// fallbackTitle is the chart title used when the MIDI file names no track:
// the input's base name, extension stripped.
func fallbackTitle(inputPath string) string {
	base := filepath.Base(inputPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Convert reads the MIDI file at inputPath, converts it, and writes the
// chart to outputPath. Either both the returned chart and the output file
// exist, or the error tells which side failed.
func Convert(inputPath, outputPath string, cfg *processor.Config) (*chart.Chart, error) {
	mid, err := ReadSMF(inputPath)
	if err != nil {
		return nil, err
	}
	c, err := processor.Process(mid, cfg, fallbackTitle(inputPath))
	if err != nil {
		return nil, &ReadError{Path: inputPath, Err: err}
	}
	if err := WriteChart(outputPath, c); err != nil {
		return nil, err
	}
	return c, nil
}

// audioExtensions are probed in order by FindAdjacentAudio.
var audioExtensions = []string{".mp3", ".wav", ".ogg"}

// FindAdjacentAudio looks for an audio file next to the MIDI file with the
// same base name. Returns "" if there is none.
func FindAdjacentAudio(midiPath string) string {
	base := strings.TrimSuffix(midiPath, filepath.Ext(midiPath))
	for _, ext := range audioExtensions {
		p := base + ext
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
