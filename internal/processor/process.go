// Package processor converts a parsed MIDI file into a chart. The pipeline
// is a single pass over the merged event stream: tempo changes and note
// on/off pairs are collected together, notes are classified by duration and
// velocity, and the combined event list is sorted by (tick, category).
package processor

import (
	"fmt"
	"log"

	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/natsuneco/organica-chart-converter/internal/chart"
)

// DefaultBPM is assumed when the file carries no tempo message at all.
const DefaultBPM = 120

// Process converts one MIDI file into a chart. fallbackTitle is used when no
// track-name metadata is present (callers pass the input's base name). The
// conversion owns no state beyond the call; every call starts fresh.
func Process(mid *smf.SMF, cfg *Config, fallbackTitle string) (*chart.Chart, error) {
	if err := cfg.Check(); err != nil {
		return nil, fmt.Errorf("bad config: %v", err)
	}
	ticks, ok := mid.TimeFormat.(smf.MetricTicks)
	if !ok {
		return nil, fmt.Errorf("unsupported time format %v, need metric ticks", mid.TimeFormat)
	}
	ticksPerBeat := int64(ticks)

	bpm, haveBPM, title, haveTitle := scanMetadata(mid)
	if !haveBPM {
		bpm = DefaultBPM
	}
	if !haveTitle {
		title = fallbackTitle
	}

	tempos := newTempoTracker()
	notes := newNoteTracker(cfg)
	events := []chart.Event{}
	err := ForEachEventWithTime(mid, func(time int64, track int, msg smf.Message) error {
		if tempos.Handle(time, msg) {
			return nil
		}
		c, emit, err := notes.Handle(time, msg)
		if err != nil {
			return err
		}
		if emit {
			events = append(events, classify(c, ticksPerBeat, cfg))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if n := notes.Pending(); n > 0 {
		log.Printf("%d notes still held at end of input, dropped", n)
	}

	events = append(events, tempos.changes...)
	chart.SortEvents(events)

	return &chart.Chart{
		Version:      chart.FormatVersion,
		Title:        title,
		BPM:          bpm,
		TicksPerBeat: int(ticksPerBeat),
		Offset:       cfg.Offset,
		Events:       events,
	}, nil
}
