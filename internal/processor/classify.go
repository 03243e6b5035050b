package processor

import (
	"github.com/natsuneco/organica-chart-converter/internal/chart"
)

// classify turns a matched candidate into a chart note. Duration dominates:
// anything longer than one beat is a long note no matter how hard it was
// struck. Short notes split into critical and normal by velocity.
func classify(c candidate, ticksPerBeat int64, cfg *Config) chart.Note {
	n := chart.Note{
		Lane: cfg.Lane(c.pitch),
		Tick: c.start,
	}
	if c.duration > ticksPerBeat {
		n.Type = chart.NoteLong
		n.Duration = c.duration
		return n
	}
	if c.velocity >= cfg.CriticalVelocity {
		n.Type = chart.NoteCritical
	} else {
		n.Type = chart.NoteNormal
	}
	return n
}
