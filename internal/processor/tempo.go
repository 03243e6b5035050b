package processor

import (
	"math"

	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/natsuneco/organica-chart-converter/internal/chart"
)

// roundBPM rounds to 3 decimal places, the precision the chart format keeps.
func roundBPM(bpm float64) float64 {
	return math.Round(bpm*1000) / 1000
}

// scanMetadata reads the metadata track (track 0 by convention) and returns
// the initial BPM and the track name. The first tempo message wins, wherever
// it sits; for the name, a later message overrides an earlier one.
func scanMetadata(mid *smf.SMF) (bpm float64, haveBPM bool, title string, haveTitle bool) {
	if len(mid.Tracks) == 0 {
		return 0, false, "", false
	}
	for _, ev := range mid.Tracks[0] {
		var b float64
		if !haveBPM && ev.Message.GetMetaTempo(&b) {
			bpm = roundBPM(b)
			haveBPM = true
		}
		var name string
		if ev.Message.GetMetaTrackName(&name) {
			title = name
			haveTitle = true
		}
	}
	return bpm, haveBPM, title, haveTitle
}

// tempoTracker collects tempo changes from the merged stream. Changes at
// tick 0 belong to the chart header, not the event list; of several changes
// at the same tick, only the first is kept.
type tempoTracker struct {
	seen    map[int64]bool
	changes []chart.Event
}

func newTempoTracker() *tempoTracker {
	return &tempoTracker{seen: map[int64]bool{}}
}

// Handle inspects one merged-stream message and records it if it is a tempo
// change worth keeping. Returns true if the message was a tempo change.
func (t *tempoTracker) Handle(time int64, msg smf.Message) bool {
	var bpm float64
	if !msg.GetMetaTempo(&bpm) {
		return false
	}
	if time <= 0 || t.seen[time] {
		return true
	}
	t.seen[time] = true
	t.changes = append(t.changes, chart.Tempo{Tick: time, BPM: roundBPM(bpm)})
	return true
}
