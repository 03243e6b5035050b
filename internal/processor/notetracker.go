package processor

import (
	"fmt"
	"log"

	"gitlab.com/gomidi/midi/v2/smf"
)

// activeNote is the pending half of a note whose note-off has not arrived.
type activeNote struct {
	start    int64
	velocity uint8
}

// candidate is a matched (on, off) pair, not yet classified.
type candidate struct {
	pitch    uint8
	start    int64
	duration int64
	velocity uint8
}

// noteTracker pairs note-on and note-off messages per pitch, limited to the
// configured lane range. One tracker serves exactly one conversion.
type noteTracker struct {
	cfg         *Config
	activeNotes map[uint8]activeNote
}

func newNoteTracker(cfg *Config) *noteTracker {
	return &noteTracker{
		cfg:         cfg,
		activeNotes: map[uint8]activeNote{},
	}
}

// Handle processes one merged-stream message. When a note completes, it
// returns the candidate and emit=true. A note-on with velocity 0 counts as a
// note-off. Note-offs without a matching note-on are ignored, as are
// zero-length notes.
func (t *noteTracker) Handle(time int64, msg smf.Message) (c candidate, emit bool, err error) {
	var ch, pitch, velocity uint8
	if msg.GetNoteStart(&ch, &pitch, &velocity) {
		if !t.cfg.InRange(pitch) {
			return candidate{}, false, nil
		}
		if prev, exists := t.activeNotes[pitch]; exists {
			if t.cfg.RetriggerPolicy == RetriggerReject {
				return candidate{}, false, fmt.Errorf("note-on for pitch %d at tick %d while note from tick %d is still held", pitch, time, prev.start)
			}
			log.Printf("dropping held note for pitch %d from tick %d, retriggered at tick %d", pitch, prev.start, time)
		}
		t.activeNotes[pitch] = activeNote{start: time, velocity: velocity}
		return candidate{}, false, nil
	}
	if msg.GetNoteEnd(&ch, &pitch) {
		if !t.cfg.InRange(pitch) {
			return candidate{}, false, nil
		}
		on, exists := t.activeNotes[pitch]
		if !exists {
			return candidate{}, false, nil
		}
		delete(t.activeNotes, pitch)
		if time == on.start {
			// Zero-length notes cannot be played; skip.
			return candidate{}, false, nil
		}
		return candidate{
			pitch:    pitch,
			start:    on.start,
			duration: time - on.start,
			velocity: on.velocity,
		}, true, nil
	}
	return candidate{}, false, nil
}

// Pending is the number of note-ons still waiting for their note-off.
func (t *noteTracker) Pending() int {
	return len(t.activeNotes)
}
