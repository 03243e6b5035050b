package processor

import "fmt"

// RetriggerPolicy decides what happens when a note-on arrives for a pitch
// that still has an unmatched active note.
type RetriggerPolicy string

const (
	// RetriggerReplace silently drops the earlier note-on. This matches the
	// behavior charts have been authored against.
	RetriggerReplace RetriggerPolicy = "replace"
	// RetriggerReject aborts the conversion instead.
	RetriggerReject RetriggerPolicy = "reject"
)

// Config holds the fixed conversion constants. Callers pass one value per
// conversion; the converter never mutates it.
type Config struct {
	// NoteRangeStart..NoteRangeEnd is the inclusive MIDI pitch range mapped
	// to lanes. Pitches outside it are ignored.
	NoteRangeStart uint8 `yaml:"note_range_start"`
	NoteRangeEnd   uint8 `yaml:"note_range_end"`
	// CriticalVelocity is the minimum note-on velocity for a critical note.
	CriticalVelocity uint8 `yaml:"critical_velocity"`
	// Offset is written to the chart header as-is.
	Offset int `yaml:"offset"`

	RetriggerPolicy RetriggerPolicy `yaml:"retrigger_policy"`
}

// DefaultConfig returns the standard 7 lane setup: F3 (53) through B3 (59),
// critical at velocity 120.
func DefaultConfig() *Config {
	return &Config{
		NoteRangeStart:   53,
		NoteRangeEnd:     59,
		CriticalVelocity: 120,
		Offset:           0,
		RetriggerPolicy:  RetriggerReplace,
	}
}

// Check validates a config before use.
func (c *Config) Check() error {
	if c.NoteRangeEnd < c.NoteRangeStart {
		return fmt.Errorf("note range %d..%d is empty", c.NoteRangeStart, c.NoteRangeEnd)
	}
	switch c.RetriggerPolicy {
	case RetriggerReplace, RetriggerReject:
	default:
		return fmt.Errorf("unknown retrigger policy %q", c.RetriggerPolicy)
	}
	return nil
}

// LaneCount is the number of output lanes the pitch range maps to.
func (c *Config) LaneCount() int {
	return int(c.NoteRangeEnd) - int(c.NoteRangeStart) + 1
}

// InRange reports whether a pitch belongs to a lane.
func (c *Config) InRange(pitch uint8) bool {
	return pitch >= c.NoteRangeStart && pitch <= c.NoteRangeEnd
}

// Lane maps an in-range pitch to its lane index.
func (c *Config) Lane(pitch uint8) int {
	return int(pitch) - int(c.NoteRangeStart)
}
