// Package chart defines the rhythm game chart model and its JSON form.
package chart

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// FormatVersion is the chart file format version this package writes.
const FormatVersion = 1

// NoteType classifies a note for the game engine.
type NoteType string

const (
	NoteNormal   NoteType = "normal"
	NoteCritical NoteType = "critical"
	NoteLong     NoteType = "long"
)

// tempoMarker tags tempo change rows in the notes array.
const tempoMarker = "_bpm"

// Event is either a Note or a Tempo, ordered together in the chart.
type Event interface {
	eventTick() int64
	// categoryRank orders events at equal ticks: tempo changes first.
	categoryRank() int
}

// Note is a single playable note. Duration is set only for long notes.
type Note struct {
	Lane     int      `json:"lane"`
	Tick     int64    `json:"tick"`
	Type     NoteType `json:"type"`
	Duration int64    `json:"duration,omitempty"`
}

func (n Note) eventTick() int64  { return n.Tick }
func (n Note) categoryRank() int { return 1 }

// Tempo is a BPM change taking effect at Tick. The initial tempo is not an
// event; it lives in the chart header.
type Tempo struct {
	Tick int64
	BPM  float64
}

func (t Tempo) eventTick() int64  { return t.Tick }
func (t Tempo) categoryRank() int { return 0 }

// tempoJSON is the wire form of a Tempo row.
type tempoJSON struct {
	Type string  `json:"type"`
	Tick int64   `json:"tick"`
	BPM  float64 `json:"bpm"`
}

func (t Tempo) MarshalJSON() ([]byte, error) {
	return json.Marshal(tempoJSON{Type: tempoMarker, Tick: t.Tick, BPM: t.BPM})
}

func (t *Tempo) UnmarshalJSON(data []byte) error {
	var w tempoJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.Type != tempoMarker {
		return fmt.Errorf("not a tempo event: type %q", w.Type)
	}
	t.Tick = w.Tick
	t.BPM = w.BPM
	return nil
}

// Chart is the complete converted score. It is built once by the converter
// and never mutated afterwards.
type Chart struct {
	Version      int     `json:"version"`
	Title        string  `json:"title"`
	BPM          float64 `json:"bpm"`
	TicksPerBeat int     `json:"tpb"`
	Offset       int     `json:"offset"`
	Events       []Event `json:"notes"`
}

// SortEvents sorts events ascending by tick; at equal ticks tempo changes
// precede notes. The sort is stable, so emission order breaks remaining ties.
func SortEvents(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		ti, tj := events[i].eventTick(), events[j].eventTick()
		if ti != tj {
			return ti < tj
		}
		return events[i].categoryRank() < events[j].categoryRank()
	})
}

// chartJSON mirrors Chart for decoding; events need a second pass to pick
// their concrete type.
type chartJSON struct {
	Version      int               `json:"version"`
	Title        string            `json:"title"`
	BPM          float64           `json:"bpm"`
	TicksPerBeat int               `json:"tpb"`
	Offset       int               `json:"offset"`
	Events       []json.RawMessage `json:"notes"`
}

func (c *Chart) UnmarshalJSON(data []byte) error {
	var w chartJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	c.Version = w.Version
	c.Title = w.Title
	c.BPM = w.BPM
	c.TicksPerBeat = w.TicksPerBeat
	c.Offset = w.Offset
	c.Events = make([]Event, 0, len(w.Events))
	for i, raw := range w.Events {
		var head struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(raw, &head); err != nil {
			return fmt.Errorf("event %d: %v", i, err)
		}
		if head.Type == tempoMarker {
			var t Tempo
			if err := json.Unmarshal(raw, &t); err != nil {
				return fmt.Errorf("event %d: %v", i, err)
			}
			c.Events = append(c.Events, t)
			continue
		}
		var n Note
		if err := json.Unmarshal(raw, &n); err != nil {
			return fmt.Errorf("event %d: %v", i, err)
		}
		c.Events = append(c.Events, n)
	}
	return nil
}

// Encode writes the chart as pretty-printed UTF-8 JSON. Titles keep their
// original characters; only the indentation is cosmetic, the field order is
// part of the format.
func (c *Chart) Encode() ([]byte, error) {
	// json.Marshal would escape non-ASCII-safe HTML runes in titles.
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	type alias Chart // strip UnmarshalJSON, keep field tags
	a := alias(*c)
	if a.Events == nil {
		a.Events = []Event{}
	}
	if err := enc.Encode(&a); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode parses a chart previously written by Encode.
func Decode(data []byte) (*Chart, error) {
	var c Chart
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return &c, nil
}
