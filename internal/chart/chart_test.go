package chart

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortEventsByTick(t *testing.T) {
	events := []Event{
		Note{Lane: 0, Tick: 300, Type: NoteNormal},
		Tempo{Tick: 100, BPM: 150},
		Note{Lane: 1, Tick: 0, Type: NoteNormal},
	}
	SortEvents(events)
	assert.Equal(t, []Event{
		Note{Lane: 1, Tick: 0, Type: NoteNormal},
		Tempo{Tick: 100, BPM: 150},
		Note{Lane: 0, Tick: 300, Type: NoteNormal},
	}, events)
}

func TestSortEventsTempoFirstAtEqualTick(t *testing.T) {
	events := []Event{
		Note{Lane: 0, Tick: 100, Type: NoteNormal},
		Tempo{Tick: 100, BPM: 150},
	}
	SortEvents(events)
	assert.Equal(t, []Event{
		Tempo{Tick: 100, BPM: 150},
		Note{Lane: 0, Tick: 100, Type: NoteNormal},
	}, events)
}

func TestSortEventsStable(t *testing.T) {
	events := []Event{
		Note{Lane: 3, Tick: 100, Type: NoteNormal},
		Note{Lane: 1, Tick: 100, Type: NoteCritical},
		Note{Lane: 2, Tick: 100, Type: NoteNormal},
	}
	SortEvents(events)
	assert.Equal(t, []Event{
		Note{Lane: 3, Tick: 100, Type: NoteNormal},
		Note{Lane: 1, Tick: 100, Type: NoteCritical},
		Note{Lane: 2, Tick: 100, Type: NoteNormal},
	}, events)
}

func testChart() *Chart {
	return &Chart{
		Version:      FormatVersion,
		Title:        "Song A",
		BPM:          135.5,
		TicksPerBeat: 480,
		Offset:       0,
		Events: []Event{
			Note{Lane: 2, Tick: 0, Type: NoteCritical},
			Tempo{Tick: 480, BPM: 180},
			Note{Lane: 6, Tick: 480, Type: NoteLong, Duration: 600},
		},
	}
}

func TestEncodeFieldOrder(t *testing.T) {
	data, err := testChart().Encode()
	assert.NoError(t, err)
	s := string(data)
	// Header field order is part of the format.
	order := []string{`"version"`, `"title"`, `"bpm"`, `"tpb"`, `"offset"`, `"notes"`}
	last := -1
	for _, field := range order {
		idx := strings.Index(s, field)
		assert.Greater(t, idx, last, "field %v out of order", field)
		last = idx
	}
	// Note fields: lane, tick, type (duration only on long notes).
	assert.Less(t, strings.Index(s, `"lane"`), strings.Index(s, `"tick": 0`))
	assert.Contains(t, s, `"type": "_bpm"`)
	assert.Contains(t, s, `"duration": 600`)
}

func TestEncodeOmitsDurationOnShortNotes(t *testing.T) {
	c := &Chart{
		Version:      FormatVersion,
		Title:        "t",
		BPM:          120,
		TicksPerBeat: 480,
		Events: []Event{
			Note{Lane: 0, Tick: 0, Type: NoteNormal},
			Note{Lane: 1, Tick: 10, Type: NoteCritical},
		},
	}
	data, err := c.Encode()
	assert.NoError(t, err)
	assert.NotContains(t, string(data), "duration")
}

func TestEncodeEmptyChart(t *testing.T) {
	c := &Chart{
		Version:      FormatVersion,
		Title:        "t",
		BPM:          120,
		TicksPerBeat: 480,
	}
	data, err := c.Encode()
	assert.NoError(t, err)
	want := `{
  "version": 1,
  "title": "t",
  "bpm": 120,
  "tpb": 480,
  "offset": 0,
  "notes": []
}
`
	assert.Equal(t, want, string(data))
}

func TestEncodeKeepsNonASCIITitle(t *testing.T) {
	c := &Chart{Version: FormatVersion, Title: "夜明けのうた", BPM: 120, TicksPerBeat: 480}
	data, err := c.Encode()
	assert.NoError(t, err)
	assert.Contains(t, string(data), "夜明けのうた")
}

func TestRoundTrip(t *testing.T) {
	orig := testChart()
	data, err := orig.Encode()
	assert.NoError(t, err)
	decoded, err := Decode(data)
	assert.NoError(t, err)
	assert.Equal(t, orig, decoded)
}

func TestRoundTripEmptyEvents(t *testing.T) {
	orig := &Chart{Version: FormatVersion, Title: "t", BPM: 120, TicksPerBeat: 480, Events: []Event{}}
	data, err := orig.Encode()
	assert.NoError(t, err)
	decoded, err := Decode(data)
	assert.NoError(t, err)
	assert.Equal(t, orig, decoded)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := Decode([]byte("not json"))
	assert.Error(t, err)
}

func TestSummary(t *testing.T) {
	c := &Chart{
		Events: []Event{
			Note{Lane: 0, Tick: 0, Type: NoteNormal},
			Note{Lane: 1, Tick: 10, Type: NoteNormal},
			Note{Lane: 2, Tick: 20, Type: NoteCritical},
			Note{Lane: 3, Tick: 30, Type: NoteLong, Duration: 500},
			Tempo{Tick: 40, BPM: 160},
		},
	}
	s := c.Summary()
	assert.Equal(t, Summary{Normal: 2, Critical: 1, Long: 1, TempoChanges: 1}, s)
	assert.Equal(t, 4, s.TotalNotes())
}
