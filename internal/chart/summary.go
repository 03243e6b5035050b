package chart

// Summary counts the chart's events by kind.
type Summary struct {
	Normal       int `json:"normal"`
	Critical     int `json:"critical"`
	Long         int `json:"long"`
	TempoChanges int `json:"tempo_changes"`
}

// TotalNotes is the number of playable notes (tempo changes excluded).
func (s Summary) TotalNotes() int {
	return s.Normal + s.Critical + s.Long
}

// Summary tallies the chart's events.
func (c *Chart) Summary() Summary {
	var s Summary
	for _, ev := range c.Events {
		switch e := ev.(type) {
		case Tempo:
			s.TempoChanges++
		case Note:
			switch e.Type {
			case NoteNormal:
				s.Normal++
			case NoteCritical:
				s.Critical++
			case NoteLong:
				s.Long++
			}
		}
	}
	return s
}
