package subtitle

import (
	"time"
)

// represents single timed block of a track
type Entry struct {
	Sequence string // label from the block, diagnostics only
	Start    time.Duration
	End      time.Duration
	Lines    []string // raw text lines, before formatting
}

// time the entry stays on screen
func (e Entry) Duration() time.Duration {
	return e.End - e.Start
}

// represents an entry whose text is ready for the sink
type FormattedEntry struct {
	Sequence string
	Start    time.Duration
	End      time.Duration
	Text     string
}

func (e FormattedEntry) Duration() time.Duration {
	return e.End - e.Start
}
