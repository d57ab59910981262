package subtitle

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strings"
)

// WriteSRT renders entries back into the timed-block grammar, renumbered
// from 1. Used to save a cleaned copy of a track with malformed blocks
// removed.
func WriteSRT(w io.Writer, entries iter.Seq[Entry]) (int, error) {
	bw := bufio.NewWriter(w)
	n := 0
	for entry := range entries {
		n++
		// index (1-based)
		fmt.Fprintf(bw, "%d\n", n)

		// timestamps: 00:00:00,000 --> 00:00:00,000
		fmt.Fprintf(bw, "%s --> %s\n",
			FormatTimecode(entry.Start),
			FormatTimecode(entry.End))

		// text
		bw.WriteString(strings.Join(entry.Lines, "\n"))
		bw.WriteString("\n\n")
	}
	return n, bw.Flush()
}
