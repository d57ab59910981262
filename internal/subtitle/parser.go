package subtitle

import (
	"iter"
	"strconv"
	"strings"
)

const (
	blockSeparator = "\n\n"
	timeSeparator  = "-->"
)

// Reader walks the blocks of one track and produces entries on demand.
// Malformed blocks are passed to the report callback and skipped.
type Reader struct {
	blocks []string
	pos    int
	report func(error)
}

func NewReader(content string, report func(error)) *Reader {
	if report == nil {
		report = func(error) {}
	}
	return &Reader{
		blocks: splitBlocks(content),
		report: report,
	}
}

// returns the next well-formed entry, or false once the track is exhausted
func (r *Reader) Next() (Entry, bool) {
	for r.pos < len(r.blocks) {
		index := r.pos + 1
		block := r.blocks[r.pos]
		r.pos++

		entry, err := parseBlock(index, block)
		if err != nil {
			r.report(err)
			continue
		}
		return entry, true
	}
	return Entry{}, false
}

// Entries yields the well-formed entries of content in track order. Each
// call starts from the first block.
func Entries(content string, report func(error)) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		r := NewReader(content, report)
		for {
			entry, ok := r.Next()
			if !ok || !yield(entry) {
				return
			}
		}
	}
}

// collapses runs of blank lines so every block is separated by exactly one
// blank line, then splits
func splitBlocks(content string) []string {
	content = strings.TrimPrefix(content, "\ufeff")
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = strings.TrimSpace(content)

	var kept []string
	for _, block := range strings.Split(content, blockSeparator) {
		if strings.TrimSpace(block) == "" {
			continue
		}
		kept = append(kept, strings.Trim(block, "\n"))
	}
	return kept
}

func parseBlock(index int, block string) (Entry, error) {
	lines := strings.Split(block, "\n")
	if len(lines) < 3 {
		seq := ""
		if len(lines) > 0 {
			seq = strings.TrimSpace(lines[0])
		}
		return Entry{}, &BlockError{
			Index:    index,
			Sequence: seq,
			Reason:   "expected sequence number, time range and at least one text line",
		}
	}

	seq := strings.TrimSpace(lines[0])

	times := strings.Split(lines[1], timeSeparator)
	if len(times) != 2 {
		return Entry{}, &BlockError{
			Index:    index,
			Sequence: seq,
			Reason:   "unexpected time line " + strconv.Quote(lines[1]),
		}
	}

	start, err := ParseTimecode(strings.TrimSpace(times[0]))
	if err != nil {
		return Entry{}, &BlockError{
			Index:    index,
			Sequence: seq,
			Reason:   "bad start time",
			Err:      err,
		}
	}
	end, err := ParseTimecode(strings.TrimSpace(times[1]))
	if err != nil {
		return Entry{}, &BlockError{
			Index:    index,
			Sequence: seq,
			Reason:   "bad end time",
			Err:      err,
		}
	}
	if end < start {
		return Entry{}, &BlockError{
			Index:    index,
			Sequence: seq,
			Reason: "end " + FormatTimecode(end) +
				" precedes start " + FormatTimecode(start),
		}
	}

	return Entry{
		Sequence: seq,
		Start:    start,
		End:      end,
		Lines:    lines[2:],
	}, nil
}
