package subtitle

import (
	"fmt"
	"iter"
	"regexp"
	"strings"
	"unicode/utf8"
)

var tagRegex = regexp.MustCompile(`<.*?>`)

// how entry text is laid out on the display
type Layout string

const (
	// every original line stripped and centered on its own
	LayoutCentered Layout = "centered"
	// text flattened to one line, then broken in two at a word boundary
	LayoutSplit Layout = "split"
)

func ParseLayout(s string) (Layout, error) {
	switch Layout(strings.ToLower(strings.TrimSpace(s))) {
	case "", LayoutCentered:
		return LayoutCentered, nil
	case LayoutSplit:
		return LayoutSplit, nil
	default:
		return "", fmt.Errorf(
			"unsupported layout %q: use centered or split",
			s,
		)
	}
}

// removes the shortest <...> spans
func StripTags(s string) string {
	return tagRegex.ReplaceAllString(s, "")
}

// pads s with spaces to width, odd padding goes to the right. Lines at or
// over width are returned unchanged.
func Center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	deficit := width - n
	left := deficit / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", deficit-left)
}

// SplitByLength breaks text into two display lines. The break is the last
// space within the first limit runes, or exactly at limit when there is none.
// The first line keeps its spacing, the second is trimmed.
func SplitByLength(text string, limit int) (string, string) {
	runes := []rune(text)
	if len(runes) <= limit {
		return text, ""
	}
	if limit < 0 {
		limit = 0
	}

	split := -1
	for i := limit - 1; i >= 0; i-- {
		if runes[i] == ' ' {
			split = i
			break
		}
	}
	if split == -1 {
		split = limit
	}

	return string(runes[:split]), strings.TrimSpace(string(runes[split:]))
}

// Formatter turns parsed entries into display text for a fixed-width sink.
type Formatter struct {
	Width  int
	Layout Layout
}

func NewFormatter(width int, layout Layout) *Formatter {
	return &Formatter{Width: width, Layout: layout}
}

func (f *Formatter) Format(e Entry) FormattedEntry {
	var text string
	switch f.Layout {
	case LayoutSplit:
		text = f.split(e.Lines)
	default:
		text = f.center(e.Lines)
	}

	return FormattedEntry{
		Sequence: e.Sequence,
		Start:    e.Start,
		End:      e.End,
		Text:     text,
	}
}

// lazily formats every entry of seq
func (f *Formatter) All(seq iter.Seq[Entry]) iter.Seq[FormattedEntry] {
	return func(yield func(FormattedEntry) bool) {
		for e := range seq {
			if !yield(f.Format(e)) {
				return
			}
		}
	}
}

func (f *Formatter) center(lines []string) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = Center(StripTags(line), f.Width)
	}
	return strings.Join(out, "\n")
}

func (f *Formatter) split(lines []string) string {
	text := StripTags(strings.Join(lines, " "))
	first, second := SplitByLength(text, f.Width)
	if second == "" {
		return Center(first, f.Width)
	}
	return Center(first, f.Width) + "\n" + Center(second, f.Width)
}
