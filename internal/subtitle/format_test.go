package subtitle

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

func TestStripTags(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"<b>Hello</b> world", "Hello world"},
		{"plain", "plain"},
		{`<font color="#ff0000">red</font>`, "red"},
		{"a < b", "a < b"},
		{"<i>x</i> > y", "x > y"},
		{"<>empty", "empty"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := StripTags(tt.input); got != tt.want {
				t.Errorf("StripTags(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCenter(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"Hi", 10, "    Hi    "},
		{"Bye", 10, "   Bye    "},
		{"", 4, "    "},
		{"exactly10!", 10, "exactly10!"},
		{"longer than ten", 10, "longer than ten"},
		{"héé", 5, " héé "},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Center(tt.input, tt.width)
			if got != tt.want {
				t.Errorf("Center(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
			}
		})
	}
}

func TestCenterPadding(t *testing.T) {
	for width := 1; width <= 12; width++ {
		for n := 0; n < width; n++ {
			text := strings.Repeat("x", n)
			got := Center(text, width)
			if utf8.RuneCountInString(got) != width {
				t.Fatalf("Center(%q, %d) has length %d", text, width, len(got))
			}
			left := len(got) - len(strings.TrimLeft(got, " "))
			right := len(got) - len(strings.TrimRight(got, " "))
			if n == 0 {
				continue
			}
			if left != (width-n)/2 || right != width-n-left {
				t.Errorf("Center(%q, %d): left %d right %d", text, width, left, right)
			}
		}
	}
}

func TestSplitByLength(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		limit      int
		wantFirst  string
		wantSecond string
	}{
		{"fits", "short", 10, "short", ""},
		{"exact", "0123456789", 10, "0123456789", ""},
		{"word boundary", "hello big world", 10, "hello big", "world"},
		{"space at limit ignored", "abcdefghij klm", 10, "abcdefghij", "klm"},
		{"no space", "abcdefghijklmno", 10, "abcdefghij", "klmno"},
		{"extra spaces", "hello    world again", 8, "hello  ", "world again"},
		{"runes", "ééééé ééééé", 7, "ééééé", "ééééé"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, second := SplitByLength(tt.text, tt.limit)
			if first != tt.wantFirst || second != tt.wantSecond {
				t.Errorf(
					"SplitByLength(%q, %d) = (%q, %q), want (%q, %q)",
					tt.text, tt.limit, first, second, tt.wantFirst, tt.wantSecond,
				)
			}
		})
	}
}

func TestSplitByLengthKeepsWords(t *testing.T) {
	texts := []string{
		"the quick brown fox jumps over the lazy dog",
		"a bb ccc dddd eeeee ffffff",
		"one",
		"spaced    out   words here",
	}

	for _, text := range texts {
		for limit := 1; limit <= len(text)+1; limit++ {
			first, second := SplitByLength(text, limit)
			joined := strings.TrimSpace(first + " " + second)

			if !strings.Contains(text[:min(limit, len(text))], " ") {
				// hard break inside a word, only the characters must survive
				if strings.ReplaceAll(joined, " ", "") != strings.ReplaceAll(text, " ", "") {
					t.Errorf("SplitByLength(%q, %d) lost text: %q / %q", text, limit, first, second)
				}
				continue
			}

			if strings.Join(strings.Fields(joined), " ") != strings.Join(strings.Fields(text), " ") {
				t.Errorf("SplitByLength(%q, %d) changed words: %q / %q", text, limit, first, second)
			}
			if len(first) > limit {
				t.Errorf("SplitByLength(%q, %d) first line too long: %q", text, limit, first)
			}
		}
	}
}

func TestFormatterCentered(t *testing.T) {
	f := NewFormatter(10, LayoutCentered)
	got := f.Format(Entry{
		Sequence: "3",
		Start:    time.Second,
		End:      2 * time.Second,
		Lines:    []string{"<b>Hi</b>", "there you", "a very long line"},
	})

	want := "    Hi    \nthere you \na very long line"
	if got.Text != want {
		t.Errorf("expected %q, got %q", want, got.Text)
	}
	if got.Sequence != "3" || got.Start != time.Second || got.End != 2*time.Second {
		t.Errorf("timing not carried over: %+v", got)
	}
}

func TestFormatterMarkupBeforeCentering(t *testing.T) {
	f := NewFormatter(11, LayoutCentered)
	got := f.Format(Entry{Lines: []string{"<b>Hello</b> world"}})
	if got.Text != "Hello world" {
		t.Errorf("expected %q, got %q", "Hello world", got.Text)
	}
}

func TestFormatterSplit(t *testing.T) {
	f := NewFormatter(10, LayoutSplit)

	got := f.Format(Entry{Lines: []string{"<i>hello</i> big", "world"}})
	if got.Text != "hello big \n  world   " {
		t.Errorf("unexpected split text %q", got.Text)
	}

	got = f.Format(Entry{Lines: []string{"Hi"}})
	if got.Text != "    Hi    " {
		t.Errorf("unexpected single line %q", got.Text)
	}
}

func TestFormatterAll(t *testing.T) {
	content := "1\n00:00:01,000 --> 00:00:02,000\nA\n\n2\n00:00:03,000 --> 00:00:04,000\nB"
	f := NewFormatter(3, LayoutCentered)

	var texts []string
	for e := range f.All(Entries(content, nil)) {
		texts = append(texts, e.Text)
	}
	if strings.Join(texts, "|") != " A | B " {
		t.Errorf("unexpected texts %q", texts)
	}
}

func TestParseLayout(t *testing.T) {
	tests := []struct {
		input   string
		want    Layout
		wantErr bool
	}{
		{"", LayoutCentered, false},
		{"centered", LayoutCentered, false},
		{" Split ", LayoutSplit, false},
		{"scroll", "", true},
	}

	for _, tt := range tests {
		got, err := ParseLayout(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLayout(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLayout(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
