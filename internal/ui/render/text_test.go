package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello world", 8, "hello..."},
		{"hello", 3, "..."},
		{"", 10, ""},
		// Wide characters count by display width, not rune count.
		{"日本語テキスト", 9, "日本語..."},
	}
	for _, c := range cases {
		if got := Truncate(c.in, c.width); got != c.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", c.in, c.width, got, c.want)
		}
	}
}

func TestPad(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"ab", 5, "ab   "},
		{"hello", 5, "hello"},
		{"hello", 3, "hello"}, // never truncates
		{"", 3, "   "},
		{"日本", 6, "日本  "},
	}
	for _, c := range cases {
		if got := Pad(c.in, c.width); got != c.want {
			t.Errorf("Pad(%q, %d) = %q, want %q", c.in, c.width, got, c.want)
		}
	}
}

func TestTruncateAndPadIsExactWidth(t *testing.T) {
	inputs := []string{"", "hi", "hello world", "日本語", "exact!"}
	const width = 6
	for _, in := range inputs {
		got := TruncateAndPad(in, width)
		if w := lipgloss.Width(got); w != width {
			t.Errorf("TruncateAndPad(%q, %d) = %q (width %d), want width %d", in, width, got, w, width)
		}
	}
}

func TestRow(t *testing.T) {
	if got, want := Row("a", "b", 5), "a   b"; got != want {
		t.Errorf("Row = %q, want %q", got, want)
	}

	// Overflowing content still gets one space between the sides.
	if got, want := Row("abc", "def", 4), "abc def"; got != want {
		t.Errorf("Row overflow = %q, want %q", got, want)
	}

	// Styled content is measured by its visible width.
	styled := "\x1b[1mhi\x1b[0m"
	if got, want := Row(styled, "ok", 8), styled+"    ok"; got != want {
		t.Errorf("Row styled = %q, want %q", got, want)
	}
}

func TestSeparatorAndEmptyLine(t *testing.T) {
	if got := Separator(3); got != "───" {
		t.Errorf("Separator(3) = %q", got)
	}
	if got := Separator(0); got != "" {
		t.Errorf("Separator(0) = %q, want empty", got)
	}
	if got := EmptyLine(4); got != "    " {
		t.Errorf("EmptyLine(4) = %q", got)
	}
	if w := lipgloss.Width(Separator(7)); w != 7 {
		t.Errorf("Separator(7) width = %d, want 7", w)
	}
}

func TestSanitize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"clean text untouched", "hello world", "hello world"},
		{"tab kept", "a\tb", "a\tb"},
		{"newline stripped", "a\nb", "ab"},
		{"carriage return stripped", "a\rb", "ab"},
		{"escape byte stripped", "a\x1bb", "ab"},
		{"nbsp becomes space", "price 100", "price 100"},
		{"c1 control stripped", "ab", "ab"},
		{"stray continuation byte dropped", "a\x80b", "ab"},
		{"empty", "", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Sanitize(c.in); got != c.want {
				t.Errorf("Sanitize(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestSanitizeStripsEscapeSequencePrefix(t *testing.T) {
	// Only the ESC byte is a control character; the rest of a pasted
	// sequence survives as plain text instead of reaching the terminal.
	got := Sanitize("\x1b[2Jtext")
	if strings.Contains(got, "\x1b") {
		t.Errorf("Sanitize left an escape byte in %q", got)
	}
	if !strings.HasSuffix(got, "text") {
		t.Errorf("Sanitize(%q) = %q, want text suffix", "\x1b[2Jtext", got)
	}
}
