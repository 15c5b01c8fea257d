package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/ice-orion/smooth-sheets/internal/ui/styles"
)

// SizeConfig defines how a popup should be sized.
type SizeConfig struct {
	WidthPct  int // Percentage of screen width (0 = auto-fit)
	HeightPct int // Percentage of screen height (0 = auto-fit)
	MaxWidth  int // Maximum width in columns (0 = no limit)
}

// SizeAuto fits the popup to its content.
var SizeAuto = SizeConfig{}

// RenderBordered wraps content in a rounded border and centers it.
func RenderBordered(content string, screenW, screenH int, size SizeConfig) string {
	width, height := dimensionsFor(content, screenW, screenH, size)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().Border).
		Width(width - 2). // border cells
		Height(height - 2).
		Padding(1, 2).
		Render(content)

	return Center(box, screenW, screenH)
}

func dimensionsFor(content string, screenW, screenH int, size SizeConfig) (width, height int) {
	if size.WidthPct > 0 {
		return screenW * size.WidthPct / 100, screenH * size.HeightPct / 100
	}

	width = maxLineWidth(content) + 6 // padding + border
	if size.MaxWidth > 0 && width > size.MaxWidth {
		width = size.MaxWidth
	}
	if limit := screenW - 4; width > limit {
		width = limit
	}

	height = strings.Count(content, "\n") + 1 + 4 // padding + border
	if limit := screenH - 4; height > limit {
		height = limit
	}

	return width, height
}

func maxLineWidth(s string) int {
	maxW := 0
	for line := range strings.SplitSeq(s, "\n") {
		if w := lipgloss.Width(line); w > maxW {
			maxW = w
		}
	}
	return maxW
}

// Center centers pre-rendered content in the terminal.
func Center(content string, termWidth, termHeight int) string {
	lines := strings.Split(content, "\n")
	boxWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > boxWidth {
			boxWidth = w
		}
	}

	padTop := max((termHeight-len(lines))/2, 0)
	padLeft := max((termWidth-boxWidth)/2, 0)

	var b strings.Builder
	for range padTop {
		b.WriteString(strings.Repeat(" ", termWidth) + "\n")
	}
	for _, line := range lines {
		b.WriteString(strings.Repeat(" ", padLeft))
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// Compose overlays a rendered popup on top of a base view. Each overlay
// line replaces the base at the columns it visibly occupies; leading and
// trailing spaces position the overlay, and visually empty lines leave the
// base untouched. Both inputs may carry ANSI styling.
func Compose(base, overlay string, width, _ int) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(overlay, "\n")

	for i, overlayLine := range overlayLines {
		if i >= len(baseLines) {
			break
		}
		plain := ansi.Strip(overlayLine)
		if strings.TrimSpace(plain) == "" {
			continue
		}
		baseLines[i] = composeLine(baseLines[i], overlayLine, plain, width)
	}

	return strings.Join(baseLines, "\n")
}

// composeLine splices the visible span of overlayLine into baseLine.
// plain is overlayLine with ANSI stripped.
func composeLine(baseLine, overlayLine, plain string, width int) string {
	// Leading ASCII spaces are positioning, one column each.
	startCol := 0
	for _, r := range plain {
		if r != ' ' {
			break
		}
		startCol++
	}
	endCol := ansi.StringWidth(strings.TrimRight(plain, " "))

	content := ansi.Cut(overlayLine, startCol, endCol)

	if baseWidth := ansi.StringWidth(ansi.Strip(baseLine)); baseWidth < width {
		baseLine += strings.Repeat(" ", width-baseWidth)
	}

	// Cutting through a wide character can leave the pieces a column short
	// or long; pad or shift to keep the columns aligned.
	prefix := ansi.Cut(baseLine, 0, startCol)
	if w := ansi.StringWidth(ansi.Strip(prefix)); w < startCol {
		prefix += strings.Repeat(" ", startCol-w)
	}

	result := prefix + content
	if endCol >= width {
		return result
	}

	suffix := ansi.Cut(baseLine, endCol, width)
	suffixWidth := ansi.StringWidth(ansi.Strip(suffix))
	wantWidth := width - endCol
	switch {
	case suffixWidth > wantWidth:
		// A wide character straddles the boundary; blank its first column.
		suffix = " " + ansi.Cut(suffix, suffixWidth-wantWidth+1, suffixWidth)
	case suffixWidth < wantWidth:
		result += strings.Repeat(" ", wantWidth-suffixWidth)
	}
	return result + suffix
}
