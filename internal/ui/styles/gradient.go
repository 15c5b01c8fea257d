package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// ApplyBoldGradient renders bold text with a horizontal color gradient.
// The text is split into grapheme clusters so combining marks and wide
// characters each get a single color.
func ApplyBoldGradient(text string, from, to lipgloss.Color) string {
	if text == "" {
		return ""
	}

	var graphemes []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		graphemes = append(graphemes, gr.Str())
	}
	if len(graphemes) == 0 {
		return ""
	}

	bold := lipgloss.NewStyle().Bold(true)
	if len(graphemes) == 1 {
		return bold.Foreground(from).Render(text)
	}

	steps := blendColors(len(graphemes), from, to)

	var b strings.Builder
	for i, g := range graphemes {
		hex := colorToHex(steps[i])
		b.WriteString(bold.Foreground(lipgloss.Color(hex)).Render(g))
	}
	return b.String()
}

// blendColors returns size colors blended between from and to. Blending
// happens in HCL space for perceptually even steps.
func blendColors(size int, from, to lipgloss.Color) []color.Color {
	if size < 2 {
		return []color.Color{from}
	}

	c1, _ := colorful.MakeColor(lipglossToColor(from))
	c2, _ := colorful.MakeColor(lipglossToColor(to))

	colors := make([]color.Color, size)
	for i := range size {
		t := float64(i) / float64(size-1)
		colors[i] = c1.BlendHcl(c2, t)
	}

	return colors
}

func lipglossToColor(c lipgloss.Color) color.Color {
	hex := string(c)
	if len(hex) == 7 && hex[0] == '#' {
		col, err := colorful.Hex(hex)
		if err == nil {
			return col
		}
	}
	// ANSI palette colors have no portable RGB value; fall back to gray.
	return color.RGBA{R: 128, G: 128, B: 128, A: 255}
}

func colorToHex(c color.Color) string {
	if cf, ok := c.(colorful.Color); ok {
		return cf.Hex()
	}
	r, g, b, _ := c.RGBA()
	return colorful.Color{
		R: float64(r) / 65535.0,
		G: float64(g) / 65535.0,
		B: float64(b) / 65535.0,
	}.Hex()
}
