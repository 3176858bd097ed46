package render

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ANSI renders img as rows of upper half-block characters, two image rows
// per text line, colored with lipgloss. Color output depends on the
// terminal profile lipgloss detects; on a plain pipe only the blocks remain.
func ANSI(img image.Image) string {
	b := img.Bounds()
	styles := make(map[[2]string]lipgloss.Style)
	var sb strings.Builder

	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			top := hexOf(img.At(x, y))
			bottom := top
			if y+1 < b.Max.Y {
				bottom = hexOf(img.At(x, y+1))
			}
			key := [2]string{top, bottom}
			style, ok := styles[key]
			if !ok {
				style = lipgloss.NewStyle().
					Foreground(lipgloss.Color(top)).
					Background(lipgloss.Color(bottom))
				styles[key] = style
			}
			sb.WriteString(style.Render(string(upperHalf)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func hexOf(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}
