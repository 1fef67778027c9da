package table

import "github.com/charmbracelet/lipgloss"

var (
	colorGood    = lipgloss.Color("46")  // green
	colorWarn    = lipgloss.Color("220") // yellow
	colorBad     = lipgloss.Color("196") // red
	colorDefault = lipgloss.Color("252")

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			PaddingLeft(1).
			PaddingRight(1)

	cellStyle = lipgloss.NewStyle().
			PaddingLeft(1).
			PaddingRight(1)

	borderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

func toneColor(t Tone) lipgloss.Color {
	switch t {
	case ToneGood:
		return colorGood
	case ToneWarn:
		return colorWarn
	case ToneBad:
		return colorBad
	default:
		return colorDefault
	}
}
