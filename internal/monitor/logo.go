package monitor

import (
	"math/rand"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// asciiLogo is the decorative banner rendered in the top-left pane.
const asciiLogo = `
███████╗██╗   ██╗███████╗███╗   ███╗ ██████╗ ███╗   ██╗
██╔════╝╚██╗ ██╔╝██╔════╝████╗ ████║██╔═══██╗████╗  ██║
███████╗ ╚████╔╝ ███████╗██╔████╔██║██║   ██║██╔██╗ ██║
╚════██║  ╚██╔╝  ╚════██║██║╚██╔╝██║██║   ██║██║╚██╗██║
███████║   ██║   ███████║██║ ╚═╝ ██║╚██████╔╝██║ ╚████║
╚══════╝   ╚═╝   ╚══════╝╚═╝     ╚═╝ ╚═════╝ ╚═╝  ╚═══╝
`

// LogoPalette is the fixed set of colors a banner line can take.
var LogoPalette = []lipgloss.Color{
	ColorRed,
	ColorGreen,
	ColorBlue,
	ColorYellow,
	ColorMagenta,
	ColorCyan,
	ColorWhite,
}

// LogoLines returns the raw banner lines without styling.
func LogoLines() []string {
	return strings.Split(strings.Trim(asciiLogo, "\n"), "\n")
}

// RenderLogo renders the banner with each line colored independently by a
// random pick from LogoPalette. Colors are re-rolled on every call, so the
// banner shimmers across redraws.
func RenderLogo(rng *rand.Rand) string {
	lines := LogoLines()
	styled := make([]string, len(lines))
	for i, line := range lines {
		color := LogoPalette[rng.Intn(len(LogoPalette))]
		styled[i] = lipgloss.NewStyle().Foreground(color).Render(line)
	}
	return strings.Join(styled, "\n")
}
