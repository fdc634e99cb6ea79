package theme

import "github.com/charmbracelet/lipgloss"

var (
	Felt    = lipgloss.Color("#0f6330")
	Cushion = lipgloss.Color("#5a3317")
	Chalk   = lipgloss.Color("#f5f5f5")
	Subtle  = lipgloss.Color("#a6adc8")
	Gold    = lipgloss.Color("#e8be42")
	Warning = lipgloss.Color("#e83c30")

	App = lipgloss.NewStyle().
		Foreground(Chalk).
		Padding(1, 2)

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Cushion).
		Background(Felt).
		Foreground(Chalk).
		Padding(0, 2).
		Align(lipgloss.Center)

	Clock    = lipgloss.NewStyle().Foreground(Chalk).Bold(true)
	ClockHot = lipgloss.NewStyle().Foreground(Warning).Bold(true)
	Title    = lipgloss.NewStyle().Foreground(Gold).Bold(true)
	Muted    = lipgloss.NewStyle().Foreground(Subtle)
	Active   = lipgloss.NewStyle().Foreground(Gold).Bold(true).Underline(true)
	Inactive = lipgloss.NewStyle().Foreground(Chalk)
)

// BallColors maps point values to their ball colour.
var BallColors = map[int]lipgloss.Color{
	1: lipgloss.Color("#c81018"),
	2: lipgloss.Color("#f0c814"),
	3: lipgloss.Color("#108c3c"),
	4: lipgloss.Color("#784820"),
	5: lipgloss.Color("#1848c8"),
	6: lipgloss.Color("#f078aa"),
	7: lipgloss.Color("#0c0c0c"),
}
