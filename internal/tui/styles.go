package tui

import (
	"fmt"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Shimmer animation for the PRICEPEEK logo.
type shimmerTickMsg time.Time

func shimmerTickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return shimmerTickMsg(t)
	})
}

// renderShimmerLogo renders "PRICEPEEK" as a flowing wave of gold light,
// deep amber (#3a2c0c) up to bright gold (#facc15), letters spaced apart.
func renderShimmerLogo(frame int) string {
	const text = "PRICEPEEK"
	n := len(text)

	var out string

	t := float64(frame)

	for i := 0; i < n; i++ {
		x := float64(i) / float64(n-1)

		// One smooth wave advancing through the text
		phase := t*0.1 - x*3.0
		phase += math.Sin(t*0.023) * 2.0

		b := math.Sin(phase)*0.5 + 0.5
		b = math.Pow(b, 1.3)

		// Slow breathing tide
		tide := math.Sin(t*0.035) * 0.12
		b = b*0.75 + tide + 0.18

		if b > 1.0 {
			b = 1.0
		} else if b < 0.05 {
			b = 0.05
		}

		// Continuous RGB interpolation: deep amber -> bright gold
		// Deep:   (58, 44, 12)   #3a2c0c
		// Bright: (250, 204, 21) #facc15
		r := clampByte(58 + b*(250-58))
		g := clampByte(44 + b*(204-44))
		bl := clampByte(12 + b*(21-12))

		color := fmt.Sprintf("#%02X%02X%02X", r, g, bl)

		s := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(color))
		out += s.Render(string(text[i]))

		if i < n-1 {
			out += "  "
		}
	}

	return out
}

func clampByte(v float64) int {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return int(v)
}

var (
	// Base palette
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e4e4ec")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0c4d0"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	// Help bar
	helpKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	helpLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	// Accent / action styles
	accentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#facc15"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#4ade80"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f87171"))

	// Price columns
	marketStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#facc15")).
			Bold(true)

	lowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ade80"))

	highStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f0944a"))

	setStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#60a0e0"))

	urlStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868")).
			Italic(true)

	inputPromptStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#facc15")).
				Bold(true)

	inputPlaceholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#343c4a"))

	// Rarity colors, roughly matching the card foil tiers
	rarityColors = map[string]lipgloss.Color{
		"Common":            lipgloss.Color("#8890a0"),
		"Uncommon":          lipgloss.Color("#4ade80"),
		"Rare":              lipgloss.Color("#60a0e0"),
		"Rare Holo":         lipgloss.Color("#b080d0"),
		"Rare Holo EX":      lipgloss.Color("#c084e0"),
		"Rare Holo GX":      lipgloss.Color("#c084e0"),
		"Rare Holo V":       lipgloss.Color("#c084e0"),
		"Rare Holo VMAX":    lipgloss.Color("#d05050"),
		"Rare Ultra":        lipgloss.Color("#f0944a"),
		"Rare Secret":       lipgloss.Color("#facc15"),
		"Rare Rainbow":      lipgloss.Color("#f472b6"),
		"Amazing Rare":      lipgloss.Color("#3ecce4"),
		"Promo":             lipgloss.Color("#d4a844"),
		"Radiant Rare":      lipgloss.Color("#fde68a"),
		"Illustration Rare": lipgloss.Color("#a78bfa"),
	}
)

// RarityStyle returns a style colored for the given rarity label.
func RarityStyle(rarity string) lipgloss.Style {
	if c, ok := rarityColors[rarity]; ok {
		return lipgloss.NewStyle().Foreground(c)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#606878"))
}

// helpEntry renders a single "key label" pair for help bars.
func helpEntry(key, label string) string {
	return helpKeyStyle.Render(key) + " " + helpLabelStyle.Render(label)
}
