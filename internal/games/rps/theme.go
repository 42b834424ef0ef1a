package rps

import "github.com/vovakirdan/tri-arcade/internal/core"

var emojiLabels = map[Move]string{
	Rock:     "👊",
	Paper:    "✋",
	Scissors: "✌️",
}

var textLabels = map[Move]string{
	Rock:     "Rock",
	Paper:    "Paper",
	Scissors: "Scissors",
}

// Label returns the button label for a move.
func Label(m Move, emoji bool) string {
	if emoji {
		return emojiLabels[m]
	}
	return textLabels[m]
}

// Palette holds the colors of one visual theme.
type Palette struct {
	Title  core.Color
	Text   core.Color
	Button core.Color
	Cursor core.Color
	Win    core.Color
	Lose   core.Color
	Tie    core.Color
}

var palettes = map[string]Palette{
	"dark": {
		Title:  core.ColorBrightCyan,
		Text:   core.ColorBrightWhite,
		Button: core.ColorWhite,
		Cursor: core.ColorBrightYellow,
		Win:    core.ColorBrightGreen,
		Lose:   core.ColorBrightRed,
		Tie:    core.ColorBrightBlue,
	},
	"light": {
		Title:  core.ColorBlue,
		Text:   core.ColorDefault,
		Button: core.ColorGray,
		Cursor: core.ColorMagenta,
		Win:    core.ColorGreen,
		Lose:   core.ColorRed,
		Tie:    core.ColorBlue,
	},
}

// PaletteFor returns the palette of a theme, falling back to dark.
func PaletteFor(theme string) Palette {
	if p, ok := palettes[theme]; ok {
		return p
	}
	return palettes["dark"]
}

// OutcomeColor picks the result color for an outcome.
func (p Palette) OutcomeColor(o Outcome) core.Color {
	switch o {
	case Win:
		return p.Win
	case Lose:
		return p.Lose
	default:
		return p.Tie
	}
}

// ToggleTheme switches between light and dark.
func ToggleTheme(theme string) string {
	if theme == "light" {
		return "dark"
	}
	return "light"
}

// PickReaction returns a random reaction line for an outcome, or "" when
// the category is empty.
func PickReaction(reactions map[string][]string, o Outcome, rng core.Random) string {
	lines := reactions[o.String()]
	if len(lines) == 0 {
		return ""
	}
	return lines[rng.Intn(len(lines))]
}
