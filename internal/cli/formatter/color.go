package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/greenspot/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusColor returns the style for a plant status.
func StatusColor(s domain.PlantStatus) lipgloss.Style {
	switch s {
	case domain.StatusAllGood:
		return StyleGreen
	case domain.StatusNeedsWater:
		return StyleBlue
	case domain.StatusCheckLight:
		return StyleYellow
	case domain.StatusNeedsAttention:
		return StyleRed
	default:
		return StyleDim
	}
}

// StatusPill returns a colored status indicator such as "● All good".
func StatusPill(s domain.PlantStatus) string {
	switch s {
	case domain.StatusAllGood:
		return StyleGreen.Render("● All good")
	case domain.StatusNeedsWater:
		return StyleBlue.Render("💧 Needs water")
	case domain.StatusCheckLight:
		return StyleYellow.Render("☀ Check light")
	case domain.StatusNeedsAttention:
		return StyleRed.Render("▲ Needs attention")
	default:
		return StyleDim.Render(string(s))
	}
}

// LightBadge renders a light level with a brightness-coded color.
func LightBadge(l domain.LightLevel) string {
	switch l {
	case domain.LightBrightDirect:
		return StyleYellow.Render("☀ Bright direct")
	case domain.LightBrightIndirect:
		return lipgloss.NewStyle().Foreground(ColorHeader).Render("◐ Bright indirect")
	case domain.LightMediumIndirect:
		return StyleGreen.Render("◑ Medium indirect")
	case domain.LightLow:
		return StyleBlue.Render("◒ Low light")
	default:
		return StyleDim.Render("--")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
