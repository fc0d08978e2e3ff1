package domain

import (
	"fmt"
	"strings"
)

// SilentStars replaces an empty horoscope description.
const SilentStars = "The stars are silent today."

// SignalLostText is returned when no horoscope could be retrieved.
const SignalLostText = "🌌 **Cosmic Signal Lost!** I couldn’t retrieve the horoscope.\n" +
	"Please check your API key or try again later."

const closingLine = "Walk your path with light — the stars are watching over you 🌠"

// Reading is the structured content of a successful consultation, kept
// separate from its text rendering.
type Reading struct {
	Sign          string
	Day           string
	Description   string
	LuckyNumber   int
	Color         string
	Mood          string
	Wedding       string
	TrueLove      string
	Lifeline      string
	Compatibility string
	HasCompat     bool
}

// WeddingLine describes the projected wedding. Without a birth year the
// year shown is a display-only estimate anchored on currentYear.
func WeddingLine(p LifePredictions, currentYear int) string {
	year, ok := p.WeddingYear()
	if !ok {
		year = currentYear + (p.WeddingAge - 25)
	}
	return fmt.Sprintf("Likely around age %d → ≈ %d", p.WeddingAge, year)
}

// LifelineLine describes the projected lifeline. Without a birth year only
// the age is shown.
func LifelineLine(p LifePredictions) string {
	if year, ok := p.DeathYear(); ok {
		return fmt.Sprintf("Approximate lifeline to age %d → %d", p.DeathAge, year)
	}
	return fmt.Sprintf("Approximate lifeline to age %d", p.DeathAge)
}

func TrueLoveLine(p LifePredictions) string {
	if p.AlreadyMet {
		return fmt.Sprintf("✨ The stars hint you may have already crossed paths with your true love (around age %d).", p.TrueLoveAge)
	}
	return fmt.Sprintf("✨ Your true love may arrive around age %d.", p.TrueLoveAge)
}

// Render formats the reading as the markdown-flavored text sent to clients.
func (r Reading) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "✨ **Behold, %s!** ✨\n\n", TitleCase(r.Sign))
	fmt.Fprintf(&b, "Your cosmic forecast for **%s** is revealed:\n\n", TitleCase(r.Day))
	b.WriteString("***The Oracle Speaks:***\n")
	fmt.Fprintf(&b, "> *%s*\n\n", r.Description)
	fmt.Fprintf(&b, "**Lucky Number:** %d\n", r.LuckyNumber)
	fmt.Fprintf(&b, "**Color Aura:** %s\n", r.Color)
	fmt.Fprintf(&b, "**Mood:** %s\n\n", r.Mood)
	b.WriteString("🔮 **Cosmic Predictions:**\n")
	fmt.Fprintf(&b, "💍 Wedding: %s\n", r.Wedding)
	fmt.Fprintf(&b, "💘 True Love: %s\n", r.TrueLove)
	fmt.Fprintf(&b, "🕯️ Lifeline: %s\n", r.Lifeline)

	if r.HasCompat {
		fmt.Fprintf(&b, "\n💘 **Compatibility Note:**\n%s\n", r.Compatibility)
	}

	b.WriteString("\n" + closingLine)
	return b.String()
}
