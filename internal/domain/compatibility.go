package domain

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ComposeCompatibility returns a flavor message about the crush and/or ex.
// ok is false when neither is given or the ex list is empty after trimming.
// When both are given the crush wins and the ex is ignored.
func ComposeCompatibility(crush, ex string, rng RNG) (msg string, ok bool) {
	crush = strings.TrimSpace(crush)
	ex = strings.TrimSpace(ex)

	switch {
	case crush != "" && ex == "":
		name := TitleCase(crush)
		chance := rng.Intn(100) + 1
		switch {
		case chance > 75:
			return fmt.Sprintf("💖 The stars smile on you and %s — a strong spark is present; nurture it.", name), true
		case chance > 45:
			return fmt.Sprintf("💞 You and %s have gentle chemistry — take it slow and see how it grows.", name), true
		default:
			return fmt.Sprintf("💔 The planets are a bit cloudy for you and %s right now; timing may improve later.", name), true
		}

	case ex != "" && crush == "":
		names := SplitNames(ex)
		if len(names) == 0 {
			return "", false
		}
		name := TitleCase(names[rng.Intn(len(names))])
		if rng.Intn(100)+1 > 60 {
			return fmt.Sprintf("🔮 The past with %s still whispers — lessons remain, but reconciliation is possible.", name), true
		}
		return fmt.Sprintf("🌘 The stars advise closure regarding %s — healing comes when you let go.", name), true

	case crush != "" && ex != "":
		return fmt.Sprintf("❤️‍🔥 Your heart is pulled between past stars and new constellations — %s could be a fresh chapter.", TitleCase(crush)), true
	}

	return "", false
}

// SplitNames splits a comma-separated list, trimming entries and dropping
// empty ones.
func SplitNames(s string) []string {
	var names []string
	for _, n := range strings.Split(s, ",") {
		n = strings.TrimSpace(n)
		if n != "" {
			names = append(names, n)
		}
	}
	return names
}

// TitleCase upper-cases the first letter of each word and lower-cases the rest.
func TitleCase(s string) string {
	// Casers carry state and are not safe to share.
	return cases.Title(language.English).String(s)
}
