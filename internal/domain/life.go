package domain

import (
	"strconv"
	"strings"
)

// Age bounds for the generated life events, inclusive.
const (
	MinWeddingAge  = 28
	MaxWeddingAge  = 36
	MinDeathAge    = 45
	MaxDeathAge    = 75
	MinTrueLoveAge = 20
	MaxTrueLoveAge = 28
)

// Percent chances that the reading claims true love was already met.
const (
	alreadyMetOlderPct   = 45
	alreadyMetYoungerPct = 12
	alreadyMetUnknownPct = 20
)

// ParseBirthYear extracts the year from a "YYYY-MM-DD"-style date. Anything
// it cannot read yields an unknown year rather than an error.
func ParseBirthYear(dob string) BirthYear {
	if dob == "" {
		return BirthYear{}
	}
	head, _, _ := strings.Cut(dob, "-")
	if head == "" || !allDigits(head) {
		return BirthYear{}
	}
	year, err := strconv.Atoi(head)
	if err != nil || year == 0 {
		return BirthYear{}
	}
	return BirthYear{Year: year, Known: true}
}

// PredictLife draws wedding, lifeline and true-love ages from their fixed
// ranges and decides whether true love was already met.
func PredictLife(birth BirthYear, currentYear int, rng RNG) LifePredictions {
	p := LifePredictions{
		Birth:       birth,
		WeddingAge:  between(rng, MinWeddingAge, MaxWeddingAge),
		DeathAge:    between(rng, MinDeathAge, MaxDeathAge),
		TrueLoveAge: between(rng, MinTrueLoveAge, MaxTrueLoveAge),
	}

	pct := alreadyMetUnknownPct
	if birth.Known {
		if currentYear-birth.Year >= p.TrueLoveAge {
			pct = alreadyMetOlderPct
		} else {
			pct = alreadyMetYoungerPct
		}
	}
	p.AlreadyMet = rng.Intn(100) < pct

	return p
}

// between returns a uniform int in [lo, hi].
func between(rng RNG, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
