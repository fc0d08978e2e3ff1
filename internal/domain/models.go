package domain

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

// Style tags a formatted response as a successful reading or an apology.
type Style string

const (
	StyleSuccess Style = "success"
	StyleError   Style = "error"
)

// HoroscopePayload is the decoded upstream response body, kept as-is.
type HoroscopePayload map[string]any

// Lexicon holds the fixed vocabularies the oracle draws from.
type Lexicon struct {
	Colors []string `yaml:"colors" validate:"min=1,dive,required"`
	Moods  []string `yaml:"moods" validate:"min=1,dive,required"`
}

// BirthYear is the year parsed from a date of birth. Known is false when
// the input was empty or malformed.
type BirthYear struct {
	Year  int
	Known bool
}

// LifePredictions are the randomized wedding, lifeline and true-love
// figures for one consultation.
type LifePredictions struct {
	Birth       BirthYear
	WeddingAge  int
	DeathAge    int
	TrueLoveAge int
	AlreadyMet  bool
}

// WeddingYear reports the projected wedding year; ok is false when the
// birth year is unknown.
func (p LifePredictions) WeddingYear() (year int, ok bool) {
	if !p.Birth.Known {
		return 0, false
	}
	return p.Birth.Year + p.WeddingAge, true
}

// DeathYear reports the projected lifeline year; ok is false when the
// birth year is unknown.
func (p LifePredictions) DeathYear() (year int, ok bool) {
	if !p.Birth.Known {
		return 0, false
	}
	return p.Birth.Year + p.DeathAge, true
}
