package domain

import "errors"

var (
	ErrUpstreamHoroscope = errors.New("upstream horoscope failure")
	ErrMissingHoroscope  = errors.New("horoscope field missing from payload")
	ErrEmptyLexicon      = errors.New("lexicon has no colors or moods")
)
