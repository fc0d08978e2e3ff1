package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/itsaddyon/The-Zodiac-Chat/internal/domain"
	"github.com/itsaddyon/The-Zodiac-Chat/internal/ports"
)

// ConsultRequest is the application-level input (no HTTP types).
type ConsultRequest struct {
	Sign  string
	Day   string
	Name  string
	DOB   string
	Crush string
	Ex    string
}

// ConsultResponse is the application-level output. Reading is nil when
// Style is domain.StyleError.
type ConsultResponse struct {
	Text    string
	Style   domain.Style
	Reading *domain.Reading
}

// OracleService orchestrates the horoscope fetch and the generated predictions.
type OracleService struct {
	fetcher ports.HoroscopeFetcher
	lexicon ports.LexiconStore
	rng     domain.RNG
	now     func() time.Time
	logger  *slog.Logger
}

func NewOracleService(f ports.HoroscopeFetcher, lex ports.LexiconStore, rng domain.RNG, now func() time.Time, logger *slog.Logger) *OracleService {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &OracleService{
		fetcher: f,
		lexicon: lex,
		rng:     rng,
		now:     now,
		logger:  logger,
	}
}

// Consult never fails: upstream or payload problems produce an error-styled
// response and are only logged.
func (s *OracleService) Consult(ctx context.Context, req ConsultRequest) ConsultResponse {
	payload, err := s.fetcher.Fetch(ctx, req.Sign, req.Day)
	if err != nil {
		return signalLost()
	}

	reading, err := s.compose(ctx, payload, req)
	if err != nil {
		s.logger.WarnContext(ctx, "cannot compose reading", "error", err)
		return signalLost()
	}

	return ConsultResponse{
		Text:    reading.Render(),
		Style:   domain.StyleSuccess,
		Reading: &reading,
	}
}

func (s *OracleService) compose(ctx context.Context, payload domain.HoroscopePayload, req ConsultRequest) (domain.Reading, error) {
	raw, ok := payload["horoscope"]
	if !ok {
		return domain.Reading{}, domain.ErrMissingHoroscope
	}

	lex, err := s.lexicon.GetLexicon(ctx)
	if err != nil {
		return domain.Reading{}, fmt.Errorf("get lexicon: %w", err)
	}

	color := lex.Colors[s.rng.Intn(len(lex.Colors))]
	lucky := s.rng.Intn(10)
	mood := lex.Moods[s.rng.Intn(len(lex.Moods))]

	year := s.now().Year()
	preds := domain.PredictLife(domain.ParseBirthYear(req.DOB), year, s.rng)
	compat, hasCompat := domain.ComposeCompatibility(req.Crush, req.Ex, s.rng)

	return domain.Reading{
		Sign:          req.Sign,
		Day:           req.Day,
		Description:   description(raw),
		LuckyNumber:   lucky,
		Color:         color,
		Mood:          mood,
		Wedding:       domain.WeddingLine(preds, year),
		TrueLove:      domain.TrueLoveLine(preds),
		Lifeline:      domain.LifelineLine(preds),
		Compatibility: compat,
		HasCompat:     hasCompat,
	}, nil
}

func description(raw any) string {
	switch v := raw.(type) {
	case nil:
		return domain.SilentStars
	case string:
		if v == "" {
			return domain.SilentStars
		}
		return v
	case bool:
		if !v {
			return domain.SilentStars
		}
	case float64:
		if v == 0 {
			return domain.SilentStars
		}
	}
	return fmt.Sprint(raw)
}

func signalLost() ConsultResponse {
	return ConsultResponse{Text: domain.SignalLostText, Style: domain.StyleError}
}
