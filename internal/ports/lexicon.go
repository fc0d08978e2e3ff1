package ports

import (
	"context"

	"github.com/itsaddyon/The-Zodiac-Chat/internal/domain"
)

// LexiconStore provides the color palette and mood list.
type LexiconStore interface {
	GetLexicon(ctx context.Context) (domain.Lexicon, error)
}
