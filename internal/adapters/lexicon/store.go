package lexicon

import (
	"context"
	"embed"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/itsaddyon/The-Zodiac-Chat/internal/domain"
)

//go:embed data/lexicon.yaml
var lexiconFS embed.FS

const lexiconFile = "data/lexicon.yaml"

// EmbeddedStore loads the lexicon from an embedded YAML file.
type EmbeddedStore struct {
	once    sync.Once
	raw     []byte
	lexicon domain.Lexicon
	err     error
}

func NewEmbeddedStore() *EmbeddedStore {
	return &EmbeddedStore{}
}

// newStoreFromBytes is used by tests to exercise parsing and validation.
func newStoreFromBytes(raw []byte) *EmbeddedStore {
	return &EmbeddedStore{raw: raw}
}

func (s *EmbeddedStore) init() {
	raw := s.raw
	if raw == nil {
		var err error
		raw, err = lexiconFS.ReadFile(lexiconFile)
		if err != nil {
			s.err = fmt.Errorf("read embedded lexicon: %w", err)
			return
		}
	}

	var lex domain.Lexicon
	if err := yaml.Unmarshal(raw, &lex); err != nil {
		s.err = fmt.Errorf("parse embedded lexicon: %w", err)
		return
	}
	if err := validator.New().Struct(lex); err != nil {
		s.err = fmt.Errorf("%w: %w", domain.ErrEmptyLexicon, err)
		return
	}
	s.lexicon = lex
}

func (s *EmbeddedStore) GetLexicon(_ context.Context) (domain.Lexicon, error) {
	s.once.Do(s.init)
	if s.err != nil {
		return domain.Lexicon{}, s.err
	}
	return s.lexicon, nil
}
