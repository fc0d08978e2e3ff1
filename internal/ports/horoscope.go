package ports

import (
	"context"

	"github.com/itsaddyon/The-Zodiac-Chat/internal/domain"
)

// HoroscopeFetcher retrieves the raw horoscope for a sign and day. A non-nil
// error means no horoscope is available for this request.
type HoroscopeFetcher interface {
	Fetch(ctx context.Context, sign, day string) (domain.HoroscopePayload, error)
}
