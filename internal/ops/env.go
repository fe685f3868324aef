package ops

import (
	"crypto/rand"
	"io"

	"golang.org/x/text/language"

	"github.com/roach88/formatkit/datetime"
	"github.com/roach88/formatkit/number"
)

// Env carries the collaborators and defaults operations run with.
// Zero fields are replaced by the DefaultEnv values on Invoke.
type Env struct {
	// Clock supplies "now" for time.timeAgo.
	Clock datetime.Clock

	// Random supplies the bytes for string.uuid.
	Random io.Reader

	// Locale selects separators for number.addCommas when no locale argument is given.
	Locale language.Tag

	// Currency is the default symbol for number.abbreviateCurrency.
	Currency string
}

// DefaultEnv returns the production environment: system clock, crypto/rand,
// English separators and the dollar sign.
func DefaultEnv() Env {
	return Env{
		Clock:    datetime.SystemClock{},
		Random:   rand.Reader,
		Locale:   language.English,
		Currency: number.DefaultCurrencySymbol,
	}
}

func (e Env) withDefaults() Env {
	d := DefaultEnv()
	if e.Clock == nil {
		e.Clock = d.Clock
	}
	if e.Random == nil {
		e.Random = d.Random
	}
	if e.Locale == language.Und {
		e.Locale = d.Locale
	}
	if e.Currency == "" {
		e.Currency = d.Currency
	}
	return e
}
