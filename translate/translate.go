// Package translate selects a message printer for the user's locale, and
// formats every user-visible string through it.
package translate

import (
	"io"
	"log"
	"sync/atomic"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:generate go tool gotext -srclang=en-US update -out=catalog.go -lang=en-US github.com/ezrec/alu8/...

var printer atomic.Pointer[message.Printer]

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("alu8: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	Language(locales...)
}

// Language replaces the printer with one matching the first usable locale.
func Language(locales ...string) {
	tag := message.MatchLanguage(locales...)
	if tag == language.Und {
		tag = language.AmericanEnglish
	}
	printer.Store(message.NewPrinter(tag))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Load().Sprintf(key, args...)
}

// Fprintf writes an en-US format, translated, to w.
func Fprintf(w io.Writer, key message.Reference, args ...any) (n int, err error) {
	return printer.Load().Fprintf(w, key, args...)
}
