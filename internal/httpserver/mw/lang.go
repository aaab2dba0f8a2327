package mw

import (
	"context"
	"net/http"

	"github.com/mainra/showcase/internal/i18n"
)

type printerKey struct{}

// Language picks the visitor's language once per request (the lang query
// parameter, then Accept-Language) and stores its printer in the context.
func Language(b *i18n.Bundle) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p := b.ForRequest(r)
			w.Header().Set("Content-Language", p.Lang())
			w.Header().Add("Vary", "Accept-Language")
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), printerKey{}, p)))
		})
	}
}

// Printer returns the printer stored by Language, or nil.
func Printer(ctx context.Context) *i18n.Printer {
	p, _ := ctx.Value(printerKey{}).(*i18n.Printer)
	return p
}
