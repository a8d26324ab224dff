package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/linge-maison/boutique/internal/i18n"
	"github.com/linge-maison/boutique/internal/logger"
	"github.com/linge-maison/boutique/internal/view"
)

// localize translates field error codes for the request's language.
func localize(r *http.Request, fieldErrors map[string]string) map[string]string {
	lang := view.Lang(r)
	out := make(map[string]string, len(fieldErrors))
	for k, code := range fieldErrors {
		out[k] = i18n.T(lang, code)
	}
	return out
}

func renderServerError(w http.ResponseWriter, r *http.Request, err error) {
	logger.Get().Error("request failed",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	http.Error(w, "erreur interne", http.StatusInternalServerError)
}
