// Package middleware holds HTTP middleware specific to the web UI.
package middleware

import (
	"net/http"

	"github.com/gorilla/csrf"

	"superlists/infrastructure/config"
	"superlists/interfaces/web/presenters"
	"superlists/logging"
)

// CSRFFieldName is the hidden form field carrying the token.
const CSRFFieldName = "csrfmiddlewaretoken"

// CSRF protects unsafe methods with gorilla/csrf. Without Secure, requests are
// marked as plaintext so the origin check accepts http:// referers.
func CSRF(cfg *config.CSRFConfig, logger *logging.Logger) func(http.Handler) http.Handler {
	protect := csrf.Protect(cfg.AuthKey,
		csrf.Secure(cfg.Secure),
		csrf.Path("/"),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.FieldName(CSRFFieldName),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger.WithContext(r.Context()).Warn("CSRF check failed",
				"path", r.URL.Path,
				"reason", csrf.FailureReason(r))
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		})),
	)

	return func(next http.Handler) http.Handler {
		protected := protect(next)
		if cfg.Secure {
			return protected
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			protected.ServeHTTP(w, csrf.PlaintextHTTPRequest(r))
		})
	}
}

// FormCSRF returns the hidden field for r, or the zero value when protection is off.
func FormCSRF(r *http.Request) presenters.CSRF {
	token := csrf.Token(r)
	if token == "" {
		return presenters.CSRF{}
	}
	return presenters.CSRF{Field: CSRFFieldName, Token: token}
}
