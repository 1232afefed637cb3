package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pradom/storefront/pkg/logger"
)

// SessionHeader lets non-browser clients carry the session id without cookies.
const SessionHeader = "X-Session-Id"

const maxSessionIDLength = 128

// SessionOptions configures how the session id travels.
type SessionOptions struct {
	CookieName string
	TTL        time.Duration
	Secure     bool
}

// Session resolves the shopper's session id from the X-Session-Id header or the session
// cookie, issuing a new one when neither is usable. The id is echoed back in both so the
// client keeps it.
func Session(opts SessionOptions, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := sessionIDFromRequest(r, opts.CookieName)
			if sessionID == "" {
				sessionID = uuid.NewString()
			}

			w.Header().Set(SessionHeader, sessionID)
			if opts.CookieName != "" {
				http.SetCookie(w, &http.Cookie{
					Name:     opts.CookieName,
					Value:    sessionID,
					Path:     "/",
					MaxAge:   int(opts.TTL.Seconds()),
					HttpOnly: true,
					Secure:   opts.Secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := WithSessionID(r.Context(), sessionID)
			if logg != nil {
				ctx = logg.WithShopperID(ctx, sessionID)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sessionIDFromRequest(r *http.Request, cookieName string) string {
	if id := cleanSessionID(r.Header.Get(SessionHeader)); id != "" {
		return id
	}
	if cookieName == "" {
		return ""
	}
	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return cleanSessionID(cookie.Value)
}

func cleanSessionID(raw string) string {
	id := strings.TrimSpace(raw)
	if id == "" || len(id) > maxSessionIDLength {
		return ""
	}
	for _, r := range id {
		if !(r == '-' || r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')) {
			return ""
		}
	}
	return id
}
