package validators

import (
	"net/http"

	pkgerrors "github.com/pradom/storefront/pkg/errors"
)

// ParseQueryString returns the raw value of key, or a validation error when it exceeds
// maxLen bytes. Whitespace is kept so search text matches exactly what was typed.
func ParseQueryString(r *http.Request, key string, maxLen int) (string, error) {
	raw := r.URL.Query().Get(key)
	if maxLen > 0 && len(raw) > maxLen {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "query parameter too long").WithDetails(map[string]any{"field": key, "max": maxLen})
	}
	return raw, nil
}

// RequireQueryString is ParseQueryString for catalog keys that must be present. The value
// is normalised with CatalogKey.
func RequireQueryString(r *http.Request, key string, maxLen int) (string, error) {
	value, err := ParseQueryString(r, key, maxLen)
	if err != nil {
		return "", err
	}
	value = CatalogKey(value)
	if value == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "query parameter required").WithDetails(map[string]any{"field": key})
	}
	return value, nil
}
