package middleware

import (
	"net/http"

	"patient-appointment-service/internal/delivery/dto"
	"patient-appointment-service/pkg/passkey"
	"patient-appointment-service/pkg/response"
)

// PasskeyMiddleware guards admin routes behind the passkey gate. The gate is
// advisory only; see pkg/passkey for the threat model.
type PasskeyMiddleware struct {
	gate *passkey.Gate
}

func NewPasskeyMiddleware(gate *passkey.Gate) *PasskeyMiddleware {
	return &PasskeyMiddleware{gate: gate}
}

// Guard re-validates the stored token on every admin-route entry. An absent
// or malformed token is treated identically to a rejected one: the caller is
// sent back to the public entry point.
func (m *PasskeyMiddleware) Guard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		store := NewCookieStore(w, r)
		if err := m.gate.Authorize(store); err != nil {
			response.Error(w, http.StatusUnauthorized, "Admin access required", dto.UIDirective{
				Type: dto.DirectiveNavigate,
				Path: "/",
			})
			return
		}

		next.ServeHTTP(w, r)
	})
}

// CookieStore adapts a request/response pair to the passkey.Store capability:
// the browser cookie jar is the client-local storage the obfuscated token
// lives in.
type CookieStore struct {
	w http.ResponseWriter
	r *http.Request
}

func NewCookieStore(w http.ResponseWriter, r *http.Request) *CookieStore {
	return &CookieStore{w: w, r: r}
}

func (s *CookieStore) Get(key string) (string, bool) {
	cookie, err := s.r.Cookie(key)
	if err != nil {
		return "", false
	}
	return cookie.Value, true
}

func (s *CookieStore) Set(key, value string) {
	http.SetCookie(s.w, &http.Cookie{
		Name:     key,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
