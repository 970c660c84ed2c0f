package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"patient-appointment-service/pkg/passkey"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func guardedHandler(t *testing.T, secret string) (http.Handler, *bool) {
	t.Helper()

	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})

	m := NewPasskeyMiddleware(passkey.NewGate(secret))
	return m.Guard(next), &reached
}

func TestGuard_NoCookie(t *testing.T) {
	guard, reached := guardedHandler(t, "123456")

	rec := httptest.NewRecorder()
	guard.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/appointments", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *reached)
	assert.Contains(t, rec.Body.String(), `"path":"/"`)
}

func TestGuard_ValidCookie(t *testing.T) {
	guard, reached := guardedHandler(t, "123456")

	req := httptest.NewRequest(http.MethodGet, "/admin/appointments", nil)
	req.AddCookie(&http.Cookie{Name: passkey.StorageKey, Value: passkey.Encode("123456")})

	rec := httptest.NewRecorder()
	guard.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *reached)
}

func TestGuard_MalformedCookie(t *testing.T) {
	guard, reached := guardedHandler(t, "123456")

	req := httptest.NewRequest(http.MethodGet, "/admin/appointments", nil)
	req.AddCookie(&http.Cookie{Name: passkey.StorageKey, Value: "not-base64!!"})

	rec := httptest.NewRecorder()
	guard.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *reached)
}

func TestGuard_StaleCookie(t *testing.T) {
	// A token obfuscated from a previous secret must be rejected after the
	// secret rotates.
	guard, reached := guardedHandler(t, "654321")

	req := httptest.NewRequest(http.MethodGet, "/admin/appointments", nil)
	req.AddCookie(&http.Cookie{Name: passkey.StorageKey, Value: passkey.Encode("123456")})

	rec := httptest.NewRecorder()
	guard.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *reached)
}

func TestCookieStore_SetThenGet(t *testing.T) {
	rec := httptest.NewRecorder()
	store := NewCookieStore(rec, httptest.NewRequest(http.MethodPost, "/admin/verify", nil))

	store.Set(passkey.StorageKey, passkey.Encode("123456"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, passkey.StorageKey, cookies[0].Name)
	assert.Equal(t, passkey.Encode("123456"), cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)

	// Reads go through the request side of the pair.
	req := httptest.NewRequest(http.MethodGet, "/admin/appointments", nil)
	req.AddCookie(cookies[0])
	readStore := NewCookieStore(httptest.NewRecorder(), req)

	value, ok := readStore.Get(passkey.StorageKey)
	assert.True(t, ok)
	assert.Equal(t, passkey.Encode("123456"), value)
}
