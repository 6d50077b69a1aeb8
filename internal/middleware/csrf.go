package middleware

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"strings"

	"github.com/shelterkin/alertkit/internal/crypto"
)

const (
	csrfTokenKey   contextKey = "csrf_token"
	csrfCookieName            = "_csrf"
	csrfHeaderName            = "X-CSRF-Token"
	CSRFFieldName             = "_csrf_token"
	csrfTokenBytes            = 32
)

const csrfCookieMaxAge = 24 * 60 * 60 // 1 day

// CSRF implements signed double-submit cookies. Safe methods get a token in
// context; unsafe methods must echo the cookie in a header or form field.
func CSRF(signer *crypto.Signer, secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isSafeMethod(r.Method) {
				token := existingValidToken(r, signer)
				if token == "" {
					token = newSignedToken(signer)
					setCSRFCookie(w, token, secure)
				}
				ctx := context.WithValue(r.Context(), csrfTokenKey, token)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			cookie, err := r.Cookie(csrfCookieName)
			if err != nil {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}

			submitted := r.Header.Get(csrfHeaderName)
			if submitted == "" {
				submitted = r.FormValue(CSRFFieldName)
			}
			if !validTokenPair(cookie.Value, submitted, signer) {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), csrfTokenKey, cookie.Value)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetCSRFToken(ctx context.Context) string {
	if token, ok := ctx.Value(csrfTokenKey).(string); ok {
		return token
	}
	return ""
}

func isSafeMethod(method string) bool {
	return method == http.MethodGet || method == http.MethodHead || method == http.MethodOptions
}

func newSignedToken(signer *crypto.Signer) string {
	b := make([]byte, csrfTokenBytes)
	rand.Read(b)
	nonce := hex.EncodeToString(b)
	return nonce + "." + signer.Sign(nonce)
}

func verifySignedToken(token string, signer *crypto.Signer) bool {
	nonce, mac, ok := strings.Cut(token, ".")
	if !ok {
		return false
	}
	return signer.Verify(nonce, mac)
}

func existingValidToken(r *http.Request, signer *crypto.Signer) string {
	cookie, err := r.Cookie(csrfCookieName)
	if err != nil {
		return ""
	}
	if !verifySignedToken(cookie.Value, signer) {
		return ""
	}
	return cookie.Value
}

func validTokenPair(cookieValue, submitted string, signer *crypto.Signer) bool {
	if submitted == "" {
		return false
	}
	if !hmac.Equal([]byte(cookieValue), []byte(submitted)) {
		return false
	}
	return verifySignedToken(cookieValue, signer)
}

func setCSRFCookie(w http.ResponseWriter, token string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     csrfCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   csrfCookieMaxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
