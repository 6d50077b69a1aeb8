package flash

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/shelterkin/alertkit/components"
	"github.com/shelterkin/alertkit/internal/crypto"
)

const (
	CookieName   = "alertkit_flash"
	cookieMaxAge = 60
)

// Notice is a one-shot message carried across a redirect.
type Notice struct {
	Level   string `json:"level"`
	Message string `json:"message"`
	Header  string `json:"header,omitempty"`
}

// Alert builds an alert for the notice. Level is classified with
// components.SeverityFrom, so unknown levels render as info.
func (n Notice) Alert(id string) *components.Alert {
	return components.NewAlert(id, components.Text(n.Message), components.Text(n.Header)).
		SetSeverity(components.SeverityFrom(n.Level))
}

func encode(n Notice, signer *crypto.Signer) (string, error) {
	raw, err := json.Marshal(n)
	if err != nil {
		return "", fmt.Errorf("encoding notice: %w", err)
	}
	payload := base64.RawURLEncoding.EncodeToString(raw)
	return payload + "." + signer.Sign(payload), nil
}

func decode(value string, signer *crypto.Signer) (*Notice, error) {
	payload, signature, ok := strings.Cut(value, ".")
	if !ok {
		return nil, fmt.Errorf("malformed flash cookie")
	}
	if !signer.Verify(payload, signature) {
		return nil, fmt.Errorf("invalid flash cookie signature")
	}
	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("decoding flash payload: %w", err)
	}
	var n Notice
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil, fmt.Errorf("decoding notice: %w", err)
	}
	return &n, nil
}

func Set(w http.ResponseWriter, n Notice, signer *crypto.Signer, secure bool) error {
	value, err := encode(n, signer)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   cookieMaxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Pop returns the pending notice and clears it. It returns nil, nil when no
// notice is pending. A tampered cookie is cleared and reported as an error.
func Pop(w http.ResponseWriter, r *http.Request, signer *crypto.Signer, secure bool) (*Notice, error) {
	cookie, err := r.Cookie(CookieName)
	if errors.Is(err, http.ErrNoCookie) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	clearCookie(w, secure)
	return decode(cookie.Value, signer)
}

func clearCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
