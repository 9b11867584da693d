package auth

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dvalarezo/hojavida/internal/httpx"
)

// Signed-cookie sessions for the back office. The public pages never touch
// this; only /admin and the upload endpoints sit behind RequireAuth.

type ctxKey string

const (
	sessionCookieName = "session"
	adminIDCtxKey     = ctxKey("adminID")
)

// Verifier is an optional callback checking that a session's admin account
// still exists. Set during bootstrap; nil skips the check.
type Verifier func(ctx context.Context, id uint) bool

var verifier Verifier

func SetVerifier(v Verifier) { verifier = v }

// Secret returns SESSION_SECRET or a development fallback.
func Secret() string {
	if s := os.Getenv("SESSION_SECRET"); s != "" {
		return s
	}
	return "devsessionsecret"
}

func sign(payload string) string {
	mac := hmac.New(sha256.New, []byte(Secret()))
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// CreateSession sets a signed cookie with the admin account id.
func CreateSession(w http.ResponseWriter, adminID uint) {
	idStr := strconv.FormatUint(uint64(adminID), 10)
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    idStr + "." + sign(idStr),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(14 * 24 * time.Hour),
	})
}

func ClearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{Name: sessionCookieName, Value: "", Path: "/", Expires: time.Unix(0, 0), HttpOnly: true, SameSite: http.SameSiteLaxMode})
}

// ParseSession validates the cookie signature and returns the admin id.
func ParseSession(r *http.Request) (uint, bool) {
	c, err := r.Cookie(sessionCookieName)
	if err != nil || c.Value == "" {
		return 0, false
	}
	parts := strings.Split(c.Value, ".")
	if len(parts) != 2 {
		return 0, false
	}
	if !hmac.Equal([]byte(parts[1]), []byte(sign(parts[0]))) {
		return 0, false
	}
	id64, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id64), true
}

func WithAdminID(ctx context.Context, id uint) context.Context {
	return context.WithValue(ctx, adminIDCtxKey, id)
}

func AdminIDFromContext(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(adminIDCtxKey).(uint)
	return id, ok
}

// Middleware attaches the admin id to the request context when a valid
// session cookie is present.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id, ok := ParseSession(r); ok {
			r = r.WithContext(WithAdminID(r.Context(), id))
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAuth redirects browsers to /login and answers 401 JSON otherwise.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := AdminIDFromContext(r.Context())
		if ok && verifier != nil && !verifier(r.Context(), id) {
			// Stale session for a removed account.
			ClearSession(w)
			ok = false
		}
		if !ok {
			if httpx.WantsJSON(r) {
				httpx.JSONError(w, http.StatusUnauthorized, "unauthorized", nil)
				return
			}
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
