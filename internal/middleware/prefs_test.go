package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func resolveLang(t *testing.T, prepare func(r *http.Request)) string {
	t.Helper()
	var got string
	h := Prefs(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = LangFrom(r)
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	prepare(req)
	h.ServeHTTP(httptest.NewRecorder(), req)
	return got
}

func TestPrefsLanguageResolution(t *testing.T) {
	if got := resolveLang(t, func(r *http.Request) {}); got != "es" {
		t.Fatalf("default language should be es, got %q", got)
	}
	if got := resolveLang(t, func(r *http.Request) {
		r.Header.Set("Accept-Language", "en-US,en;q=0.9")
	}); got != "en" {
		t.Fatalf("Accept-Language en should resolve en, got %q", got)
	}
	if got := resolveLang(t, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: "lang", Value: "en"})
		r.Header.Set("Accept-Language", "es")
	}); got != "en" {
		t.Fatalf("cookie should win over Accept-Language, got %q", got)
	}
}

func TestPrefsQueryLangPersists(t *testing.T) {
	h := Prefs(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	req := httptest.NewRequest(http.MethodGet, "/?lang=en", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	for _, c := range rr.Result().Cookies() {
		if c.Name == "lang" && c.Value == "en" {
			return
		}
	}
	t.Fatal("query lang should persist in a cookie")
}

func TestFlashSetsTranslatedCookie(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/profiles", nil)
	Flash(rr, req, "saved")
	for _, c := range rr.Result().Cookies() {
		if c.Name != "flash" {
			continue
		}
		msg, err := url.QueryUnescape(c.Value)
		if err != nil {
			t.Fatalf("unescape: %v", err)
		}
		if msg != "Guardado" {
			t.Fatalf("flash should carry the Spanish message by default, got %q", msg)
		}
		return
	}
	t.Fatal("flash cookie not set")
}
