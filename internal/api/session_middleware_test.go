package api

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/terraincognita07/mealtrail/internal/session"
)

func TestSessionMiddlewareMintsCookieWhenAbsent(t *testing.T) {
	app, _ := newTestApp(t)

	response := doJSON(t, app, http.MethodGet, "/meals", "", "")
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}

	var minted *http.Cookie
	for _, cookie := range response.Cookies() {
		if cookie.Name == testCookieName {
			minted = cookie
		}
	}
	if minted == nil {
		t.Fatal("expected a session cookie to be minted")
	}
	if _, err := uuid.Parse(minted.Value); err != nil {
		t.Fatalf("expected UUID session token, got %q: %v", minted.Value, err)
	}
	if minted.MaxAge != int(session.TTL.Seconds()) {
		t.Fatalf("expected 7-day max-age %d, got %d", int(session.TTL.Seconds()), minted.MaxAge)
	}
	if !minted.HttpOnly {
		t.Fatal("expected http-only session cookie")
	}
}

func TestSessionMiddlewareAcceptsAnyNonEmptyToken(t *testing.T) {
	app, _ := newTestApp(t)

	// Opaque tokens are taken as-is, without any lookup or format check.
	response := doJSON(t, app, http.MethodGet, "/meals", "", "some-legacy-opaque-token")
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}
	if reissued := sessionCookieValue(t, response); reissued != "" {
		t.Fatalf("expected no reissued cookie for a presented token, got %q", reissued)
	}
}

func TestHealthzSkipsSessionCookie(t *testing.T) {
	app, _ := newTestApp(t)

	response := doJSON(t, app, http.MethodGet, "/healthz", "", "")
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}
	if minted := sessionCookieValue(t, response); minted != "" {
		t.Fatalf("expected no session cookie on health checks, got %q", minted)
	}
}
