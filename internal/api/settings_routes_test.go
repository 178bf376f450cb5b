package api

import (
	"net/http"
	"testing"
)

func TestChangePasswordRoute(t *testing.T) {
	app, _, _ := newTestApp(t)
	cookie := registerAndExtractAuthCookie(t, app, "settings@example.com")

	wrong := doJSON(t, app, http.MethodPost, "/api/settings/change-password", map[string]string{
		"current_password": "WrongPass1",
		"new_password":     "FreshPass2",
		"confirm_password": "FreshPass2",
	}, cookie)
	if wrong.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", wrong.StatusCode)
	}
	if message := errorMessage(t, wrong); message != "invalid current password" {
		t.Fatalf("expected invalid current password, got %q", message)
	}

	changed := doJSON(t, app, http.MethodPost, "/api/settings/change-password", map[string]string{
		"current_password": testPassword,
		"new_password":     "FreshPass2",
		"confirm_password": "FreshPass2",
	}, cookie)
	if changed.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", changed.StatusCode)
	}

	login := doJSON(t, app, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "settings@example.com",
		"password": "FreshPass2",
	}, "")
	if login.StatusCode != http.StatusOK {
		t.Fatalf("expected login with new password, got %d", login.StatusCode)
	}
}

func TestDeleteAccountRoute(t *testing.T) {
	app, _, _ := newTestApp(t)
	cookie := registerAndExtractAuthCookie(t, app, "delete@example.com")

	rejected := doJSON(t, app, http.MethodDelete, "/api/settings/delete-account", map[string]string{"password": "WrongPass1"}, cookie)
	if rejected.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rejected.StatusCode)
	}

	deleted := doJSON(t, app, http.MethodDelete, "/api/settings/delete-account", map[string]string{"password": testPassword}, cookie)
	if deleted.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", deleted.StatusCode)
	}

	me := doJSON(t, app, http.MethodGet, "/api/auth/me", nil, cookie)
	if me.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected deleted user session to be rejected, got %d", me.StatusCode)
	}
}
