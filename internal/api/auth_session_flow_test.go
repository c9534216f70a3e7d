package api

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/jmcgreevy/mulligan/internal/models"
)

func TestLoginIssuesSessionAndAuthenticatesPages(t *testing.T) {
	app, database := newTestApp(t)
	user := createTestUser(t, database, "player@example.com", "StrongPass1", false)

	cookie := loginAndExtractSessionCookie(t, app, user.Email, "StrongPass1")

	response := getPage(t, app, cookie, "/standings")
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected standings status 200, got %d", response.StatusCode)
	}

	var count int64
	if err := database.Model(&models.Session{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		t.Fatalf("count sessions: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 session row, got %d", count)
	}
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	app, _ := newTestApp(t)

	form := url.Values{
		"email":    {"nobody@example.com"},
		"password": {"StrongPass1"},
	}
	response := postForm(t, app, "", "/api/auth/login", form)
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected redirect status 303, got %d", response.StatusCode)
	}
	if location := response.Header.Get("Location"); location != "/login" {
		t.Fatalf("expected redirect back to /login, got %q", location)
	}
	for _, cookie := range response.Cookies() {
		if cookie.Name == sessionCookieName && cookie.Value != "" {
			t.Fatal("unknown email must not receive a session cookie")
		}
	}
}

func TestUnauthenticatedPageRedirectsToLogin(t *testing.T) {
	app, _ := newTestApp(t)

	response := getPage(t, app, "", "/standings")
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", response.StatusCode)
	}
	if location := response.Header.Get("Location"); location != "/login" {
		t.Fatalf("expected redirect to /login, got %q", location)
	}
}

func TestUnauthenticatedAPIGets401(t *testing.T) {
	app, _ := newTestApp(t)

	response := getPage(t, app, "", "/api/standings")
	defer response.Body.Close()

	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", response.StatusCode)
	}
}

func TestLogoutRevokesSessionRow(t *testing.T) {
	app, database := newTestApp(t)
	user := createTestUser(t, database, "leaver@example.com", "StrongPass1", false)

	cookie := loginAndExtractSessionCookie(t, app, user.Email, "StrongPass1")

	response := postForm(t, app, cookie, "/api/auth/logout", url.Values{})
	defer response.Body.Close()
	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected logout status 303, got %d", response.StatusCode)
	}

	var count int64
	if err := database.Model(&models.Session{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		t.Fatalf("count sessions: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected session row deleted on logout, got %d rows", count)
	}

	after := getPage(t, app, cookie, "/standings")
	defer after.Body.Close()
	if after.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected revoked cookie to bounce to login, got %d", after.StatusCode)
	}
}

func TestExpiredSessionIsDeletedOnUse(t *testing.T) {
	app, database, handler := newTestAppWithHandler(t)
	user := createTestUser(t, database, "expired@example.com", "StrongPass1", false)

	cookie := loginAndExtractSessionCookie(t, app, user.Email, "StrongPass1")

	handler.WithClock(func() time.Time {
		return time.Now().Add(models.SessionLifetime + time.Hour)
	})

	response := getPage(t, app, cookie, "/standings")
	defer response.Body.Close()
	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected expired session to redirect, got %d", response.StatusCode)
	}

	var count int64
	if err := database.Model(&models.Session{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		t.Fatalf("count sessions: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected expired session row deleted on resolve, got %d rows", count)
	}
}

func TestRegisterCreatesAccountAndSession(t *testing.T) {
	app, database := newTestApp(t)

	form := url.Values{
		"email":            {"newbie@example.com"},
		"password":         {"StrongPass1"},
		"confirm_password": {"StrongPass1"},
		"name":             {"New Golfer"},
	}
	response := postForm(t, app, "", "/api/auth/register", form)
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected register status 303, got %d", response.StatusCode)
	}
	if location := response.Header.Get("Location"); location != "/standings" {
		t.Fatalf("expected redirect to /standings, got %q", location)
	}

	var user models.User
	if err := database.Where("email = ?", "newbie@example.com").First(&user).Error; err != nil {
		t.Fatalf("load registered user: %v", err)
	}
	if user.IsAdmin {
		t.Fatal("self-registered accounts must not be admins")
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "taken@example.com", "StrongPass1", false)

	form := url.Values{
		"email":    {"taken@example.com"},
		"password": {"StrongPass1"},
		"name":     {"Imposter"},
	}
	response := postForm(t, app, "", "/api/auth/register", form)
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected redirect status 303, got %d", response.StatusCode)
	}
	if location := response.Header.Get("Location"); location != "/register" {
		t.Fatalf("expected redirect back to /register, got %q", location)
	}
}
