package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.CookieSecure {
		t.Fatal("expected cookie security off by default")
	}
	if cfg.Mail.Enabled() {
		t.Fatal("expected mail disabled without SMTP settings")
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("PORT", "9100")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_FROM", "trip@example.com")
	t.Setenv("SMTP_PORT", "2525")

	cfg := Load()

	if cfg.Port != "9100" {
		t.Fatalf("expected port 9100, got %q", cfg.Port)
	}
	if !cfg.CookieSecure {
		t.Fatal("expected cookie security enabled")
	}
	if !cfg.Mail.Enabled() {
		t.Fatal("expected mail enabled")
	}
	if cfg.Mail.Port != 2525 {
		t.Fatalf("expected SMTP port 2525, got %d", cfg.Mail.Port)
	}
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("SMTP_PORT", "not-a-number")

	cfg := Load()
	if cfg.Mail.Port != 587 {
		t.Fatalf("expected fallback SMTP port 587, got %d", cfg.Mail.Port)
	}
}
