package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("port %q", cfg.Port)
	}
	if cfg.AdminSecret != "admin99" || cfg.UserSecret != "aswier99" {
		t.Fatalf("secrets %q %q", cfg.AdminSecret, cfg.UserSecret)
	}
	if cfg.SessionDays != 7 {
		t.Fatalf("session days %d", cfg.SessionDays)
	}
	if !cfg.ReportAutoPrint || cfg.ReportPrintDelayMS != 1000 {
		t.Fatalf("print config %v %d", cfg.ReportAutoPrint, cfg.ReportPrintDelayMS)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ADMIN_SECRET", "rahasia1")
	t.Setenv("USER_SECRET", "rahasia2")
	t.Setenv("SESSION_DAYS", "14")
	t.Setenv("REPORT_AUTO_PRINT", "false")
	t.Setenv("PORT", "9090")

	cfg := Load()
	if cfg.AdminSecret != "rahasia1" || cfg.UserSecret != "rahasia2" {
		t.Fatalf("secrets %q %q", cfg.AdminSecret, cfg.UserSecret)
	}
	if cfg.SessionDays != 14 || cfg.ReportAutoPrint || cfg.Port != "9090" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestLoadInvalidNumbersFallBack(t *testing.T) {
	t.Setenv("SESSION_DAYS", "seminggu")
	t.Setenv("REPORT_PRINT_DELAY_MS", "sebentar")

	cfg := Load()
	if cfg.SessionDays != 7 || cfg.ReportPrintDelayMS != 1000 {
		t.Fatalf("fallbacks not applied: %+v", cfg)
	}
}
