package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestApplyDotEnvKeepsExistingValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	contents := "GP_TEST_NEW=from-file\nGP_TEST_EXISTING=from-file\n# comment\nexport GP_TEST_EXPORTED=\"quoted value\"\n"
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	t.Setenv("GP_TEST_EXISTING", "from-env")
	t.Cleanup(func() {
		os.Unsetenv("GP_TEST_NEW")
		os.Unsetenv("GP_TEST_EXPORTED")
	})

	loaded, skipped, err := applyDotEnv(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if loaded != 2 || skipped != 1 {
		t.Fatalf("expected loaded=2 skipped=1, got loaded=%d skipped=%d", loaded, skipped)
	}
	if got := os.Getenv("GP_TEST_EXISTING"); got != "from-env" {
		t.Fatalf("expected env value kept, got %q", got)
	}
	if got := os.Getenv("GP_TEST_EXPORTED"); got != "quoted value" {
		t.Fatalf("expected unquoted value, got %q", got)
	}
}

func TestGetEnvList(t *testing.T) {
	t.Setenv("GP_TEST_LIST", " http://a.test , ,http://b.test")

	got := getEnvList("GP_TEST_LIST", nil)
	if len(got) != 2 || got[0] != "http://a.test" || got[1] != "http://b.test" {
		t.Fatalf("unexpected list %v", got)
	}

	fallback := getEnvList("GP_TEST_LIST_MISSING", []string{"x"})
	if len(fallback) != 1 || fallback[0] != "x" {
		t.Fatalf("expected fallback, got %v", fallback)
	}
}

func TestGetEnvDurationFallsBackOnGarbage(t *testing.T) {
	t.Setenv("GP_TEST_DURATION", "soon")
	if got := getEnvDuration("GP_TEST_DURATION", time.Minute); got != time.Minute {
		t.Fatalf("expected fallback, got %v", got)
	}
}

func TestValidate(t *testing.T) {
	cfg := Config{BaseURL: "http://localhost:8080", Storage: StoragePostgres}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error without session key")
	}

	cfg.Session.Key = "0123456789abcdef0123456789abcdef"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error without jwt secret")
	}

	cfg.JWT.Secret = "secret"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	cfg.Session.EncryptionKey = "short"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for bad encryption key length")
	}
	cfg.Session.EncryptionKey = "0123456789abcdef"

	cfg.Storage = "sqlite"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for unknown storage")
	}
}

func TestGetDSNPrefersExplicitDSN(t *testing.T) {
	cfg := DBConfig{DSN: "postgres://x", Host: "ignored"}
	if got := cfg.GetDSN(); got != "postgres://x" {
		t.Fatalf("expected explicit dsn, got %q", got)
	}

	cfg = DBConfig{Host: "db", User: "u", Password: "p", Name: "n", Port: "5432", SSLMode: "disable", TimeZone: "UTC"}
	want := "host=db user=u password=p dbname=n port=5432 sslmode=disable TimeZone=UTC"
	if got := cfg.GetDSN(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
