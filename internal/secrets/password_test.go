package secrets

import (
	"testing"

	"jobtracker/internal/models"

	"github.com/zalando/go-keyring"
)

func testEmailConfig(password string) models.EmailConfig {
	return models.EmailConfig{
		Imap:     "imap.test.com:993",
		Login:    "test@example.com",
		Password: password,
	}
}

func TestResolveIMAPPasswordFromConfig(t *testing.T) {
	pw, err := ResolveIMAPPassword(testEmailConfig("from-config"))
	if err != nil {
		t.Fatalf("ResolveIMAPPassword() error: %v", err)
	}
	if pw != "from-config" {
		t.Errorf("ResolveIMAPPassword() = %q, want %q", pw, "from-config")
	}
}

func TestResolveIMAPPasswordFromEnv(t *testing.T) {
	t.Setenv(PasswordEnvVar, "from-env")

	pw, err := ResolveIMAPPassword(testEmailConfig(""))
	if err != nil {
		t.Fatalf("ResolveIMAPPassword() error: %v", err)
	}
	if pw != "from-env" {
		t.Errorf("ResolveIMAPPassword() = %q, want %q", pw, "from-env")
	}
}

func TestResolveIMAPPasswordFromKeyring(t *testing.T) {
	keyring.MockInit()
	t.Setenv(PasswordEnvVar, "")

	cfg := testEmailConfig("")
	if err := SetIMAPPassword(cfg, "from-keyring"); err != nil {
		t.Fatalf("SetIMAPPassword() error: %v", err)
	}

	pw, err := ResolveIMAPPassword(cfg)
	if err != nil {
		t.Fatalf("ResolveIMAPPassword() error: %v", err)
	}
	if pw != "from-keyring" {
		t.Errorf("ResolveIMAPPassword() = %q, want %q", pw, "from-keyring")
	}

	if err := DeleteIMAPPassword(cfg); err != nil {
		t.Fatalf("DeleteIMAPPassword() error: %v", err)
	}
	if _, err := ResolveIMAPPassword(cfg); err == nil {
		t.Error("ResolveIMAPPassword() expected error after delete, got nil")
	}
}
