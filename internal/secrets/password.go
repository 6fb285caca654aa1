package secrets

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"jobtracker/internal/models"

	"github.com/zalando/go-keyring"
)

const (
	// KeyringService groups this app's secrets in the OS keychain.
	KeyringService = "jobtracker"

	// PasswordEnvVar overrides both the config file and the keychain.
	PasswordEnvVar = "JOBTRACKER_IMAP_PASSWORD"
)

// KeyringAccount names the keychain entry for the configured mailbox.
func KeyringAccount(cfg models.EmailConfig) string {
	return fmt.Sprintf("%s@%s", cfg.Login, cfg.Imap)
}

// ResolveIMAPPassword returns the mailbox password, checking the config
// value, then the environment, then the OS keychain.
func ResolveIMAPPassword(cfg models.EmailConfig) (string, error) {
	if pw := strings.TrimSpace(cfg.Password); pw != "" {
		return pw, nil
	}

	if pw := strings.TrimSpace(os.Getenv(PasswordEnvVar)); pw != "" {
		return pw, nil
	}

	pw, err := keyring.Get(KeyringService, KeyringAccount(cfg))
	if err == nil && strings.TrimSpace(pw) != "" {
		return pw, nil
	}

	return "", errors.New("IMAP password not found (set it in the config, " + PasswordEnvVar + ", or the OS keychain)")
}

// SetIMAPPassword stores the mailbox password in the OS keychain.
func SetIMAPPassword(cfg models.EmailConfig, password string) error {
	if strings.TrimSpace(password) == "" {
		return errors.New("password is empty")
	}
	return keyring.Set(KeyringService, KeyringAccount(cfg), password)
}

// DeleteIMAPPassword removes the mailbox password from the OS keychain.
func DeleteIMAPPassword(cfg models.EmailConfig) error {
	return keyring.Delete(KeyringService, KeyringAccount(cfg))
}
