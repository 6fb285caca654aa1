package config

import (
	"fmt"
	"os"
	"time"

	"jobtracker/internal/models"

	"gopkg.in/yaml.v2"
)

// Defaults applied after unmarshal when the file leaves a field unset.
const (
	DefaultLookbackDays = 3
	DefaultMailBox      = "INBOX"
	DefaultPacing       = 5 * time.Second
	DefaultModel        = "gemini-1.5-flash"
	DefaultTimeout      = 60 * time.Second
	DefaultSheetName    = "Sheet1"
	DefaultBackend      = "sheets"
)

// Load reads the configuration from the specified YAML file, applies
// defaults and validates the result.
func Load(filepath string) (*models.Config, error) {
	configFile, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var config models.Config
	if err := yaml.Unmarshal(configFile, &config); err != nil {
		return nil, err
	}

	applyDefaults(&config)
	if err := validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func applyDefaults(cfg *models.Config) {
	if cfg.Email.LookbackDays <= 0 {
		cfg.Email.LookbackDays = DefaultLookbackDays
	}
	if cfg.Email.MailBox == "" {
		cfg.Email.MailBox = DefaultMailBox
	}
	if cfg.Pacing <= 0 {
		cfg.Pacing = DefaultPacing
	}
	if cfg.Gemini.Model == "" {
		cfg.Gemini.Model = DefaultModel
	}
	if cfg.Gemini.Timeout <= 0 {
		cfg.Gemini.Timeout = DefaultTimeout
	}
	if cfg.Sheet.Name == "" {
		cfg.Sheet.Name = DefaultSheetName
	}
	if cfg.Sheet.Backend == "" {
		cfg.Sheet.Backend = DefaultBackend
	}
}

func validate(cfg *models.Config) error {
	if cfg.Email.Imap == "" {
		return fmt.Errorf("config: email.imap is required")
	}
	if cfg.Email.Login == "" {
		return fmt.Errorf("config: email.login is required")
	}
	if cfg.Gemini.APIKey == "" {
		return fmt.Errorf("config: gemini.apiKey is required")
	}
	switch cfg.Sheet.Backend {
	case "sheets":
		if cfg.Sheet.SpreadsheetID == "" {
			return fmt.Errorf("config: sheet.spreadsheetId is required for the sheets backend")
		}
		if cfg.Sheet.CredentialsFile == "" {
			return fmt.Errorf("config: sheet.credentialsFile is required for the sheets backend")
		}
	case "sqlite":
		if cfg.Sheet.SQLitePath == "" {
			return fmt.Errorf("config: sheet.sqlitePath is required for the sqlite backend")
		}
	default:
		return fmt.Errorf("config: unknown sheet.backend %q (want sheets or sqlite)", cfg.Sheet.Backend)
	}
	return nil
}
