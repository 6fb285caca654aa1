package models

import "time"

// Config represents the application configuration
type Config struct {
	Email    EmailConfig  `yaml:"email"`
	Gemini   GeminiConfig `yaml:"gemini"`
	Sheet    SheetConfig  `yaml:"sheet"`
	Keywords []string     `yaml:"keywords"`
	// Pacing is the minimum interval between processed messages; it
	// protects the extraction service quota, not the IMAP server.
	Pacing   time.Duration `yaml:"pacing"`
	LockFile string        `yaml:"lockFile"`
}

// EmailConfig represents IMAP email configuration
type EmailConfig struct {
	Imap         string `yaml:"imap"`
	Login        string `yaml:"login"`
	Password     string `yaml:"password"`
	MailBox      string `yaml:"mailbox"`
	LookbackDays int    `yaml:"lookbackDays"`
}

// GeminiConfig represents the text-understanding service configuration
type GeminiConfig struct {
	APIKey   string        `yaml:"apiKey"`
	Model    string        `yaml:"model"`
	Endpoint string        `yaml:"endpoint"`
	Timeout  time.Duration `yaml:"timeout"`
}

// SheetConfig selects and configures the tabular store backend
type SheetConfig struct {
	Backend         string `yaml:"backend"` // "sheets" or "sqlite"
	SpreadsheetID   string `yaml:"spreadsheetId"`
	CredentialsFile string `yaml:"credentialsFile"`
	Name            string `yaml:"name"`
	SQLitePath      string `yaml:"sqlitePath"`
}
