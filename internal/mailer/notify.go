package mailer

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// NotifyConfig controls who the owner notification goes to and the wording
// around both emails. Loaded from a YAML file so copy changes don't need a
// rebuild; every field except the owner address has a default.
type NotifyConfig struct {
	OwnerEmail   string `yaml:"owner_email"`
	OwnerSubject string `yaml:"owner_subject"`
	AckSubject   string `yaml:"ack_subject"`
	TeamName     string `yaml:"team_name"`
	ReplyWindow  string `yaml:"reply_window"`
}

// LoadNotifyConfig reads the YAML file at path. A missing file is fine as
// long as fallbackOwner (the OWNER_EMAIL env value) fills the one field
// with no default.
func LoadNotifyConfig(path, fallbackOwner string) (NotifyConfig, error) {
	cfg := NotifyConfig{
		OwnerSubject: "New Contact Form Message",
		AckSubject:   "Your Message Has Been Received",
		TeamName:     "Dave Tech Innovation Team",
		ReplyWindow:  "24 to 48 working hours",
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return NotifyConfig{}, fmt.Errorf("parsing %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// fall through to defaults + env fallback
	default:
		return NotifyConfig{}, fmt.Errorf("reading %s: %w", path, err)
	}

	if cfg.OwnerEmail == "" {
		cfg.OwnerEmail = fallbackOwner
	}
	if cfg.OwnerEmail == "" {
		return NotifyConfig{}, fmt.Errorf("no owner email: set owner_email in %s or OWNER_EMAIL", path)
	}

	return cfg, nil
}
