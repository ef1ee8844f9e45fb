package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ynab-tools/ynabconv/internal/importer"
)

// Config is the optional profiles file passed with --profiles.
type Config struct {
	Profiles []ProfileConfig `yaml:"profiles"`
}

// ProfileConfig describes one bank export layout.
type ProfileConfig struct {
	Name             string `yaml:"name"`
	Delimiter        string `yaml:"delimiter"`
	PayeeColumn      int    `yaml:"payee_column"`
	AmountColumn     int    `yaml:"amount_column"`
	Currency         string `yaml:"currency,omitempty"`
	DateStyle        string `yaml:"date_style"` // "iso" or "textual-month"
	PreferSecondDate bool   `yaml:"prefer_second_date,omitempty"`
	IgnoreLine       string `yaml:"ignore_line,omitempty"`
}

// Load reads a profiles file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Profile converts the entry to an importer profile. The delimiter "tab"
// stands for a tab character and an empty date style means "iso".
func (p ProfileConfig) Profile() importer.Profile {
	delim := p.Delimiter
	if delim == "tab" {
		delim = "\t"
	}
	style := importer.DateStyle(p.DateStyle)
	if style == "" {
		style = importer.DateISO
	}
	return importer.Profile{
		Name:             p.Name,
		Delimiter:        delim,
		PayeeColumn:      p.PayeeColumn,
		AmountColumn:     p.AmountColumn,
		Currency:         p.Currency,
		DateStyle:        style,
		PreferSecondDate: p.PreferSecondDate,
		IgnoreLine:       p.IgnoreLine,
	}
}

// Apply registers every profile in cfg, replacing built-ins of the same name.
func (cfg *Config) Apply(r *importer.Registry) error {
	for i, p := range cfg.Profiles {
		if err := r.Register(p.Profile()); err != nil {
			return fmt.Errorf("profile %d: %w", i+1, err)
		}
	}
	return nil
}
