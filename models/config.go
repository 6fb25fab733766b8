// Package models defines data structures for configuration, tracked
// documents, and extraction output.
package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SourceConfig identifies the page that lists the monitored PDF documents.
type SourceConfig struct {
	PageURL  string   `yaml:"page_url"`
	BaseURL  string   `yaml:"base_url"`
	Keywords []string `yaml:"keywords"`
}

// HTTPConfig holds client identity, timeouts, and the politeness delay.
// The delay is a rate limit toward the remote host, not a tuning knob.
type HTTPConfig struct {
	UserAgent       string `yaml:"user_agent"`
	ProbeTimeoutSec int    `yaml:"probe_timeout_sec"`
	FetchTimeoutSec int    `yaml:"fetch_timeout_sec"`
	DelayMS         int    `yaml:"delay_ms"`
	PageCacheTTLMin int    `yaml:"page_cache_ttl_min"`
}

// DirsConfig holds the on-disk layout for downloaded and extracted artifacts.
type DirsConfig struct {
	Documents string `yaml:"documents"`
	Text      string `yaml:"text"`
	Metadata  string `yaml:"metadata"`
	PageCache string `yaml:"page_cache"`
}

// DBConfig holds the check-history database location.
type DBConfig struct {
	Path string `yaml:"path"`
}

// Config is the full runtime configuration loaded from YAML.
type Config struct {
	Source SourceConfig `yaml:"source"`
	HTTP   HTTPConfig   `yaml:"http"`
	Dirs   DirsConfig   `yaml:"dirs"`
	DB     DBConfig     `yaml:"db"`
}

// LoadConfig reads and parses the YAML config file, then applies defaults
// for any omitted fields.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()
	return &cfg, nil
}

// ApplyDefaults fills in zero-valued fields with working defaults.
func (c *Config) ApplyDefaults() {
	if c.Source.PageURL == "" {
		c.Source.PageURL = "https://www.faa.gov/training_testing/testing/acs"
	}
	if c.Source.BaseURL == "" {
		c.Source.BaseURL = "https://www.faa.gov"
	}
	if len(c.Source.Keywords) == 0 {
		c.Source.Keywords = []string{"acs", "airman", "certification", "standards"}
	}
	if c.HTTP.UserAgent == "" {
		c.HTTP.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	}
	if c.HTTP.ProbeTimeoutSec == 0 {
		c.HTTP.ProbeTimeoutSec = 30
	}
	if c.HTTP.FetchTimeoutSec == 0 {
		c.HTTP.FetchTimeoutSec = 60
	}
	if c.HTTP.DelayMS == 0 {
		c.HTTP.DelayMS = 2000
	}
	if c.HTTP.PageCacheTTLMin == 0 {
		c.HTTP.PageCacheTTLMin = 15
	}
	if c.Dirs.Documents == "" {
		c.Dirs.Documents = "data/acs-documents"
	}
	if c.Dirs.Text == "" {
		c.Dirs.Text = "data/extracted-text"
	}
	if c.Dirs.Metadata == "" {
		c.Dirs.Metadata = "data/metadata"
	}
	if c.Dirs.PageCache == "" {
		c.Dirs.PageCache = "data/page-cache"
	}
	if c.DB.Path == "" {
		c.DB.Path = "acs-monitor.db"
	}
}
