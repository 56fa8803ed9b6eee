package config

import (
	"path/filepath"
	"time"
)

const (
	// DefaultMessage is the deny-block reason shown to unauthenticated connections.
	DefaultMessage = "You need to identify via SASL to use this server."
	// DefaultParent is the connect class the allow-block inherits from.
	DefaultParent = "main"
	// DefaultURL is the IP list fetched when no other source is configured.
	DefaultURL = "https://raw.githubusercontent.com/X4BNet/lists_vpn/main/output/vpn/ipv4.txt"
	// DefaultFetchTimeoutSeconds bounds the list download.
	DefaultFetchTimeoutSeconds = 10
)

type Config struct {
	// General holds general configuration.
	General *GeneralConfig `toml:"general"`
	// Gates is the gate profile configuration. You can add multiple gates; each one is fetched and rendered independently. You must set "name" for each gate.
	Gates []*GateConfig `toml:"gate,omitempty"`

	_absConfigFilePath string
}

type GeneralConfig struct {
	// FetchTimeoutSeconds is the timeout for downloading the IP list (default: 10).
	FetchTimeoutSeconds int `toml:"fetch_timeout_seconds" json:"fetch_timeout_seconds" validate:"gte=0"`
}

// GateConfig describes one authentication gate to generate.
type GateConfig struct {
	// Name identifies the gate in logs and error messages.
	Name string `toml:"name" json:"name" validate:"required"`
	// URL is the plaintext IP/CIDR list source, one entry per line (default: the X4BNet VPN list).
	URL string `toml:"url,omitempty" json:"url,omitempty" validate:"omitempty,url"`
	// Message is the deny-block reason text, inserted verbatim.
	Message string `toml:"message,omitempty" json:"message,omitempty"`
	// Parent is the connect class the allow-block inherits from (default: main).
	Parent string `toml:"parent,omitempty" json:"parent,omitempty"`
	// Output is the destination file path. Empty means standard output.
	Output string `toml:"output,omitempty" json:"output,omitempty"`
}

// ApplyDefaults fills empty fields with the documented defaults.
func (c *Config) ApplyDefaults() {
	if c.General == nil {
		c.General = &GeneralConfig{}
	}
	if c.General.FetchTimeoutSeconds == 0 {
		c.General.FetchTimeoutSeconds = DefaultFetchTimeoutSeconds
	}
	for _, gate := range c.Gates {
		gate.ApplyDefaults()
	}
}

// ApplyDefaults fills empty gate fields with the documented defaults.
func (g *GateConfig) ApplyDefaults() {
	if g.URL == "" {
		g.URL = DefaultURL
	}
	if g.Message == "" {
		g.Message = DefaultMessage
	}
	if g.Parent == "" {
		g.Parent = DefaultParent
	}
}

// FetchTimeout returns the configured list download timeout.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.General.FetchTimeoutSeconds) * time.Second
}

func (c *Config) GetConfigDir() string {
	return filepath.Dir(c._absConfigFilePath)
}

// FromFlags builds a single-gate configuration from command-line flags.
func FromFlags(message, output, parent, url string) *Config {
	cfg := &Config{
		General: &GeneralConfig{},
		Gates: []*GateConfig{
			{
				Name:    "cli",
				URL:     url,
				Message: message,
				Parent:  parent,
				Output:  output,
			},
		},
	}
	cfg.ApplyDefaults()
	return cfg
}
