package config

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/eczemahub"
	ConfigFileName    = "eczemahub.yml"
)

// Config holds all EczemaHub configuration settings.
type Config struct {
	// BindAddress is the address the server listens on
	BindAddress string `yaml:"bind_address" json:"bind_address"`

	// Port is the server listen port
	Port int `yaml:"port" json:"port"`

	// SnapshotPath is the file the store snapshot is saved to on
	// shutdown and restored from on start
	SnapshotPath string `yaml:"snapshot_path" json:"snapshot_path"`

	// SnapshotTriggerPath is an optional file watched for on-demand
	// snapshot requests; empty disables the watcher
	SnapshotTriggerPath string `yaml:"snapshot_trigger_path" json:"snapshot_trigger_path"`

	// TokenTTLMinutes is the caller token lifetime in minutes
	TokenTTLMinutes int `yaml:"token_ttl" json:"token_ttl"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// Attribute represents a configuration attribute with its value and source
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// newDefault returns a config with default values
func newDefault() *Config {
	return &Config{
		BindAddress:     "0.0.0.0",
		Port:            8000,
		SnapshotPath:    "/var/lib/eczemahub/snapshot.json",
		TokenTTLMinutes: 480,
		sources:         make(map[string]string),
	}
}

// Load loads configuration from file and environment variables.
// Environment variables take precedence over file values.
func Load() (*Config, error) {
	config := newDefault()

	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}

	configPath := os.Getenv("ECZEMAHUB_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var fileConfig Config
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&fileConfig)
	}

	config.applyEnvConfig()

	return config, nil
}

func attributeNames() []string {
	return []string{
		"bind_address", "port", "snapshot_path",
		"snapshot_trigger_path", "token_ttl",
	}
}

func (c *Config) applyFileConfig(file *Config) {
	if file.BindAddress != "" {
		c.BindAddress = file.BindAddress
		c.sources["bind_address"] = "file"
	}
	if file.Port != 0 {
		c.Port = file.Port
		c.sources["port"] = "file"
	}
	if file.SnapshotPath != "" {
		c.SnapshotPath = file.SnapshotPath
		c.sources["snapshot_path"] = "file"
	}
	if file.SnapshotTriggerPath != "" {
		c.SnapshotTriggerPath = file.SnapshotTriggerPath
		c.sources["snapshot_trigger_path"] = "file"
	}
	if file.TokenTTLMinutes != 0 {
		c.TokenTTLMinutes = file.TokenTTLMinutes
		c.sources["token_ttl"] = "file"
	}
}

func (c *Config) applyEnvConfig() {
	if val := os.Getenv("ECZEMAHUB_BIND_ADDRESS"); val != "" {
		c.BindAddress = val
		c.sources["bind_address"] = "environment"
	}
	if val := os.Getenv("ECZEMAHUB_PORT"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.Port = i
			c.sources["port"] = "environment"
		}
	}
	if val := os.Getenv("ECZEMAHUB_SNAPSHOT_PATH"); val != "" {
		c.SnapshotPath = val
		c.sources["snapshot_path"] = "environment"
	}
	if val := os.Getenv("ECZEMAHUB_SNAPSHOT_TRIGGER_PATH"); val != "" {
		c.SnapshotTriggerPath = val
		c.sources["snapshot_trigger_path"] = "environment"
	}
	if val := os.Getenv("ECZEMAHUB_TOKEN_TTL"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.TokenTTLMinutes = i
			c.sources["token_ttl"] = "environment"
		}
	}
}

// ConfigFilePath returns the path to the config file
func (c *Config) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *Config) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// Addr returns the listen address in host:port form.
func (c *Config) Addr() string {
	return c.BindAddress + ":" + strconv.Itoa(c.Port)
}

// TokenTTL returns the caller token TTL as a duration.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLMinutes) * time.Minute
}

// TokenKey reads and decodes the base64 caller-token signing key from
// the ECZEMAHUB_TOKEN_KEY environment variable. The key is never read
// from the config file.
func TokenKey() ([]byte, error) {
	val, ok := os.LookupEnv("ECZEMAHUB_TOKEN_KEY")
	if !ok || val == "" {
		return nil, fmt.Errorf("ECZEMAHUB_TOKEN_KEY environment variable is required")
	}
	key, err := base64.StdEncoding.DecodeString(val)
	if err != nil {
		return nil, fmt.Errorf("bad ECZEMAHUB_TOKEN_KEY: %w", err)
	}
	return key, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.SnapshotPath == "" {
		return fmt.Errorf("snapshot_path must not be empty")
	}
	if c.TokenTTLMinutes < 1 {
		return fmt.Errorf("token_ttl must be at least 1 minute")
	}
	return nil
}

// Attributes returns all configuration attributes with their values and sources
func (c *Config) Attributes() []Attribute {
	return []Attribute{
		{Name: "bind_address", Value: c.BindAddress, Source: c.Source("bind_address")},
		{Name: "port", Value: strconv.Itoa(c.Port), Source: c.Source("port")},
		{Name: "snapshot_path", Value: c.SnapshotPath, Source: c.Source("snapshot_path")},
		{Name: "snapshot_trigger_path", Value: c.SnapshotTriggerPath, Source: c.Source("snapshot_trigger_path")},
		{Name: "token_ttl", Value: strconv.Itoa(c.TokenTTLMinutes), Source: c.Source("token_ttl")},
	}
}

// FormatText returns a text representation of the configuration
func (c *Config) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-25s %-40s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-25s %-40s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-25s %-40s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

// FormatJSON returns a JSON representation of the configuration
func (c *Config) FormatJSON() (string, error) {
	result := map[string]interface{}{
		"config_file": c.configFilePath,
		"attributes":  c.Attributes(),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
