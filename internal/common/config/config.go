package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

var (
	ErrManagerCommandNotSet = errors.New("manager command is not configured")
	ErrSelfNameNotSet       = errors.New("manager self name is not configured")
	ErrInvalidHeaderLines   = errors.New("manager header_lines must not be negative")
)

// Config represents the application configuration
type Config struct {
	Manager ManagerConfig `yaml:"manager" toml:"manager"`
	Auto    bool          `yaml:"auto" toml:"auto"`         // Upgrade without prompting by default
	LogFile bool          `yaml:"log_file" toml:"log_file"` // Also log to $XDG_STATE_HOME/pkgup/logs
}

// ManagerConfig describes how to drive the package manager
type ManagerConfig struct {
	Command            []string `yaml:"command" toml:"command"`                           // e.g. ["pip"] or ["python3", "-m", "pip"]
	SelfName           string   `yaml:"self_name" toml:"self_name"`                       // Name the manager uses for itself in listings
	ListArgs           []string `yaml:"list_args" toml:"list_args"`                       // Installed listing
	OutdatedArgs       []string `yaml:"outdated_args" toml:"outdated_args"`               // Outdated listing
	UpgradeArgs        []string `yaml:"upgrade_args" toml:"upgrade_args"`                 // Package name is appended
	SelfUpgradeCommand []string `yaml:"self_upgrade_command" toml:"self_upgrade_command"` // Full argv
	HeaderLines        int      `yaml:"header_lines" toml:"header_lines"`                 // Lines to skip in listings
}

// DefaultManager returns the pip profile
func DefaultManager() ManagerConfig {
	return ManagerConfig{
		Command:            []string{"pip"},
		SelfName:           "pip",
		ListArgs:           []string{"list"},
		OutdatedArgs:       []string{"list", "--outdated"},
		UpgradeArgs:        []string{"install", "--upgrade"},
		SelfUpgradeCommand: []string{"python3", "-m", "pip", "install", "--upgrade", "pip"},
		HeaderLines:        2,
	}
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Manager: DefaultManager(),
	}
}

// ConfigPaths returns all possible config file paths in priority order
// 1. ~/.config/pkgup/config.yaml (XDG standard - priority)
// 2. ~/.config/pkgup/config.toml
// 3. ~/.pkgup/config.yaml (legacy fallback)
func ConfigPaths() ([]string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}

	return []string{
		filepath.Join(xdgConfig, "pkgup", "config.yaml"),
		filepath.Join(xdgConfig, "pkgup", "config.toml"),
		filepath.Join(home, ".pkgup", "config.yaml"),
	}, nil
}

// DefaultConfigPath returns the default config file path (XDG standard)
func DefaultConfigPath() (string, error) {
	paths, err := ConfigPaths()
	if err != nil {
		return "", err
	}
	return paths[0], nil
}

// FindConfigPath returns the first existing config file path
// Returns the default path if no config file exists yet
func FindConfigPath() (string, error) {
	paths, err := ConfigPaths()
	if err != nil {
		return "", err
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return paths[0], nil
}

// Load reads configuration from the first available config file
func Load() (*Config, error) {
	configPath, err := FindConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(configPath)
}

// LoadFrom reads configuration from a specific file path.
// A missing file is created with the default configuration.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := Default()
			if saveErr := cfg.SaveTo(path); saveErr != nil {
				return nil, saveErr
			}
			return cfg, nil
		}
		return nil, err
	}

	// Decode over the defaults so omitted keys keep them and explicit zero
	// values such as header_lines: 0 survive.
	cfg := Default()
	cfg.Manager.SelfUpgradeCommand = nil
	if isTOML(path) {
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, err
		}
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	cfg.applySelfUpgradeDefault()
	return cfg, nil
}

// SaveTo writes configuration to a specific file path
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	var data []byte
	if isTOML(path) {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(c); err != nil {
			return err
		}
		data = buf.Bytes()
	} else {
		var err error
		data, err = yaml.Marshal(c)
		if err != nil {
			return err
		}
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks that the manager profile is usable
func (c *Config) Validate() error {
	m := c.Manager
	if len(m.Command) == 0 || strings.TrimSpace(m.Command[0]) == "" {
		return ErrManagerCommandNotSet
	}
	if m.SelfName == "" {
		return ErrSelfNameNotSet
	}
	if m.HeaderLines < 0 {
		return ErrInvalidHeaderLines
	}
	return nil
}

// SetManagerCommand overrides the manager argv from a command-line string
// such as "pip3" or "python3 -m pip". The self-upgrade command is cleared so
// the new manager upgrades itself through its own upgrade args.
func (c *Config) SetManagerCommand(command string) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return
	}
	c.Manager.Command = fields
	c.Manager.SelfUpgradeCommand = nil
}

// applySelfUpgradeDefault restores the pip self-upgrade command only for the
// default manager command. A custom command with no self_upgrade_command
// upgrades itself with Command + UpgradeArgs + SelfName.
func (c *Config) applySelfUpgradeDefault() {
	def := DefaultManager()
	if len(c.Manager.SelfUpgradeCommand) == 0 && slices.Equal(c.Manager.Command, def.Command) {
		c.Manager.SelfUpgradeCommand = def.SelfUpgradeCommand
	}
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
