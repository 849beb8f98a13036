/*
Package config manages the TOML config for wordtrie.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/bastiangx/wordtrie/internal/utils"
	"github.com/bastiangx/wordtrie/pkg/trie"
	"github.com/charmbracelet/log"
)

// AppName names the config directory.
const AppName = "wordtrie"

// Config holds the entire config structure
type Config struct {
	Trie   TrieConfig   `toml:"trie"`
	CLI    CliConfig    `toml:"cli"`
	Dict   DictConfig   `toml:"dict"`
	Server ServerConfig `toml:"server"`
}

// TrieConfig holds the key alphabet.
type TrieConfig struct {
	Alphabet string `toml:"alphabet"`
}

// CliConfig holds command loop options.
type CliConfig struct {
	MaxWordLen    int  `toml:"max_word_len"`
	Normalize     bool `toml:"normalize"`
	DefaultBudget int  `toml:"default_budget"`
}

// DictConfig lists word lists loaded before the first command.
type DictConfig struct {
	Preload []string `toml:"preload"`
}

// ServerConfig has IPC server limits.
type ServerConfig struct {
	MaxBudget  int `toml:"max_budget"`
	MaxResults int `toml:"max_results"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Trie: TrieConfig{
			Alphabet: trie.DefaultSymbols,
		},
		CLI: CliConfig{
			MaxWordLen:    256,
			Normalize:     true,
			DefaultBudget: 1,
		},
		Dict: DictConfig{
			Preload: []string{},
		},
		Server: ServerConfig{
			MaxBudget:  8,
			MaxResults: 0,
		},
	}
}

// GetConfigDir returns the config directory with fallback priority:
// 1. $XDG_CONFIG_HOME/wordtrie or ~/.config/wordtrie
// 2. the executable's directory
func GetConfigDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			base = filepath.Join(homeDir, ".config")
		} else {
			log.Warnf("Failed to get home directory: %v", err)
		}
	}
	if base != "" {
		primaryPath := filepath.Join(base, AppName)
		if utils.WritableDir(primaryPath) {
			return primaryPath, nil
		}
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from -config flag
// 2. Default path: [UserConfigDir]/wordtrie/config.toml
// 3. Builtin defaults
// It returns the path the config came from, empty for builtin defaults.
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}

	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}
	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)
	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}
	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file. A file that fails to decode as a whole
// is salvaged key by key.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()
	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	config.sanitize()
	return config, nil
}

// tryPartialParse keeps every well typed key of a broken file.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(tempConfig, "trie"); ok {
		if val, ok := utils.ExtractString(section, "alphabet"); ok {
			config.Trie.Alphabet = val
		}
	}
	if section, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		if val, ok := utils.ExtractInt(section, "max_word_len"); ok {
			config.CLI.MaxWordLen = val
		}
		if val, ok := utils.ExtractBool(section, "normalize"); ok {
			config.CLI.Normalize = val
		}
		if val, ok := utils.ExtractInt(section, "default_budget"); ok {
			config.CLI.DefaultBudget = val
		}
	}
	if section, ok := utils.ExtractSection(tempConfig, "dict"); ok {
		if val, ok := utils.ExtractStrings(section, "preload"); ok {
			config.Dict.Preload = val
		}
	}
	if section, ok := utils.ExtractSection(tempConfig, "server"); ok {
		if val, ok := utils.ExtractInt(section, "max_budget"); ok {
			config.Server.MaxBudget = val
		}
		if val, ok := utils.ExtractInt(section, "max_results"); ok {
			config.Server.MaxResults = val
		}
	}
	config.sanitize()
	return config, nil
}

// sanitize replaces values the rest of the program cannot work with.
func (c *Config) sanitize() {
	defaults := DefaultConfig()
	if _, err := trie.NewAlphabet(c.Trie.Alphabet); err != nil {
		log.Warnf("Invalid alphabet %q in config: %v. Using %q.", c.Trie.Alphabet, err, defaults.Trie.Alphabet)
		c.Trie.Alphabet = defaults.Trie.Alphabet
	}
	if c.CLI.MaxWordLen < 0 {
		c.CLI.MaxWordLen = defaults.CLI.MaxWordLen
	}
	if c.Server.MaxBudget < 0 {
		c.Server.MaxBudget = defaults.Server.MaxBudget
	}
	if c.Server.MaxResults < 0 {
		c.Server.MaxResults = 0
	}
}

// Alphabet builds the trie alphabet named by the config.
func (c *Config) Alphabet() *trie.Alphabet {
	a, err := trie.NewAlphabet(c.Trie.Alphabet)
	if err != nil {
		return trie.DefaultAlphabet
	}
	return a
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
