/*
Package config manages TOML config for WordPredict.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/bastiangx/wordpredict/internal/utils"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Data   DataConfig   `toml:"data"`
	Server ServerConfig `toml:"server"`
	Corpus CorpusConfig `toml:"corpus"`
	CLI    CliConfig    `toml:"cli"`
}

// DataConfig points at the files both engines load.
type DataConfig struct {
	Vocab  string `toml:"vocab"`
	Corpus string `toml:"corpus"`
}

// ServerConfig has server related options.
type ServerConfig struct {
	MaxInput   int `toml:"max_input"`
	MaxResults int `toml:"max_results"`
}

// CorpusConfig holds corpus preparation options.
type CorpusConfig struct {
	MinSequenceLen int `toml:"min_sequence_len"`
	TopK           int `toml:"top_k"`
	MinCount       int `toml:"min_count"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	Mode string `toml:"mode"`
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/
// 2. ~/Library/Application Support/ (macOS)
// 3. Current executable dir
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		execDir, execErr := utils.GetExecutableDir()
		if execErr != nil {
			return "", execErr
		}
		return execDir, nil
	}
	primaryPath := filepath.Join(homeDir, ".config", "wordpredict")
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", "wordpredict")
	if result := utils.CheckDirStatus(macOSPath); result.Writable {
		return macOSPath, nil
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
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/wordpredict/config.toml
// 3. Builtin defaults
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

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			Vocab:  "data/vocab.txt",
			Corpus: "data/corpus.txt",
		},
		Server: ServerConfig{
			MaxInput:   60,
			MaxResults: 0,
		},
		Corpus: CorpusConfig{
			MinSequenceLen: 3,
			TopK:           0,
			MinCount:       1,
		},
		CLI: CliConfig{
			Mode: "stream",
		},
	}
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

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse keeps whatever sections of a broken file still decode.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if dataSection, ok := utils.ExtractSection(tempConfig, "data"); ok {
		extractDataConfig(dataSection, &config.Data)
	}
	if serverSection, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(serverSection, &config.Server)
	}
	if corpusSection, ok := utils.ExtractSection(tempConfig, "corpus"); ok {
		extractCorpusConfig(corpusSection, &config.Corpus)
	}
	if cliSection, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(cliSection, &config.CLI)
	}
	return config, nil
}

func extractDataConfig(data map[string]any, dc *DataConfig) {
	if val, ok := utils.ExtractString(data, "vocab"); ok {
		dc.Vocab = val
	}
	if val, ok := utils.ExtractString(data, "corpus"); ok {
		dc.Corpus = val
	}
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "max_input"); ok {
		server.MaxInput = val
	}
	if val, ok := utils.ExtractInt64(data, "max_results"); ok {
		server.MaxResults = val
	}
}

func extractCorpusConfig(data map[string]any, cc *CorpusConfig) {
	if val, ok := utils.ExtractInt64(data, "min_sequence_len"); ok {
		cc.MinSequenceLen = val
	}
	if val, ok := utils.ExtractInt64(data, "top_k"); ok {
		cc.TopK = val
	}
	if val, ok := utils.ExtractInt64(data, "min_count"); ok {
		cc.MinCount = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractString(data, "mode"); ok {
		cli.Mode = val
	}
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
