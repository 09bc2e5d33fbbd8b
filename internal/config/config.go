package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"github.com/zamm-dev/zamm-select/internal/models"
)

const (
	appDirName = ".selectdemo"
	envPrefix  = "SELECTDEMO"
)

// Config holds all configuration for the application
type Config struct {
	Options OptionsConfig `mapstructure:"options"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// OptionsConfig holds where the selectable options come from
type OptionsConfig struct {
	File string `mapstructure:"file"` // empty means the built-in Option 1..5
}

// UIConfig holds rendering configuration
type UIConfig struct {
	Width       int    `mapstructure:"width"`
	Placeholder string `mapstructure:"placeholder"`
	Color       string `mapstructure:"color"` // auto or never
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Load loads configuration from file and environment variables
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	dir, err := appDir()
	if err != nil {
		return nil, err
	}
	v.AddConfigPath(dir)
	v.AddConfigPath(".")

	setDefaults(v, dir)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if configPath := os.Getenv(envPrefix + "_CONFIG_PATH"); configPath != "" {
		v.SetConfigFile(configPath)
	}

	if err := v.ReadInConfig(); err != nil {
		// Config file not found is OK, we'll use defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, models.NewSelectErrorWithCause(models.ErrTypeSystem, "failed to read config file", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, models.NewSelectErrorWithCause(models.ErrTypeSystem, "failed to unmarshal config", err)
	}

	// Apply environment variable overrides
	if optionsFile := os.Getenv(envPrefix + "_OPTIONS_FILE"); optionsFile != "" {
		config.Options.File = optionsFile
	}
	if logLevel := os.Getenv(envPrefix + "_LOG_LEVEL"); logLevel != "" {
		config.Logging.Level = logLevel
	}
	if os.Getenv("NO_COLOR") != "" || os.Getenv(envPrefix+"_NO_COLOR") != "" {
		config.UI.Color = "never"
	}

	if err := validate(&config); err != nil {
		return nil, err
	}
	expandPaths(&config)
	return &config, nil
}

func appDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", models.NewSelectErrorWithCause(models.ErrTypeSystem, "failed to get user home directory", err)
	}
	return filepath.Join(homeDir, appDirName), nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper, dir string) {
	v.SetDefault("options.file", "")

	v.SetDefault("ui.width", 30)
	v.SetDefault("ui.placeholder", "")
	v.SetDefault("ui.color", "auto")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.file", filepath.Join(dir, "logs", "selectdemo.log"))
}

func validate(config *Config) error {
	if config.UI.Width < 10 {
		return models.NewSelectError(models.ErrTypeValidation, "ui.width must be at least 10").
			WithDetails(fmt.Sprintf("got %d", config.UI.Width))
	}
	switch config.UI.Color {
	case "auto", "never":
	default:
		return models.NewSelectError(models.ErrTypeValidation, "ui.color must be auto or never").
			WithDetails(fmt.Sprintf("got %q", config.UI.Color))
	}
	return nil
}

// expandPaths expands ~ and relative paths in configuration
func expandPaths(config *Config) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}
	config.Options.File = expandPath(config.Options.File, homeDir)
	config.Logging.File = expandPath(config.Logging.File, homeDir)
}

// expandPath expands ~ to home directory and resolves relative paths
func expandPath(path, homeDir string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' && homeDir != "" {
		if len(path) == 1 {
			return homeDir
		}
		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}
	}

	if !filepath.IsAbs(path) {
		if absPath, err := filepath.Abs(path); err == nil {
			return absPath
		}
	}

	return path
}

// WriteDefaultConfig writes a default configuration file and returns its path
func WriteDefaultConfig() (string, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(configPath); err == nil {
		return configPath, nil // Config already exists
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return "", models.NewSelectErrorWithCause(models.ErrTypeSystem, fmt.Sprintf("failed to create config directory: %s", filepath.Dir(configPath)), err)
	}

	configContent := `options:
  file: ""

ui:
  width: 30
  placeholder: ""
  color: auto

logging:
  level: info
  file: ~/` + appDirName + `/logs/selectdemo.log
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		return "", models.NewSelectErrorWithCause(models.ErrTypeSystem, fmt.Sprintf("failed to write config file: %s", configPath), err)
	}
	return configPath, nil
}

// GetConfigPath returns the path to the configuration file
func GetConfigPath() (string, error) {
	if configPath := os.Getenv(envPrefix + "_CONFIG_PATH"); configPath != "" {
		return configPath, nil
	}
	dir, err := appDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}
