package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/tilemux/internal/logging"
	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)

	// TILEMUX_DATABASE_PATH, TILEMUX_TELEMETRY_ENDPOINT, ...
	v.SetEnvPrefix("TILEMUX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "TILEMUX_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind TILEMUX_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "TILEMUX_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind TILEMUX_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables,
// writing a default file on first run.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.decode()
	if err != nil {
		return err
	}
	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}
	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		return fmt.Errorf("failed to read config file: %w\nCheck the TOML syntax of your config file", err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		configDir, _ := GetConfigDir()
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			configDir,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

// decode turns the current viper state into a validated Config.
// Must be called with m.mu held for write.
func (m *Manager) decode() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := ensureDatabasePath(config); err != nil {
		return nil, err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

func ensureDatabasePath(config *Config) error {
	if config.Database.Path != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.Database.Path = dbPath
	return nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "warning" {
		config.Logging.Level = "warn"
	}
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "" {
		config.Logging.Format = defaultLogFormat
	}

	bindings := make(map[string][]string, len(config.Keybindings))
	for action, keys := range config.Keybindings {
		action = strings.ToLower(strings.TrimSpace(action))
		trimmed := make([]string, 0, len(keys))
		for _, k := range keys {
			trimmed = append(trimmed, strings.TrimSpace(k))
		}
		bindings[action] = trimmed
	}
	config.Keybindings = bindings

	if config.Telemetry.Headers == nil {
		config.Telemetry.Headers = map[string]string{}
	}
	config.Telemetry.Endpoint = strings.TrimSpace(config.Telemetry.Endpoint)
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return nil
	}
	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// createDefaultConfig writes the defaults as TOML along with the JSON schema
// editors can use to validate it.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	m.viper.SetConfigType("toml")
	if err := m.viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	log := logging.NewFromEnv()
	log.Info().Str("file", configFile).Msg("created default configuration file")

	schemaFile := filepath.Join(filepath.Dir(configFile), schemaName)
	if err := WriteSchemaFile(schemaFile); err != nil {
		log.Warn().Err(err).Str("file", schemaFile).Msg("failed to write config schema")
	}
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setLoggingDefaults(defaults)
	m.setWorkspaceDefaults(defaults)
	m.setKeybindingDefaults(defaults)
	m.viper.SetDefault("telemetry.endpoint", defaults.Telemetry.Endpoint)
	// database.path is resolved in ensureDatabasePath so the file never pins
	// a machine specific location.
	m.viper.SetDefault("database.path", "")
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.file", defaults.Logging.File)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age_days", defaults.Logging.MaxAgeDays)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)
}

// setKeybindingDefaults registers one key per action so a config file that
// rebinds a few actions keeps the defaults for the rest.
func (m *Manager) setKeybindingDefaults(defaults *Config) {
	for action, keys := range defaults.Keybindings {
		m.viper.SetDefault("keybindings."+action, keys)
	}
}

func (m *Manager) setWorkspaceDefaults(defaults *Config) {
	m.viper.SetDefault("workspace.resize.step_percent", defaults.Workspace.Resize.StepPercent)
	m.viper.SetDefault("workspace.resize.min_pane_percent", defaults.Workspace.Resize.MinPanePercent)
}

// LoggerConfig converts the logging section into a logging.Config. A relative
// log file name is placed in the XDG log directory.
func (c *Config) LoggerConfig() (logging.Config, error) {
	cfg := logging.DefaultConfig()
	cfg.Level = logging.ParseLevel(c.Logging.Level)
	cfg.Format = c.Logging.Format
	cfg.MaxSizeMB = c.Logging.MaxSizeMB
	cfg.MaxBackups = c.Logging.MaxBackups
	cfg.MaxAgeDays = c.Logging.MaxAgeDays
	cfg.Compress = c.Logging.Compress

	if c.Logging.File == "" {
		return cfg, nil
	}
	if filepath.IsAbs(c.Logging.File) {
		cfg.File = c.Logging.File
		return cfg, nil
	}
	logDir, err := GetLogDir()
	if err != nil {
		return cfg, fmt.Errorf("failed to get log directory: %w", err)
	}
	cfg.File = filepath.Join(logDir, c.Logging.File)
	return cfg, nil
}
