package config

// Config represents the complete configuration for tilemux.
type Config struct {
	Database  DatabaseConfig  `mapstructure:"database" toml:"database" json:"database"`
	Logging   LoggingConfig   `mapstructure:"logging" toml:"logging" json:"logging"`
	Workspace WorkspaceConfig `mapstructure:"workspace" toml:"workspace" json:"workspace"`
	// Keybindings maps an action name (e.g. "split-right") to the keys that trigger it.
	Keybindings map[string][]string `mapstructure:"keybindings" toml:"keybindings" json:"keybindings"`
	Telemetry   TelemetryConfig     `mapstructure:"telemetry" toml:"telemetry" json:"telemetry"`
}

// DatabaseConfig holds the session ledger location.
type DatabaseConfig struct {
	// Path to the SQLite file. Empty means $XDG_DATA_HOME/tilemux/tilemux.sqlite.
	Path string `mapstructure:"path" toml:"path" json:"path,omitempty"`
}

// LoggingConfig controls the zerolog output.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	// File is the log file name. The TUI owns the terminal, so logs go to
	// $XDG_STATE_HOME/tilemux/logs by default.
	File       string `mapstructure:"file" toml:"file" json:"file,omitempty"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=1"`
	MaxBackups int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0"`
	MaxAgeDays int    `mapstructure:"max_age_days" toml:"max_age_days" json:"max_age_days" jsonschema:"minimum=0"`
	Compress   bool   `mapstructure:"compress" toml:"compress" json:"compress"`
}

// WorkspaceConfig holds pane layout behavior.
type WorkspaceConfig struct {
	Resize ResizeConfig `mapstructure:"resize" toml:"resize" json:"resize"`
}

// ResizeConfig controls resize steps, both values are percentages of the container.
type ResizeConfig struct {
	StepPercent    float64 `mapstructure:"step_percent" toml:"step_percent" json:"step_percent" jsonschema:"exclusiveMinimum=0,maximum=100"`
	MinPanePercent float64 `mapstructure:"min_pane_percent" toml:"min_pane_percent" json:"min_pane_percent" jsonschema:"exclusiveMinimum=0,maximum=50"`
}

// TelemetryConfig configures the OTLP exporters. An empty endpoint disables export.
type TelemetryConfig struct {
	Endpoint string `mapstructure:"endpoint" toml:"endpoint" json:"endpoint,omitempty"`
	// Headers are sent with every export request, e.g. an authorization token.
	Headers map[string]string `mapstructure:"headers" toml:"headers" json:"headers,omitempty"`
}
