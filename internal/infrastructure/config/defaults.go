package config

// Default configuration constants
const (
	// Logging defaults
	defaultLogLevel      = "info"
	defaultLogFormat     = "json"
	defaultLogFile       = "tilemux.log"
	defaultLogMaxSizeMB  = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAgeDays = 7

	// Workspace defaults
	defaultResizeStepPercent    = 5.0
	defaultResizeMinPanePercent = 5.0
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:      defaultLogLevel,
			Format:     defaultLogFormat,
			File:       defaultLogFile,
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
			MaxAgeDays: defaultLogMaxAgeDays,
			Compress:   true,
		},
		Workspace: WorkspaceConfig{
			Resize: ResizeConfig{
				StepPercent:    defaultResizeStepPercent,
				MinPanePercent: defaultResizeMinPanePercent,
			},
		},
		Keybindings: DefaultKeybindings(),
		Telemetry: TelemetryConfig{
			Headers: map[string]string{},
		},
	}
}

// DefaultKeybindings returns the built-in action to key mapping.
func DefaultKeybindings() map[string][]string {
	return map[string][]string{
		"split-left":   {"alt+H"},
		"split-right":  {"alt+L"},
		"split-top":    {"alt+K"},
		"split-bottom": {"alt+J"},

		"pane-nav-left":     {"alt+h", "alt+left"},
		"pane-nav-right":    {"alt+l", "alt+right"},
		"pane-nav-up":       {"alt+k", "alt+up"},
		"pane-nav-down":     {"alt+j", "alt+down"},
		"pane-nav-previous": {"alt+p", "shift+tab"},
		"pane-nav-next":     {"alt+n", "tab"},
		"pane-nav-1":        {"alt+1"},
		"pane-nav-2":        {"alt+2"},
		"pane-nav-3":        {"alt+3"},
		"pane-nav-4":        {"alt+4"},
		"pane-nav-5":        {"alt+5"},
		"pane-nav-6":        {"alt+6"},
		"pane-nav-7":        {"alt+7"},
		"pane-nav-8":        {"alt+8"},
		"pane-nav-9":        {"alt+9"},

		"pane-maximize": {"alt+z"},
		"close-pane":    {"alt+x"},

		"pane-increase-vertical":   {"ctrl+down"},
		"pane-decrease-vertical":   {"ctrl+up"},
		"pane-increase-horizontal": {"ctrl+right"},
		"pane-decrease-horizontal": {"ctrl+left"},
	}
}
