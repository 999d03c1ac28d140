package config

import (
	"fmt"
	"net/url"
	"strings"
)

// KnownActions lists the action names accepted in the keybindings section.
// It mirrors the input package's action set; config is loaded before the UI
// packages so the names are repeated here.
var KnownActions = []string{
	"split-left", "split-right", "split-top", "split-bottom",
	"pane-nav-left", "pane-nav-right", "pane-nav-up", "pane-nav-down",
	"pane-nav-previous", "pane-nav-next",
	"pane-nav-1", "pane-nav-2", "pane-nav-3", "pane-nav-4", "pane-nav-5",
	"pane-nav-6", "pane-nav-7", "pane-nav-8", "pane-nav-9",
	"pane-maximize", "close-pane",
	"pane-increase-vertical", "pane-decrease-vertical",
	"pane-increase-horizontal", "pane-decrease-horizontal",
}

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateResize(config)...)
	validationErrors = append(validationErrors, validateKeybindings(config)...)
	validationErrors = append(validationErrors, validateTelemetry(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "disabled":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error, disabled (got %q)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be console or json (got %q)", config.Logging.Format))
	}
	if config.Logging.MaxSizeMB < 1 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be at least 1")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	if config.Logging.MaxAgeDays < 0 {
		validationErrors = append(validationErrors, "logging.max_age_days must be non-negative")
	}
	return validationErrors
}

func validateResize(config *Config) []string {
	var validationErrors []string
	resize := config.Workspace.Resize
	if resize.StepPercent <= 0 || resize.StepPercent > 100 {
		validationErrors = append(validationErrors, "workspace.resize.step_percent must be between 0 (exclusive) and 100")
	}
	if resize.MinPanePercent <= 0 || resize.MinPanePercent > 50 {
		validationErrors = append(validationErrors, "workspace.resize.min_pane_percent must be between 0 (exclusive) and 50")
	}
	return validationErrors
}

func validateKeybindings(config *Config) []string {
	known := make(map[string]bool, len(KnownActions))
	for _, a := range KnownActions {
		known[a] = true
	}

	var validationErrors []string
	owner := make(map[string]string)
	for action, keys := range config.Keybindings {
		if !known[action] {
			validationErrors = append(validationErrors, fmt.Sprintf("keybindings: unknown action %q", action))
			continue
		}
		for _, k := range keys {
			if k == "" {
				validationErrors = append(validationErrors, fmt.Sprintf("keybindings.%s: empty key", action))
				continue
			}
			if prev, ok := owner[k]; ok && prev != action {
				validationErrors = append(validationErrors,
					fmt.Sprintf("keybindings: key %q bound to both %s and %s", k, prev, action))
				continue
			}
			owner[k] = action
		}
	}
	return validationErrors
}

func validateTelemetry(config *Config) []string {
	if config.Telemetry.Endpoint == "" {
		return nil
	}
	u, err := url.Parse(config.Telemetry.Endpoint)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return []string{fmt.Sprintf("telemetry.endpoint must be an http(s) URL (got %q)", config.Telemetry.Endpoint)}
	}
	return nil
}
