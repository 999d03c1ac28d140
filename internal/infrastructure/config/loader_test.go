package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetDefaults_RegistersEveryAction(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, defaultResizeStepPercent, mgr.viper.GetFloat64("workspace.resize.step_percent"))
	assert.Equal(t, "info", mgr.viper.GetString("logging.level"))
	for _, action := range KnownActions {
		assert.NotEmpty(t, mgr.viper.GetStringSlice("keybindings."+action), action)
	}
}

func TestLoad_CreatesDefaultConfigAndSchema(t *testing.T) {
	root := isolateXDG(t)

	mgr := loadManager(t)
	cfg := mgr.Get()
	require.NotNil(t, cfg)

	configFile := filepath.Join(root, "config", appName, configName)
	assert.FileExists(t, configFile)
	assert.FileExists(t, filepath.Join(root, "config", appName, schemaName))
	assert.Equal(t, configFile, mgr.GetConfigFile())

	assert.Equal(t, DefaultConfig().Workspace, cfg.Workspace)
	assert.Equal(t, DefaultKeybindings(), cfg.Keybindings)
	assert.Equal(t, filepath.Join(root, "data", appName, databaseName), cfg.Database.Path)
	assert.DirExists(t, filepath.Join(root, "state", appName, "logs"))
}

func TestLoad_FileOverridesKeepRemainingDefaults(t *testing.T) {
	root := isolateXDG(t)
	writeConfig(t, root, `
[logging]
level = "DEBUG"
format = "console"

[workspace.resize]
step_percent = 10.0

[keybindings]
split-right = ["ctrl+s"]
`)

	cfg := loadManager(t).Get()

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.InDelta(t, 10.0, cfg.Workspace.Resize.StepPercent, 1e-9)
	assert.InDelta(t, defaultResizeMinPanePercent, cfg.Workspace.Resize.MinPanePercent, 1e-9)
	assert.Equal(t, []string{"ctrl+s"}, cfg.Keybindings["split-right"])
	assert.Equal(t, DefaultKeybindings()["split-left"], cfg.Keybindings["split-left"])
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	root := isolateXDG(t)
	writeConfig(t, root, "[logging]\nlevel = \"info\"\n")
	t.Setenv("TILEMUX_LOG_LEVEL", "warn")
	t.Setenv("TILEMUX_DATABASE_PATH", "/tmp/ledger.sqlite")

	cfg := loadManager(t).Get()

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "/tmp/ledger.sqlite", cfg.Database.Path)
}

func TestLoad_InvalidValuesAreCollected(t *testing.T) {
	root := isolateXDG(t)
	writeConfig(t, root, `
[logging]
level = "loud"

[workspace.resize]
step_percent = -1.0
`)

	mgr, err := NewManager()
	require.NoError(t, err)
	err = mgr.Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
	assert.Contains(t, err.Error(), "workspace.resize.step_percent")
	assert.Nil(t, mgr.Get())
}

func TestLoad_MalformedTOML(t *testing.T) {
	root := isolateXDG(t)
	writeConfig(t, root, "[logging\nlevel = ")

	mgr, err := NewManager()
	require.NoError(t, err)
	err = mgr.Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestGet_ReturnsCopy(t *testing.T) {
	isolateXDG(t)
	mgr := loadManager(t)

	cfg := mgr.Get()
	cfg.Workspace.Resize.StepPercent = 42

	assert.InDelta(t, defaultResizeStepPercent, mgr.Get().Workspace.Resize.StepPercent, 1e-9)
}

func TestReload_NotifiesCallbacks(t *testing.T) {
	root := isolateXDG(t)
	path := writeConfig(t, root, "[workspace.resize]\nstep_percent = 5.0\n")
	mgr := loadManager(t)

	var got []float64
	mgr.OnConfigChange(func(c *Config) {
		got = append(got, c.Workspace.Resize.StepPercent)
	})

	require.NoError(t, os.WriteFile(path, []byte("[workspace.resize]\nstep_percent = 20.0\n"), filePerm))
	require.NoError(t, mgr.Reload())

	assert.Equal(t, []float64{20}, got)
	assert.InDelta(t, 20.0, mgr.Get().Workspace.Resize.StepPercent, 1e-9)
}

func TestReload_InvalidChangeKeepsPrevious(t *testing.T) {
	root := isolateXDG(t)
	path := writeConfig(t, root, "[workspace.resize]\nmin_pane_percent = 10.0\n")
	mgr := loadManager(t)

	called := false
	mgr.OnConfigChange(func(*Config) { called = true })

	require.NoError(t, os.WriteFile(path, []byte("[workspace.resize]\nmin_pane_percent = 90.0\n"), filePerm))
	require.Error(t, mgr.Reload())

	assert.False(t, called)
	assert.InDelta(t, 10.0, mgr.Get().Workspace.Resize.MinPanePercent, 1e-9)
}

func TestWatch_RequiresLoad(t *testing.T) {
	isolateXDG(t)
	mgr, err := NewManager()
	require.NoError(t, err)

	assert.Error(t, mgr.Watch())
}

func TestLoggerConfig_ResolvesRelativeFile(t *testing.T) {
	root := isolateXDG(t)
	cfg := DefaultConfig()
	cfg.Logging.Level = "debug"

	lc, err := cfg.LoggerConfig()
	require.NoError(t, err)

	assert.Equal(t, zerolog.DebugLevel, lc.Level)
	assert.Equal(t, filepath.Join(root, "state", appName, "logs", defaultLogFile), lc.File)
	assert.True(t, lc.Compress)

	cfg.Logging.File = "/var/log/tilemux.log"
	lc, err = cfg.LoggerConfig()
	require.NoError(t, err)
	assert.Equal(t, "/var/log/tilemux.log", lc.File)
}

func TestGetXDGDirs_DevMode(t *testing.T) {
	t.Setenv("ENV", "dev")
	cwd, err := os.Getwd()
	require.NoError(t, err)

	dirs, err := GetXDGDirs()
	require.NoError(t, err)

	want := filepath.Join(cwd, ".dev", appName)
	assert.Equal(t, want, dirs.ConfigHome)
	assert.Equal(t, want, dirs.DataHome)
	assert.Equal(t, want, dirs.StateHome)
}

func TestSchema_DescribesSections(t *testing.T) {
	data, err := Schema()
	require.NoError(t, err)

	s := string(data)
	for _, key := range []string{`"logging"`, `"workspace"`, `"keybindings"`, `"telemetry"`, `"step_percent"`} {
		assert.Contains(t, s, key)
	}
}
