package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{" warn ", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestWithWorkspaceID_AddsField(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	ctx := WithContext(context.Background(), logger)

	ctx = WithWorkspaceID(ctx, "ws-1")
	ctx = WithPaneID(ctx, "p-1")
	FromContext(ctx).Info().Msg("hello")

	assert.Contains(t, buf.String(), `"workspace_id":"ws-1"`)
	assert.Contains(t, buf.String(), `"pane_id":"p-1"`)
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "tilemux.log")
	cfg := DefaultConfig()
	cfg.Format = "json"
	cfg.File = path

	logger, closer, err := New(cfg)
	require.NoError(t, err)
	logger.Info().Str("k", "v").Msg("to file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"k":"v"`)
}

func TestLogRotator_RotatesWhenFull(t *testing.T) {
	dir := t.TempDir()
	r, err := NewLogRotator(dir, "test.log", 1, 2, 0, false)
	require.NoError(t, err)
	r.maxSize = 16

	_, err = r.Write([]byte("0123456789\n"))
	require.NoError(t, err)
	_, err = r.Write([]byte("0123456789\n"))
	require.NoError(t, err)
	require.NoError(t, r.Close())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestLogRotator_KeepsMaxBackupsCompressed(t *testing.T) {
	dir := t.TempDir()
	r, err := NewLogRotator(dir, "test.log", 1, 2, 0, true)
	require.NoError(t, err)
	r.maxSize = 8
	tick := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	r.now = func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}

	for i := 0; i < 5; i++ {
		_, err = r.Write([]byte("abcdefg\n"))
		require.NoError(t, err)
	}
	require.NoError(t, r.Close())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var backups []string
	for _, e := range entries {
		if e.Name() != "test.log" {
			backups = append(backups, e.Name())
		}
	}
	require.Len(t, backups, 2)
	for _, name := range backups {
		assert.True(t, strings.HasSuffix(name, ".gz"), name)
	}
	assert.Contains(t, backups, "test.log.20260102T030409.000000000.gz")
}
