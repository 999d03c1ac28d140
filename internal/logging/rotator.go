package logging

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"
)

const (
	logDirPerm  = 0o755
	logFilePerm = 0o600

	// backupTimeFormat sorts lexically and stays unique across fast rotations.
	backupTimeFormat = "20060102T150405.000000000"
)

// LogRotator is an io.Writer over a log file that rolls over by size,
// keeping a bounded number of backups, optionally gzipped.
//
// The playground owns the terminal, so rotation problems cannot be logged
// through the logger itself. They go to stderr.
type LogRotator struct {
	mu         sync.Mutex
	path       string
	maxSize    int64
	maxAge     time.Duration
	maxBackups int
	compress   bool
	now        func() time.Time

	file *os.File
	size int64
}

// NewLogRotator opens (or creates) baseDir/baseName for appending.
// A non-positive maxSizeMB means 10MB; zero maxBackups or maxAgeDays keeps
// backups without that bound.
func NewLogRotator(baseDir, baseName string, maxSizeMB, maxBackups, maxAgeDays int, compress bool) (*LogRotator, error) {
	if err := os.MkdirAll(baseDir, logDirPerm); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	if maxSizeMB <= 0 {
		maxSizeMB = 10
	}
	r := &LogRotator{
		path:       filepath.Join(baseDir, baseName),
		maxSize:    int64(maxSizeMB) << 20,
		maxAge:     time.Duration(maxAgeDays) * 24 * time.Hour,
		maxBackups: maxBackups,
		compress:   compress,
		now:        time.Now,
	}
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *LogRotator) open() error {
	f, err := os.OpenFile(r.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to stat log file: %w", err)
	}
	r.file, r.size = f, info.Size()
	return nil
}

// Write appends p, rotating first when p would push the file past maxSize.
// A single write larger than maxSize still lands in one file.
func (r *LogRotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		if err := r.open(); err != nil {
			return 0, err
		}
	}
	if r.size > 0 && r.size+int64(len(p)) > r.maxSize {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	return n, err
}

func (r *LogRotator) rotate() error {
	if err := r.file.Close(); err != nil {
		warnf("failed to close log file: %v", err)
	}
	r.file = nil

	backup := r.path + "." + r.now().Format(backupTimeFormat)
	if err := os.Rename(r.path, backup); err != nil {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}
	if r.compress {
		if err := gzipFile(backup); err != nil {
			warnf("failed to compress %s: %v", backup, err)
		}
	}
	r.prune()
	return r.open()
}

// gzipFile replaces path with path.gz.
func gzipFile(path string) (err error) {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(path+".gz", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, logFilePerm)
	if err != nil {
		return err
	}
	zw := gzip.NewWriter(out)
	_, err = io.Copy(zw, in)
	err = errors.Join(err, zw.Close(), out.Close())
	if err != nil {
		_ = os.Remove(path + ".gz")
		return err
	}
	return os.Remove(path)
}

// prune drops backups older than maxAge, then the oldest beyond maxBackups.
func (r *LogRotator) prune() {
	dir, prefix := filepath.Dir(r.path), filepath.Base(r.path)+"."
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	type backup struct {
		name    string
		modTime time.Time
	}
	var backups []backup
	cutoff := r.now().Add(-r.maxAge)
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), prefix) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if r.maxAge > 0 && info.ModTime().Before(cutoff) {
			removeBackup(filepath.Join(dir, e.Name()))
			continue
		}
		backups = append(backups, backup{e.Name(), info.ModTime()})
	}

	if r.maxBackups <= 0 || len(backups) <= r.maxBackups {
		return
	}
	// Names embed the rotation time, so they order oldest first.
	slices.SortFunc(backups, func(a, b backup) int { return strings.Compare(a.name, b.name) })
	for _, b := range backups[:len(backups)-r.maxBackups] {
		removeBackup(filepath.Join(dir, b.name))
	}
}

func removeBackup(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		warnf("failed to remove old log file: %v", err)
	}
}

func warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "tilemux: log rotation: "+format+"\n", args...)
}

// Close closes the current log file.
func (r *LogRotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}
