package logging

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// LogConfig holds configuration for structured log output.
type LogConfig struct {
	Format        string // human (default), text, json
	Level         string // DEBUG, INFO (default), WARN, ERROR
	Output        string // "-" or empty for stderr, "none", "auto", or a file path
	Dir           string // base directory for "auto" and relative paths
	RetentionDays int    // age limit for generated files; 0 means DefaultRetentionDays
}

const (
	// FilePrefix is the name prefix of generated log files.
	FilePrefix = "kubeconfigure-"
	// DefaultRetentionDays applies when LogConfig.RetentionDays is zero.
	DefaultRetentionDays = 7
)

// Output is the destination of log records. Path is set only for file outputs.
type Output struct {
	Path string
	w    io.Writer
	f    *os.File
}

// OpenOutput resolves cfg.Output to a writer, creating the log file and its
// directory when the output is a file.
func OpenOutput(cfg *LogConfig) (*Output, error) {
	var path string
	switch out := cfg.Output; strings.ToLower(out) {
	case "", "-":
		return &Output{w: os.Stderr}, nil
	case "none":
		return &Output{w: io.Discard}, nil
	case "auto":
		path = filepath.Join(cfg.Dir, AutoFileName(time.Now()))
	default:
		path = out
		if !filepath.IsAbs(path) {
			path = filepath.Join(cfg.Dir, path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return &Output{Path: path, w: f, f: f}, nil
}

func (o *Output) Write(p []byte) (int, error) { return o.w.Write(p) }

// Close closes the underlying file, if any. It is safe to call more than once.
func (o *Output) Close() error {
	if o == nil || o.f == nil {
		return nil
	}
	err := o.f.Close()
	o.f = nil
	if errors.Is(err, os.ErrClosed) {
		return nil
	}
	return err
}

// AutoFileName names a generated log file after t in UTC, with millisecond
// resolution: kubeconfigure-YYYYMMDD-HHMMSS-mmm.log.
func AutoFileName(t time.Time) string {
	t = t.UTC()
	return FilePrefix + t.Format("20060102-150405") + fmt.Sprintf("-%03d.log", t.Nanosecond()/int(time.Millisecond))
}

// PruneLogFiles removes generated log files in dir whose modification time is
// older than retentionDays and returns how many were removed. Zero selects
// DefaultRetentionDays and a negative value disables pruning. A missing dir
// is not an error and files that cannot be removed are skipped.
func PruneLogFiles(dir string, retentionDays int) (int, error) {
	switch {
	case retentionDays < 0:
		return 0, nil
	case retentionDays == 0:
		retentionDays = DefaultRetentionDays
	}

	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read log directory: %w", err)
	}

	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	removed := 0
	for _, e := range entries {
		name := e.Name()
		if !e.Type().IsRegular() || !strings.HasPrefix(name, FilePrefix) || filepath.Ext(name) != ".log" {
			continue
		}
		info, err := e.Info()
		if err != nil || !info.ModTime().Before(cutoff) {
			continue
		}
		if os.Remove(filepath.Join(dir, name)) == nil {
			removed++
		}
	}
	return removed, nil
}
