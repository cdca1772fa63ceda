package logging

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "", want: slog.LevelInfo},
		{in: "debug", want: slog.LevelDebug},
		{in: "WARN", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "trace", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewWithWriterFormats(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewWithWriter("text", slog.LevelDebug, &buf)
	if err != nil {
		t.Fatalf("NewWithWriter() error = %v", err)
	}
	l.With("endpointId", "ep1").Debug(context.Background(), "hello")
	if !strings.Contains(buf.String(), "endpointId=ep1") {
		t.Errorf("unexpected output: %s", buf.String())
	}
	if _, err := NewWithWriter("xml", slog.LevelInfo, &buf); err == nil {
		t.Errorf("expected unsupported format error")
	}
}

func TestNewFromConfig(t *testing.T) {
	dir := t.TempDir()
	l, lf, err := NewFromConfig(&LogConfig{Format: "json", Level: "INFO", Output: "out.log", Dir: dir})
	if err != nil {
		t.Fatalf("NewFromConfig() error = %v", err)
	}
	l.Info(context.Background(), "written")
	if err := lf.Close(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "out.log"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"msg":"written"`) {
		t.Errorf("unexpected log file content: %s", data)
	}

	if _, _, err := NewFromConfig(&LogConfig{Level: "loud", Output: "none"}); err == nil {
		t.Errorf("expected invalid level error")
	}
}

func TestFromContextDefault(t *testing.T) {
	if FromContext(context.Background()) == nil {
		t.Fatal("FromContext must return a default logger")
	}
}
