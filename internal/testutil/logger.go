package testutil

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

// NewBufferLogger returns a debug-level text logger backed by a buffer.
func NewBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, &buf
}

// NewJSONBufferLogger mirrors the service's JSON log format for field assertions.
func NewJSONBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, &buf
}

// LogEntries decodes one JSON object per buffered log line.
func LogEntries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	sc := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
	for sc.Scan() {
		var entry map[string]any
		if err := json.Unmarshal(sc.Bytes(), &entry); err != nil {
			t.Fatalf("decode log line %q: %v", sc.Text(), err)
		}
		entries = append(entries, entry)
	}
	return entries
}
