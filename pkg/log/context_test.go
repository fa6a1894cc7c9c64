package log_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"smart-task-parser/pkg/log"
)

func TestRequestID(t *testing.T) {
	ctx := context.Background()
	if got := log.RequestID(ctx); got != "" {
		t.Errorf("expected empty request id, got %q", got)
	}

	ctx = log.WithRequestID(ctx, "req-1")
	if got := log.RequestID(ctx); got != "req-1" {
		t.Errorf("expected req-1, got %q", got)
	}
}

func TestInit(t *testing.T) {
	cases := []log.ZapConfig{
		{Level: "debug", Mode: "debug", Encoding: log.EncodingConsole, ColorEnabled: true},
		{Level: "info", Mode: log.ModeProduction, Encoding: log.EncodingJSON},
		{Level: "not-a-level", Mode: "debug", Encoding: log.EncodingConsole},
	}
	for _, cfg := range cases {
		l := log.Init(cfg)
		if l == nil {
			t.Fatalf("Init(%+v) returned nil", cfg)
		}
		l.Debugf(log.WithRequestID(context.Background(), "req-2"), "init %s", cfg.Level)
	}
}

func TestInit_OutputCarriesRequestID(t *testing.T) {
	var buf bytes.Buffer
	l := log.Init(log.ZapConfig{Level: "info", Mode: log.ModeProduction, Encoding: log.EncodingJSON, Output: &buf})

	l.Infof(log.WithRequestID(context.Background(), "req-7"), "created %d", 1)
	l.Debug(context.Background(), "below level")

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("expected exactly one JSON entry, got %q: %v", buf.String(), err)
	}
	if entry["request_id"] != "req-7" || entry["msg"] != "created 1" {
		t.Errorf("unexpected entry: %v", entry)
	}
}
