package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerAddsComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Component: ComponentApp,
		Handler:   slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}),
	}).WithComponent(ComponentReporter)

	logger.Debug("due date recorded", FieldCustomer, "Kaio")

	out := buf.String()
	if !strings.Contains(out, "component=reporter") {
		t.Errorf("expected component in output, got %q", out)
	}
	if !strings.Contains(out, "customer=Kaio") {
		t.Errorf("expected customer in output, got %q", out)
	}
	if strings.Count(out, "component=") != 1 {
		t.Errorf("expected a single component attribute, got %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLogFieldsToSlice(t *testing.T) {
	fields := NewFields().WithOperation(OpPrint).WithInvoice("Kaio", 2, 2000).WithLocale("de").WithSource("stdin")
	if got := len(fields.ToSlice()); got != 12 {
		t.Errorf("ToSlice() len = %d, want 12", got)
	}
}
