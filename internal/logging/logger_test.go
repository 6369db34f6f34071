package logging

import (
	"testing"

	"github.com/go-logr/logr"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zapcore.Level
		wantErr bool
	}{
		{"", zapcore.InfoLevel, false},
		{"debug", zapcore.DebugLevel, false},
		{" WARN ", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"chatty", zapcore.InfoLevel, true},
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

func TestNewFallsBackToDefault(t *testing.T) {
	l := New(logr.Logger{})
	if l.Logr().GetSink() == nil {
		t.Fatal("expected default sink")
	}
}

func TestNewLogrDebugEnablesVerbose(t *testing.T) {
	base, err := NewLogr("debug")
	if err != nil {
		t.Fatalf("NewLogr: %v", err)
	}
	if !base.V(1).Enabled() {
		t.Fatal("expected V(1) enabled at debug level")
	}
	info, err := NewLogr("info")
	if err != nil {
		t.Fatalf("NewLogr: %v", err)
	}
	if info.V(1).Enabled() {
		t.Fatal("expected V(1) disabled at info level")
	}
}
