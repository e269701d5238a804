package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewWithWriter(t *testing.T) {
	tests := []struct {
		level     string
		wantDebug bool
		wantWarn  bool
	}{
		{"debug", true, true},
		{"info", false, true},
		{"warn", false, true},
		{"error", false, false},
		{"WARN", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			l, err := NewWithWriter(tt.level, &buf)
			if err != nil {
				t.Fatalf("NewWithWriter(%q) error = %v", tt.level, err)
			}
			l.Debug("planning")
			l.Warn("slow request")
			_ = l.Sync()

			out := buf.String()
			if got := strings.Contains(out, "planning"); got != tt.wantDebug {
				t.Errorf("debug record written = %v, want %v; output %q", got, tt.wantDebug, out)
			}
			if got := strings.Contains(out, "slow request"); got != tt.wantWarn {
				t.Errorf("warn record written = %v, want %v; output %q", got, tt.wantWarn, out)
			}
		})
	}
}

func TestNewWithWriter_InvalidLevel(t *testing.T) {
	if _, err := NewWithWriter("loud", &bytes.Buffer{}); err == nil {
		t.Error("NewWithWriter(\"loud\") should fail")
	}
}

func TestNew(t *testing.T) {
	l, err := New("info")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if l == nil {
		t.Fatal("New() returned nil logger")
	}
}
