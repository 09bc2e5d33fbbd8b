package cli

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/zamm-dev/zamm-select/internal/cli/interactive/common"
)

func TestTruncateLabel(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  string
	}{
		{name: "short", label: "Option 1", want: "Option 1"},
		{name: "exact", label: strings.Repeat("a", 10), want: strings.Repeat("a", 10)},
		{name: "ascii", label: strings.Repeat("a", 12), want: strings.Repeat("a", 7) + "..."},
		{name: "multibyte", label: strings.Repeat("é", 12), want: strings.Repeat("é", 7) + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateLabel(tt.label, 10)
			if got != tt.want {
				t.Errorf("truncateLabel(%q) = %q, want %q", tt.label, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncateLabel(%q) produced invalid UTF-8: %q", tt.label, got)
			}
		})
	}
}

func TestOptionTableKeepsMultibyteLabelsIntact(t *testing.T) {
	var out bytes.Buffer
	label := strings.Repeat("日本", 30)
	app := newTestApp(t)
	if err := app.outputOptionTable(&out, []*common.Option{common.NewOption(label, "jp")}); err != nil {
		t.Fatalf("outputOptionTable failed: %v", err)
	}
	if !utf8.Valid(out.Bytes()) {
		t.Fatalf("Table output is not valid UTF-8: %q", out.String())
	}
	if !strings.Contains(out.String(), strings.Repeat("日本", 23)+"日...") {
		t.Errorf("Expected label cut to %d runes, got: %q", maxLabelWidth, out.String())
	}
}
