package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zamm-dev/zamm-select/internal/config"
	"github.com/zamm-dev/zamm-select/internal/models"
	"github.com/zamm-dev/zamm-select/internal/options"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	app, err := newAppWithConfig(&config.Config{
		UI:      config.UIConfig{Width: 30, Color: "never"},
		Logging: config.LoggingConfig{Level: "debug"},
	})
	if err != nil {
		t.Fatalf("newAppWithConfig() failed: %v", err)
	}
	return app
}

func execute(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := app.CreateRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestListCommandDefaultOptions(t *testing.T) {
	out, err := execute(t, newTestApp(t), "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 6 {
		t.Fatalf("Expected header and 5 options, got %d: %q", len(lines), out)
	}
	if strings.Fields(lines[0])[1] != "LABEL" {
		t.Errorf("Unexpected header: %q", lines[0])
	}
	if got := strings.Fields(lines[1]); strings.Join(got, " ") != "0 Option 1 1" {
		t.Errorf("Unexpected first option: %q", lines[1])
	}
}

func TestListCommandOptionsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fruit.yaml")
	doc := "options:\n  - label: Apple\n    value: a\n  - label: Pear\n    value: 2\n"
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatalf("Failed to write options file: %v", err)
	}

	out, err := execute(t, newTestApp(t), "list", "--options", path, "--json")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	var got []optionOutput
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("Failed to decode output %q: %v", out, err)
	}
	if len(got) != 2 || got[0].Label != "Apple" || got[0].Value != "a" || got[1].Label != "Pear" || got[1].Value != float64(2) {
		t.Errorf("Unexpected options: %+v", got)
	}
}

func TestListCommandMissingOptionsFile(t *testing.T) {
	_, err := execute(t, newTestApp(t), "list", "--options", filepath.Join(t.TempDir(), "nope.yaml"))
	if !models.IsType(err, models.ErrTypeNotFound) {
		t.Fatalf("Expected not_found error, got: %v", err)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, newTestApp(t), "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if out != "selectdemo dev\n" {
		t.Errorf("Unexpected output: %q", out)
	}
}

func TestInitConfigCommand(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SELECTDEMO_CONFIG_PATH", "")

	out, err := execute(t, newTestApp(t), "init-config")
	if err != nil {
		t.Fatalf("init-config failed: %v", err)
	}
	want := filepath.Join(home, ".selectdemo", "config.yaml")
	if !strings.Contains(out, want) {
		t.Errorf("Expected output to mention %s, got: %q", want, out)
	}
	if _, err := os.Stat(want); err != nil {
		t.Errorf("Expected config file to exist: %v", err)
	}

	sample := filepath.Join(home, ".selectdemo", "options.yaml")
	if !strings.Contains(out, sample) {
		t.Errorf("Expected output to mention %s, got: %q", sample, out)
	}
	opts, err := options.LoadFile(sample)
	if err != nil {
		t.Fatalf("Sample options file did not load: %v", err)
	}
	if len(opts) != 5 || opts[0].Label != "Option 1" {
		t.Errorf("Unexpected sample options: %v", opts)
	}

	// an existing options file is left alone
	if err := os.WriteFile(sample, []byte("options:\n  - label: Kept\n"), 0644); err != nil {
		t.Fatalf("Failed to overwrite sample: %v", err)
	}
	out, err = execute(t, newTestApp(t), "init-config")
	if err != nil {
		t.Fatalf("second init-config failed: %v", err)
	}
	if strings.Contains(out, "Sample options") {
		t.Errorf("Expected sample options to be kept, got: %q", out)
	}
	opts, err = options.LoadFile(sample)
	if err != nil || len(opts) != 1 || opts[0].Label != "Kept" {
		t.Errorf("Sample options were rewritten: %v, %v", opts, err)
	}
}
