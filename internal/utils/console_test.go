package utils

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
)

// captureOutput redirects Stdout and Stderr for the duration of a test
func captureOutput(t *testing.T) (stdout, stderr *bytes.Buffer) {
	t.Helper()
	stdout, stderr = &bytes.Buffer{}, &bytes.Buffer{}
	origOut, origErr := Stdout, Stderr
	origDebug, origQuiet, origNoColor := DebugMode, QuietMode, color.NoColor
	Stdout, Stderr = stdout, stderr
	color.NoColor = true
	t.Cleanup(func() {
		Stdout, Stderr = origOut, origErr
		DebugMode, QuietMode, color.NoColor = origDebug, origQuiet, origNoColor
	})
	return stdout, stderr
}

func TestPrintDebugGated(t *testing.T) {
	_, stderr := captureOutput(t)

	DebugMode = false
	PrintDebug("hidden %d", 1)
	if stderr.Len() != 0 {
		t.Fatalf("debug output written while DebugMode is off: %q", stderr.String())
	}

	DebugMode = true
	PrintDebug("ALPS apid: %d", 123456)
	got := stderr.String()
	if !strings.HasPrefix(got, "[ALPS][DBG] ") {
		t.Errorf("unexpected debug prefix: %q", got)
	}
	if !strings.Contains(got, "ALPS apid: 123456\n") {
		t.Errorf("debug message missing: %q", got)
	}
}

func TestQuietModeKeepsWarnings(t *testing.T) {
	stdout, stderr := captureOutput(t)
	QuietMode = true

	PrintMessage("message")
	PrintHint("hint")
	if stdout.Len() != 0 || stderr.Len() != 0 {
		t.Fatalf("quiet mode leaked output: stdout=%q stderr=%q", stdout.String(), stderr.String())
	}

	PrintWarning("placement query failed")
	PrintError("fatal")
	got := stderr.String()
	if !strings.Contains(got, "[ALPS][WARN] placement query failed") {
		t.Errorf("warning missing: %q", got)
	}
	if !strings.Contains(got, "[ALPS][ERR]  fatal") {
		t.Errorf("error missing: %q", got)
	}
}

func TestPrintMessage(t *testing.T) {
	stdout, stderr := captureOutput(t)

	PrintMessage("Found %d nodes", 3)
	if got := stdout.String(); got != "[ALPS] Found 3 nodes\n" {
		t.Errorf("PrintMessage wrote %q", got)
	}
	if stderr.Len() != 0 {
		t.Errorf("PrintMessage wrote to stderr: %q", stderr.String())
	}
}

func TestStyleNumber(t *testing.T) {
	captureOutput(t)
	if got := StyleNumber(42); got != "42" {
		t.Errorf("StyleNumber(42) = %q", got)
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(file, []byte("output: json\n"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if !FileExists(file) {
		t.Errorf("FileExists(%q) = false", file)
	}
	if FileExists(dir) {
		t.Errorf("FileExists on a directory returned true")
	}
	if FileExists(filepath.Join(dir, "missing")) {
		t.Errorf("FileExists on a missing path returned true")
	}
}
