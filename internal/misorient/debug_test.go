package misorient

import (
	"io"
	"os"
	"strings"
	"testing"
)

// captureStdout returns what f prints to os.Stdout.
func captureStdout(t *testing.T, f func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	stdout := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = stdout }()
	f()
	w.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	return string(out)
}

func TestDebugLogHonorsSwitch(t *testing.T) {
	saved := Debug
	defer func() { Debug = saved }()

	Debug = false
	if out := captureStdout(t, func() { DebugLog("hidden %d", 1) }); out != "" {
		t.Fatalf("printed with Debug off: %q", out)
	}
	Debug = true
	out := captureStdout(t, func() { DebugLog("shown %d", 2) })
	if !strings.HasPrefix(out, "[DEBUG] ") || !strings.Contains(out, "shown 2") {
		t.Fatalf("unexpected debug line: %q", out)
	}
}

func TestDebugDefaultFollowsBuild(t *testing.T) {
	if Debug != debugBuild {
		t.Fatalf("Debug = %v at start, want %v", Debug, debugBuild)
	}
}
