package commands_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build the binary once for all tests.
	tmpDir, err := os.MkdirTemp("", "facto-test-*")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(tmpDir)

	binaryPath = filepath.Join(tmpDir, "facto")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/facto")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		panic("failed to build binary: " + err.Error())
	}

	os.Exit(m.Run())
}

func runFacto(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// initDataDir scaffolds a data directory with `facto init`.
func initDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if _, err := runFacto(t, "init", dir, "--name", "Test Biz"); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	return dir
}
