//go:build basic || database

package integration

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

// Integration tests shell out to a real chartbench binary. The binary is
// compiled once into a throwaway directory and shared by every test in the
// package, since building dominates the runtime of the small scenarios below.
var (
	binOnce   sync.Once
	binMu     sync.Mutex
	binPath   string
	binTmpDir string
)

// TestMain cleans up the shared binary after all tests have run.
func TestMain(m *testing.M) {
	code := m.Run()

	if binTmpDir != "" {
		_ = os.RemoveAll(binTmpDir)
	}

	os.Exit(code)
}

// getChartbenchBinary compiles chartbench from the project root on first use
// and returns the shared binary path.
func getChartbenchBinary() string {
	binMu.Lock()
	defer binMu.Unlock()

	binOnce.Do(func() {
		dir, err := os.MkdirTemp("", "chartbench-integration-*")
		if err != nil {
			panic(fmt.Sprintf("failed to create temp dir: %v", err))
		}
		binTmpDir = dir

		target := filepath.Join(dir, "chartbench")
		buildCmd := exec.Command("go", "build", "-o", target, ".")
		buildCmd.Dir = ".." // project root
		if out, err := buildCmd.CombinedOutput(); err != nil {
			panic(fmt.Sprintf("failed to build chartbench: %v\n%s", err, out))
		}

		binPath = target
	})

	return binPath
}
