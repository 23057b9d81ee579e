// Package gocmdtester builds a main package and runs the resulting binary as a
// separate process. It is for commands that cannot be driven through an
// in-process Run, such as nice, which replaces itself with the command it
// starts.
package gocmdtester

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"

	"github.com/dansimau/coreutils/pkg/xexec"
)

// cache stores builds keyed by absolute package path, so each binary is
// compiled once per test process.
var cache sync.Map // map[string]*build

type build struct {
	once       sync.Once
	binaryDir  string
	binaryPath string
	err        error
}

// CmdTester runs a compiled binary.
//
// Example usage:
//
//	func TestNice(t *testing.T) {
//	    nice := gocmdtester.FromPath(t, "../cmd/nice")
//
//	    result := nice.Run("-n", "3", "true")
//	    assert.Equal(t, result.ExitCode(), 0)
//	}
type CmdTester struct {
	t          *testing.T
	binaryPath string
	runConfig  *runConfig
}

// FromPath returns a CmdTester for the main package in the directory
// mainPath (or the directory of mainPath, if it names a .go file). The binary
// is compiled on first use and shared by later callers; options apply only to
// the returned tester.
func FromPath(t *testing.T, mainPath string, opts ...Option) *CmdTester {
	t.Helper()

	absPath, err := filepath.Abs(mainPath)
	if err != nil {
		t.Fatalf("failed to resolve %s: %v", mainPath, err)
	}

	if filepath.Ext(absPath) == ".go" {
		absPath = filepath.Dir(absPath)
	}

	actual, _ := cache.LoadOrStore(absPath, &build{})
	b := actual.(*build)

	b.once.Do(func() {
		b.binaryDir, b.binaryPath, b.err = compile(absPath)
	})

	if b.err != nil {
		t.Fatal(b.err)
	}

	cfg := &runConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return &CmdTester{
		t:          t,
		binaryPath: b.binaryPath,
		runConfig:  cfg,
	}
}

// compile builds the main package in dir into a new temporary directory.
func compile(dir string) (binaryDir, binaryPath string, err error) {
	binaryDir, err = os.MkdirTemp("", "gocmdtester-bin-")
	if err != nil {
		return "", "", fmt.Errorf("failed to create temp directory for binary: %w", err)
	}

	binaryPath = filepath.Join(binaryDir, filepath.Base(dir))

	if err := xexec.Command("go", "build", "-o", binaryPath, ".").WithWorkingDir(dir).Run(); err != nil {
		_ = os.RemoveAll(binaryDir)

		return "", "", fmt.Errorf("failed to compile %s: %w", dir, err)
	}

	return binaryDir, binaryPath, nil
}

// CleanupAll removes every compiled binary. Call it from TestMain after
// m.Run.
func CleanupAll() error {
	var errs []error

	cache.Range(func(key, value any) bool {
		b := value.(*build)
		if b.binaryDir != "" {
			if err := os.RemoveAll(b.binaryDir); err != nil {
				errs = append(errs, err)
			}
		}

		cache.Delete(key)

		return true
	})

	return errors.Join(errs...)
}

// BinaryPath returns the path to the compiled binary.
func (ct *CmdTester) BinaryPath() string {
	return ct.binaryPath
}

// Run executes the compiled binary with args and waits for it to exit. A
// non-zero exit status is reported through the Result, not as a test
// failure.
func (ct *CmdTester) Run(args ...string) *Result {
	ct.t.Helper()

	var stderr bytes.Buffer

	cmd := xexec.Command(append([]string{ct.binaryPath}, args...)...).
		WithStdout(nil).
		WithStderr(&stderr)

	cmd.Stdin = nil

	if ct.runConfig.workingDir != "" {
		cmd.WithWorkingDir(ct.runConfig.workingDir)
	}

	if len(ct.runConfig.env) > 0 {
		cmd.Env = os.Environ()
		for k, v := range ct.runConfig.env {
			cmd.Env = append(cmd.Env, k+"="+v)
		}
	}

	stdout, err := cmd.Output()

	exitCode := 0
	if err != nil {
		exitCode = -1

		exitErr := &exec.ExitError{}
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
	}

	return &Result{
		stdout:   string(stdout),
		stderr:   stderr.String(),
		exitCode: exitCode,
		err:      err,
	}
}
