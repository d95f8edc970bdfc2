//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd

package program

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"j5.nz/nostd/std/config"
)

// The test binary doubles as the program under test: with helperEnv set,
// TestMain runs Main on the raw gateway instead of the tests.
const helperEnv = "NOSTD_TEST_PROGRAM"

var helpers = map[string]struct {
	cfg string
	fn  func(*Runner, config.Config) int
}{
	"fib20":    {"term_limit: 20\n", (*Runner).Fib},
	"fib8":     {"term_limit: 25\nwidth: 8\n", (*Runner).Fib},
	"hexcount": {"term_limit: 20\n", (*Runner).Count},
	"hello":    {"", (*Runner).Hello},
	"loop":     {"", (*Runner).Loop},
	"badcfg":   {"width: 7\n", (*Runner).Fib},
}

func TestMain(m *testing.M) {
	if name := os.Getenv(helperEnv); name != "" {
		h := helpers[name]
		Main([]byte(h.cfg), h.fn)
	}
	os.Exit(m.Run())
}

func runHelper(t *testing.T, name string) (stdout, stderr string, status int) {
	t.Helper()
	cmd := exec.Command(os.Args[0], "-test.run=^$")
	cmd.Env = append(os.Environ(), helperEnv+"="+name)
	var out, errOut bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errOut

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return out.String(), errOut.String(), exitErr.ExitCode()
	}
	require.NoError(t, err)
	return out.String(), errOut.String(), 0
}

func TestEndToEndFib(t *testing.T) {
	stdout, stderr, status := runHelper(t, "fib20")
	assert.Equal(t, StatusOK, status)
	assert.Equal(t, expectedFib(t, 20), stdout)
	assert.Empty(t, stderr)
}

func TestEndToEndOverflow(t *testing.T) {
	stdout, stderr, status := runHelper(t, "fib8")
	assert.Equal(t, StatusOverflow, status)
	assert.Equal(t, expectedFib(t, 13), stdout)
	assert.Equal(t, "Overflow\n", stderr)
}

func TestEndToEndSmallPrograms(t *testing.T) {
	stdout, _, status := runHelper(t, "hexcount")
	assert.Equal(t, StatusOK, status)
	assert.Equal(t, "0\n1\n2\n3\n4\n5\n6\n7\n8\n9\na\nb\nc\nd\ne\nf\n10\n11\n12\n13\n", stdout)

	stdout, _, status = runHelper(t, "hello")
	assert.Equal(t, StatusOK, status)
	assert.Equal(t, "Hello, World!\n", stdout)

	stdout, _, status = runHelper(t, "loop")
	assert.Equal(t, 9, status)
	assert.Empty(t, stdout)

	_, stderr, status := runHelper(t, "badcfg")
	assert.Equal(t, StatusFailure, status)
	assert.Contains(t, stderr, "width 7")
}
