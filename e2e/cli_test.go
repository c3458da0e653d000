//go:build e2e && windows

package e2e

import (
	"bytes"
	"errors"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildBinary compiles monoff as a console binary so that the test process
// owns its standard streams.
func buildBinary(t *testing.T) string {
	t.Helper()

	bin := filepath.Join(t.TempDir(), "monoff.exe")
	cmd := exec.Command("go", "build", "-o", bin, "../cmd/monoff")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))

	return bin
}

func runBinary(t *testing.T, bin string, args ...string) (stdout, stderr string, code int) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer
	cmd := exec.Command(bin, args...)
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		code = 0
	case errors.As(err, &exitErr):
		code = exitErr.ExitCode()
	default:
		require.NoError(t, err)
	}

	return outBuf.String(), errBuf.String(), code
}

func TestCLI_Help_E2E(t *testing.T) {
	bin := buildBinary(t)

	stdout, stderr, code := runBinary(t, bin, "--help")

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "--delay")
	assert.Empty(t, stderr)
}

func TestCLI_InvalidDelay_E2E(t *testing.T) {
	bin := buildBinary(t)

	for _, value := range []string{"-1", "99999", "later"} {
		t.Run(value, func(t *testing.T) {
			stdout, stderr, code := runBinary(t, bin, "--delay", value)

			assert.Equal(t, 2, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, "error:")
		})
	}
}
