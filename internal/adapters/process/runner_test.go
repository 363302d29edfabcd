package process

import (
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/simclean/internal/ports"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestRun_ReturnsStdout(t *testing.T) {
	requireShell(t)

	output, err := Run(context.Background(), "sh", "-c", "echo hello")

	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(output))
}

func TestRun_NonZeroExitIncludesStderr(t *testing.T) {
	requireShell(t)

	_, err := Run(context.Background(), "sh", "-c", "echo boom >&2; exit 3")

	require.ErrorIs(t, err, ports.ErrCommandFailed)
	assert.Contains(t, err.Error(), "boom")
}

func TestRun_MissingBinary(t *testing.T) {
	_, err := Run(context.Background(), "simclean-definitely-not-a-binary")

	require.ErrorIs(t, err, ports.ErrCommandFailed)
	assert.Contains(t, err.Error(), "simclean-definitely-not-a-binary")
}
