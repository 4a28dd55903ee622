package shellx

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestExecRunner_Success(t *testing.T) {
	requireShell(t)

	res, err := ExecRunner{}.Run(context.Background(), Command{Name: "sh", Args: []string{"-c", "echo DELETE 0"}})
	require.NoError(t, err)
	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, "DELETE 0\n", string(res.Stdout))
	assert.Empty(t, res.Stderr)
}

func TestExecRunner_NonZeroExit(t *testing.T) {
	requireShell(t)

	res, err := ExecRunner{}.Run(context.Background(), Command{
		Name: "sh",
		Args: []string{"-c", "echo 'relation \"users\" does not exist' >&2; exit 3"},
	})
	require.Error(t, err)

	var ee *ExitError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, 3, ee.Code)
	assert.Equal(t, 3, res.ExitCode)
	assert.Contains(t, ee.Error(), `relation "users" does not exist`)
	assert.Contains(t, string(res.Stderr), "does not exist")
}

func TestExecRunner_NotFound(t *testing.T) {
	_, err := ExecRunner{}.Run(context.Background(), Command{Name: "picseed-definitely-missing-binary"})
	require.Error(t, err)

	var ee *ExitError
	assert.False(t, errors.As(err, &ee))
}

func TestExecRunner_Stdin(t *testing.T) {
	requireShell(t)

	res, err := ExecRunner{}.Run(context.Background(), Command{Name: "cat", Stdin: []byte("DELETE FROM users;\n")})
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM users;\n", string(res.Stdout))
}

func TestCommand_String(t *testing.T) {
	c := Command{Name: "docker", Args: []string{"exec", "picshare-redis-1", "redis-cli", "flushdb"}}
	assert.Equal(t, "docker exec picshare-redis-1 redis-cli flushdb", c.String())
}

func TestExitError_Message(t *testing.T) {
	assert.Equal(t, "docker exited with status 1", (&ExitError{Name: "docker", Code: 1}).Error())
	assert.Equal(t, "docker exited with status 1: No such container", (&ExitError{Name: "docker", Code: 1, Stderr: "No such container\n"}).Error())
}
