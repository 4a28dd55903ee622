package users

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/picseed/internal/shellx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	res   shellx.Result
	err   error
	calls []shellx.Command
}

func (f *fakeRunner) Run(_ context.Context, c shellx.Command) (shellx.Result, error) {
	f.calls = append(f.calls, c)
	return f.res, f.err
}

func TestDockerRepository_Command(t *testing.T) {
	r := &fakeRunner{res: shellx.Result{Stdout: []byte("DELETE 1\n")}}
	repo := NewDockerRepository(r, "picshare-db-1", "picshare", "picshare")

	n, err := repo.DeleteByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	require.Len(t, r.calls, 1)
	c := r.calls[0]
	assert.Equal(t, "docker", c.Name)
	assert.Equal(t, []string{
		"exec", "-i", "picshare-db-1",
		"psql", "-X", "-U", "picshare", "-d", "picshare",
		"-v", "ON_ERROR_STOP=1",
		"-v", "email=alice@example.com",
	}, c.Args)
	assert.Equal(t, "DELETE FROM users WHERE email = :'email';\n", string(c.Stdin))
	assert.NotContains(t, string(c.Stdin), "alice@example.com", "email must travel as a psql variable")
}

func TestDockerRepository_ZeroRows(t *testing.T) {
	r := &fakeRunner{res: shellx.Result{Stdout: []byte("DELETE 0\n")}}
	n, err := NewDockerRepository(r, "db", "u", "d").DeleteByEmail(context.Background(), "ghost@example.com")

	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestDockerRepository_UnparsableOutput(t *testing.T) {
	r := &fakeRunner{res: shellx.Result{Stdout: []byte("")}}
	n, err := NewDockerRepository(r, "db", "u", "d").DeleteByEmail(context.Background(), "demo@example.com")

	require.NoError(t, err)
	assert.Equal(t, int64(-1), n)
}

func TestDockerRepository_ExitError(t *testing.T) {
	r := &fakeRunner{err: &shellx.ExitError{Name: "docker", Code: 1, Stderr: "Error: No such container: picshare-db-1"}}
	_, err := NewDockerRepository(r, "picshare-db-1", "u", "d").DeleteByEmail(context.Background(), "demo@example.com")

	require.Error(t, err)
	var ee *shellx.ExitError
	assert.True(t, errors.As(err, &ee))
	assert.Contains(t, err.Error(), "No such container")
}
