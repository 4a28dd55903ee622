package users

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/dmitrijs2005/picseed/internal/shellx"
)

// psql substitutes :'email' as a properly quoted literal; -c strings are not
// interpolated, so the statement is fed on stdin.
const psqlDeleteByEmail = "DELETE FROM users WHERE email = :'email';\n"

var deleteTag = regexp.MustCompile(`(?m)^DELETE (\d+)\s*$`)

// DockerRepository runs psql inside the database container.
type DockerRepository struct {
	runner    shellx.Runner
	container string
	user      string
	database  string
}

func NewDockerRepository(runner shellx.Runner, container, user, database string) *DockerRepository {
	return &DockerRepository{runner: runner, container: container, user: user, database: database}
}

func (r *DockerRepository) command(email string) shellx.Command {
	return shellx.Command{
		Name: "docker",
		Args: []string{
			"exec", "-i", r.container,
			"psql", "-X",
			"-U", r.user,
			"-d", r.database,
			"-v", "ON_ERROR_STOP=1",
			"-v", "email=" + email,
		},
		Stdin: []byte(psqlDeleteByEmail),
	}
}

func (r *DockerRepository) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	res, err := r.runner.Run(ctx, r.command(email))
	if err != nil {
		return 0, fmt.Errorf("psql error: %w", err)
	}

	m := deleteTag.FindSubmatch(res.Stdout)
	if m == nil {
		return -1, nil
	}
	n, err := strconv.ParseInt(string(m[1]), 10, 64)
	if err != nil {
		return -1, nil
	}
	return n, nil
}
