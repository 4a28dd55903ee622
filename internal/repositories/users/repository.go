// Package users deletes seed accounts directly from the API's datastore.
// Rows are matched by email with a parameterized predicate, never by
// splicing the address into SQL text.
package users

import (
	"context"
	"fmt"
)

// Repository removes user rows. DeleteByEmail returns the number of rows
// removed; zero is not an error. Implementations that cannot tell report -1.
type Repository interface {
	DeleteByEmail(ctx context.Context, email string) (int64, error)
}

// unavailableRepository stands in for a datastore that could not be opened.
type unavailableRepository struct {
	err error
}

// Unavailable returns a Repository whose every deletion fails with err, so
// callers still report an outcome per email when the connection is down.
func Unavailable(err error) Repository {
	return unavailableRepository{err: err}
}

func (r unavailableRepository) DeleteByEmail(context.Context, string) (int64, error) {
	return 0, fmt.Errorf("datastore unavailable: %w", r.err)
}
