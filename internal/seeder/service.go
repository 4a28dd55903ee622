// Package seeder provisions the demo accounts through the API, checks that
// they can log in, and resets datastore and cache state between runs. Every
// procedure keeps going after a per-record failure and reports it instead.
package seeder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/picseed/internal/apiclient"
	"github.com/dmitrijs2005/picseed/internal/cache"
	"github.com/dmitrijs2005/picseed/internal/common"
	"github.com/dmitrijs2005/picseed/internal/logging"
	"github.com/dmitrijs2005/picseed/internal/models"
	"github.com/dmitrijs2005/picseed/internal/repositories/users"
)

const DefaultDelay = 500 * time.Millisecond

// ErrNoDatastore is reported for every deletion when the Service was built
// without a users repository.
var ErrNoDatastore = errors.New("no datastore configured")

// API is the part of the API client the procedures use.
type API interface {
	CreateUser(ctx context.Context, rec models.SeedRecord) error
	Login(ctx context.Context, creds models.Credentials) error
}

// Options select the stages of Run. FlushCache alone clears rate limits
// without deleting anything; Reset implies it.
type Options struct {
	Reset        bool
	FlushCache   bool
	VerifyLogins bool
}

type Service struct {
	api      API
	users    users.Repository
	cache    cache.Flusher
	reporter Reporter
	logger   logging.Logger
	delay    time.Duration
	sleep    func(ctx context.Context, d time.Duration)
}

// NewService wires the procedures. usersRepo and flusher may be nil when
// reset is never requested; a nil usersRepo fails every deletion with
// ErrNoDatastore.
func NewService(api API, usersRepo users.Repository, flusher cache.Flusher, reporter Reporter, logger logging.Logger, delay time.Duration) *Service {
	if usersRepo == nil {
		usersRepo = users.Unavailable(ErrNoDatastore)
	}
	return &Service{
		api:      api,
		users:    usersRepo,
		cache:    flusher,
		reporter: reporter,
		logger:   logger,
		delay:    delay,
		sleep:    sleepCtx,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

// pause spaces out consecutive API requests; nothing waits after the last one.
func (s *Service) pause(ctx context.Context, i, n int) {
	if i < n-1 {
		s.sleep(ctx, s.delay)
	}
}

// Run executes reset (optional), provisioning and login verification
// (optional) in that order and always finishes with a summary line.
func (s *Service) Run(ctx context.Context, records []models.SeedRecord, opts Options) Summary {
	var total Summary

	if opts.Reset {
		total = total.Add(s.Reset(ctx, records))
	} else if opts.FlushCache {
		s.FlushCache(ctx)
	}
	total = total.Add(s.Provision(ctx, records))
	if opts.VerifyLogins {
		total = total.Add(s.VerifyLogins(ctx, records))
	}

	s.reporter.Summary("Run complete", total)
	return total
}

// Provision signs up every record. "Already exists" counts as success so
// reruns are idempotent.
func (s *Service) Provision(ctx context.Context, records []models.SeedRecord) Summary {
	var sum Summary
	s.reporter.Section("Creating users")

	for i, rec := range records {
		if ctx.Err() != nil {
			break
		}

		err := s.api.CreateUser(ctx, rec)
		switch {
		case err == nil:
			sum.ok()
			s.reporter.Success(fmt.Sprintf("Successfully created user: %s", rec.Email))
			s.logger.Info(ctx, "user created", "email", rec.Email, "handle", rec.Handle)
		case errors.Is(err, common.ErrAlreadyExists):
			sum.ok()
			s.reporter.Info(fmt.Sprintf("User already exists: %s", rec.Email))
			s.logger.Info(ctx, "user already exists", "email", rec.Email)
		default:
			sum.fail()
			msg, detail := describe("create user", rec.Email, err)
			s.reporter.Failure(msg, detail)
			s.logger.Error(ctx, "user creation failed", "email", rec.Email, "err", err)
		}

		s.pause(ctx, i, len(records))
	}

	return sum
}

// VerifyLogins posts each record's credentials to the login endpoint.
func (s *Service) VerifyLogins(ctx context.Context, records []models.SeedRecord) Summary {
	var sum Summary
	s.reporter.Section("Testing logins")

	for i, rec := range records {
		if ctx.Err() != nil {
			break
		}

		if err := s.api.Login(ctx, rec.Credentials()); err != nil {
			sum.fail()
			msg, detail := describe("log in", rec.Email, err)
			s.reporter.Failure(msg, detail)
			s.logger.Error(ctx, "login failed", "email", rec.Email, "err", err)
		} else {
			sum.ok()
			s.reporter.Success(fmt.Sprintf("Login successful for: %s", rec.Email))
			s.logger.Info(ctx, "login ok", "email", rec.Email)
		}

		s.pause(ctx, i, len(records))
	}

	return sum
}

// FlushCache clears the rate-limit cache. A failure is only a warning.
func (s *Service) FlushCache(ctx context.Context) {
	s.reporter.Section("Clearing rate limits")
	if s.cache == nil {
		s.reporter.Warn("No cache configured, skipping rate limit flush")
	} else if err := s.cache.FlushAll(ctx); err != nil {
		s.reporter.Warn(fmt.Sprintf("Could not clear rate limits: %v", err))
		s.logger.Warn(ctx, "cache flush failed", "err", err)
	} else {
		s.reporter.Success("Rate limits cleared")
		s.logger.Info(ctx, "cache flushed")
	}
}

// Reset flushes the rate-limit cache and then deletes every record's row by
// email. A failed flush is reported as a warning and does not stop deletion;
// a failed deletion does not stop the next one.
func (s *Service) Reset(ctx context.Context, records []models.SeedRecord) Summary {
	var sum Summary

	s.FlushCache(ctx)

	s.reporter.Section("Deleting existing users")
	for _, rec := range records {
		if ctx.Err() != nil {
			break
		}

		n, err := s.users.DeleteByEmail(ctx, rec.Email)
		if err != nil {
			sum.fail()
			s.reporter.Failure(fmt.Sprintf("Error deleting %s", rec.Email), err.Error())
			s.logger.Error(ctx, "user deletion failed", "email", rec.Email, "err", err)
			continue
		}

		sum.ok()
		if n == 0 {
			s.reporter.Success(fmt.Sprintf("No user to delete: %s", rec.Email))
		} else {
			s.reporter.Success(fmt.Sprintf("Deleted user: %s", rec.Email))
		}
		s.logger.Info(ctx, "user deleted", "email", rec.Email, "rows", n)
	}

	return sum
}

// describe turns an API error into the narration line and its detail.
func describe(action, email string, err error) (string, string) {
	var se *apiclient.StatusError
	if errors.As(err, &se) {
		return fmt.Sprintf("Failed to %s %s: %d", action, email, se.Code), "Response: " + se.Body
	}
	return fmt.Sprintf("Error trying to %s %s", action, email), err.Error()
}
