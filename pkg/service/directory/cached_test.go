package directory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/oncall-override/pkg/domain/interfaces"
	"github.com/secmon-lab/oncall-override/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/oncall-override/pkg/domain/model"
	"github.com/secmon-lab/oncall-override/pkg/domain/types"
	"github.com/secmon-lab/oncall-override/pkg/repository"
	"github.com/secmon-lab/oncall-override/pkg/service/directory"
)

type fixture struct {
	now      time.Time
	upstream *mocks.DirectoryMock
	queue    *mocks.TaskQueueMock
	cached   *directory.Cached
	fail     bool
}

func newFixture() *fixture {
	f := &fixture{now: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
	clock := func() time.Time { return f.now }

	f.upstream = &mocks.DirectoryMock{
		ListUsersFunc: func(ctx context.Context) ([]*model.DirectoryUser, error) {
			if f.fail {
				return nil, errors.New("rootly down")
			}
			return []*model.DirectoryUser{{ID: "1", Name: "Alice", Email: "alice@example.com"}}, nil
		},
	}
	f.queue = &mocks.TaskQueueMock{
		SubmitAfterFunc: func(ctx context.Context, name string, delay time.Duration, fn interfaces.TaskFunc) {},
	}
	store := repository.NewMemory(repository.WithMemoryClock(clock))
	f.cached = directory.NewCached(f.upstream, store, f.queue, directory.WithClock(clock))
	return f
}

func TestCachedListUsers(t *testing.T) {
	t.Run("Second call within TTL does not refetch", func(t *testing.T) {
		f := newFixture()
		ctx := context.Background()

		users, err := f.cached.ListUsers(ctx)
		gt.NoError(t, err)
		gt.Equal(t, 1, len(users))

		f.now = f.now.Add(4 * time.Minute)
		users, err = f.cached.ListUsers(ctx)
		gt.NoError(t, err)
		gt.Equal(t, 1, len(users))
		gt.Equal(t, 1, len(f.upstream.ListUsersCalls()))
	})

	t.Run("Call after TTL refetches", func(t *testing.T) {
		f := newFixture()
		ctx := context.Background()

		_, err := f.cached.ListUsers(ctx)
		gt.NoError(t, err)

		f.now = f.now.Add(directory.DefaultTTL + time.Second)
		_, err = f.cached.ListUsers(ctx)
		gt.NoError(t, err)
		gt.Equal(t, 2, len(f.upstream.ListUsersCalls()))
	})

	t.Run("Miss schedules refresh after TTL", func(t *testing.T) {
		f := newFixture()

		_, err := f.cached.ListUsers(context.Background())
		gt.NoError(t, err)

		calls := f.queue.SubmitAfterCalls()
		gt.Equal(t, 1, len(calls))
		gt.Equal(t, directory.DefaultTTL+directory.RefreshDelay, calls[0].Delay)

		// Running the scheduled task refetches and rewarms the entry
		gt.NoError(t, calls[0].Fn(context.Background()))
		gt.Equal(t, 2, len(f.upstream.ListUsersCalls()))
	})

	t.Run("Stale entry served when fetch fails", func(t *testing.T) {
		f := newFixture()
		ctx := context.Background()

		_, err := f.cached.ListUsers(ctx)
		gt.NoError(t, err)

		f.now = f.now.Add(time.Hour)
		f.fail = true
		users, err := f.cached.ListUsers(ctx)
		gt.NoError(t, err)
		gt.Equal(t, "Alice", users[0].Name)
	})

	t.Run("Error when fetch fails and nothing cached", func(t *testing.T) {
		f := newFixture()
		f.fail = true

		_, err := f.cached.ListUsers(context.Background())
		gt.Error(t, err)
		gt.Equal(t, 0, len(f.queue.SubmitAfterCalls()))
	})
}

func TestCachedPassThrough(t *testing.T) {
	f := newFixture()
	f.upstream.FindUserByEmailFunc = func(ctx context.Context, email string) (*model.DirectoryUser, error) {
		return &model.DirectoryUser{ID: "9", Email: email}, nil
	}
	f.upstream.CreateOverrideFunc = func(ctx context.Context, userID types.DirectoryUserID, scheduleID types.ScheduleID, start, end time.Time) (types.OverrideID, error) {
		return "shift-1", nil
	}
	ctx := context.Background()

	for range 2 {
		user, err := f.cached.FindUserByEmail(ctx, "bob@example.com")
		gt.NoError(t, err)
		gt.Equal(t, "9", user.ID.String())
	}
	gt.Equal(t, 2, len(f.upstream.FindUserByEmailCalls()))

	id, err := f.cached.CreateOverride(ctx, "9", "sched-1", f.now, f.now.Add(time.Hour))
	gt.NoError(t, err)
	gt.Equal(t, "shift-1", id.String())
	gt.Equal(t, "sched-1", f.upstream.CreateOverrideCalls()[0].ScheduleID.String())
}
